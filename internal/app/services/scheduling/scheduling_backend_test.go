package scheduling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSchedulingBackendClientCreateAppointment(t *testing.T) {
	draft := &requests.BookingDraft{
		PatientID:       7,
		AppointmentType: constvars.AppointmentTypeConsultation,
		Specialty:       "cardiologia",
		ScheduledAt:     time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC),
		Priority:        constvars.PriorityNormal,
	}

	t.Run("posts the draft and decodes the created appointment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/agendamentos", r.URL.Path)
			assert.Equal(t, constvars.MethodPost, r.Method)

			var received requests.BookingDraft
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Equal(t, int64(7), received.PatientID)
			assert.Equal(t, "cardiologia", received.Specialty)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(responses.Agendamento{
				ID:        42,
				PatientID: received.PatientID,
				Status:    constvars.AppointmentStatusScheduled,
			})
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		appointment, err := client.CreateAppointment(context.Background(), draft)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), appointment.ID)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
	})

	t.Run("server rejection surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		_, err := client.CreateAppointment(context.Background(), draft)

		assert.Error(t, err)
	})
}

func TestSchedulingBackendClientFindAll(t *testing.T) {
	t.Run("forwards the query filters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "7", r.URL.Query().Get("pacienteId"))
			assert.Equal(t, "2025-03-13", r.URL.Query().Get("data"))
			assert.Equal(t, constvars.AppointmentStatusScheduled, r.URL.Query().Get("status"))
			json.NewEncoder(w).Encode([]responses.Agendamento{{ID: 1}, {ID: 2}})
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		appointments, err := client.FindAll(context.Background(), &requests.AppointmentQuery{
			PatientID: 7,
			Date:      "2025-03-13",
			Status:    constvars.AppointmentStatusScheduled,
		})

		assert.NoError(t, err)
		assert.Len(t, appointments, 2)
	})

	t.Run("empty query sends no parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			json.NewEncoder(w).Encode([]responses.Agendamento{})
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		appointments, err := client.FindAll(context.Background(), &requests.AppointmentQuery{})

		assert.NoError(t, err)
		assert.Empty(t, appointments)
	})
}

func TestSchedulingBackendClientUpdateStatus(t *testing.T) {
	t.Run("patches the status endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/agendamentos/42/status", r.URL.Path)
			assert.Equal(t, constvars.MethodPatch, r.Method)

			var payload map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, constvars.AppointmentStatusFinished, payload["status"])

			json.NewEncoder(w).Encode(responses.Agendamento{ID: 42, Status: payload["status"]})
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		appointment, err := client.UpdateStatus(context.Background(), 42, constvars.AppointmentStatusFinished)

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusFinished, appointment.Status)
	})

	t.Run("missing appointment maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := &schedulingBackendClient{BaseUrl: server.URL, Log: zap.NewNop()}
		_, err := client.UpdateStatus(context.Background(), 42, constvars.AppointmentStatusFinished)

		assert.Error(t, err)
		customErr := &exceptions.CustomError{}
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
