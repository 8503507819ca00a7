package documents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSadtRestClientPrecisaSadt(t *testing.T) {
	t.Run("decodes the check result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/agendamentos/42/precisa-sadt", r.URL.Path)
			assert.Equal(t, constvars.MethodGet, r.Method)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			json.NewEncoder(w).Encode(map[string]bool{"precisaSadt": true})
		}))
		defer server.Close()

		client := &sadtRestClient{BaseUrl: server.URL, Log: zap.NewNop()}
		required, err := client.PrecisaSadt(context.Background(), 42)

		assert.NoError(t, err)
		assert.True(t, required)
	})

	t.Run("upstream error status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := &sadtRestClient{BaseUrl: server.URL, Log: zap.NewNop()}
		_, err := client.PrecisaSadt(context.Background(), 42)

		assert.Error(t, err)
	})

	t.Run("honors the caller context deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		client := &sadtRestClient{BaseUrl: server.URL, Log: zap.NewNop()}
		_, err := client.PrecisaSadt(ctx, 42)

		assert.Error(t, err)
	})
}

func TestSadtRestClientGerarSadt(t *testing.T) {
	request := &models.DocumentRequest{
		AppointmentID:   42,
		PatientID:       7,
		AppointmentType: constvars.AppointmentTypeLabExam,
		Procedures:      BuildProcedures(constvars.AppointmentTypeLabExam, "", []string{"Hemograma Completo"}),
		Urgent:          true,
		Notes:           "jejum de 8 horas",
	}

	t.Run("sends the procedure payload and decodes the pdf", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/sadt/gerar", r.URL.Path)
			assert.Equal(t, constvars.MethodPost, r.Method)

			var payload struct {
				AppointmentID int64 `json:"agendamentoId"`
				PatientID     int64 `json:"pacienteId"`
				Procedures    []struct {
					Code     string `json:"codigo"`
					Name     string `json:"nome"`
					Quantity int    `json:"quantidade"`
				} `json:"procedimentos"`
				Urgent bool   `json:"urgente"`
				Notes  string `json:"observacoes"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, int64(42), payload.AppointmentID)
			assert.Equal(t, int64(7), payload.PatientID)
			assert.Len(t, payload.Procedures, 1)
			assert.Equal(t, "0202020380", payload.Procedures[0].Code)
			assert.True(t, payload.Urgent)

			json.NewEncoder(w).Encode(map[string]string{"pdfBase64": "cGRmLWJ5dGVz"})
		}))
		defer server.Close()

		client := &sadtRestClient{BaseUrl: server.URL, Log: zap.NewNop()}
		pdfBase64, err := client.GerarSadt(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "cGRmLWJ5dGVz", pdfBase64)
	})

	t.Run("empty pdf payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"pdfBase64": ""})
		}))
		defer server.Close()

		client := &sadtRestClient{BaseUrl: server.URL, Log: zap.NewNop()}
		_, err := client.GerarSadt(context.Background(), request)

		assert.Error(t, err)
	})
}
