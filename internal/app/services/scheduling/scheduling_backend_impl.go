package scheduling

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	schedulingBackendClientInstance contracts.SchedulingBackendClient
	onceSchedulingBackendClient     sync.Once
)

type schedulingBackendClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewSchedulingBackendClient(baseUrl string, logger *zap.Logger) contracts.SchedulingBackendClient {
	onceSchedulingBackendClient.Do(func() {
		schedulingBackendClientInstance = &schedulingBackendClient{
			BaseUrl: baseUrl,
			Log:     logger,
		}
	})
	return schedulingBackendClientInstance
}

func (c *schedulingBackendClient) CreateAppointment(ctx context.Context, draft *requests.BookingDraft) (*responses.Agendamento, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s/api/agendamentos", c.BaseUrl)
	c.Log.Info("schedulingBackendClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
		zap.Int64(constvars.LoggingPatientIDKey, draft.PatientID),
		zap.String(constvars.LoggingAppointmentTypeKey, draft.AppointmentType),
	)

	body, err := json.Marshal(draft)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.Log.Error("schedulingBackendClient.CreateAppointment error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		c.Log.Error("schedulingBackendClient.CreateAppointment upstream rejected the booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUpstreamRejected(nil, "scheduling", resp.StatusCode)
	}

	appointment := new(responses.Agendamento)
	if err := json.NewDecoder(resp.Body).Decode(appointment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "scheduling")
	}

	c.Log.Info("schedulingBackendClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *schedulingBackendClient) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Agendamento, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s/api/agendamentos", c.BaseUrl)

	params := url.Values{}
	if query.PatientID > 0 {
		params.Set("pacienteId", strconv.FormatInt(query.PatientID, 10))
	}
	if query.Date != "" {
		params.Set("data", query.Date)
	}
	if query.Status != "" {
		params.Set("status", query.Status)
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}

	c.Log.Info("schedulingBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.Log.Error("schedulingBackendClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamRejected(nil, "scheduling", resp.StatusCode)
	}

	var appointments []responses.Agendamento
	if err := json.NewDecoder(resp.Body).Decode(&appointments); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "scheduling")
	}

	c.Log.Info("schedulingBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *schedulingBackendClient) UpdateStatus(ctx context.Context, appointmentID int64, status string) (*responses.Agendamento, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := fmt.Sprintf("%s/api/agendamentos/%d/status", c.BaseUrl, appointmentID)
	c.Log.Info("schedulingBackendClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
		zap.String("status", status),
	)

	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.Log.Error("schedulingBackendClient.UpdateStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamRejected(nil, "scheduling", resp.StatusCode)
	}

	appointment := new(responses.Agendamento)
	if err := json.NewDecoder(resp.Body).Decode(appointment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "scheduling")
	}
	return appointment, nil
}
