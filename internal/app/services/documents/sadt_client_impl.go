package documents

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sadtRestClientInstance contracts.SadtClient
	onceSadtRestClient     sync.Once
)

type sadtRestClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewSadtRestClient(baseUrl string, logger *zap.Logger) contracts.SadtClient {
	onceSadtRestClient.Do(func() {
		sadtRestClientInstance = &sadtRestClient{
			BaseUrl: baseUrl,
			Log:     logger,
		}
	})
	return sadtRestClientInstance
}

func (c *sadtRestClient) PrecisaSadt(ctx context.Context, appointmentID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := fmt.Sprintf("%s/api/agendamentos/%d/precisa-sadt", c.BaseUrl, appointmentID)
	c.Log.Info("sadtRestClient.PrecisaSadt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.Log.Error("sadtRestClient.PrecisaSadt error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return false, exceptions.ErrUpstreamRejected(nil, "sadt", resp.StatusCode)
	}

	var result struct {
		PrecisaSadt bool `json:"precisaSadt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, exceptions.ErrDecodeResponse(err, "sadt")
	}

	c.Log.Info("sadtRestClient.PrecisaSadt succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Bool("precisa_sadt", result.PrecisaSadt),
	)
	return result.PrecisaSadt, nil
}

func (c *sadtRestClient) GerarSadt(ctx context.Context, request *models.DocumentRequest) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := fmt.Sprintf("%s/api/sadt/gerar", c.BaseUrl)
	c.Log.Info("sadtRestClient.GerarSadt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	type procedurePayload struct {
		Code     string `json:"codigo"`
		Name     string `json:"nome"`
		Quantity int    `json:"quantidade"`
	}
	payload := struct {
		AppointmentID int64              `json:"agendamentoId"`
		PatientID     int64              `json:"pacienteId"`
		Procedures    []procedurePayload `json:"procedimentos"`
		Urgent        bool               `json:"urgente"`
		Notes         string             `json:"observacoes,omitempty"`
	}{
		AppointmentID: request.AppointmentID,
		PatientID:     request.PatientID,
		Urgent:        request.Urgent,
		Notes:         request.Notes,
	}
	for _, procedure := range request.Procedures {
		payload.Procedures = append(payload.Procedures, procedurePayload{
			Code:     procedure.Code,
			Name:     procedure.Name,
			Quantity: procedure.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.Log.Error("sadtRestClient.GerarSadt error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return "", exceptions.ErrUpstreamRejected(nil, "sadt", resp.StatusCode)
	}

	var result struct {
		PDFBase64 string `json:"pdfBase64"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "sadt")
	}
	if result.PDFBase64 == "" {
		return "", exceptions.ErrDecodeResponse(fmt.Errorf("empty pdfBase64 payload"), "sadt")
	}

	c.Log.Info("sadtRestClient.GerarSadt succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return result.PDFBase64, nil
}
