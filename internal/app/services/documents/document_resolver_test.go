package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSadtClient struct{ mock.Mock }

func (m *mockSadtClient) PrecisaSadt(ctx context.Context, appointmentID int64) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSadtClient) GerarSadt(ctx context.Context, request *models.DocumentRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func newResolverFixture() (*documentResolver, *mockSadtClient) {
	client := new(mockSadtClient)
	resolver := &documentResolver{
		SadtClient: client,
		InternalConfig: &config.InternalConfig{
			Sadt: config.Sadt{CheckTimeoutInSeconds: 3, GenerateTimeoutInSeconds: 5},
		},
		Log: zap.NewNop(),
	}
	return resolver, client
}

func sadtDocumentRequest() *models.DocumentRequest {
	return &models.DocumentRequest{
		AppointmentID:   42,
		PatientID:       7,
		AppointmentType: constvars.AppointmentTypeLabExam,
		Procedures: []models.ProcedureItem{
			LookupProcedure("Hemograma Completo"),
			LookupProcedure("Glicemia de Jejum"),
		},
		ScheduledAt: time.Date(2025, 3, 13, 9, 0, 0, 0, time.Local),
	}
}

func TestDocumentResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("receipt type never touches the sadt client", func(t *testing.T) {
		resolver, client := newResolverFixture()
		request := &models.DocumentRequest{
			AppointmentID:   42,
			PatientID:       7,
			AppointmentType: constvars.AppointmentTypeConsultation,
			Specialty:       "cardiologia",
			ScheduledAt:     time.Date(2025, 3, 13, 9, 0, 0, 0, time.Local),
		}

		document, err := resolver.Resolve(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindLocalPreviewHTML, document.Kind)
		assert.Equal(t, "comprovante-42.html", document.FileName)
		assert.Contains(t, document.HTML, "Comprovante de Agendamento")
		client.AssertNotCalled(t, "PrecisaSadt", mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "GerarSadt", mock.Anything, mock.Anything)
	})

	t.Run("unknown type resolves to none", func(t *testing.T) {
		resolver, client := newResolverFixture()
		request := sadtDocumentRequest()
		request.AppointmentType = "outro"

		document, err := resolver.Resolve(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindNone, document.Kind)
		client.AssertNotCalled(t, "PrecisaSadt", mock.Anything, mock.Anything)
	})

	t.Run("check says no document needed, generation never attempted", func(t *testing.T) {
		resolver, client := newResolverFixture()
		client.On("PrecisaSadt", mock.Anything, int64(42)).Return(false, nil)

		document, err := resolver.Resolve(ctx, sadtDocumentRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindNone, document.Kind)
		client.AssertNotCalled(t, "GerarSadt", mock.Anything, mock.Anything)
	})

	t.Run("check says needed, first tier generates the official pdf", func(t *testing.T) {
		resolver, client := newResolverFixture()
		client.On("PrecisaSadt", mock.Anything, int64(42)).Return(true, nil)
		client.On("GerarSadt", mock.Anything, mock.Anything).Return("cGRmLWJ5dGVz", nil).Once()

		document, err := resolver.Resolve(ctx, sadtDocumentRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindRemotePDF, document.Kind)
		assert.Equal(t, "sadt-42.pdf", document.FileName)
		assert.Equal(t, "cGRmLWJ5dGVz", document.PDFBase64)
	})

	t.Run("check failure falls through to dedicated generation", func(t *testing.T) {
		resolver, client := newResolverFixture()
		client.On("PrecisaSadt", mock.Anything, int64(42)).Return(false, errors.New("timeout"))
		client.On("GerarSadt", mock.Anything, mock.Anything).Return("cGRmLWJ5dGVz", nil).Once()

		document, err := resolver.Resolve(ctx, sadtDocumentRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindRemotePDF, document.Kind)
	})

	t.Run("both remote tiers fail, local synthesis still delivers", func(t *testing.T) {
		resolver, client := newResolverFixture()
		client.On("PrecisaSadt", mock.Anything, int64(42)).Return(false, errors.New("timeout"))
		client.On("GerarSadt", mock.Anything, mock.Anything).Return("", errors.New("service unavailable"))

		document, err := resolver.Resolve(ctx, sadtDocumentRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindLocalPreviewHTML, document.Kind)
		assert.Equal(t, "sadt-previa-42.html", document.FileName)
		assert.Contains(t, document.HTML, "PRÉVIA - DOCUMENTO NÃO OFICIAL")
	})

	t.Run("generation failure inside tier one falls to tier two", func(t *testing.T) {
		resolver, client := newResolverFixture()
		client.On("PrecisaSadt", mock.Anything, int64(42)).Return(true, nil)
		client.On("GerarSadt", mock.Anything, mock.Anything).
			Return("", errors.New("broken pipe")).Once()
		client.On("GerarSadt", mock.Anything, mock.Anything).
			Return("cGRmLWJ5dGVz", nil).Once()

		document, err := resolver.Resolve(ctx, sadtDocumentRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.DocumentKindRemotePDF, document.Kind)
		client.AssertNumberOfCalls(t, "GerarSadt", 2)
	})
}

func TestRequiredDocumentFor(t *testing.T) {
	cases := map[string]string{
		constvars.AppointmentTypeLabExam:             constvars.RequiredDocumentSadt,
		constvars.AppointmentTypeImagingExam:         constvars.RequiredDocumentSadt,
		constvars.AppointmentTypeProcedure:           constvars.RequiredDocumentSadt,
		constvars.AppointmentTypeConsultation:        constvars.RequiredDocumentReceipt,
		constvars.AppointmentTypeNursingConsultation: constvars.RequiredDocumentReceipt,
		constvars.AppointmentTypeVaccine:             constvars.RequiredDocumentReceipt,
		"desconhecido":                               constvars.RequiredDocumentNone,
	}
	for appointmentType, expected := range cases {
		assert.Equal(t, expected, RequiredDocumentFor(appointmentType),
			"wrong document class for %s", appointmentType)
	}
}
