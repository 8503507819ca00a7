package bookings

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/documents"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	SchedulingBackendClient contracts.SchedulingBackendClient
	DocumentResolver        contracts.DocumentResolver
	DocumentArchive         contracts.DocumentArchive
	PrintRenderer           contracts.PrintRenderer
	BookingAuditRepository  contracts.BookingAuditRepository
	RedisRepository         contracts.RedisRepository
	Notifier                contracts.Notifier
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewBookingUsecase(
	schedulingBackendClient contracts.SchedulingBackendClient,
	documentResolver contracts.DocumentResolver,
	documentArchive contracts.DocumentArchive,
	printRenderer contracts.PrintRenderer,
	bookingAuditRepository contracts.BookingAuditRepository,
	redisRepository contracts.RedisRepository,
	notifier contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			SchedulingBackendClient: schedulingBackendClient,
			DocumentResolver:        documentResolver,
			DocumentArchive:         documentArchive,
			PrintRenderer:           printRenderer,
			BookingAuditRepository:  bookingAuditRepository,
			RedisRepository:         redisRepository,
			Notifier:                notifier,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) Validate(ctx context.Context, draft *requests.BookingDraft) *responses.ValidationResult {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeBookingDraft(draft)
	result := ValidateDraft(draft, time.Now())
	uc.Log.Info("bookingUsecase.Validate finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("valid", result.Valid),
		zap.Int("error_count", len(result.Errors)),
	)
	return result
}

func (uc *bookingUsecase) Submit(ctx context.Context, draft *requests.BookingDraft) (*responses.CreateBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, draft.PatientID),
		zap.String(constvars.LoggingAppointmentTypeKey, draft.AppointmentType),
	)

	utils.SanitizeBookingDraft(draft)
	if result := ValidateDraft(draft, time.Now()); !result.Valid {
		return nil, exceptions.ErrBookingDraftInvalid(nil)
	}

	// The single upstream write. Any failure here is the booking failure;
	// the client keeps the draft and may retry manually.
	appointment, err := uc.SchedulingBackendClient.CreateAppointment(ctx, draft)
	if err != nil {
		uc.Log.Error("bookingUsecase.Submit upstream booking failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err)
	}

	// Everything below is best-effort follow-up. The booking already exists
	// upstream, so failures are contained and reported as notices.
	uc.invalidateAppointmentCache(ctx)

	document := uc.resolveDocument(ctx, draft, appointment.ID)
	uc.recordAudit(ctx, draft, appointment.ID, document.Kind)
	uc.archiveOfficialPDF(ctx, appointment.ID, document)

	response := &responses.CreateBooking{
		Appointment: appointment,
		Document:    document,
	}
	return response, nil
}

// resolveDocument runs the resolution chain and print delivery, converting
// every failure into an advisory notice on the returned document.
func (uc *bookingUsecase) resolveDocument(ctx context.Context, draft *requests.BookingDraft, appointmentID int64) *responses.BookingDocument {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	documentRequest := buildDocumentRequest(draft, appointmentID)
	resolved, err := uc.DocumentResolver.Resolve(ctx, documentRequest)
	if err != nil {
		uc.Log.Error("bookingUsecase.resolveDocument resolution failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		uc.notify(ctx, constvars.NoticeKindWarning, constvars.NoticeDocumentUnresolved)
		return &responses.BookingDocument{
			Kind:   constvars.DocumentKindNone,
			State:  constvars.DocumentStateSkipped,
			Notice: constvars.NoticeDocumentUnresolved,
		}
	}

	document := &responses.BookingDocument{
		Kind:      resolved.Kind,
		FileName:  resolved.FileName,
		PDFBase64: resolved.PDFBase64,
		HTML:      resolved.HTML,
	}

	requiresSadt := documents.RequiredDocumentFor(draft.AppointmentType) == constvars.RequiredDocumentSadt
	if requiresSadt && resolved.Kind == constvars.DocumentKindLocalPreviewHTML {
		document.Notice = constvars.NoticeDocumentLocalFallback
		uc.notify(ctx, constvars.NoticeKindWarning, constvars.NoticeDocumentLocalFallback)
	}

	state, err := uc.PrintRenderer.Print(ctx, resolved)
	document.State = state
	if err != nil {
		uc.Log.Warn("bookingUsecase.resolveDocument print delivery failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		if state == constvars.DocumentStatePrintBlocked {
			document.Notice = constvars.NoticePrintBlocked
			uc.notify(ctx, constvars.NoticeKindWarning, constvars.NoticePrintBlocked)
		}
	}
	return document
}

func (uc *bookingUsecase) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Agendamento, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cacheKey := fmt.Sprintf("%sp%d:d%s:s%s",
		constvars.AppointmentListCacheKeyPrefix, query.PatientID, query.Date, query.Status)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var appointments []responses.Agendamento
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			uc.Log.Info("bookingUsecase.FindAll cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			)
			return appointments, nil
		}
	}

	appointments, err := uc.SchedulingBackendClient.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.AppointmentCacheTTLInSecs) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, appointments, ttl); err != nil {
		uc.Log.Warn("bookingUsecase.FindAll failed caching appointment list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if err := uc.RedisRepository.AddToSet(ctx, constvars.AppointmentListCacheKeySet, cacheKey); err != nil {
		uc.Log.Warn("bookingUsecase.FindAll failed tracking cache key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return appointments, nil
}

func (uc *bookingUsecase) UpdateStatus(ctx context.Context, appointmentID int64, request *requests.UpdateAppointmentStatus) (*responses.Agendamento, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	appointment, err := uc.SchedulingBackendClient.UpdateStatus(ctx, appointmentID, request.Status)
	if err != nil {
		return nil, err
	}
	uc.invalidateAppointmentCache(ctx)
	return appointment, nil
}

func (uc *bookingUsecase) ReprintDocument(ctx context.Context, appointmentID int64) (*models.PrintJob, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// Archived official PDFs are served directly, no re-resolution.
	if pdf, err := uc.DocumentArchive.Fetch(ctx, appointmentID); err == nil && len(pdf) > 0 {
		uc.Log.Info("bookingUsecase.ReprintDocument serving archived PDF",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return &models.PrintJob{
			ContentType: constvars.MIMEApplicationPDF,
			FileName:    fmt.Sprintf("sadt-%d.pdf", appointmentID),
			Body:        pdf,
		}, nil
	}

	auditRecord, err := uc.BookingAuditRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if auditRecord == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	documentRequest := &models.DocumentRequest{
		AppointmentID:   auditRecord.AppointmentID,
		PatientID:       auditRecord.PatientID,
		AppointmentType: auditRecord.AppointmentType,
		Specialty:       auditRecord.Specialty,
		Procedures:      documents.BuildProcedures(auditRecord.AppointmentType, auditRecord.Specialty, auditRecord.Exams),
		Urgent:          auditRecord.Priority != constvars.PriorityNormal,
		Notes:           auditRecord.Notes,
		Unit:            auditRecord.Unit,
		ScheduledAt:     auditRecord.ScheduledAt,
	}

	resolved, err := uc.DocumentResolver.Resolve(ctx, documentRequest)
	if err != nil {
		return nil, err
	}
	if resolved.Kind == constvars.DocumentKindNone {
		return nil, exceptions.ErrDocumentNotRequired(nil)
	}
	return uc.PrintRenderer.Render(resolved)
}

func (uc *bookingUsecase) invalidateAppointmentCache(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	keys, err := uc.RedisRepository.GetSetMembers(ctx, constvars.AppointmentListCacheKeySet)
	if err != nil {
		uc.Log.Warn("bookingUsecase.invalidateAppointmentCache failed listing cache keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if len(keys) == 0 {
		return
	}
	keys = append(keys, constvars.AppointmentListCacheKeySet)
	if err := uc.RedisRepository.Delete(ctx, keys...); err != nil {
		uc.Log.Warn("bookingUsecase.invalidateAppointmentCache failed deleting cache keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) recordAudit(ctx context.Context, draft *requests.BookingDraft, appointmentID int64, documentKind string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	auditRecord := &models.BookingAudit{
		AppointmentID:   appointmentID,
		PatientID:       draft.PatientID,
		AppointmentType: draft.AppointmentType,
		Specialty:       draft.Specialty,
		Exams:           draft.SelectedExams,
		Priority:        draft.Priority,
		Notes:           draft.Notes,
		Unit:            draft.Unit,
		ScheduledAt:     draft.ScheduledAt,
		DocumentKind:    documentKind,
		CreatedAt:       time.Now(),
	}
	if err := uc.BookingAuditRepository.Insert(ctx, auditRecord); err != nil {
		uc.Log.Warn("bookingUsecase.recordAudit failed inserting audit record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) archiveOfficialPDF(ctx context.Context, appointmentID int64, document *responses.BookingDocument) {
	if document.Kind != constvars.DocumentKindRemotePDF {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	pdf, err := base64.StdEncoding.DecodeString(document.PDFBase64)
	if err != nil {
		uc.Log.Warn("bookingUsecase.archiveOfficialPDF invalid PDF payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return
	}
	if err := uc.DocumentArchive.Store(ctx, appointmentID, pdf); err != nil {
		uc.Log.Warn("bookingUsecase.archiveOfficialPDF failed storing PDF",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) notify(ctx context.Context, kind, message string) {
	if err := uc.Notifier.Notify(ctx, kind, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("bookingUsecase.notify failed publishing notice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func buildDocumentRequest(draft *requests.BookingDraft, appointmentID int64) *models.DocumentRequest {
	return &models.DocumentRequest{
		AppointmentID:   appointmentID,
		PatientID:       draft.PatientID,
		AppointmentType: draft.AppointmentType,
		Specialty:       draft.Specialty,
		Procedures:      documents.BuildProcedures(draft.AppointmentType, draft.Specialty, draft.SelectedExams),
		Urgent:          draft.Priority != constvars.PriorityNormal,
		Notes:           draft.Notes,
		Unit:            draft.Unit,
		ScheduledAt:     draft.ScheduledAt,
	}
}
