package contracts

import (
	"context"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	// Validate is a pure check over the draft; it never touches the network.
	Validate(ctx context.Context, draft *requests.BookingDraft) *responses.ValidationResult
	// Submit persists the draft upstream and runs document resolution as a
	// best-effort follow-up. Document or print failures never surface as
	// booking failures.
	Submit(ctx context.Context, draft *requests.BookingDraft) (*responses.CreateBooking, error)
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Agendamento, error)
	UpdateStatus(ctx context.Context, appointmentID int64, request *requests.UpdateAppointmentStatus) (*responses.Agendamento, error)
	ReprintDocument(ctx context.Context, appointmentID int64) (*models.PrintJob, error)
}

type BookingAuditRepository interface {
	Insert(ctx context.Context, audit *models.BookingAudit) error
	FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.BookingAudit, error)
	FindRecent(ctx context.Context, limit int64) ([]models.BookingAudit, error)
}
