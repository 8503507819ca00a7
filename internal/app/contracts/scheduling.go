package contracts

import (
	"context"

	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

// SchedulingBackendClient talks to the municipal scheduling backend.
type SchedulingBackendClient interface {
	CreateAppointment(ctx context.Context, draft *requests.BookingDraft) (*responses.Agendamento, error)
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]responses.Agendamento, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status string) (*responses.Agendamento, error)
}
