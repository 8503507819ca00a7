package bookings

import (
	"fmt"
	"time"

	"agenda-service/internal/app/services/documents"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
)

// ValidateDraft checks a booking draft without touching the network. The
// result carries blocking errors plus advisory warnings and suggestions that
// never prevent submission.
func ValidateDraft(draft *requests.BookingDraft, now time.Time) *responses.ValidationResult {
	result := &responses.ValidationResult{
		Errors:      []responses.ValidationIssue{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if draft.PatientID <= 0 {
		result.Errors = append(result.Errors, responses.ValidationIssue{
			Code:    constvars.ValidationCodeMissingPatient,
			Field:   "pacienteId",
			Message: "Selecione um paciente",
		})
	}

	requirements, knownType := documents.RequirementsFor(draft.AppointmentType)
	if !knownType {
		result.Errors = append(result.Errors, responses.ValidationIssue{
			Code:    constvars.ValidationCodeMissingType,
			Field:   "tipo",
			Message: "Selecione o tipo de atendimento",
		})
	}

	if draft.ScheduledAt.Before(now) {
		result.Errors = append(result.Errors, responses.ValidationIssue{
			Code:    constvars.ValidationCodePastDateTime,
			Field:   "dataHora",
			Message: "A data e hora devem estar no futuro",
		})
	}

	if knownType {
		if requirements.RequiresSpecialty && draft.Specialty == "" {
			result.Errors = append(result.Errors, responses.ValidationIssue{
				Code:    constvars.ValidationCodeMissingSpecialty,
				Field:   "especialidade",
				Message: "Informe a especialidade",
			})
		}
		if requirements.RequiresExams && len(draft.SelectedExams) == 0 {
			result.Errors = append(result.Errors, responses.ValidationIssue{
				Code:    constvars.ValidationCodeNoExamsSelected,
				Field:   "exames",
				Message: "Selecione ao menos um exame",
			})
		}
	}

	if !draft.ScheduledAt.IsZero() {
		if outsideBusinessHours(draft.ScheduledAt) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Horário fora do expediente (segunda a sexta, %02d:00 às %02d:00)",
					constvars.BusinessHourStart, constvars.BusinessHourEnd))
		}
		if draft.ScheduledAt.After(now) {
			switch lead := draft.ScheduledAt.Sub(now); {
			case lead < time.Hour:
				result.Suggestions = append(result.Suggestions,
					"Horário em menos de uma hora, trate como encaixe na recepção")
			case lead > 30*24*time.Hour:
				result.Suggestions = append(result.Suggestions,
					"Agendamento com mais de 30 dias, avalie se há vaga mais próxima")
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func outsideBusinessHours(scheduledAt time.Time) bool {
	weekday := scheduledAt.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return true
	}
	hour := scheduledAt.Hour()
	return hour < constvars.BusinessHourStart || hour >= constvars.BusinessHourEnd
}
