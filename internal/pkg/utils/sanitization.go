package utils

import (
	"strings"

	"agenda-service/internal/pkg/dto/requests"
)

// SanitizeBookingDraft normalizes free-text fields before validation. Exam
// names keep their original casing because the procedure catalog is keyed by
// the display name shown in the UI.
func SanitizeBookingDraft(draft *requests.BookingDraft) {
	draft.AppointmentType = strings.ToLower(strings.TrimSpace(draft.AppointmentType))
	draft.Specialty = strings.ToLower(strings.TrimSpace(draft.Specialty))
	draft.Priority = strings.ToLower(strings.TrimSpace(draft.Priority))
	draft.Notes = strings.TrimSpace(draft.Notes)
	draft.Unit = strings.TrimSpace(draft.Unit)

	exams := draft.SelectedExams[:0]
	for _, exam := range draft.SelectedExams {
		exam = strings.TrimSpace(exam)
		if exam != "" {
			exams = append(exams, exam)
		}
	}
	draft.SelectedExams = exams

	if draft.Priority == "" {
		draft.Priority = "normal"
	}
}
