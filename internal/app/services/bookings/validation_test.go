package bookings

import (
	"testing"
	"time"

	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

// Tuesday 10:00, well inside business hours.
var testNow = time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)

func validLabDraft() *requests.BookingDraft {
	return &requests.BookingDraft{
		PatientID:       7,
		AppointmentType: constvars.AppointmentTypeLabExam,
		SelectedExams:   []string{"Hemograma Completo", "Glicemia de Jejum"},
		ScheduledAt:     testNow.Add(48 * time.Hour),
		Priority:        constvars.PriorityNormal,
	}
}

func issueCodes(issues []responses.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestValidateDraft(t *testing.T) {
	t.Run("valid lab draft passes", func(t *testing.T) {
		result := ValidateDraft(validLabDraft(), testNow)

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("empty draft reports missing patient, type and past datetime", func(t *testing.T) {
		result := ValidateDraft(&requests.BookingDraft{}, testNow)

		assert.False(t, result.Valid)
		codes := issueCodes(result.Errors)
		assert.Contains(t, codes, constvars.ValidationCodeMissingPatient)
		assert.Contains(t, codes, constvars.ValidationCodeMissingType)
		assert.Contains(t, codes, constvars.ValidationCodePastDateTime)
	})

	t.Run("unknown type reports MissingType", func(t *testing.T) {
		draft := validLabDraft()
		draft.AppointmentType = "cirurgia"

		result := ValidateDraft(draft, testNow)

		assert.False(t, result.Valid)
		assert.Contains(t, issueCodes(result.Errors), constvars.ValidationCodeMissingType)
	})

	t.Run("scheduled in the past reports PastDateTime", func(t *testing.T) {
		draft := validLabDraft()
		draft.ScheduledAt = testNow.Add(-time.Minute)

		result := ValidateDraft(draft, testNow)

		assert.False(t, result.Valid)
		assert.Contains(t, issueCodes(result.Errors), constvars.ValidationCodePastDateTime)
	})

	t.Run("consultation without specialty reports MissingSpecialty", func(t *testing.T) {
		draft := validLabDraft()
		draft.AppointmentType = constvars.AppointmentTypeConsultation
		draft.SelectedExams = nil

		result := ValidateDraft(draft, testNow)

		assert.False(t, result.Valid)
		codes := issueCodes(result.Errors)
		assert.Contains(t, codes, constvars.ValidationCodeMissingSpecialty)
		assert.NotContains(t, codes, constvars.ValidationCodeNoExamsSelected,
			"specialty types must not demand exams")
	})

	t.Run("lab exam without exams reports NoExamsSelected", func(t *testing.T) {
		draft := validLabDraft()
		draft.SelectedExams = nil

		result := ValidateDraft(draft, testNow)

		assert.False(t, result.Valid)
		codes := issueCodes(result.Errors)
		assert.Contains(t, codes, constvars.ValidationCodeNoExamsSelected)
		assert.NotContains(t, codes, constvars.ValidationCodeMissingSpecialty,
			"exam types must not demand a specialty")
	})

	t.Run("repeated validation of an unchanged draft is stable", func(t *testing.T) {
		draft := validLabDraft()
		draft.SelectedExams = nil
		draft.ScheduledAt = testNow.Add(-time.Hour)

		first := ValidateDraft(draft, testNow)
		second := ValidateDraft(draft, testNow)

		assert.Equal(t, first, second)
	})

	t.Run("exactly one of specialty or exams is demanded per type", func(t *testing.T) {
		for appointmentType := range map[string]struct{}{
			constvars.AppointmentTypeConsultation:        {},
			constvars.AppointmentTypeNursingConsultation: {},
			constvars.AppointmentTypeLabExam:             {},
			constvars.AppointmentTypeImagingExam:         {},
			constvars.AppointmentTypeProcedure:           {},
			constvars.AppointmentTypeVaccine:             {},
		} {
			draft := &requests.BookingDraft{
				PatientID:       1,
				AppointmentType: appointmentType,
				ScheduledAt:     testNow.Add(time.Hour * 24),
				Priority:        constvars.PriorityNormal,
			}
			result := ValidateDraft(draft, testNow)

			codes := issueCodes(result.Errors)
			missingSpecialty := 0
			missingExams := 0
			for _, code := range codes {
				switch code {
				case constvars.ValidationCodeMissingSpecialty:
					missingSpecialty++
				case constvars.ValidationCodeNoExamsSelected:
					missingExams++
				}
			}
			assert.Equal(t, 1, missingSpecialty+missingExams,
				"type %s must demand exactly one of specialty/exams", appointmentType)
		}
	})
}

func TestValidateDraftBusinessHours(t *testing.T) {
	t.Run("weekday inside business hours has no warning", func(t *testing.T) {
		result := ValidateDraft(validLabDraft(), testNow)

		assert.Empty(t, result.Warnings)
	})

	t.Run("weekday evening warns but stays valid", func(t *testing.T) {
		draft := validLabDraft()
		draft.ScheduledAt = time.Date(2025, 3, 12, 19, 0, 0, 0, time.Local)

		result := ValidateDraft(draft, testNow)

		assert.True(t, result.Valid, "business hours warning must not block submission")
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("saturday warns even at mid-morning", func(t *testing.T) {
		draft := validLabDraft()
		draft.ScheduledAt = time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

		result := ValidateDraft(draft, testNow)

		assert.True(t, result.Valid)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("boundary 07:00 is inside, 17:00 is outside", func(t *testing.T) {
		draft := validLabDraft()

		draft.ScheduledAt = time.Date(2025, 3, 12, 7, 0, 0, 0, time.Local)
		assert.Empty(t, ValidateDraft(draft, testNow).Warnings)

		draft.ScheduledAt = time.Date(2025, 3, 12, 17, 0, 0, 0, time.Local)
		assert.Len(t, ValidateDraft(draft, testNow).Warnings, 1)
	})
}

func TestValidateDraftSuggestions(t *testing.T) {
	t.Run("slot under one hour away suggests fit-in", func(t *testing.T) {
		draft := validLabDraft()
		draft.ScheduledAt = testNow.Add(30 * time.Minute)

		result := ValidateDraft(draft, testNow)

		assert.True(t, result.Valid)
		assert.Len(t, result.Suggestions, 1)
		assert.Contains(t, result.Suggestions[0], "encaixe")
	})

	t.Run("slot beyond 30 days suggests earlier triage", func(t *testing.T) {
		draft := validLabDraft()
		draft.ScheduledAt = testNow.Add(31 * 24 * time.Hour)

		result := ValidateDraft(draft, testNow)

		assert.True(t, result.Valid)
		assert.Len(t, result.Suggestions, 1)
	})
}
