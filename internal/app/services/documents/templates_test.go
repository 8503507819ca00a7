package documents

import (
	"testing"
	"time"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestRenderSadtPreviewHTML(t *testing.T) {
	scheduledAt := time.Date(2025, 3, 13, 9, 30, 0, 0, time.Local)

	t.Run("catalog prices and total for a two-exam request", func(t *testing.T) {
		request := &models.DocumentRequest{
			AppointmentID:   42,
			PatientID:       7,
			AppointmentType: constvars.AppointmentTypeLabExam,
			Procedures: BuildProcedures(constvars.AppointmentTypeLabExam, "",
				[]string{"Hemograma Completo", "Glicemia de Jejum"}),
			ScheduledAt: scheduledAt,
		}

		html, err := RenderSadtPreviewHTML(request)

		assert.NoError(t, err)
		assert.Contains(t, html, "Hemograma Completo")
		assert.Contains(t, html, "R$ 25.00")
		assert.Contains(t, html, "Glicemia de Jejum")
		assert.Contains(t, html, "R$ 15.00")
		assert.Contains(t, html, "R$ 40.00", "total must be the sum of the line items")
		assert.Contains(t, html, "PRÉVIA - DOCUMENTO NÃO OFICIAL")
		assert.Contains(t, html, "13/03/2025 09:30")
	})

	t.Run("unknown exam gets the placeholder line", func(t *testing.T) {
		request := &models.DocumentRequest{
			AppointmentID:   42,
			PatientID:       7,
			AppointmentType: constvars.AppointmentTypeLabExam,
			Procedures: BuildProcedures(constvars.AppointmentTypeLabExam, "",
				[]string{"Dosagem de Vitamina K"}),
			ScheduledAt: scheduledAt,
		}

		html, err := RenderSadtPreviewHTML(request)

		assert.NoError(t, err)
		assert.Contains(t, html, "Dosagem de Vitamina K")
		assert.Contains(t, html, "0000000000")
		assert.Contains(t, html, "R$ 10.00")
	})

	t.Run("urgent flag renders the urgency banner", func(t *testing.T) {
		request := &models.DocumentRequest{
			AppointmentID:   42,
			PatientID:       7,
			AppointmentType: constvars.AppointmentTypeImagingExam,
			Procedures: BuildProcedures(constvars.AppointmentTypeImagingExam, "",
				[]string{"Raio-X de Tórax"}),
			Urgent:      true,
			ScheduledAt: scheduledAt,
		}

		html, err := RenderSadtPreviewHTML(request)

		assert.NoError(t, err)
		assert.Contains(t, html, "ATENDIMENTO URGENTE")
		assert.Contains(t, html, "R$ 45.00")
	})
}

func TestRenderReceiptHTML(t *testing.T) {
	request := &models.DocumentRequest{
		AppointmentID:   42,
		PatientID:       7,
		AppointmentType: constvars.AppointmentTypeConsultation,
		Specialty:       "cardiologia",
		Unit:            "UBS Central",
		ScheduledAt:     time.Date(2025, 3, 13, 9, 30, 0, 0, time.Local),
	}

	html, err := RenderReceiptHTML(request)

	assert.NoError(t, err)
	assert.Contains(t, html, "Comprovante de Agendamento")
	assert.Contains(t, html, "Consulta Médica")
	assert.Contains(t, html, "cardiologia")
	assert.Contains(t, html, "UBS Central")
	assert.Contains(t, html, "13/03/2025 09:30")
}

func TestBuildProcedures(t *testing.T) {
	t.Run("exam order is preserved", func(t *testing.T) {
		procedures := BuildProcedures(constvars.AppointmentTypeLabExam, "",
			[]string{"Glicemia de Jejum", "Hemograma Completo"})

		assert.Len(t, procedures, 2)
		assert.Equal(t, "Glicemia de Jejum", procedures[0].Name)
		assert.Equal(t, "Hemograma Completo", procedures[1].Name)
		assert.Equal(t, 15.00, procedures[0].UnitValue)
		assert.Equal(t, 25.00, procedures[1].UnitValue)
	})

	t.Run("vaccine type yields a single application line", func(t *testing.T) {
		procedures := BuildProcedures(constvars.AppointmentTypeVaccine, "sala de vacinas", nil)

		assert.Len(t, procedures, 1)
		assert.Equal(t, "Aplicação de vacina", procedures[0].Name)
	})

	t.Run("unknown type yields nothing", func(t *testing.T) {
		assert.Nil(t, BuildProcedures("desconhecido", "", []string{"Hemograma Completo"}))
	})
}
