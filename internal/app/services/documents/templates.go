package documents

import (
	"fmt"
	"html/template"
	"strings"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
)

var appointmentTypeLabels = map[string]string{
	constvars.AppointmentTypeConsultation:        "Consulta Médica",
	constvars.AppointmentTypeNursingConsultation: "Consulta de Enfermagem",
	constvars.AppointmentTypeLabExam:             "Exame Laboratorial",
	constvars.AppointmentTypeImagingExam:         "Exame de Imagem",
	constvars.AppointmentTypeProcedure:           "Procedimento",
	constvars.AppointmentTypeVaccine:             "Vacinação",
}

func appointmentTypeLabel(appointmentType string) string {
	if label, ok := appointmentTypeLabels[appointmentType]; ok {
		return label
	}
	return appointmentType
}

type sadtItemView struct {
	Code      string
	Name      string
	Quantity  int
	UnitValue string
}

type sadtPreviewView struct {
	AppointmentID int64
	PatientID     int64
	TypeLabel     string
	ScheduledAt   string
	Unit          string
	Urgent        bool
	Notes         string
	Items         []sadtItemView
	Total         string
}

type receiptView struct {
	AppointmentID int64
	PatientID     int64
	TypeLabel     string
	Specialty     string
	ScheduledAt   string
	Unit          string
	Notes         string
}

var sadtPreviewTemplate = template.Must(template.New("sadt_preview").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>SADT - Prévia</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 18px; margin-bottom: 0; }
.preview-banner { border: 2px dashed #b00; color: #b00; padding: 6px 10px; font-weight: bold; margin: 12px 0; }
.urgent { color: #b00; font-weight: bold; }
table { border-collapse: collapse; width: 100%; margin-top: 12px; }
th, td { border: 1px solid #999; padding: 6px 8px; font-size: 13px; text-align: left; }
tfoot td { font-weight: bold; }
.footer { margin-top: 32px; font-size: 12px; color: #555; }
</style>
</head>
<body>
<h1>Solicitação de Autorização de Diagnóstico e Terapia (SADT)</h1>
<div class="preview-banner">PRÉVIA - DOCUMENTO NÃO OFICIAL</div>
<p>Agendamento nº {{.AppointmentID}} &mdash; Paciente nº {{.PatientID}}</p>
<p>{{.TypeLabel}} em {{.ScheduledAt}}{{if .Unit}} &mdash; {{.Unit}}{{end}}</p>
{{if .Urgent}}<p class="urgent">ATENDIMENTO URGENTE</p>{{end}}
<table>
<thead><tr><th>Código</th><th>Procedimento</th><th>Qtd.</th><th>Valor unitário</th></tr></thead>
<tbody>
{{range .Items}}<tr><td>{{.Code}}</td><td>{{.Name}}</td><td>{{.Quantity}}</td><td>R$ {{.UnitValue}}</td></tr>
{{end}}</tbody>
<tfoot><tr><td colspan="3">Total estimado</td><td>R$ {{.Total}}</td></tr></tfoot>
</table>
{{if .Notes}}<p>Observações: {{.Notes}}</p>{{end}}
<div class="footer">
<p>Documento gerado localmente pela recepção; válido somente acompanhado de autorização oficial.</p>
<p>Assinatura do profissional solicitante: ______________________________</p>
</div>
</body>
</html>
`))

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Comprovante de Agendamento</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 18px; }
.card { border: 1px solid #999; padding: 16px; max-width: 480px; }
.row { margin: 6px 0; font-size: 14px; }
.footer { margin-top: 24px; font-size: 12px; color: #555; }
</style>
</head>
<body>
<h1>Comprovante de Agendamento</h1>
<div class="card">
<div class="row">Agendamento nº {{.AppointmentID}}</div>
<div class="row">Paciente nº {{.PatientID}}</div>
<div class="row">{{.TypeLabel}}{{if .Specialty}} &mdash; {{.Specialty}}{{end}}</div>
<div class="row">Data e hora: {{.ScheduledAt}}</div>
{{if .Unit}}<div class="row">Unidade: {{.Unit}}</div>{{end}}
{{if .Notes}}<div class="row">Observações: {{.Notes}}</div>{{end}}
</div>
<div class="footer">Chegue com 15 minutos de antecedência portando documento com foto e cartão SUS.</div>
</body>
</html>
`))

func formatPrice(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// RenderSadtPreviewHTML synthesizes the clearly-labeled non-official SADT
// preview. Pure: no I/O, safe to golden-test.
func RenderSadtPreviewHTML(request *models.DocumentRequest) (string, error) {
	view := sadtPreviewView{
		AppointmentID: request.AppointmentID,
		PatientID:     request.PatientID,
		TypeLabel:     appointmentTypeLabel(request.AppointmentType),
		ScheduledAt:   request.ScheduledAt.Format("02/01/2006 15:04"),
		Unit:          request.Unit,
		Urgent:        request.Urgent,
		Notes:         request.Notes,
	}

	var total float64
	for _, item := range request.Procedures {
		view.Items = append(view.Items, sadtItemView{
			Code:      item.Code,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitValue: formatPrice(item.UnitValue),
		})
		total += float64(item.Quantity) * item.UnitValue
	}
	view.Total = formatPrice(total)

	var builder strings.Builder
	if err := sadtPreviewTemplate.Execute(&builder, view); err != nil {
		return "", exceptions.ErrDocumentTemplate(err)
	}
	return builder.String(), nil
}

// RenderReceiptHTML synthesizes the appointment receipt handed to the patient
// for consultation-like types.
func RenderReceiptHTML(request *models.DocumentRequest) (string, error) {
	view := receiptView{
		AppointmentID: request.AppointmentID,
		PatientID:     request.PatientID,
		TypeLabel:     appointmentTypeLabel(request.AppointmentType),
		Specialty:     request.Specialty,
		ScheduledAt:   request.ScheduledAt.Format("02/01/2006 15:04"),
		Unit:          request.Unit,
		Notes:         request.Notes,
	}

	var builder strings.Builder
	if err := receiptTemplate.Execute(&builder, view); err != nil {
		return "", exceptions.ErrDocumentTemplate(err)
	}
	return builder.String(), nil
}
