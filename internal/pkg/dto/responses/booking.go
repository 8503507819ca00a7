package responses

import "time"

type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid       bool              `json:"valid"`
	Errors      []ValidationIssue `json:"errors"`
	Warnings    []string          `json:"warnings"`
	Suggestions []string          `json:"suggestions"`
}

// Agendamento mirrors the scheduling backend record; the service treats it as
// read-only after creation.
type Agendamento struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"pacienteId"`
	AppointmentType string    `json:"tipo"`
	Specialty       string    `json:"especialidade,omitempty"`
	Exams           []string  `json:"exames,omitempty"`
	ScheduledAt     time.Time `json:"dataHora"`
	Priority        string    `json:"prioridade"`
	Notes           string    `json:"observacoes,omitempty"`
	Unit            string    `json:"unidade,omitempty"`
	Status          string    `json:"status"`
}

// BookingDocument reports what the document chain produced for a submission.
// Booking success is never undone by anything reported here.
type BookingDocument struct {
	Kind      string `json:"kind"`
	State     string `json:"state"`
	FileName  string `json:"fileName,omitempty"`
	PDFBase64 string `json:"pdfBase64,omitempty"`
	HTML      string `json:"html,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

type CreateBooking struct {
	Appointment *Agendamento     `json:"appointment"`
	Document    *BookingDocument `json:"document"`
}
