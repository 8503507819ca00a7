package requests

import "time"

// BookingDraft is the in-progress booking form state posted by the reception
// UI. Field-level requirements vary by appointment type, so the domain
// validator owns them instead of struct tags.
type BookingDraft struct {
	PatientID       int64     `json:"pacienteId"`
	AppointmentType string    `json:"tipo"`
	Specialty       string    `json:"especialidade,omitempty"`
	SelectedExams   []string  `json:"exames,omitempty"`
	ScheduledAt     time.Time `json:"dataHora"`
	Priority        string    `json:"prioridade"`
	Notes           string    `json:"observacoes,omitempty"`
	Unit            string    `json:"unidade,omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=agendado em_atendimento finalizado cancelado"`
}

// AppointmentQuery filters the cached appointment listing.
type AppointmentQuery struct {
	PatientID int64
	Date      string
	Status    string
}
