package models

import "time"

// ProcedureItem is one billable line of a SADT request.
type ProcedureItem struct {
	Code      string  `json:"codigo"`
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitValue float64 `json:"valorUnitario"`
}

// DocumentRequest is derived from the created appointment plus the draft at
// submission time. It is never persisted as-is; the audit record keeps enough
// to rebuild it for reprints.
type DocumentRequest struct {
	AppointmentID   int64
	PatientID       int64
	AppointmentType string
	Specialty       string
	Procedures      []ProcedureItem
	Urgent          bool
	Notes           string
	Unit            string
	ScheduledAt     time.Time
}

// ResolvedDocument is the outcome of the resolution chain. Exactly one of
// PDFBase64 and HTML is populated, according to Kind.
type ResolvedDocument struct {
	Kind      string
	FileName  string
	PDFBase64 string
	HTML      string
}

// PrintJob is a rendered, ready-to-deliver printable artifact.
type PrintJob struct {
	ContentType string
	FileName    string
	Body        []byte
	AutoPrint   bool
}
