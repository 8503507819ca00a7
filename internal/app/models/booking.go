package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingAudit is the local record of a successful submission. It carries the
// draft fields needed to rebuild a DocumentRequest when the receptionist asks
// for a reprint.
type BookingAudit struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AppointmentID   int64              `bson:"appointment_id"`
	PatientID       int64              `bson:"patient_id"`
	AppointmentType string             `bson:"appointment_type"`
	Specialty       string             `bson:"specialty,omitempty"`
	Exams           []string           `bson:"exams,omitempty"`
	Priority        string             `bson:"priority"`
	Notes           string             `bson:"notes,omitempty"`
	Unit            string             `bson:"unit,omitempty"`
	ScheduledAt     time.Time          `bson:"scheduled_at"`
	DocumentKind    string             `bson:"document_kind"`
	CreatedAt       time.Time          `bson:"created_at"`
}
