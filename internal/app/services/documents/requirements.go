package documents

import "agenda-service/internal/pkg/constvars"

// TypeRequirements maps an appointment type to the shape of its draft: a
// specialty-based type never carries exams and vice versa.
type TypeRequirements struct {
	RequiresSpecialty bool
	RequiresExams     bool
}

var appointmentTypeRequirements = map[string]TypeRequirements{
	constvars.AppointmentTypeConsultation:        {RequiresSpecialty: true},
	constvars.AppointmentTypeNursingConsultation: {RequiresSpecialty: true},
	constvars.AppointmentTypeProcedure:           {RequiresSpecialty: true},
	constvars.AppointmentTypeVaccine:             {RequiresSpecialty: true},
	constvars.AppointmentTypeLabExam:             {RequiresExams: true},
	constvars.AppointmentTypeImagingExam:         {RequiresExams: true},
}

func RequirementsFor(appointmentType string) (TypeRequirements, bool) {
	requirements, ok := appointmentTypeRequirements[appointmentType]
	return requirements, ok
}

// RequiredDocumentFor decides which printable artifact an appointment type
// needs. Decided purely from the type, nothing else.
func RequiredDocumentFor(appointmentType string) string {
	switch appointmentType {
	case constvars.AppointmentTypeLabExam,
		constvars.AppointmentTypeImagingExam,
		constvars.AppointmentTypeProcedure:
		return constvars.RequiredDocumentSadt
	case constvars.AppointmentTypeConsultation,
		constvars.AppointmentTypeNursingConsultation,
		constvars.AppointmentTypeVaccine:
		return constvars.RequiredDocumentReceipt
	default:
		return constvars.RequiredDocumentNone
	}
}
