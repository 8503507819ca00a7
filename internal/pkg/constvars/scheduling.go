package constvars

// Appointment types accepted by the municipal scheduling backend.
const (
	AppointmentTypeConsultation        = "consulta"
	AppointmentTypeNursingConsultation = "consulta_enfermagem"
	AppointmentTypeLabExam             = "exame_laboratorial"
	AppointmentTypeImagingExam         = "exame_imagem"
	AppointmentTypeProcedure           = "procedimento"
	AppointmentTypeVaccine             = "vacina"
)

const (
	PriorityNormal    = "normal"
	PriorityUrgent    = "urgente"
	PriorityEmergency = "emergencia"
)

const (
	AppointmentStatusScheduled  = "agendado"
	AppointmentStatusInProgress = "em_atendimento"
	AppointmentStatusFinished   = "finalizado"
	AppointmentStatusCancelled  = "cancelado"
)

// Reception desk business hours, local time.
const (
	BusinessHourStart = 7
	BusinessHourEnd   = 17
)

const (
	ValidationCodeMissingPatient   = "MissingPatient"
	ValidationCodeMissingType      = "MissingType"
	ValidationCodePastDateTime     = "PastDateTime"
	ValidationCodeMissingSpecialty = "MissingSpecialty"
	ValidationCodeNoExamsSelected  = "NoExamsSelected"
)

const (
	AppointmentListCacheKeyPrefix = "agenda:appointments:"
	AppointmentListCacheKeySet    = "agenda:appointments:keys"
)
