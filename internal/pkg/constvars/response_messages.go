package constvars

const (
	CreateBookingSuccessMessage  = "Agendamento criado com sucesso"
	ValidateDraftSuccessMessage  = "Validação concluída"
	GetAppointmentSuccessMessage = "Agendamentos recuperados com sucesso"
	UpdateStatusSuccessMessage   = "Status do agendamento atualizado"
)

// Soft notices emitted through the notifier; they never block the booking.
const (
	NoticeBookingCreated        = "Agendamento confirmado"
	NoticeDocumentLocalFallback = "Documento oficial indisponível, uma prévia foi gerada para impressão manual"
	NoticeDocumentUnresolved    = "Não foi possível gerar o documento do agendamento, imprima manualmente na recepção"
	NoticePrintBlocked          = "Impressão bloqueada pelo navegador, use a reimpressão após liberar pop-ups"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "é obrigatório",
	"oneof":    "deve ser um dos valores: %s",
	"gt":       "deve ser maior que %s",
	"min":      "deve ter tamanho mínimo %s",
	"max":      "deve ter tamanho máximo %s",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"gt":    true,
	"min":   true,
	"max":   true,
}
