package constvars

// Client-facing messages. Kept in Portuguese, matching the reception UI.
const (
	ErrClientSomethingWrongWithApplication = "Algo deu errado, tente novamente em instantes"
	ErrClientCannotProcessRequest          = "Não foi possível processar a solicitação"
	ErrClientNotAuthorized                 = "Você não tem autorização para acessar este recurso"
	ErrClientNotLoggedIn                   = "Sessão expirada, faça login novamente"
	ErrClientServerLongRespond             = "O servidor demorou para responder, tente novamente"
	ErrClientBookingFailed                 = "Não foi possível criar o agendamento, tente novamente"
	ErrClientBookingInvalid                = "Dados do agendamento inválidos"
	ErrClientAppointmentNotFound           = "Agendamento não encontrado"
	ErrClientDocumentNotRequired           = "Este agendamento não requer documento para impressão"
	ErrClientPrintBlocked                  = "Não foi possível abrir a janela de impressão. Libere as pop-ups do navegador e tente a reimpressão"
	ErrClientTooManyRequests               = "Muitas solicitações, aguarde alguns segundos"
)

// Dev-facing messages, logged and echoed outside production.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request ID not found in request context"
	ErrDevMissingSessionData        = "session data not found in request context"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevURLParamIDValidation      = "URL parameter %s is not a valid identifier"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeResponse            = "failed to decode %s response body"
	ErrDevUpstreamRejected          = "upstream %s rejected the request with status %d"
	ErrDevBookingDraftInvalid       = "booking draft failed domain validation"
	ErrDevBookingCreateFailed       = "scheduling backend failed to create the appointment"
	ErrDevAppointmentNotFound       = "appointment audit record not found"
	ErrDevDocumentNotRequired       = "appointment type requires no printable document"
	ErrDevDocumentDecodeFailed      = "failed to decode base64 PDF payload"
	ErrDevDocumentTemplateFailed    = "failed to execute document template"
	ErrDevPrintWindowBlocked        = "print window opener refused to open"
	ErrDevPrintWindowWrite          = "failed to write print job to window"
	ErrDevMongoDBInsertDocument     = "failed to insert document into MongoDB"
	ErrDevMongoDBFindDocument       = "failed to find document in MongoDB"
	ErrDevMongoDBIterateDocuments   = "failed to iterate MongoDB documents"
	ErrDevRedisSet                  = "failed to set Redis key"
	ErrDevRedisGet                  = "failed to get Redis key %s"
	ErrDevRedisDelete               = "failed to delete Redis key"
	ErrDevRedisAddToSet             = "failed to add member to Redis set"
	ErrDevRedisGetSetMembers        = "failed to read Redis set members"
	ErrDevMinioCreateObject         = "failed to store object in bucket %s"
	ErrDevMinioGetObject            = "failed to fetch object from bucket %s"
	ErrDevRabbitMQPublish           = "failed to publish message to queue %s"
	ErrDevRabbitMQChannel           = "failed to open RabbitMQ channel"
	ErrDevRabbitMQQueueDeclare      = "failed to declare RabbitMQ queue %s"
	ErrDevInvalidInput              = "invalid input"
)

const ResponseUnknown = "unknown"
