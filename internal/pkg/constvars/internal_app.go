package constvars

const (
	CONTEXT_REQUEST_ID_KEY           = ContextKey("requestID")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = ContextKey("isClientRequestID")
	CONTEXT_SESSION_DATA_KEY         = ContextKey("sessionData")
	CONTEXT_SESSION_ID_KEY           = ContextKey("sessionID")
)

type ContextKey string

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderDisposition   = "Content-Disposition"
)

const (
	AuthBearerPrefix = "Bearer "
)
