package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingSessionDataKey      = "session_data"
	LoggingQueryParamsKey      = "query_params"
	LoggingResponseKey         = "response"
	LoggingRequestKey          = "request"
	LoggingResponseLengthKey   = "response_length"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentTypeKey  = "appointment_type"
	LoggingDocumentKindKey     = "document_kind"
	LoggingDocumentTierKey     = "document_tier"
	LoggingCacheKeyKey         = "cache_key"
	LoggingUpstreamUrlKey      = "upstream_url"
	LoggingAppointmentCountKey = "appointment_count"
)
