package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingSessionIDKey   = "session_id"
	LoggingProviderIDKey  = "provider_id"
	LoggingPatientIDKey   = "patient_id"
	LoggingStepKey        = "step"
	LoggingRedirectKey    = "redirect_to"
	LoggingSlotKey        = "slot"
	LoggingStrategyKey    = "strategy"
	LoggingFormulaKey     = "formula"
	LoggingTableKey       = "table"
	LoggingCountKey       = "count"
	LoggingUpstreamStatus = "upstream_status"
	LoggingUpstreamBody   = "upstream_body"
	LoggingQueueNameKey   = "queue_name"
	LoggingBucketNameKey  = "bucket_name"
	LoggingObjectNameKey  = "object_name"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingErrorKey       = "error"
	LoggingResponseLength = "response_length"
	LoggingIsClientIDKey  = "is_client_request_id"
)
