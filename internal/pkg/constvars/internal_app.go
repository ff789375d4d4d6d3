package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_PROVIDER_KEY             ContextKey = "provider"
)

const (
	REQUEST_ID_PREFIX = "AESTH_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	JWTClaimSessionID  = "session_id"
	JWTClaimProviderID = "provider_id"
	JWTClaimExpiry     = "exp"
)
