package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
	"url":         "must be a valid URL",
	"uuid":        "must be a valid UUID",
	"datauri":     "must be a data URI",
	"image_uri":   "must be a base64 encoded image data URI",
	"patient_tag": "must be one of the demo patients",
	"area_tag":    "must be a known facial area",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidAccessCode             = "invalid access code"
	ErrClientTryAgain                      = "the service is temporarily unavailable, please try again"
	ErrClientServiceMisconfigured          = "this feature is not configured, please contact support"
	ErrClientRecordNotFound                = "record not found"
	ErrClientQuotaExceeded                 = "too many scans for now, please try again later"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevValidationFailed         = "validation failed"
	ErrDevMissingRequiredField     = "missing required field %s"
	ErrDevInvalidFieldValue        = "field %s %s"
	ErrDevUnknownStep              = "unknown flow step %s"
	ErrDevImageValidationFailed    = "image validation failed"

	// Directory messages
	ErrDevDirectoryNoMatch          = "no %s record matches the given filter"
	ErrDevDirectoryAmbiguousMatch   = "more than one %s record matches the given filter"
	ErrDevDirectoryUpstreamStatus   = "directory responded with status %d for table %s"
	ErrDevDirectoryDecodeResponse   = "failed to decode directory response for table %s"
	ErrDevDirectoryMissingAPIKey    = "directory API key is not configured"
	ErrDevDirectoryMissingBase      = "directory base ID is not configured"
	ErrDevDirectoryRecordNotFound   = "directory record %s not found in table %s"
	ErrDevPatientNotInProviderSet   = "patient %s is not in the patient set of provider %s"
	ErrDevDirectoryUnavailable      = "directory table %s could not be read"

	// Inference messages
	ErrDevInferenceMissingEndpoint = "inference endpoint is not configured"
	ErrDevInferenceUpstreamStatus  = "inference service responded with status %d"
	ErrDevInferenceDecodeResponse  = "failed to decode inference response"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
	ErrDevStorageUnavailable        = "object storage is not connected"

	// Redis messages
	ErrDevRedisSetData       = "failed to SET data into redis"
	ErrDevRedisGetData       = "failed to GET data from redis"
	ErrDevRedisDeleteData    = "failed to DELETE data from redis"
	ErrDevRedisIncrementData = "failed to INCR data in redis"

	ErrDevQuotaExceeded = "quota exceeded for %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
