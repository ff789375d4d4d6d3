package exceptions

import (
	"aesthetics-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingRequiredField = func(field string) *CustomError {
		return BuildNewCustomError(nil, ErrValidation, constvars.StatusBadRequest, fmt.Sprintf("%s is required", field), fmt.Sprintf(constvars.ErrDevMissingRequiredField, field))
	}
	ErrInvalidFieldValue = func(field, reason string) *CustomError {
		return BuildNewCustomError(nil, ErrValidation, constvars.StatusBadRequest, fmt.Sprintf("%s %s", field, reason), fmt.Sprintf(constvars.ErrDevInvalidFieldValue, field, reason))
	}
	ErrUnknownStep = func(step string) *CustomError {
		return BuildNewCustomError(nil, ErrValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownStep, step))
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Credential
	ErrInvalidAccessCode = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, ErrInvalidCredential, constvars.StatusUnauthorized, constvars.ErrClientInvalidAccessCode, devMessage)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrInvalidSession = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}

	// Upstream
	ErrUpstream = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, devMessage)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, constvars.ErrDevSendHTTPRequest)
	}
	ErrDirectoryDecodeResponse = func(err error, table string) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, fmt.Sprintf(constvars.ErrDevDirectoryDecodeResponse, table))
	}
	ErrInferenceDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, constvars.ErrDevInferenceDecodeResponse)
	}
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusBadGateway, constvars.ErrClientTryAgain, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrUpstreamUnavailable, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Configuration
	ErrMisconfigured = func(devMessage string) *CustomError {
		return BuildNewCustomError(nil, ErrServiceMisconfigured, constvars.StatusServiceUnavailable, constvars.ErrClientServiceMisconfigured, devMessage)
	}

	// Lookup
	ErrRecordNotFound = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, ErrNotFound, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, devMessage)
	}

	// Quota
	ErrQuotaExceeded = func(resource string) *CustomError {
		return BuildNewCustomError(nil, ErrRateLimited, constvars.StatusTooManyRequests, constvars.ErrClientQuotaExceeded, fmt.Sprintf(constvars.ErrDevQuotaExceeded, resource))
	}

	// Redis
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, ErrInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
