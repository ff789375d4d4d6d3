package exceptions

import (
	"aesthetics-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Error kinds. Every CustomError built by this package unwraps to one of these
// so callers can branch with errors.Is without caring about status codes.
var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrServiceMisconfigured = errors.New("service misconfigured")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrRateLimited          = errors.New("rate limited")
	ErrInternal             = errors.New("internal error")
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Kind          error      `json:"-"`
	Cause         error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *CustomError) Unwrap() []error {
	unwrapped := make([]error, 0, 2)
	if e.Kind != nil {
		unwrapped = append(unwrapped, e.Kind)
	}
	if e.Cause != nil {
		unwrapped = append(unwrapped, e.Cause)
	}
	return unwrapped
}

// BuildNewCustomError wraps err with a client facing message and a developer
// message. If err is already a CustomError its locations are carried over so
// the log shows the whole path the error travelled.
func BuildNewCustomError(err error, kind error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kind,
		Cause:         err,
		Locations:     []Location{location},
	}

	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())

		var previous *CustomError
		if errors.As(err, &previous) {
			customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, previous.DevMessage)
			customErr.Locations = append(customErr.Locations, previous.Locations...)
		}
	}

	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
