package exceptions

import "fmt"

// UpstreamError describes a non-success answer from an external service. The
// body is kept for logs only and is never written to a client response.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Service, e.StatusCode, e.Body)
}
