package providers

import (
	"errors"
	"fmt"
)

// UpstreamError captures a non-200 response from the upstream API. StatusCode
// and Message are surfaced to the original requester unchanged.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
