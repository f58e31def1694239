package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRejected  = errors.New("classification rejected by service")
	ErrTransport = errors.New("classification transport failure")
)

// RejectedError reports a response with a non-success status.
type RejectedError struct {
	Status int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("sentiment analysis failed with status %d %s", e.Status, http.StatusText(e.Status))
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// TransportError reports a failure to get a response at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sentiment analysis request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Reason gives a one-line, operator-facing explanation of a Classify error.
func Reason(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		switch rejected.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Sprintf("the service rejected the credential (status %d)", rejected.Status)
		case http.StatusServiceUnavailable:
			return fmt.Sprintf("the model is not available right now (status %d)", rejected.Status)
		default:
			return fmt.Sprintf("the service answered with status %d", rejected.Status)
		}
	}
	if errors.Is(err, ErrTransport) {
		return "the service could not be reached"
	}
	return err.Error()
}
