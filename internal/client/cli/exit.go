package cli

import "errors"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ErrRetryDeclined is wrapped by the Exit returned when the operator does
// not want to retry a failed classification.
var ErrRetryDeclined = errors.New("operator declined to retry")

// Exit is a terminal outcome of the session protocol: the program should
// show Message and stop with Code.
type Exit struct {
	Code    int
	Message string
	Err     error
}

func (e *Exit) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Exit) Unwrap() error {
	return e.Err
}

// Graceful is an operator-initiated stop with a neutral status.
func Graceful(msg string, err error) *Exit {
	return &Exit{Code: ExitOK, Message: msg, Err: err}
}

// Fatal stops the program with a failure status.
func Fatal(msg string, err error) *Exit {
	return &Exit{Code: ExitFailure, Message: msg, Err: err}
}
