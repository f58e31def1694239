// Package prompt implements the console interactions the client needs:
// free text, hidden text, yes/no confirmation and a single choice.
//
// Every interaction either yields a value or fails. Two failures are
// special and are reported as sentinels so callers can tell them apart from
// everything else: ErrCanceled (the operator backed out with EOF or ESC) and
// ErrInterrupted (the context was cancelled, normally by Ctrl-C).
package prompt

import (
	"context"
	"errors"
)

var (
	ErrCanceled    = errors.New("operation canceled by operator")
	ErrInterrupted = errors.New("operation interrupted")
)

// IsCancellation reports whether err is ErrCanceled or ErrInterrupted.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCanceled) || errors.Is(err, ErrInterrupted)
}

// Prompter is the console surface used by the session protocol.
type Prompter interface {
	Text(ctx context.Context, message string) (string, error)
	Secret(ctx context.Context, message string) (string, error)
	Confirm(ctx context.Context, message, help string, def bool) (bool, error)
	// Select returns the index of the chosen option.
	Select(ctx context.Context, message string, options []string) (int, error)
}
