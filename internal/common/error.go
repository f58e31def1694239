// Package common defines shared constants and sentinel errors used across
// sentimeter. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotImplemented marks a protocol branch that exists in the menu but
	// has no behaviour yet (the online feed).
	ErrNotImplemented = errors.New("not yet implemented")

	// ErrEmptyCredential is returned when a blank credential is offered.
	ErrEmptyCredential = errors.New("empty credential")
)
