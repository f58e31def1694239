package models

import "strings"

// Credential is an opaque bearer token for the classification endpoint.
type Credential string

// IsBlank reports whether the credential has no usable content.
func (c Credential) IsBlank() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Redacted returns a form safe for logs: the last four characters only.
func (c Credential) Redacted() string {
	s := string(c)
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

// ClassificationRequest is one piece of operator text bound to a credential.
type ClassificationRequest struct {
	Text       string
	Credential Credential
}

// RawPayload is the uninterpreted body of a successful classification.
type RawPayload []byte

// SessionDecision is the operator's answer after a failed classification.
type SessionDecision int

const (
	DecisionStop SessionDecision = iota
	DecisionRetry
)

// DecisionFrom maps a yes/no confirmation to a decision.
func DecisionFrom(retry bool) SessionDecision {
	if retry {
		return DecisionRetry
	}
	return DecisionStop
}
