// Package common contains shared constants and sentinel errors used across
// sentimeter components.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the credential in the Authorization header.
	BearerScheme = "Bearer"

	ContentTypeJSON = "application/json"
)
