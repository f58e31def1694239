// Package client talks to the remote sentiment-classification endpoint.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services layer;
// HTTPClient is the implementation that POSTs {"inputs": text} with a bearer
// credential to one fixed URL.
//
// Every Classify call is exactly one round trip. There is no retry and no
// backoff here: deciding whether to try again belongs to the operator.
//
// # Error Handling
//
// A non-2xx status becomes *RejectedError (matches ErrRejected); anything
// that prevents a response from being read becomes *TransportError (matches
// ErrTransport). Reason turns either into a short operator-facing message.
package client
