// Package types holds the wire envelopes every API response is wrapped in.
package types

// SuccessEnvelope wraps a successful payload, e.g. an analysis Result.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape; Code matches the pkg/errors
// taxonomy (UNKNOWN_ACTION, MISSING_TENANT, ...).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
