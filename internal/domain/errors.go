package domain

import "errors"

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// DegradedResponseText is returned to conversational callers when a
// completion body could not be understood. A degraded but readable answer is
// preferable to a hard failure at that boundary.
const DegradedResponseText = "I encountered an issue with the AI service. Please try again or ask a different question."

// TransportError indicates the network call itself could not complete.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "completion transport failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError indicates the provider reported a structured error in its
// response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "completion API error: " + e.Message
}

// MalformedResponseError indicates the response payload did not match any
// known completion shape.
type MalformedResponseError struct {
	Message string
}

func (e *MalformedResponseError) Error() string {
	return "malformed completion response: " + e.Message
}

// ParseError indicates categorically missing parser input. Partial matches
// never raise it; they degrade to empty fields instead.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse failed: " + e.Reason
}
