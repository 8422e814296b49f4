package unitedpayment

import "fmt"

// ConfigurationError reports invalid client construction input.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unitedpayment: configuration: %s: %s", e.Field, e.Reason)
}

// ValidationError reports invalid caller input, detected before any
// network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unitedpayment: validation: %s: %s", e.Field, e.Reason)
}

// TransportError reports a network-layer failure: the HTTP call could not
// complete (timeout, connection refused, DNS failure).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unitedpayment: transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a failure signaled by the gateway itself: a non-2xx
// status, or a 2xx body carrying an errorCode/error field. The raw body
// is retained for callers that need the gateway's full answer.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("unitedpayment: api: status=%d code=%s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("unitedpayment: api: status=%d: %s", e.StatusCode, e.Message)
}
