package gateway

import "fmt"

// Fallback messages, depending on whether the failure came from the API at
// all.
const (
	genericErrorMessage    = "An error occurred"
	unexpectedErrorMessage = "An unexpected error occurred"
)

// APIError is the uniform failure shape for transport and HTTP errors.
// StatusCode is zero for transport failures.
type APIError struct {
	StatusCode int
	Detail     string
	Message    string
	err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	case e.err != nil:
		return e.err.Error()
	default:
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
}

func (e *APIError) Unwrap() error { return e.err }

// ErrorMessage flattens any error into a single human-readable message,
// preferring a server-supplied detail, then a server message, then a
// generic fallback. Total function: it never panics, including on nil.
func ErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return genericErrorMessage
	}
	return unexpectedErrorMessage
}
