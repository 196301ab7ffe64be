package apierror

import "fmt"

// APIError is an error that already knows how it should be presented to
// an HTTP client. Anything else surfacing at the handler boundary is
// collapsed into a generic 500.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation builds a 400 error carrying the offending field in Details.
func Validation(message string, field string) *APIError {
	return &APIError{Code: "VALIDATION_ERROR", Message: message, Details: field, HTTPStatus: 400}
}
