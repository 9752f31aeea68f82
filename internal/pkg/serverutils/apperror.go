package serverutils

import "net/http"

// FieldError is one violated rule, addressed by its json field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error taxonomy surfaced to clients. Anything else that
// escapes a handler is collapsed to a generic 500 by the error middleware.
type AppError struct {
	Status  int
	Message string
	Details []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

func NewUnauthorized() *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewValidationFailed(details []FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "Validation failed", Details: details}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewConflict maps duplicate-resource conditions. Kept at 400 to match the
// public contract (duplicate email is a 400, not a 409).
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}
