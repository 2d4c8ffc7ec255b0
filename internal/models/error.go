package models

import "strings"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrPizzaNotFound         = "PIZZA_NOT_FOUND"
	ErrIngredientNotFound    = "INGREDIENT_NOT_FOUND"
	ErrIngredientInvalidData = "INGREDIENT_INVALID_DATA"
	ErrIngredientInUse       = "INGREDIENT_IN_USE"
	ErrSessionUnavailable    = "SESSION_UNAVAILABLE"
	ErrInvalidCredentials    = "INVALID_CREDENTIALS"
	ErrUsernameAlreadyTaken  = "USERNAME_ALREADY_TAKEN"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// FieldError reports a single submitted field that failed a constraint check
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured report returned when a submitted form is rejected
type ValidationErrors []FieldError

// Add appends a field error
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed validation
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// For returns the messages recorded for field
func (v ValidationErrors) For(field string) []string {
	var messages []string
	for _, fe := range v {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
