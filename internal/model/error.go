package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidForm         = "INVALID_FORM"
	ErrCodeUnknownField        = "UNKNOWN_FIELD"
	ErrCodeInvalidField        = "INVALID_FIELD"
	ErrCodeSelectionEmpty      = "SELECTION_EMPTY"
	ErrCodeItemNotFound        = "ITEM_NOT_FOUND"
	ErrCodeReservationNotFound = "RESERVATION_NOT_FOUND"
	ErrCodeInvalidSlide        = "INVALID_SLIDE"
	ErrCodeUnknownPage         = "UNKNOWN_PAGE"
	ErrCodeIdempotencyConflict = "IDEMPOTENCY_CONFLICT"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidForm         = NewDomainError(ErrCodeInvalidForm, "One or more form fields are invalid")
	ErrUnknownField        = NewDomainError(ErrCodeUnknownField, "Unknown form field")
	ErrInvalidField        = NewDomainError(ErrCodeInvalidField, "Form field value could not be parsed")
	ErrSelectionEmpty      = NewDomainError(ErrCodeSelectionEmpty, "At least one item must be selected")
	ErrItemNotFound        = NewDomainError(ErrCodeItemNotFound, "One or more catalog items not found")
	ErrReservationNotFound = NewDomainError(ErrCodeReservationNotFound, "Reservation not found")
	ErrInvalidSlide        = NewDomainError(ErrCodeInvalidSlide, "Slide index is out of range")
	ErrUnknownPage         = NewDomainError(ErrCodeUnknownPage, "No hero carousel for this page")
	ErrIdempotencyConflict = NewDomainError(ErrCodeIdempotencyConflict, "Idempotency key was already used for a different submission")
)
