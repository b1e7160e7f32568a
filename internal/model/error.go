package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeCartNotFound     = "CART_NOT_FOUND"
	ErrCodeCartEmpty        = "CART_EMPTY"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeDuplicateOrderID = "DUPLICATE_ORDER_ID"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
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
	ErrCartNotFound      = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	ErrCartEmpty         = NewDomainError(ErrCodeCartEmpty, "Cart contains no items")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrDuplicateOrderID  = NewDomainError(ErrCodeDuplicateOrderID, "Order identifier already exists")
	ErrMissingBuyerField = NewDomainError(ErrCodeMissingField, "Buyer name, address and phone are required")
)
