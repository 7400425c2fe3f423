package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4001
	CodeInvalidTargetNumber = 4002
	CodeInvalidRefID        = 4003
	CodeInvalidCallback     = 4010
	CodeProductNotFound     = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - Server and upstream errors
	CodeInternalServer       = 5000
	CodeGatewayUnavailable   = 5020
	CodeFulfillmentFailed    = 5021
	CodeMisconfiguredGateway = 5030
)

// Machine-checkable reason strings carried in API error responses
const (
	ReasonInvalidRequest      = "invalid_request"
	ReasonInvalidTargetNumber = "invalid_target_number"
	ReasonProductNotFound     = "product_not_found"
	ReasonTransactionNotFound = "transaction_not_found"
	ReasonInvalidCallback     = "invalid_callback"
	ReasonGatewayUnavailable  = "gateway_unavailable"
	ReasonInternalServer      = "internal_server_error"
)

// Base error types
var (
	// ErrProductNotFound is returned when the requested product is absent or inactive
	ErrProductNotFound = errors.New("product not found or inactive")

	// ErrInvalidTargetNumber is returned when the target account fails the
	// category-specific validation rule
	ErrInvalidTargetNumber = errors.New("invalid target number")

	// ErrInvalidRefID is returned when a correlation reference is empty or malformed
	ErrInvalidRefID = errors.New("invalid transaction reference")

	// ErrTransactionNotFound is returned when no transaction matches the reference
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPaymentReferenceSet is returned on an attempt to overwrite the payment reference
	ErrPaymentReferenceSet = errors.New("payment reference already set")

	// ErrGatewayUnavailable is returned when the payment gateway call fails and
	// no transaction has been persisted
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrFulfillmentFailed is returned when the fulfillment provider rejects or
	// fails a delivery
	ErrFulfillmentFailed = errors.New("fulfillment failed")

	// ErrInvalidCallback is returned when an inbound webhook fails signature verification
	ErrInvalidCallback = errors.New("invalid callback signature")

	// ErrMisconfiguredGateway is returned when a provider shared secret is missing;
	// adapters fail fast instead of sending unsigned requests
	ErrMisconfiguredGateway = errors.New("gateway credentials not configured")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrInvalidTargetNumber):
		return CodeInvalidTargetNumber
	case errors.Is(err, ErrInvalidRefID):
		return CodeInvalidRefID
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrInvalidCallback):
		return CodeInvalidCallback
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrFulfillmentFailed):
		return CodeFulfillmentFailed
	case errors.Is(err, ErrMisconfiguredGateway):
		return CodeMisconfiguredGateway
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// Reason returns the machine-checkable reason string for known errors
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return ReasonProductNotFound
	case errors.Is(err, ErrInvalidTargetNumber):
		return ReasonInvalidTargetNumber
	case errors.Is(err, ErrTransactionNotFound):
		return ReasonTransactionNotFound
	case errors.Is(err, ErrInvalidCallback):
		return ReasonInvalidCallback
	case errors.Is(err, ErrGatewayUnavailable), errors.Is(err, ErrMisconfiguredGateway):
		return ReasonGatewayUnavailable
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidRefID):
		return ReasonInvalidRequest
	default:
		return ReasonInternalServer
	}
}

// GatewayError carries the upstream message from a failed payment gateway call
type GatewayError struct {
	Operation string // create or status
	RefID     string
	Message   string // Upstream message, preserved verbatim
	Err       error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed for %s: %s", e.Operation, e.RefID, e.Message)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrGatewayUnavailable
}

// Is checks if the target error is an ErrGatewayUnavailable
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"operation":  e.Operation,
		"ref_id":     e.RefID,
		"upstream":   e.Message,
		"error_code": CodeGatewayUnavailable,
	}
}

// NewGatewayError creates a gateway error preserving the upstream message
func NewGatewayError(operation, refID, message string, err error) error {
	return &GatewayError{Operation: operation, RefID: refID, Message: message, Err: err}
}

// FulfillmentError carries the upstream message from a failed delivery
type FulfillmentError struct {
	RefID       string
	ProductCode string
	Message     string
	Err         error
}

// Error implements the error interface
func (e *FulfillmentError) Error() string {
	return fmt.Sprintf("fulfillment failed for %s (product %s): %s", e.RefID, e.ProductCode, e.Message)
}

// Unwrap returns the underlying error
func (e *FulfillmentError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFulfillmentFailed
}

// Is checks if the target error is an ErrFulfillmentFailed
func (e *FulfillmentError) Is(target error) bool {
	return target == ErrFulfillmentFailed
}

// LogFields returns a map of fields for structured logging
func (e *FulfillmentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "fulfillment_error",
		"ref_id":       e.RefID,
		"product_code": e.ProductCode,
		"upstream":     e.Message,
		"error_code":   CodeFulfillmentFailed,
	}
}

// NewFulfillmentError creates a fulfillment error preserving the upstream message
func NewFulfillmentError(refID, productCode, message string, err error) error {
	return &FulfillmentError{RefID: refID, ProductCode: productCode, Message: message, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrTransactionNotFound)
}

// IsGatewayError checks if the error originates from the payment gateway
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}

// IsValidationError checks if the error is caller-correctable
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTargetNumber) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidRefID)
}
