package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInvalidAmount       = 4002
	CodeDuplicateUser       = 4009
	CodeUnauthorized        = 4010
	CodeInvalidCredentials  = 4011
	CodeQuoteUnavailable    = 4020
	CodeNotFound            = 4040
	CodeUserNotFound        = 4041
	CodeTransactionNotFound = 4042

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrValidation is returned when request input is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a swap amount is not strictly positive
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrUnauthorized is returned when a request carries no usable credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned when email/password do not match a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token cannot be verified
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrDuplicateUser is returned when trying to register an email that already exists
	ErrDuplicateUser = errors.New("email already registered")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the transaction doesn't exist or belongs to another user
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrQuoteUnavailable is returned when the price source cannot price a pair
	ErrQuoteUnavailable = errors.New("could not fetch price for this currency pair")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case errors.Is(err, ErrQuoteUnavailable):
		return CodeQuoteUnavailable
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code it is answered with
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err), IsConflictError(err), IsQuoteUnavailableError(err):
		return http.StatusBadRequest
	case IsAuthError(err):
		return http.StatusUnauthorized
	case IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the text a client may see for err.
// Anything unclassified collapses to "Server error"; the cause stays in the logs.
func ClientMessage(err error) string {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Reason
	case IsConflictError(err):
		return "Email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrInvalidToken):
		return "Invalid or expired token"
	case errors.Is(err, ErrUnauthorized):
		return "No token provided"
	case IsQuoteUnavailableError(err):
		return "Could not fetch price for this currency pair"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	default:
		return "Server error"
	}
}

// ValidationError carries the offending field and a message fit for the client
type ValidationError struct {
	Field  string
	Reason string
	Value  string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"value":      e.Value,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewInvalidAmountError creates the validation error for a non-positive amount
func NewInvalidAmountError(amount string) error {
	return &ValidationError{
		Field:  "amount",
		Reason: "Amount must be greater than 0",
		Value:  amount,
		Err:    ErrInvalidAmount,
	}
}

// QuoteError describes why a pair could not be priced
type QuoteError struct {
	From   string
	To     string
	Reason string
	Err    error
}

// Error implements the error interface for QuoteError
func (e *QuoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quote unavailable for %s/%s: %s: %v", e.From, e.To, e.Reason, e.Err)
	}
	return fmt.Sprintf("quote unavailable for %s/%s: %s", e.From, e.To, e.Reason)
}

// Unwrap returns the underlying error
func (e *QuoteError) Unwrap() error {
	return e.Err
}

// Is reports every QuoteError as an ErrQuoteUnavailable
func (e *QuoteError) Is(target error) bool {
	return target == ErrQuoteUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *QuoteError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":    "quote_error",
		"from_currency": e.From,
		"to_currency":   e.To,
		"reason":        e.Reason,
		"error_code":    CodeQuoteUnavailable,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewQuoteError creates a detailed quote error
func NewQuoteError(from, to, reason string, err error) error {
	return &QuoteError{From: from, To: to, Reason: reason, Err: err}
}

// TransactionError represents a failed operation on a stored transaction
type TransactionError struct {
	TransactionID uint64
	UserID        uint64
	Operation     string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed for transaction %d (user: %d): %v",
		e.Operation, e.TransactionID, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionNotFoundError creates a not-found error scoped to the requesting user
func NewTransactionNotFoundError(operation string, userID, transactionID uint64) error {
	return &TransactionError{
		TransactionID: transactionID,
		UserID:        userID,
		Operation:     operation,
		Err:           ErrTransactionNotFound,
	}
}

// IsValidationError checks if the error is caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidAmount)
}

// IsAuthError checks if the error should be answered with 401
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsQuoteUnavailableError checks if the error is a pricing failure
func IsQuoteUnavailableError(err error) bool {
	return errors.Is(err, ErrQuoteUnavailable)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
