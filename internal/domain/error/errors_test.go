package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrQuoteUnavailable.Error() != "could not fetch price for this currency pair" {
		t.Errorf("ErrQuoteUnavailable has unexpected message: %s", ErrQuoteUnavailable.Error())
	}
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("email", "All fields are required"), 4000},
		{"InvalidAmount", NewInvalidAmountError("0"), 4002},
		{"DuplicateUser", ErrDuplicateUser, 4009},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"InvalidToken", ErrInvalidToken, 4010},
		{"InvalidCredentials", ErrInvalidCredentials, 4011},
		{"QuoteUnavailable", NewQuoteError("bitcoin", "usd", "pair missing", nil), 4020},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"TransactionNotFound", NewTransactionNotFoundError("get", 1, 2), 4042},
		{"DatabaseConnection", fmt.Errorf("%w: dial tcp", ErrDatabaseConnection), 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrDuplicateUser), 4009},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("status", "Status is required")

	expected := "validation failed for status: Status is required"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(err) = false, want true")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Reason != "Status is required" {
		t.Errorf("errors.As did not expose the reason: %v", err)
	}

	fields := vErr.LogFields()
	if fields["field"] != "status" || fields["error_code"] != CodeValidation {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestInvalidAmountError(t *testing.T) {
	err := NewInvalidAmountError("-1")

	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("errors.Is(err, ErrInvalidAmount) = false, want true")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestQuoteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewQuoteError("bitcoin", "ethereum", "request failed", cause)

	expected := "quote unavailable for bitcoin/ethereum: request failed: connection refused"
	if err.Error() != expected {
		t.Errorf("QuoteError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsQuoteUnavailableError(err) {
		t.Errorf("IsQuoteUnavailableError(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var qErr *QuoteError
	if !errors.As(err, &qErr) {
		t.Fatalf("errors.As(err, *QuoteError) = false")
	}
	fields := qErr.LogFields()
	if fields["error"] != "connection refused" || fields["from_currency"] != "bitcoin" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestTransactionError(t *testing.T) {
	err := NewTransactionNotFoundError("delete", 7, 42)

	expected := "delete failed for transaction 42 (user: 7): transaction not found"
	if err.Error() != expected {
		t.Errorf("TransactionError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(err) = false, want true")
	}
}

func TestErrorCategories(t *testing.T) {
	if !IsAuthError(ErrInvalidCredentials) || !IsAuthError(fmt.Errorf("x: %w", ErrInvalidToken)) {
		t.Errorf("auth errors not classified")
	}
	if !IsConflictError(fmt.Errorf("insert: %w", ErrDuplicateUser)) {
		t.Errorf("duplicate user not classified as conflict")
	}
	if !IsUserNotFoundError(ErrUserNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Errorf("user not found not classified")
	}
	if IsValidationError(ErrInternalServer) || IsAuthError(ErrInternalServer) || IsNotFoundError(ErrInternalServer) {
		t.Errorf("internal error must not fall into a client category")
	}
}

func TestHTTPStatusAndClientMessage(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Validation", NewValidationError("", "All fields are required"), 400, "All fields are required"},
		{"InvalidAmount", NewInvalidAmountError("-1"), 400, "Amount must be greater than 0"},
		{"Duplicate", ErrDuplicateUser, 400, "Email already registered"},
		{"Credentials", ErrInvalidCredentials, 401, "Invalid credentials"},
		{"Token", ErrInvalidToken, 401, "Invalid or expired token"},
		{"NoToken", ErrUnauthorized, 401, "No token provided"},
		{"Quote", NewQuoteError("bitcoin", "doge", "pair not listed", nil), 400, "Could not fetch price for this currency pair"},
		{"UserNotFound", ErrUserNotFound, 404, "User not found"},
		{"TransactionNotFound", NewTransactionNotFoundError("delete", 1, 9), 404, "Transaction not found"},
		{"Database", fmt.Errorf("%w: refused", ErrDatabaseConnection), 500, "Server error"},
		{"Unknown", errors.New("boom"), 500, "Server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.status {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.status)
			}
			if got := ClientMessage(tc.err); got != tc.message {
				t.Errorf("ClientMessage(%v) = %q, want %q", tc.err, got, tc.message)
			}
		})
	}
}
