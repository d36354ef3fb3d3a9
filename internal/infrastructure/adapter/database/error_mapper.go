package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
)

// PostgreSQL SQLSTATE codes the mapper understands
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgQueryCanceled       = "57014"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised while operating on entityType to a domain error
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	if m.IsDuplicateKeyError(err) {
		if entityType == EntityTypeUser {
			return domainErr.ErrDuplicateUser
		}
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)
	}

	if m.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, operation)
	}

	if m.IsTimeoutError(err) {
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	}

	if m.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s failed", domainErr.ErrInternalServer, operation)
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (m *ErrorMapper) IsDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// IsConstraintError checks if the error violates a foreign key, check or not-null constraint
func (m *ErrorMapper) IsConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	switch pgCode(err) {
	case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "check constraint")
}

// IsTimeoutError checks if the query was cancelled or ran past its deadline
func (m *ErrorMapper) IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgCode(err) == pgQueryCanceled {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded")
}

// IsConnectionError checks if the error is related to database connectivity
func (m *ErrorMapper) IsConnectionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "dial")
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
