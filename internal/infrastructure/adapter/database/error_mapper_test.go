package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name       string
		err        error
		entityType EntityType
		want       error
	}{
		{"nil", nil, EntityTypeUser, nil},
		{"user not found", gorm.ErrRecordNotFound, EntityTypeUser, domainErr.ErrUserNotFound},
		{"transaction not found", fmt.Errorf("wrapped: %w", gorm.ErrRecordNotFound), EntityTypeTransaction, domainErr.ErrTransactionNotFound},
		{"other not found", gorm.ErrRecordNotFound, EntityType("other"), domainErr.ErrNotFound},
		{"duplicate email", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, EntityTypeUser, domainErr.ErrDuplicateUser},
		{"duplicate by message", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), EntityTypeUser, domainErr.ErrDuplicateUser},
		{"duplicate transaction", gorm.ErrDuplicatedKey, EntityTypeTransaction, domainErr.ErrConstraintViolation},
		{"foreign key", &pgconn.PgError{Code: "23503"}, EntityTypeTransaction, domainErr.ErrConstraintViolation},
		{"timeout", context.DeadlineExceeded, EntityTypeTransaction, domainErr.ErrDatabaseConnection},
		{"cancelled statement", &pgconn.PgError{Code: "57014"}, EntityTypeTransaction, domainErr.ErrDatabaseConnection},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), EntityTypeUser, domainErr.ErrDatabaseConnection},
		{"anything else", errors.New("syntax error at or near"), EntityTypeUser, domainErr.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.MapError(tt.err, tt.entityType, "test")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
