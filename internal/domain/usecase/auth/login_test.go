package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Successful login issues a token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "s3cret").Return(nil).Once()
		m.tokens.EXPECT().Issue(stored).Return("signed.jwt.token", nil).Once()

		result, err := uc.Login(ctx, "alice@example.com", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", result.Token)
		assert.Equal(t, uint64(7), result.User.ID)
		assert.Equal(t, "Alice", result.User.Name)
	})

	t.Run("Email lookup ignores case", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "s3cret").Return(nil).Once()
		m.tokens.EXPECT().Issue(stored).Return("signed.jwt.token", nil).Once()

		result, err := uc.Login(ctx, "ALICE@example.com ", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", result.Token)
	})

	t.Run("Missing email or password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		_, err := uc.Login(ctx, "", "s3cret")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = uc.Login(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown email and wrong password look the same", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "wrong").Return(errors.New("mismatch")).Once()

		_, unknownErr := uc.Login(ctx, "ghost@example.com", "s3cret")
		_, wrongErr := uc.Login(ctx, "alice@example.com", "wrong")

		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("Token failure is an internal error", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "s3cret").Return(nil).Once()
		m.tokens.EXPECT().Issue(stored).Return("", errors.New("no key")).Once()

		_, err := uc.Login(ctx, "alice@example.com", "s3cret")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
