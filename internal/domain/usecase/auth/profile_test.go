package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		createdAt := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

		m.repo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.User{ID: 3, Name: "Bob", Email: "bob@example.com", PasswordHash: "x", CreatedAt: createdAt}, nil).Once()

		profile, err := uc.GetProfile(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", profile.Email)
		assert.Equal(t, createdAt, profile.CreatedAt)
	})

	t.Run("Deleted user", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.repo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.GetProfile(ctx, 3)

		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().Verify("good").Return(&entity.Principal{UserID: 7, Email: "alice@example.com"}, nil).Once()

		principal, err := uc.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), principal.UserID)
	})

	t.Run("Empty token", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		_, err := uc.Authenticate(ctx, "")

		assert.True(t, errs.IsAuthError(err))
	})

	t.Run("Rejected token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)

		m.tokens.EXPECT().Verify("expired").Return(nil, fmt.Errorf("%w: token is expired", errs.ErrInvalidToken)).Once()

		_, err := uc.Authenticate(ctx, "expired")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
