package auth

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
)

// GetProfile returns the public view of a user
func (u *UseCase) GetProfile(ctx context.Context, userID uint64) (*entity.UserProfile, error) {
	if userID == 0 {
		return nil, errs.ErrUserNotFound
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// Authenticate resolves a bearer token into the calling user
func (u *UseCase) Authenticate(_ context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	principal, err := u.tokens.Verify(token)
	if err != nil {
		u.logger.Debug("Rejected bearer token", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return principal, nil
}
