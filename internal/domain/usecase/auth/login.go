package auth

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// Login verifies credentials and issues a bearer token.
// Unknown email and wrong password produce the same error.
func (u *UseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errs.NewValidationError("", "Email and password required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Warn("Login failed", map[string]any{"reason": "unknown email"})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Warn("Login failed", map[string]any{
			"reason":  "password mismatch",
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: issue token: %v", errs.ErrInternalServer, err)
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.LoginResult{
		Token: token,
		User:  user.Profile(),
	}, nil
}
