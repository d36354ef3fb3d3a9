package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// Register creates a new account. The caller still has to log in.
func (u *UseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.UserProfile, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, errs.NewValidationError("", "All fields are required")
	}
	if err := entity.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		u.logger.Warn("Registration rejected: email already registered", map[string]any{
			"email": email,
		})
		return nil, errs.ErrDuplicateUser
	case err != nil && !errs.IsUserNotFoundError(err):
		return nil, err
	}

	hash, err := u.hasher.Hash(input.Password)
	if errs.IsValidationError(err) {
		return nil, err
	}
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: hash password: %v", errs.ErrInternalServer, err)
	}

	user, err := entity.NewUser(name, email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// A concurrent registration can still win the race; the unique index reports it as ErrDuplicateUser.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
	})

	profile := user.Profile()
	return &profile, nil
}
