package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// RegisterInput carries the registration form
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Token string
	User  entity.UserProfile
}

// AuthUseCase defines credential and session operations
type AuthUseCase interface {
	// Register creates an account; it does not log the user in
	Register(ctx context.Context, input RegisterInput) (*entity.UserProfile, error)

	// Login checks credentials and issues a bearer token
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetProfile returns the public view of the user
	GetProfile(ctx context.Context, userID uint64) (*entity.UserProfile, error)

	// Authenticate resolves a bearer token into the calling user
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
