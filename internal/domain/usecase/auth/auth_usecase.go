package auth

import (
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/security"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// UseCase handles registration, login and token resolution
type UseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AuthUseCase = (*UseCase)(nil)

// NewAuthUseCase creates a new auth UseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
