package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// UserRepository defines the credential store operations
type UserRepository interface {
	// Create stores a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by login email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
}
