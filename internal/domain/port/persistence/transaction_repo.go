package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// TransactionRepository defines the swap history operations.
// Every read and write except Create is scoped to the owning user.
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// List returns one page of the user's transactions and the total match count
	List(ctx context.Context, userID uint64, query entity.ListQuery) ([]*entity.Transaction, int64, error)

	// SearchByCurrency returns the user's transactions where either side equals the currency
	SearchByCurrency(ctx context.Context, userID uint64, query entity.SearchQuery) ([]*entity.Transaction, int64, error)

	// GetByID retrieves one of the user's transactions
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is absent or owned by someone else
	GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error)

	// UpdateStatus overwrites the status of one of the user's transactions
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row matched both id and user
	UpdateStatus(ctx context.Context, userID, id uint64, status string) error

	// Delete removes one of the user's transactions
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row matched both id and user
	Delete(ctx context.Context, userID, id uint64) error
}
