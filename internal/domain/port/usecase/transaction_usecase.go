package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// ListRequest holds raw listing parameters; invalid values fall back to defaults
type ListRequest struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Status string
}

// SearchRequest holds raw search parameters
type SearchRequest struct {
	Currency string
	Page     int
	Limit    int
}

// TransactionUseCase defines history operations on the caller's own transactions
type TransactionUseCase interface {
	List(ctx context.Context, userID uint64, req ListRequest) (*entity.TransactionPage, error)
	Search(ctx context.Context, userID uint64, req SearchRequest) (*entity.TransactionPage, error)
	GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error)
	UpdateStatus(ctx context.Context, userID, id uint64, status string) error
	Delete(ctx context.Context, userID, id uint64) error
}
