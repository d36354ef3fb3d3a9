package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SwapRequest represents an incoming swap. A nil Amount means the field was absent.
type SwapRequest struct {
	FromCurrency string
	ToCurrency   string
	Amount       *decimal.Decimal
}

// SwapUseCase prices and records swaps
type SwapUseCase interface {
	// CreateSwap validates the request, prices it and stores a completed transaction
	CreateSwap(ctx context.Context, userID uint64, req SwapRequest) (*entity.SwapResult, error)
}
