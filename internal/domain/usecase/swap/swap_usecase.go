package swap

import (
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/quote"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// UseCase prices swaps and records them as completed transactions
type UseCase struct {
	txRepo       persistence.TransactionRepository
	prices       quote.PriceProvider
	metrics      coreport.MetricsRecorder
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.SwapUseCase = (*UseCase)(nil)

// NewSwapUseCase creates a new swap UseCase
func NewSwapUseCase(
	txRepo persistence.TransactionRepository,
	prices quote.PriceProvider,
	metrics coreport.MetricsRecorder,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		txRepo:       txRepo,
		prices:       prices,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
