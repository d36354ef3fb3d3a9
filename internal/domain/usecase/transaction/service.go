package transaction

import (
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// PageLimits bounds the page size a client may request
type PageLimits struct {
	Default int
	Max     int
}

// Service serves a user's own swap history
type Service struct {
	repo   persistence.TransactionRepository
	limits PageLimits
	logger coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	repo persistence.TransactionRepository,
	limits PageLimits,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:   repo,
		limits: limits,
		logger: logger,
	}
}
