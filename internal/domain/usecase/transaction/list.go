package transaction

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// List returns one page of the user's history
func (s *Service) List(ctx context.Context, userID uint64, req usecase.ListRequest) (*entity.TransactionPage, error) {
	query := s.buildListQuery(req)

	items, total, err := s.repo.List(ctx, userID, query)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"page":    query.Page,
			"limit":   query.Limit,
			"error":   err.Error(),
		})
		return nil, err
	}

	return entity.NewTransactionPage(items, query.PageRequest, total), nil
}

// Search returns the user's transactions that involve the currency on either side.
// An empty currency matches nothing.
func (s *Service) Search(ctx context.Context, userID uint64, req usecase.SearchRequest) (*entity.TransactionPage, error) {
	query := entity.SearchQuery{
		PageRequest: s.pageRequest(req.Page, req.Limit),
		Currency:    strings.TrimSpace(req.Currency),
	}
	if query.Currency == "" {
		return entity.NewTransactionPage(nil, query.PageRequest, 0), nil
	}

	items, total, err := s.repo.SearchByCurrency(ctx, userID, query)
	if err != nil {
		s.logger.Error("Failed to search transactions", map[string]any{
			"user_id":  userID,
			"currency": query.Currency,
			"error":    err.Error(),
		})
		return nil, err
	}

	return entity.NewTransactionPage(items, query.PageRequest, total), nil
}
