package transaction

import (
	"context"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
)

// GetByID returns one of the user's transactions
func (s *Service) GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	if id == 0 {
		return nil, errs.NewTransactionNotFoundError("get", userID, id)
	}
	return s.repo.GetByID(ctx, userID, id)
}

// UpdateStatus relabels one of the user's transactions. Only status changes.
func (s *Service) UpdateStatus(ctx context.Context, userID, id uint64, status string) error {
	status, err := validateStatus(status)
	if err != nil {
		return err
	}
	if id == 0 {
		return errs.NewTransactionNotFoundError("update", userID, id)
	}

	if err := s.repo.UpdateStatus(ctx, userID, id, status); err != nil {
		return err
	}

	s.logger.Info("Transaction status updated", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
		"status":         status,
	})
	return nil
}

// Delete permanently removes one of the user's transactions
func (s *Service) Delete(ctx context.Context, userID, id uint64) error {
	if id == 0 {
		return errs.NewTransactionNotFoundError("delete", userID, id)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})
	return nil
}
