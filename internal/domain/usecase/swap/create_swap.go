package swap

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
)

// CreateSwap validates, prices and records a swap.
// The quote is not locked: the stored price is whatever the provider returned at lookup time.
func (u *UseCase) CreateSwap(ctx context.Context, userID uint64, req usecase.SwapRequest) (*entity.SwapResult, error) {
	if err := validateSwapRequest(req); err != nil {
		u.metrics.RecordSwap(coreport.SwapRejected)
		return nil, err
	}

	from := strings.TrimSpace(req.FromCurrency)
	to := strings.TrimSpace(req.ToCurrency)

	price, err := u.prices.GetPrice(ctx, from, to)
	if err != nil {
		u.metrics.RecordSwap(coreport.SwapQuoteUnavailable)
		if !errs.IsQuoteUnavailableError(err) {
			err = errs.NewQuoteError(from, to, "price lookup failed", err)
		}
		fields := map[string]any{"user_id": userID, "error": err.Error()}
		var qErr *errs.QuoteError
		if errors.As(err, &qErr) {
			fields = qErr.LogFields()
			fields["user_id"] = userID
		}
		u.logger.Warn("Swap rejected: no price", fields)
		return nil, err
	}

	tx, err := entity.NewCompletedSwap(userID, from, to, *req.Amount, price, u.timeProvider)
	if err != nil {
		if errs.IsQuoteUnavailableError(err) {
			u.metrics.RecordSwap(coreport.SwapQuoteUnavailable)
		} else {
			u.metrics.RecordSwap(coreport.SwapRejected)
		}
		return nil, err
	}

	if err := u.txRepo.Create(ctx, tx); err != nil {
		u.metrics.RecordSwap(coreport.SwapFailed)
		u.logger.Error("Failed to record swap", map[string]any{
			"user_id":       userID,
			"from_currency": from,
			"to_currency":   to,
			"error":         err.Error(),
		})
		return nil, err
	}

	u.metrics.RecordSwap(coreport.SwapCompleted)
	u.logger.Info("Swap completed", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"from_currency":  from,
		"to_currency":    to,
		"amount":         tx.Amount.String(),
		"price":          tx.Price.String(),
		"result_amount":  entity.FormatResultAmount(tx.ResultAmount),
	})

	result := tx.ToSwapResult()
	return &result, nil
}
