package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bitport/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedSwap(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid swap creation", func(t *testing.T) {
		tx, err := NewCompletedSwap(
			1,
			"bitcoin",
			"ethereum",
			decimal.NewFromInt(2),
			decimal.RequireFromString("0.05"),
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, "bitcoin", tx.FromCurrency)
		assert.Equal(t, "ethereum", tx.ToCurrency)
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, "0.10000000", FormatResultAmount(tx.ResultAmount))
	})

	t.Run("Result amount is rounded to eight places", func(t *testing.T) {
		tx, err := NewCompletedSwap(
			1,
			"ethereum",
			"usd",
			decimal.RequireFromString("0.12345678"),
			decimal.RequireFromString("3.3"),
			mockTime,
		)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.40740737").Equal(tx.ResultAmount))
		assert.Equal(t, "0.40740737", FormatResultAmount(tx.ResultAmount))
	})

	t.Run("Stored row keeps the rounding identity", func(t *testing.T) {
		tx, err := NewCompletedSwap(
			1,
			"bitcoin",
			"usd",
			decimal.RequireFromString("0.5"),
			decimal.RequireFromString("1.0000000000000000004"),
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, "1", tx.Price.String())
		assert.True(t, tx.ResultAmount.Equal(ComputeResultAmount(tx.Amount, tx.Price)))
	})

	t.Run("Amount with more than eight places is rejected", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "bitcoin", "usd", decimal.RequireFromString("0.000000001"), decimal.NewFromInt(1), mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})

	t.Run("Result beyond the column range is rejected", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "bitcoin", "usd", decimal.NewFromInt(1000), decimal.RequireFromString("1000000000"), mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Swap result is too large", vErr.Reason)
		assert.Nil(t, tx)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "bitcoin", "usd", decimal.Zero, decimal.NewFromInt(1), mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "bitcoin", "usd", decimal.NewFromInt(-3), decimal.NewFromInt(1), mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})

	t.Run("Blank currency is rejected", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "  ", "usd", decimal.NewFromInt(1), decimal.NewFromInt(1), mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, tx)
	})

	t.Run("Non-positive price is a quote failure", func(t *testing.T) {
		tx, err := NewCompletedSwap(1, "bitcoin", "usd", decimal.NewFromInt(1), decimal.Zero, mockTime)

		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
		assert.Nil(t, tx)
	})

	t.Run("Missing user", func(t *testing.T) {
		tx, err := NewCompletedSwap(0, "bitcoin", "usd", decimal.NewFromInt(1), decimal.NewFromInt(1), mockTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, tx)
	})
}

func TestTransactionSummary(t *testing.T) {
	tx := &Transaction{
		ID:           9,
		UserID:       4,
		FromCurrency: "bitcoin",
		ToCurrency:   "usd",
		Amount:       decimal.NewFromInt(1),
		Price:        decimal.RequireFromString("65000.5"),
		ResultAmount: decimal.RequireFromString("65000.5"),
		Status:       StatusCompleted,
	}

	summary := tx.ToSwapResult()
	assert.Equal(t, "bitcoin", summary.FromCurrency)
	assert.Equal(t, "usd", summary.ToCurrency)
	assert.True(t, tx.Price.Equal(summary.Price))
}
