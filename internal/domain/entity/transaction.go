package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	tport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionStatus is a free-form status label; swaps are created as completed
type TransactionStatus string

// StatusCompleted is the only status the swap flow produces
const StatusCompleted TransactionStatus = "completed"

// Transaction is the persisted record of one priced swap
type Transaction struct {
	ID           uint64            // Unique identifier for the transaction
	UserID       uint64            // Owning user
	FromCurrency string            // Source asset identifier
	ToCurrency   string            // Target asset identifier
	Amount       decimal.Decimal   // Amount of the source asset
	Price        decimal.Decimal   // Quote used for the conversion
	ResultAmount decimal.Decimal   // Amount * Price rounded to ResultScale
	Status       TransactionStatus // Status label
	CreatedAt    time.Time         // When the swap was recorded
}

// NewCompletedSwap builds a completed transaction and fixes its result amount.
// Amount, price and result all fit their columns, so the stored row equals the returned one.
func NewCompletedSwap(
	userID uint64,
	fromCurrency string,
	toCurrency string,
	amount decimal.Decimal,
	price decimal.Decimal,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	fromCurrency = strings.TrimSpace(fromCurrency)
	toCurrency = strings.TrimSpace(toCurrency)
	if fromCurrency == "" || toCurrency == "" {
		return nil, errs.NewValidationError("", "All fields are required")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	price, err := NormalizePrice(fromCurrency, toCurrency, price)
	if err != nil {
		return nil, err
	}

	result := ComputeResultAmount(amount, price)
	if result.GreaterThanOrEqual(amountLimit) {
		return nil, amountError(amount, "Swap result is too large")
	}

	return &Transaction{
		UserID:       userID,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
		Price:        price,
		ResultAmount: result,
		Status:       StatusCompleted,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// SwapResult is what a caller learns about a completed swap
type SwapResult struct {
	FromCurrency string
	ToCurrency   string
	Amount       decimal.Decimal
	Price        decimal.Decimal
	ResultAmount decimal.Decimal
}

// ToSwapResult converts the transaction to the swap summary
func (t *Transaction) ToSwapResult() SwapResult {
	return SwapResult{
		FromCurrency: t.FromCurrency,
		ToCurrency:   t.ToCurrency,
		Amount:       t.Amount,
		Price:        t.Price,
		ResultAmount: t.ResultAmount,
	}
}
