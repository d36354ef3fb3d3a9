package entity

import (
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/shopspring/decimal"
)

// ResultScale is the number of fractional digits kept for amounts and swap results
const ResultScale int32 = 8

// PriceScale is the number of fractional digits kept for a quoted price
const PriceScale int32 = 18

// Amounts and results are stored as numeric(20,8), prices as numeric(38,18).
var (
	amountLimit = decimal.New(1, 20-ResultScale)
	priceLimit  = decimal.New(1, 38-PriceScale)
)

// ComputeResultAmount multiplies amount by price and rounds to ResultScale
func ComputeResultAmount(amount, price decimal.Decimal) decimal.Decimal {
	return amount.Mul(price).Round(ResultScale)
}

// FormatResultAmount renders a result with exactly ResultScale fractional digits
func FormatResultAmount(d decimal.Decimal) string {
	return d.StringFixed(ResultScale)
}

// ValidateAmount checks that a swap amount is positive and fits the stored column exactly
func ValidateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return errs.NewInvalidAmountError(amount.String())
	case !amount.Equal(amount.Truncate(ResultScale)):
		return amountError(amount, "Amount must have at most 8 decimal places")
	case amount.GreaterThanOrEqual(amountLimit):
		return amountError(amount, "Amount is too large")
	}
	return nil
}

// NormalizePrice rounds a quote to PriceScale and rejects prices the ledger cannot store
func NormalizePrice(from, to string, price decimal.Decimal) (decimal.Decimal, error) {
	price = price.Round(PriceScale)
	if !price.IsPositive() {
		return decimal.Zero, errs.NewQuoteError(from, to, "non-positive price", nil)
	}
	if price.GreaterThanOrEqual(priceLimit) {
		return decimal.Zero, errs.NewQuoteError(from, to, "price out of range", nil)
	}
	return price, nil
}

func amountError(amount decimal.Decimal, reason string) error {
	return &errs.ValidationError{
		Field:  "amount",
		Reason: reason,
		Value:  amount.String(),
		Err:    errs.ErrInvalidAmount,
	}
}
