package quote

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceProvider prices one unit of an asset in another asset
type PriceProvider interface {
	// GetPrice returns a strictly positive price.
	// Any failure is reported as an error wrapping ErrQuoteUnavailable.
	GetPrice(ctx context.Context, fromAsset, toAsset string) (decimal.Decimal, error)
}
