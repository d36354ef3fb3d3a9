package dto

import (
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SwapRequest is the body of POST /swap/swap. Amount accepts a JSON number or a numeric string.
type SwapRequest struct {
	FromCurrency string           `json:"fromCurrency" binding:"required"`
	ToCurrency   string           `json:"toCurrency" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
}

// SwapData describes a completed swap
type SwapData struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Amount       string `json:"amount"`
	Price        string `json:"price"`
	ResultAmount string `json:"resultAmount"`
}

// NewSwapData converts a swap result
func NewSwapData(result *entity.SwapResult) SwapData {
	return SwapData{
		FromCurrency: result.FromCurrency,
		ToCurrency:   result.ToCurrency,
		Amount:       result.Amount.String(),
		Price:        result.Price.String(),
		ResultAmount: entity.FormatResultAmount(result.ResultAmount),
	}
}

// UpdateStatusRequest is the body of PUT /swap/:id
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TransactionRow is one stored swap as the client sees it
type TransactionRow struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"user_id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Amount       string    `json:"amount"`
	ResultAmount string    `json:"result_amount"`
	Price        string    `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTransactionRow converts a transaction entity
func NewTransactionRow(tx *entity.Transaction) TransactionRow {
	return TransactionRow{
		ID:           tx.ID,
		UserID:       tx.UserID,
		FromCurrency: tx.FromCurrency,
		ToCurrency:   tx.ToCurrency,
		Amount:       tx.Amount.String(),
		ResultAmount: entity.FormatResultAmount(tx.ResultAmount),
		Price:        tx.Price.String(),
		Status:       string(tx.Status),
		CreatedAt:    tx.CreatedAt.UTC(),
	}
}

// NewTransactionPageResponse wraps a page of transactions in the list envelope
func NewTransactionPageResponse(page *entity.TransactionPage) Response {
	rows := make([]TransactionRow, 0, len(page.Items))
	for _, tx := range page.Items {
		rows = append(rows, NewTransactionRow(tx))
	}

	return Response{
		Success: true,
		Data:    rows,
		Pagination: &Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}
