package entity

import "strings"

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortField is a column a transaction listing may be ordered by
type SortField string

// Sortable columns
const (
	SortByCreatedAt    SortField = "created_at"
	SortByAmount       SortField = "amount"
	SortByResultAmount SortField = "result_amount"
	SortByPrice        SortField = "price"
	SortByFromCurrency SortField = "from_currency"
)

var sortableFields = map[SortField]struct{}{
	SortByCreatedAt:    {},
	SortByAmount:       {},
	SortByResultAmount: {},
	SortByPrice:        {},
	SortByFromCurrency: {},
}

// SortOrder is the listing direction
type SortOrder string

// Sort directions
const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// ParseSortField returns the field if it is allowed, created_at otherwise
func ParseSortField(raw string) SortField {
	field := SortField(strings.TrimSpace(raw))
	if _, ok := sortableFields[field]; ok {
		return field
	}
	return SortByCreatedAt
}

// ParseSortOrder maps "asc" in any case to ascending and everything else to descending
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(OrderAsc)) {
		return OrderAsc
	}
	return OrderDesc
}

// Desc reports whether the order is descending
func (o SortOrder) Desc() bool {
	return o != OrderAsc
}

// PageRequest is a normalized page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest coerces page and limit into a usable window
func NewPageRequest(page, limit, defaultLimit, maxLimit int) PageRequest {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListQuery describes a history listing
type ListQuery struct {
	PageRequest
	Sort   SortField
	Order  SortOrder
	Status string
}

// SearchQuery describes a currency search
type SearchQuery struct {
	PageRequest
	Currency string
}

// TransactionPage is one window of a user's transactions
type TransactionPage struct {
	Items      []*Transaction
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// NewTransactionPage assembles a page and derives its page count
func NewTransactionPage(items []*Transaction, req PageRequest, total int64) *TransactionPage {
	if items == nil {
		items = []*Transaction{}
	}
	return &TransactionPage{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: TotalPages(total, req.Limit),
	}
}

// TotalPages is ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
