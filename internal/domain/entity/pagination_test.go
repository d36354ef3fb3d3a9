package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	assert.Equal(t, SortByAmount, ParseSortField("amount"))
	assert.Equal(t, SortByResultAmount, ParseSortField("result_amount"))
	assert.Equal(t, SortByPrice, ParseSortField("price"))
	assert.Equal(t, SortByFromCurrency, ParseSortField("from_currency"))
	assert.Equal(t, SortByCreatedAt, ParseSortField(""))
	assert.Equal(t, SortByCreatedAt, ParseSortField("user_id"))
	assert.Equal(t, SortByCreatedAt, ParseSortField("amount; DROP TABLE users"))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, OrderAsc, ParseSortOrder("asc"))
	assert.Equal(t, OrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, OrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, OrderDesc, ParseSortOrder("sideways"))
	assert.True(t, ParseSortOrder("").Desc())
}

func TestNewPageRequest(t *testing.T) {
	testCases := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative values", -2, -5, 1, 10},
		{"explicit window", 3, 25, 3, 25},
		{"limit capped", 1, 1000, 1, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := NewPageRequest(tc.page, tc.limit, DefaultLimit, MaxLimit)
			assert.Equal(t, tc.expectedPage, req.Page)
			assert.Equal(t, tc.expectedLimit, req.Limit)
		})
	}

	assert.Equal(t, 20, NewPageRequest(3, 10, 0, 0).Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(12, 10))
	assert.Equal(t, 4, TotalPages(31, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewTransactionPage(t *testing.T) {
	page := NewTransactionPage(nil, PageRequest{Page: 5, Limit: 10}, 12)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 5, page.Page)
}
