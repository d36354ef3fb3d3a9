package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/bitport/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID uint64 = 42

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser stands in for the auth middleware
func asUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newAuthRouter(auth usecase.AuthUseCase) *gin.Engine {
	h := NewAuthHandler(auth, logger.NewNoopLogger())
	router := gin.New()
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.GET("/auth/profile", asUser(testUserID), h.Profile)
	router.GET("/auth/anonymous-profile", h.Profile)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("creates the account and answers 201", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Name: "Alice", Email: "alice@example.com", Password: "secret",
		}).Return(&entity.UserProfile{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/register",
			map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"User registered successfully"}`, w.Body.String())
	})

	t.Run("missing field never reaches the use case", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/register",
			map[string]string{"email": "alice@example.com", "password": "secret"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "All fields are required", body["message"])
	})

	t.Run("duplicate email is a 400", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerr.ErrDuplicateUser)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/register",
			map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decode(t, w)["message"])
	})

	t.Run("storage failure hides the cause", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: connection refused", domainerr.ErrDatabaseConnection))

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/register",
			map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", decode(t, w)["message"])
		assert.NotContains(t, w.Body.String(), "refused")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token and public user", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "alice@example.com", "secret").Return(&usecase.LoginResult{
			Token: "signed.jwt.token",
			User:  entity.UserProfile{ID: 1, Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now()},
		}, nil)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.com", "password": "secret"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "Login successful",
			"token": "signed.jwt.token",
			"user": {"id": 1, "name": "Alice", "email": "alice@example.com"}
		}`, w.Body.String())
	})

	t.Run("missing password is a 400", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email and password required", decode(t, w)["message"])
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, domainerr.ErrInvalidCredentials)

		w := doRequest(t, newAuthRouter(auth), http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Invalid credentials", body["message"])
		assert.NotContains(t, body, "token")
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("returns the caller's profile", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().GetProfile(mock.Anything, testUserID).Return(&entity.UserProfile{
			ID: testUserID, Name: "Alice", Email: "alice@example.com", CreatedAt: created,
		}, nil)

		w := doRequest(t, newAuthRouter(auth), http.MethodGet, "/auth/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"user": {"id": 42, "name": "Alice", "email": "alice@example.com", "created_at": "2025-03-01T12:00:00Z"}
		}`, w.Body.String())
	})

	t.Run("deleted user is a 404", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)
		auth.EXPECT().GetProfile(mock.Anything, testUserID).Return(nil, domainerr.ErrUserNotFound)

		w := doRequest(t, newAuthRouter(auth), http.MethodGet, "/auth/profile", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decode(t, w)["message"])
	})

	t.Run("no authenticated user is a 401", func(t *testing.T) {
		auth := usecasemocks.NewMockAuthUseCase(t)

		w := doRequest(t, newAuthRouter(auth), http.MethodGet, "/auth/anonymous-profile", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func newSwapRouter(swaps usecase.SwapUseCase) *gin.Engine {
	h := NewSwapHandler(swaps, logger.NewNoopLogger())
	router := gin.New()
	router.POST("/swap/swap", asUser(testUserID), h.CreateSwap)
	return router
}

func TestSwapHandler_CreateSwap(t *testing.T) {
	t.Run("prices and records the swap", func(t *testing.T) {
		swaps := usecasemocks.NewMockSwapUseCase(t)
		swaps.EXPECT().CreateSwap(mock.Anything, testUserID, mock.MatchedBy(func(req usecase.SwapRequest) bool {
			return req.FromCurrency == "bitcoin" &&
				req.ToCurrency == "ethereum" &&
				req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(2))
		})).Return(&entity.SwapResult{
			FromCurrency: "bitcoin",
			ToCurrency:   "ethereum",
			Amount:       decimal.NewFromInt(2),
			Price:        decimal.RequireFromString("0.05"),
			ResultAmount: decimal.RequireFromString("0.1"),
		}, nil)

		w := doRequest(t, newSwapRouter(swaps), http.MethodPost, "/swap/swap",
			`{"fromCurrency":"bitcoin","toCurrency":"ethereum","amount":2}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "Swap completed successfully",
			"data": {
				"fromCurrency": "bitcoin",
				"toCurrency": "ethereum",
				"amount": "2",
				"price": "0.05",
				"resultAmount": "0.10000000"
			}
		}`, w.Body.String())
	})

	t.Run("missing amount is a 400", func(t *testing.T) {
		swaps := usecasemocks.NewMockSwapUseCase(t)

		w := doRequest(t, newSwapRouter(swaps), http.MethodPost, "/swap/swap",
			`{"fromCurrency":"bitcoin","toCurrency":"ethereum"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "All fields are required", decode(t, w)["message"])
	})

	t.Run("non-positive amount is a 400", func(t *testing.T) {
		swaps := usecasemocks.NewMockSwapUseCase(t)
		swaps.EXPECT().CreateSwap(mock.Anything, testUserID, mock.Anything).
			Return(nil, domainerr.NewInvalidAmountError("-1"))

		w := doRequest(t, newSwapRouter(swaps), http.MethodPost, "/swap/swap",
			`{"fromCurrency":"bitcoin","toCurrency":"ethereum","amount":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Amount must be greater than 0", decode(t, w)["message"])
	})

	t.Run("unpriced pair is a 400", func(t *testing.T) {
		swaps := usecasemocks.NewMockSwapUseCase(t)
		swaps.EXPECT().CreateSwap(mock.Anything, testUserID, mock.Anything).
			Return(nil, domainerr.NewQuoteError("bitcoin", "nosuchcoin", "pair not listed", nil))

		w := doRequest(t, newSwapRouter(swaps), http.MethodPost, "/swap/swap",
			`{"fromCurrency":"bitcoin","toCurrency":"nosuchcoin","amount":"1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Could not fetch price for this currency pair", decode(t, w)["message"])
	})
}

func newTransactionRouter(txs usecase.TransactionUseCase) *gin.Engine {
	h := NewTransactionHandler(txs, logger.NewNoopLogger())
	router := gin.New()
	group := router.Group("/swap", asUser(testUserID))
	group.GET("/history", h.History)
	group.GET("/search", h.Search)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.UpdateStatus)
	group.DELETE("/:id", h.Delete)
	return router
}

func sampleTransaction(id uint64) *entity.Transaction {
	return &entity.Transaction{
		ID:           id,
		UserID:       testUserID,
		FromCurrency: "bitcoin",
		ToCurrency:   "ethereum",
		Amount:       decimal.NewFromInt(2),
		Price:        decimal.RequireFromString("0.05"),
		ResultAmount: decimal.RequireFromString("0.1"),
		Status:       entity.StatusCompleted,
		CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransactionHandler_History(t *testing.T) {
	t.Run("passes raw query values and renders pagination", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().List(mock.Anything, testUserID, usecase.ListRequest{
			Page: 2, Limit: 10, Sort: "amount", Order: "asc", Status: "completed",
		}).Return(entity.NewTransactionPage(
			[]*entity.Transaction{sampleTransaction(11), sampleTransaction(12)},
			entity.PageRequest{Page: 2, Limit: 10}, 12,
		), nil)

		w := doRequest(t, newTransactionRouter(txs), http.MethodGet,
			"/swap/history?page=2&limit=10&sort=amount&order=asc&status=completed", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success    bool                 `json:"success"`
			Data       []dto.TransactionRow `json:"data"`
			Pagination dto.Pagination       `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, "0.10000000", resp.Data[0].ResultAmount)
		assert.Equal(t, dto.Pagination{Page: 2, Limit: 10, Total: 12, TotalPages: 2}, resp.Pagination)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().List(mock.Anything, testUserID, usecase.ListRequest{Sort: "password"}).
			Return(entity.NewTransactionPage(nil, entity.PageRequest{Page: 1, Limit: 10}, 0), nil)

		w := doRequest(t, newTransactionRouter(txs), http.MethodGet, "/swap/history?page=abc&limit=&sort=password", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}`, w.Body.String())
	})
}

func TestTransactionHandler_Search(t *testing.T) {
	txs := usecasemocks.NewMockTransactionUseCase(t)
	txs.EXPECT().Search(mock.Anything, testUserID, usecase.SearchRequest{Currency: "bitcoin", Page: 1, Limit: 5}).
		Return(entity.NewTransactionPage([]*entity.Transaction{sampleTransaction(3)}, entity.PageRequest{Page: 1, Limit: 5}, 1), nil)

	w := doRequest(t, newTransactionRouter(txs), http.MethodGet, "/swap/search?currency=bitcoin&page=1&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 1)
}

func TestTransactionHandler_GetByID(t *testing.T) {
	t.Run("returns the row", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().GetByID(mock.Anything, testUserID, uint64(7)).Return(sampleTransaction(7), nil)

		w := doRequest(t, newTransactionRouter(txs), http.MethodGet, "/swap/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"data": {
				"id": 7,
				"user_id": 42,
				"from_currency": "bitcoin",
				"to_currency": "ethereum",
				"amount": "2",
				"result_amount": "0.10000000",
				"price": "0.05",
				"status": "completed",
				"created_at": "2025-03-01T12:00:00Z"
			}
		}`, w.Body.String())
	})

	t.Run("foreign or absent row is a 404", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().GetByID(mock.Anything, testUserID, uint64(8)).
			Return(nil, domainerr.NewTransactionNotFoundError("get", testUserID, 8))

		w := doRequest(t, newTransactionRouter(txs), http.MethodGet, "/swap/8", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Transaction not found", decode(t, w)["message"])
	})

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		t.Run("id "+raw+" is indistinguishable from a missing row", func(t *testing.T) {
			txs := usecasemocks.NewMockTransactionUseCase(t)

			w := doRequest(t, newTransactionRouter(txs), http.MethodGet, "/swap/"+raw, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Transaction not found", decode(t, w)["message"])
		})
	}
}

func TestTransactionHandler_UpdateStatus(t *testing.T) {
	t.Run("relabels the row", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().UpdateStatus(mock.Anything, testUserID, uint64(7), "archived").Return(nil)

		w := doRequest(t, newTransactionRouter(txs), http.MethodPut, "/swap/7", map[string]string{"status": "archived"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Transaction updated successfully"}`, w.Body.String())
	})

	t.Run("empty status is a 400", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().UpdateStatus(mock.Anything, testUserID, uint64(7), "").
			Return(domainerr.NewValidationError("status", "Status is required"))

		w := doRequest(t, newTransactionRouter(txs), http.MethodPut, "/swap/7", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Status is required", decode(t, w)["message"])
	})

	t.Run("missing body is a 400", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)

		w := doRequest(t, newTransactionRouter(txs), http.MethodPut, "/swap/7", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().Delete(mock.Anything, testUserID, uint64(7)).Return(nil)

		w := doRequest(t, newTransactionRouter(txs), http.MethodDelete, "/swap/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Transaction deleted successfully"}`, w.Body.String())
	})

	t.Run("unexpected failure is a 500", func(t *testing.T) {
		txs := usecasemocks.NewMockTransactionUseCase(t)
		txs.EXPECT().Delete(mock.Anything, testUserID, uint64(7)).Return(errors.New("disk on fire"))

		w := doRequest(t, newTransactionRouter(txs), http.MethodDelete, "/swap/7", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", decode(t, w)["message"])
	})
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"database reachable", nil, http.StatusOK, `{"status":"ok"}`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(stubPinger{err: tc.err}, logger.NewNoopLogger()).Health)

			w := doRequest(t, router, http.MethodGet, "/health", nil)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
