package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the caller's swap history
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// History handles GET /swap/history
func (h *TransactionHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := h.transactionUseCase.List(c.Request.Context(), userID, usecase.ListRequest{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, h.logger, "history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionPageResponse(page))
}

// Search handles GET /swap/search
func (h *TransactionHandler) Search(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := h.transactionUseCase.Search(c.Request.Context(), userID, usecase.SearchRequest{
		Currency: c.Query("currency"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, h.logger, "search", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionPageResponse(page))
}

// GetByID handles GET /swap/:id
func (h *TransactionHandler) GetByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := h.transactionID(c, userID, "get")
	if !ok {
		return
	}

	tx, err := h.transactionUseCase.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.logger, "get transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.NewTransactionRow(tx),
	})
}

// UpdateStatus handles PUT /swap/:id
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := h.transactionID(c, userID, "update")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "update transaction", domainerr.NewValidationError("status", "Status is required"))
		return
	}

	if err := h.transactionUseCase.UpdateStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		respondError(c, h.logger, "update transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Transaction updated successfully"))
}

// Delete handles DELETE /swap/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := h.transactionID(c, userID, "delete")
	if !ok {
		return
	}

	if err := h.transactionUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.logger, "delete transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Transaction deleted successfully"))
}

// transactionID parses :id. Anything that is not a positive integer is reported
// exactly like a transaction that does not exist.
func (h *TransactionHandler) transactionID(c *gin.Context, userID uint64, operation string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, h.logger, operation, domainerr.NewTransactionNotFoundError(operation, userID, 0))
		return 0, false
	}
	return id, true
}

// queryInt returns 0 for absent or malformed values so the use case applies its defaults
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
