package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SwapHandler handles swap creation
type SwapHandler struct {
	swapUseCase usecase.SwapUseCase
	logger      coreport.Logger
}

// NewSwapHandler creates a new swap handler instance
func NewSwapHandler(swapUseCase usecase.SwapUseCase, logger coreport.Logger) *SwapHandler {
	return &SwapHandler{
		swapUseCase: swapUseCase,
		logger:      logger,
	}
}

// CreateSwap handles POST /swap/swap
func (h *SwapHandler) CreateSwap(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid swap request", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, h.logger, "swap", domainerr.NewValidationError("", "All fields are required"))
		return
	}

	result, err := h.swapUseCase.CreateSwap(c.Request.Context(), userID, usecase.SwapRequest{
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Amount:       req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, "swap", err)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "Swap completed successfully",
		Data:    dto.NewSwapData(result),
	})
}
