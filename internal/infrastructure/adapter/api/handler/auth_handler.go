package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid register request", map[string]any{"error": err.Error()})
		respondError(c, h.logger, "register", domainerr.NewValidationError("", "All fields are required"))
		return
	}

	_, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMessageResponse("User registered successfully"))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid login request", map[string]any{"error": err.Error()})
		respondError(c, h.logger, "login", domainerr.NewValidationError("", "Email and password required"))
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    dto.NewUserResponse(result.User),
	})
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.authUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		User:    dto.NewProfileResponse(*profile),
	})
}
