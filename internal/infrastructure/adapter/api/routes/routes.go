package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Auth        *handler.AuthHandler
	Swap        *handler.SwapHandler
	Transaction *handler.TransactionHandler
	Health      *handler.HealthHandler
	Metrics     http.Handler // nil disables /metrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, basePath, metricsPath string, h Handlers, requireAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET(metricsPath, gin.WrapH(h.Metrics))
	}

	api := router.Group(basePath)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.GET("/profile", requireAuth, h.Auth.Profile)
	}

	// /history and /search are static segments, so gin matches them ahead of /:id
	swapRoutes := api.Group("/swap", requireAuth)
	{
		swapRoutes.POST("/swap", h.Swap.CreateSwap)
		swapRoutes.GET("/history", h.Transaction.History)
		swapRoutes.GET("/search", h.Transaction.Search)
		swapRoutes.GET("/:id", h.Transaction.GetByID)
		swapRoutes.PUT("/:id", h.Transaction.UpdateStatus)
		swapRoutes.DELETE("/:id", h.Transaction.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.HTTPObserver) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}
