package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	authUseCase "github.com/amirhossein-jamali/bitport/internal/domain/usecase/auth"
	swapUseCase "github.com/amirhossein-jamali/bitport/internal/domain/usecase/swap"
	transactionUseCase "github.com/amirhossein-jamali/bitport/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/quote"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const poolMonitorInterval = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := validateConfig(cfg)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.New(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
		Service:    "bitport",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	appLogger.Info("Logger initialized", map[string]any{
		"level": appLogger.GetLevel().String(),
		"env":   cfg.Environment,
	})

	if len(warnings) > 0 {
		appLogger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}

	dbConfig, err := database.FromAppConfig(cfg)
	if err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()
	recorder := metrics.NewRecorder()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	if err := dbManager.StartPoolMonitor(recorder, poolMonitorInterval); err != nil {
		appLogger.Warn("Connection pool monitor not started", map[string]any{"error": err.Error()})
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), dbManager.ErrorMapper(), tp, appLogger, dbManager.QueryTimeout())
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), dbManager.ErrorMapper(), tp, appLogger, dbManager.QueryTimeout())

	// Security and pricing adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token manager", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	priceProvider := quote.NewCoinGeckoClient(
		cfg.Quote.BaseURL,
		cfg.Quote.APIKey,
		cfg.Quote.Timeout,
		nil,
		recorder,
		tp,
		appLogger,
	)

	// Use cases
	authService := authUseCase.NewAuthUseCase(userRepo, hasher, tokens, tp, appLogger)
	swapService := swapUseCase.NewSwapUseCase(transactionRepo, priceProvider, recorder, tp, appLogger)
	transactionService := transactionUseCase.NewTransactionService(transactionRepo, transactionUseCase.PageLimits{
		Default: cfg.Pagination.DefaultLimit,
		Max:     cfg.Pagination.MaxLimit,
	}, appLogger)

	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, appLogger),
		Swap:        handler.NewSwapHandler(swapService, appLogger),
		Transaction: handler.NewTransactionHandler(transactionService, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}
	var httpObserver middleware.HTTPObserver
	if cfg.Metrics.Enabled {
		handlers.Metrics = metrics.Handler()
		httpObserver = recorder
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, httpObserver)
	routes.SetupRoutes(router, cfg.Server.BasePath, cfg.Metrics.Path, handlers, middleware.Auth(authService, appLogger))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           middleware.CORS(cfg.Server.AllowedOrigins)(router),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"base_path": cfg.Server.BasePath,
			"env":       cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig lists every missing required setting at once. The returned warnings
// flag weak production settings that do not prevent startup.
func validateConfig(cfg *config.Config) ([]string, error) {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	required := []struct {
		key, envVar, value string
	}{
		{"database.host", "BP_DB_HOST", cfg.Database.Host},
		{"database.port", "BP_DB_PORT", cfg.Database.Port},
		{"database.username", "BP_DB_USERNAME", cfg.Database.Username},
		{"database.password", "BP_DB_PASSWORD", cfg.Database.Password},
		{"database.database", "BP_DB_NAME", cfg.Database.Database},
		{"auth.jwtSecret", "BP_AUTH_JWT_SECRET", cfg.Auth.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.envVar))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTtlHours")
	}
	if cfg.Quote.BaseURL == "" {
		missingConfigs = append(missingConfigs, "quote.baseUrl")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment != config.Production {
		return nil, nil
	}

	var warnings []string
	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 characters in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if cfg.Quote.APIKey == "" {
		warnings = append(warnings, "quote.apiKey is empty; the public CoinGecko tier is heavily rate limited")
	}

	return warnings, nil
}
