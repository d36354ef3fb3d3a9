package repository

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/database"
	"gorm.io/gorm"
)

// base carries what every GORM repository needs
type base struct {
	db           *gorm.DB
	errorMapper  *database.ErrorMapper
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	queryTimeout time.Duration
}

func newBase(db *gorm.DB, errorMapper *database.ErrorMapper, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) base {
	if errorMapper == nil {
		errorMapper = database.NewErrorMapper()
	}
	return base{
		db:           db,
		errorMapper:  errorMapper,
		timeProvider: timeProvider,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// session returns a GORM handle bound to ctx and bounded by the query timeout
func (b *base) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := b.timeProvider.WithTimeout(ctx, coreport.Duration(b.queryTimeout))
	return b.db.WithContext(ctx), cancel
}

// handleDatabaseError logs a failed statement and maps it to a domain error
func (b *base) handleDatabaseError(err error, entityType database.EntityType, operation string, fields map[string]any) error {
	mapped := b.errorMapper.MapError(err, entityType, operation)

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	b.logger.Error("Database error", logFields)

	return mapped
}
