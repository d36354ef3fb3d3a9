// Package migration versions the BitPort schema. Every step is idempotent so a
// partially applied upgrade can simply be run again.
package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SchemaVersion is the version Up leaves the database at
const SchemaVersion = "1.1.0"

type step struct {
	version     string
	description string
	apply       func(ctx context.Context) error
}

// Migrator applies the pending schema steps and records each one in migration_versions
type Migrator struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrator creates a migrator over db
func NewMigrator(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Migrator {
	m := &Migrator{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	m.steps = []step{
		{version: "1.0.0", description: "Create users and transactions tables", apply: m.createTables},
		{version: "1.1.0", description: "Swap check constraints and history indexes", apply: m.hardenTransactions},
	}
	return m
}

// Up runs every step newer than the recorded version
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return fmt.Errorf("create migration_versions: %w", err)
	}

	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	pending := m.pending(current)
	if len(pending) == 0 {
		m.logger.Info("Database schema is up to date", map[string]any{
			"version": current,
		})
		return nil
	}

	m.logger.Info("Migrating database schema", map[string]any{
		"from":    current,
		"to":      SchemaVersion,
		"pending": len(pending),
	})

	for _, s := range pending {
		if err := s.apply(ctx); err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"version":     s.version,
				"description": s.description,
				"error":       err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.record(ctx, s.version, s.description); err != nil {
			return fmt.Errorf("record migration %s: %w", s.version, err)
		}
		m.logger.Info("Applied schema migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
	}

	return nil
}

// CurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *Migrator) CurrentVersion(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var row model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Version, nil
}

// pending returns the steps after current. An unknown version replays all of them.
func (m *Migrator) pending(current string) []step {
	if current == "" {
		return m.steps
	}
	for i, s := range m.steps {
		if s.version == current {
			return m.steps[i+1:]
		}
	}
	m.logger.Warn("Unknown schema version, replaying all migrations", map[string]any{
		"version": current,
	})
	return m.steps
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&model.MigrationVersion{}) {
		return nil
	}
	return migrator.CreateTable(&model.MigrationVersion{})
}

func (m *Migrator) record(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}
