package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/model"
)

func (m *Migrator) createTables(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Transaction{},
	)
}

// swapChecks mirror the entity rules so rows written outside the API still hold them
var swapChecks = []struct {
	name string
	expr string
}{
	{"chk_transactions_amount_positive", "amount > 0"},
	{"chk_transactions_price_positive", "price > 0"},
	{"chk_transactions_result_non_negative", "result_amount >= 0"},
}

var transactionIndexes = []struct {
	name string
	sql  string
}{
	{
		// history: newest first per user
		name: "idx_transactions_user_created",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions (user_id, created_at DESC)`,
	},
	{
		name: "idx_transactions_user_from_lower",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_user_from_lower ON transactions (user_id, LOWER(from_currency))`,
	},
	{
		name: "idx_transactions_user_to_lower",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_user_to_lower ON transactions (user_id, LOWER(to_currency))`,
	},
}

// storageTweaks are best effort; managed databases often refuse them
var storageTweaks = []string{
	`ALTER TABLE transactions SET (fillfactor = 90)`,
	`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
}

func (m *Migrator) hardenTransactions(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	for _, c := range swapChecks {
		stmt := fmt.Sprintf(`DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		ALTER TABLE transactions ADD CONSTRAINT %s CHECK (%s);
	END IF;
END $$;`, c.name, c.name, c.expr)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("constraint %s: %w", c.name, err)
		}
	}

	for _, idx := range transactionIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("index %s: %w", idx.name, err)
		}
	}

	for _, stmt := range storageTweaks {
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Skipping storage tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}

	return nil
}
