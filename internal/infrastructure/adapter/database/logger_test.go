package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/bitport/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	query := func() (string, int64) {
		return `SELECT * FROM "transactions" WHERE user_id = 7`, 3
	}

	t.Run("Regular queries go to debug", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(5 * coreport.Millisecond).Once()
		log.EXPECT().Debug("SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["type"] == "SELECT" && f["table"] == "transactions" && f["rows"] == int64(3) &&
				f["request_id"] == "req-1"
		})).Once()

		l := NewDatabaseLogger(log, tp, "info", 200*time.Millisecond)
		l.Trace(coreport.WithRequestID(context.Background(), "req-1"), begin, query, nil)
	})

	t.Run("Slow queries are warnings", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(2 * coreport.Second).Once()
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(log, tp, "warn", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, nil)
	})

	t.Run("Errors are logged as errors", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Millisecond).Once()
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(log, tp, "error", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreport.Millisecond).Once()

		l := NewDatabaseLogger(log, tp, "error", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, gorm.ErrRecordNotFound)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)

		l := NewDatabaseLogger(log, tp, "silent", 200*time.Millisecond)
		l.Trace(context.Background(), begin, query, errors.New("boom"))
	})
}

func TestExtractTableName(t *testing.T) {
	tests := map[string]string{
		`SELECT count(*) FROM "transactions" WHERE user_id = $1`:    "transactions",
		`INSERT INTO "users" ("name","email") VALUES ($1,$2)`:       "users",
		`UPDATE "transactions" SET "status"=$1 WHERE id = $2`:       "transactions",
		`DELETE FROM "transactions" WHERE id = $1 AND user_id = $2`: "transactions",
		`CREATE INDEX IF NOT EXISTS idx ON transactions (user_id)`:  "",
	}
	for sql, want := range tests {
		assert.Equal(t, want, extractTableName(sql), sql)
	}
}
