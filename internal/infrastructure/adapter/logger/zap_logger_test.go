package logger

import (
	"testing"

	"github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("Fields are passed through", func(t *testing.T) {
		obs, logs := observer.New(zapcore.DebugLevel)
		l := newFromCore(obs, core.LogLevelDebug)

		l.Info("Swap completed", map[string]any{"user_id": uint64(7), "result_amount": "0.10000000"})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "Swap completed", entry.Message)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, uint64(7), entry.ContextMap()["user_id"])
		assert.Equal(t, "0.10000000", entry.ContextMap()["result_amount"])
	})

	t.Run("Messages below the level are dropped", func(t *testing.T) {
		obs, logs := observer.New(zapcore.DebugLevel)
		l := newFromCore(obs, core.LogLevelWarn)

		l.Debug("debug", nil)
		l.Info("info", nil)
		l.Warn("warn", nil)
		l.Error("error", nil)

		assert.Equal(t, 2, logs.Len())
		assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	})
}

func TestNewParsesLevelAliases(t *testing.T) {
	l, err := New(Options{Level: "WARNING"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)

	l.Info("ignored", map[string]any{"k": "v"})

	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}

func TestNew(t *testing.T) {
	t.Run("json to stderr", func(t *testing.T) {
		l, err := New(Options{Production: true, Level: "error", Format: "json", Output: "stderr", Service: "bitport"})

		require.NoError(t, err)
		assert.Equal(t, core.LogLevelError, l.GetLevel())
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		_, err := New(Options{Format: "xml"})

		assert.ErrorContains(t, err, `unknown log format "xml"`)
	})
}
