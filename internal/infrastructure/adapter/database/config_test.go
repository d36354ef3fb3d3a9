package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Database: config.DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            "5433",
			Username:        "bitport",
			Password:        "secret",
			Database:        "bitport",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    5 * time.Second,
			RetryAttempts:   3,
			RetryDelay:      2 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(validAppConfig())
	require.NoError(t, err)

	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.PrepareStmt)
	assert.Equal(t,
		"host=localhost port=5433 user=bitport password=secret dbname=bitport sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestFromAppConfig_Production(t *testing.T) {
	app := validAppConfig()
	app.Environment = config.Production

	cfg, err := FromAppConfig(app)
	require.NoError(t, err)
	assert.True(t, cfg.PrepareStmt)
}

func TestFromAppConfig_Defaults(t *testing.T) {
	app := validAppConfig()
	app.Database.Driver = ""
	app.Database.SSLMode = ""
	app.Database.Port = "not-a-port"
	app.Database.RetryAttempts = 0

	cfg, err := FromAppConfig(app)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, 1, cfg.RetryAttempts)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"unsupported driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"missing host", func(c *Config) { c.Host = "" }, "host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid database port"},
		{"missing user", func(c *Config) { c.Username = "" }, "username is required"},
		{"missing name", func(c *Config) { c.Database = "" }, "name is required"},
		{"idle above open", func(c *Config) { c.MaxIdleConns = 20 }, "cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromAppConfig(validAppConfig())
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
