package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env only seeds variables that are not already set
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths)
}

// Load reads <env>.yaml from the first matching path, then applies BP_* overrides.
// A missing file is tolerated so containers can run from defaults and environment alone.
func Load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	// Durations are stored as plain numbers (seconds, minutes, hours) and scaled afterwards,
	// so the default string-to-duration hook must not run on values that come from the environment.
	var config Config
	if err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found on DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.basePath", "/api")
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, covers a slow quote lookup
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "bitport")
	v.SetDefault("auth.tokenTtlHours", 168) // 7 days
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("quote.baseUrl", "https://api.coingecko.com/api/v3")
	v.SetDefault("quote.timeoutSeconds", 10)

	v.SetDefault("pagination.defaultLimit", 10)
	v.SetDefault("pagination.maxLimit", 100)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on BP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("BP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envBindings are the short variable names deployments use. Any other key is still
// reachable as BP_<SECTION>_<KEY> through AutomaticEnv.
var envBindings = []struct {
	key    string
	envVar string
}{
	{"database.host", "BP_DB_HOST"},
	{"database.port", "BP_DB_PORT"},
	{"database.username", "BP_DB_USERNAME"},
	{"database.password", "BP_DB_PASSWORD"},
	{"database.database", "BP_DB_NAME"},
	{"database.sslMode", "BP_DB_SSL_MODE"},
	{"database.maxOpenConns", "BP_DB_MAX_OPEN_CONNS"},
	{"database.maxIdleConns", "BP_DB_MAX_IDLE_CONNS"},
	{"database.queryTimeout", "BP_DB_QUERY_TIMEOUT_SECONDS"},

	{"server.host", "BP_SERVER_HOST"},
	{"server.port", "BP_SERVER_PORT"},
	{"server.allowedOrigins", "BP_SERVER_ALLOWED_ORIGINS"},

	{"logger.level", "BP_LOGGER_LEVEL"},
	{"logger.format", "BP_LOGGER_FORMAT"},

	{"auth.jwtSecret", "BP_AUTH_JWT_SECRET"},
	{"auth.tokenTtlHours", "BP_AUTH_TOKEN_TTL_HOURS"},
	{"auth.bcryptCost", "BP_AUTH_BCRYPT_COST"},

	{"quote.baseUrl", "BP_QUOTE_BASE_URL"},
	{"quote.apiKey", "BP_QUOTE_API_KEY"},
	{"quote.timeoutSeconds", "BP_QUOTE_TIMEOUT_SECONDS"},

	{"metrics.enabled", "BP_METRICS_ENABLED"},
}

func bindEnv(v *viper.Viper) error {
	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.envVar); err != nil {
			return fmt.Errorf("bind %s to %s: %w", b.envVar, b.key, err)
		}
	}
	return nil
}

// processDurations scales the numeric duration settings into real durations
func processDurations(config *Config) {
	seconds := []*time.Duration{
		&config.Server.ReadTimeout,
		&config.Server.WriteTimeout,
		&config.Server.IdleTimeout,
		&config.Server.ReadHeaderTimeout,
		&config.Server.ShutdownTimeout,
		&config.Database.QueryTimeout,
		&config.Database.RetryDelay,
		&config.Quote.Timeout,
	}
	for _, d := range seconds {
		*d *= time.Second
	}

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Auth.TokenTTL *= time.Hour
}
