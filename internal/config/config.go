package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	APIKey    string // API key for trusted callers and admin routes
	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	StorageBackend string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	SQLitePath     string
	AutoMigrate    bool

	IdempotencyBackend string
	IdempotencyTTL     time.Duration
	RedisAddr          string
	RedisPassword      string

	RateLimitPerMinute int
	RateLimitBurst     int
	TrustedProxies     []string

	UnitsConfigPath          string
	UnitsReloadInterval      time.Duration // 0 disables periodic reloads
	PrepareLookupConcurrency int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),

		APIKey:    getEnv("API_KEY", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", DefaultJWTIssuer),
		JWTTTL:    getEnvAsDuration("JWT_TTL", DefaultJWTTTL),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageSQLite)),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "despensa"),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		SQLitePath:     getEnv("SQLITE_PATH", DefaultSQLitePath),
		AutoMigrate:    getEnvAsBool("AUTO_MIGRATE", true),

		IdempotencyBackend: strings.ToLower(getEnv("IDEMPOTENCY_BACKEND", IdempotencyMemory)),
		IdempotencyTTL:     getEnvAsDuration("IDEMPOTENCY_TTL", DefaultIdempotencyTTL),
		RedisAddr:          getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),

		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMin),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES"),

		UnitsConfigPath:          getEnv("UNITS_CONFIG_PATH", DefaultUnitsConfigPath),
		UnitsReloadInterval:      getEnvAsDuration("UNITS_RELOAD_INTERVAL", 0),
		PrepareLookupConcurrency: getEnvAsInt("PREPARE_LOOKUP_CONCURRENCY", DefaultLookupConcurrency),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s", c.StorageBackend, StoragePostgres, StorageSQLite)
	}

	switch c.IdempotencyBackend {
	case IdempotencyMemory, IdempotencyRedis:
	default:
		return fmt.Errorf("invalid IDEMPOTENCY_BACKEND %q: expected %s or %s", c.IdempotencyBackend, IdempotencyMemory, IdempotencyRedis)
	}

	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}
	if c.UnitsReloadInterval < 0 {
		return fmt.Errorf("UNITS_RELOAD_INTERVAL must not be negative, got %s", c.UnitsReloadInterval)
	}
	if c.PrepareLookupConcurrency < 1 {
		return fmt.Errorf("PREPARE_LOOKUP_CONCURRENCY must be positive, got %d", c.PrepareLookupConcurrency)
	}
	return nil
}

// RequireAuth checks the server has at least one way to authenticate callers
func (c *Config) RequireAuth() error {
	if c.APIKey == "" && c.JWTSecret == "" {
		return errors.New("API_KEY or JWT_SECRET environment variable must be set for security")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	return nil
}

// IsProduction reports whether the stricter production checks apply
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration such as "90s" or "24h"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
