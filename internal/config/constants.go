package config

import "time"

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Idempotency backends
const (
	IdempotencyMemory = "memory"
	IdempotencyRedis  = "redis"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultJWTIssuer         = "despensa"
	DefaultJWTTTL            = 24 * time.Hour
	DefaultDBMaxConns        = 20
	DefaultSQLitePath        = "despensa.db"
	DefaultIdempotencyTTL    = 24 * time.Hour
	DefaultRedisAddr         = "localhost:6379"
	DefaultRateLimitPerMin   = 120
	DefaultRateLimitBurst    = 20
	DefaultUnitsConfigPath   = "configs/units.yaml"
	DefaultLookupConcurrency = 8
	MinJWTSecretLength       = 32
)

// EnvironmentProduction enables the stricter startup checks
const EnvironmentProduction = "prod"
