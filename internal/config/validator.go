package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set in every production deployment
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"STORAGE_BACKEND",
	"API_KEY",
	"JWT_SECRET",
}

// RequiredPostgresEnvVars are additionally required with the postgres backend
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// RequiredRedisEnvVars are additionally required with the redis idempotency store
var RequiredRedisEnvVars = []string{"REDIS_ADDR"}

// placeholderValues are the values shipped in .env.example
var placeholderValues = []struct {
	key, value, hint string
}{
	{"DB_PASSWORD", "change_this_secure_password", "please use a secure password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "generate a secure key with: openssl rand -hex 32"},
	{"JWT_SECRET", "generate_with_openssl_rand_hex_32", "generate a secure secret with: openssl rand -hex 32"},
}

// requiredVars lists the variables the selected backends depend on
func requiredVars() []string {
	vars := append([]string(nil), RequiredEnvVars...)
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), StoragePostgres) {
		vars = append(vars, RequiredPostgresEnvVars...)
	}
	if strings.EqualFold(os.Getenv("IDEMPOTENCY_BACKEND"), IdempotencyRedis) {
		vars = append(vars, RequiredRedisEnvVars...)
	}
	return vars
}

// ValidateEnv checks the schema version of the environment and that every
// variable the configured backends need is present
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, key := range requiredVars() {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and flags values still copied from .env.example
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, p := range placeholderValues {
		if os.Getenv(p.key) == p.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value, %s", p.key, p.hint))
		}
	}
	return warnings, nil
}
