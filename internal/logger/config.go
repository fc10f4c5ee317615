package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ForEnvironment builds the service config, filling blank level and format.
// Production logs JSON at info; other environments log text at debug.
// Source locations are only added outside production at debug level.
func ForEnvironment(environment, level, format, version string) Config {
	prod := isProduction(environment)

	cfg := Config{
		Level:       level,
		Format:      format,
		ServiceName: DefaultServiceName,
		Version:     version,
		Environment: environment,
	}
	if cfg.Level == "" {
		cfg.Level = slog.LevelDebug.String()
		if prod {
			cfg.Level = slog.LevelInfo.String()
		}
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
		if prod {
			cfg.Format = FormatJSON
		}
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	cfg.AddSource = !prod && cfg.LogLevel() == slog.LevelDebug
	return cfg
}

// LogLevel parses Level; anything unrecognised is info
func (c Config) LogLevel() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, LevelWarning) {
		return slog.LevelWarn
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}

func isProduction(environment string) bool {
	env := strings.ToLower(environment)
	return env == EnvironmentProduction || env == EnvironmentProductionLong
}
