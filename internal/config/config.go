package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds extraction engine settings.
type EngineConfig struct {
	FieldConcurrency int           `mapstructure:"field_concurrency"`
	TimeBudget       time.Duration `mapstructure:"time_budget"`
	MaxInputBytes    int           `mapstructure:"max_input_bytes"`
	BatchLimit       int           `mapstructure:"batch_limit"`
	BatchConcurrency int           `mapstructure:"batch_concurrency"`
}

// Load reads configuration from environment variables with the TAXLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})

	// Engine defaults
	v.SetDefault("engine.field_concurrency", 4)
	v.SetDefault("engine.time_budget", "2s")
	v.SetDefault("engine.max_input_bytes", 1<<20)
	v.SetDefault("engine.batch_limit", 100)
	v.SetDefault("engine.batch_concurrency", 8)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration invariants that would otherwise surface as
// confusing runtime behavior.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.Port, ":") {
		return fmt.Errorf("server.port must start with ':', got %q", c.Server.Port)
	}
	if c.Engine.FieldConcurrency < 1 {
		return fmt.Errorf("engine.field_concurrency must be at least 1, got %d", c.Engine.FieldConcurrency)
	}
	if c.Engine.BatchConcurrency < 1 {
		return fmt.Errorf("engine.batch_concurrency must be at least 1, got %d", c.Engine.BatchConcurrency)
	}
	if c.Engine.BatchLimit < 1 {
		return fmt.Errorf("engine.batch_limit must be at least 1, got %d", c.Engine.BatchLimit)
	}
	return nil
}
