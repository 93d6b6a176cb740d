// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables and an optional promptwizard.yaml file. It provides a centralized
// Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// FileName is the optional config file (without extension) looked up in the
// working directory. Environment variables take precedence over it.
const FileName = "promptwizard"

// defaultDBPassword is refused in production.
const defaultDBPassword = "changeme"

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host string `mapstructure:"APP_HOST"`
	Port string `mapstructure:"APP_PORT"`
	Env  string `mapstructure:"APP_ENV"` // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`
	DBUser     string `mapstructure:"POSTGRES_USER"`
	DBPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`

	// Valkey (Redis-compatible session store)
	ValkeyHost     string `mapstructure:"VALKEY_HOST"`
	ValkeyPort     string `mapstructure:"VALKEY_PORT"`
	ValkeyPassword string `mapstructure:"VALKEY_PASSWORD"`

	// AI provider settings. A provider without a key is simply unavailable;
	// the suggestion endpoint then answers 500 on every call.
	AIProvider string `mapstructure:"AI_PROVIDER"` // "openai", "claude", "gemini", "mistral"

	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`

	ClaudeKey     string `mapstructure:"CLAUDE_API_KEY"`
	ClaudeModel   string `mapstructure:"CLAUDE_MODEL"`
	ClaudeBaseURL string `mapstructure:"CLAUDE_BASE_URL"`

	GeminiKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`

	MistralKey     string `mapstructure:"MISTRAL_API_KEY"`
	MistralModel   string `mapstructure:"MISTRAL_MODEL"`
	MistralBaseURL string `mapstructure:"MISTRAL_BASE_URL"`

	// AIRateLimit is the number of suggestion requests allowed per minute
	// per client IP.
	AIRateLimit int `mapstructure:"AI_RATE_LIMIT"`
}

// defaults lists every key Load understands. Registering a default is also
// what makes viper pick the key up from the environment.
var defaults = map[string]any{
	"APP_HOST": "0.0.0.0",
	"APP_PORT": "8080",
	"APP_ENV":  "development",

	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     "5432",
	"POSTGRES_USER":     "promptwizard",
	"POSTGRES_PASSWORD": defaultDBPassword,
	"POSTGRES_DB":       "promptwizard",

	"VALKEY_HOST":     "localhost",
	"VALKEY_PORT":     "6379",
	"VALKEY_PASSWORD": "",

	"AI_PROVIDER": "openai",

	"OPENAI_API_KEY":  "",
	"OPENAI_MODEL":    "gpt-4o-mini",
	"OPENAI_BASE_URL": "https://api.openai.com/v1",

	"CLAUDE_API_KEY":  "",
	"CLAUDE_MODEL":    "claude-sonnet-4-5",
	"CLAUDE_BASE_URL": "https://api.anthropic.com",

	"GEMINI_API_KEY":  "",
	"GEMINI_MODEL":    "gemini-2.5-flash",
	"GEMINI_BASE_URL": "https://generativelanguage.googleapis.com",

	"MISTRAL_API_KEY":  "",
	"MISTRAL_MODEL":    "mistral-small-latest",
	"MISTRAL_BASE_URL": "https://api.mistral.ai/v1",

	"AI_RATE_LIMIT": 20,
}

// Load reads configuration from the environment and an optional
// promptwizard.yaml in the working directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory for the config file. Returns an
// error if the file exists but cannot be parsed, or if critical values are
// missing in production mode.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	v.AddConfigPath(dir)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Info("using config file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == defaultDBPassword {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}
	if cfg.AIRateLimit <= 0 {
		return nil, fmt.Errorf("AI_RATE_LIMIT must be positive, got %d", cfg.AIRateLimit)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
