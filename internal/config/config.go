// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Chat provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"METAON_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"METAON_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"METAON_ENV" envDefault:"development"`
	LogLevel   string `env:"METAON_LOG_LEVEL" envDefault:"info"`
	SiteURL    string `env:"METAON_SITE_URL" envDefault:"http://localhost:8080"`

	// Content store backend: file, sqlite or redis. All three persist the
	// content root as one blob under one key.
	StoreBackend string `env:"METAON_STORE_BACKEND" envDefault:"file"`
	DataPath     string `env:"METAON_DATA_PATH" envDefault:"./data/metaon.json"`
	DBPath       string `env:"METAON_DB_PATH" envDefault:"./data/metaon.db"`
	RedisURL     string `env:"METAON_REDIS_URL"`

	// Admin gate. A plaintext shared password, or a bcrypt hash that takes
	// precedence when set. This is a UI gate, not a security boundary.
	AdminPassword     string `env:"METAON_ADMIN_PASSWORD" envDefault:"uni01"`
	AdminPasswordHash string `env:"METAON_ADMIN_PASSWORD_HASH"`

	SessionSecret string `env:"METAON_SESSION_SECRET,required"`

	// Chat assistant configuration.
	ChatProvider string `env:"METAON_CHAT_PROVIDER" envDefault:"gemini"`
	ChatModel    string `env:"METAON_CHAT_MODEL" envDefault:"gemini-3-pro-preview"`
	GeminiAPIKey string `env:"METAON_GEMINI_API_KEY"`
	OpenAIAPIKey string `env:"METAON_OPENAI_API_KEY"`

	// Form relay endpoint for the home-page inquiry path.
	RelayURL string `env:"METAON_RELAY_URL" envDefault:"https://formspree.io/f/xeeolglw"`

	// Optional GeoLite2-Country database for contact form country prefill.
	GeoIPDBPath string `env:"METAON_GEOIP_DB_PATH"`

	// Snapshot backups. An empty schedule disables the job.
	BackupDir      string `env:"METAON_BACKUP_DIR" envDefault:"./data/backups"`
	BackupSchedule string `env:"METAON_BACKUP_SCHEDULE" envDefault:"@daily"`
}

// MinSessionSecretLength is the minimum required length for the session
// secret, which also keys CSRF token authentication.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("METAON_SESSION_SECRET must be at least %d bytes long, got %d; "+
			"generate one with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendSQLite:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("METAON_REDIS_URL is required when METAON_STORE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, sqlite or redis)", cfg.StoreBackend)
	}

	switch cfg.ChatProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown chat provider %q (want gemini or openai)", cfg.ChatProvider)
	}

	return cfg, nil
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// ChatAPIKey returns the API key for the configured chat provider.
func (c Config) ChatAPIKey() string {
	if c.ChatProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// ChatEnabled returns true if the chat assistant is configured.
func (c Config) ChatEnabled() bool {
	return c.ChatAPIKey() != ""
}

// RelayEnabled returns true if a form relay endpoint is configured.
func (c Config) RelayEnabled() bool {
	return c.RelayURL != ""
}

// GeoIPEnabled returns true if a GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// BackupsEnabled returns true if the snapshot backup job is configured.
func (c Config) BackupsEnabled() bool {
	return c.BackupSchedule != ""
}
