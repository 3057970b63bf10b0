package config

import (
	"strings"
	"testing"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("METAON_SESSION_SECRET", testSecret)
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want localhost:8080", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true by default")
	}
	if cfg.StoreBackend != BackendFile {
		t.Errorf("StoreBackend = %q, want file", cfg.StoreBackend)
	}
	if cfg.ChatProvider != ProviderGemini {
		t.Errorf("ChatProvider = %q, want gemini", cfg.ChatProvider)
	}
	if cfg.AdminPassword != "uni01" {
		t.Errorf("AdminPassword = %q, want default gate password", cfg.AdminPassword)
	}
	if !cfg.RelayEnabled() {
		t.Error("RelayEnabled() = false, want true with default relay URL")
	}
	if cfg.ChatEnabled() {
		t.Error("ChatEnabled() = true, want false without API key")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("METAON_SESSION_SECRET", "short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with a short session secret")
	}
	if !strings.Contains(err.Error(), "METAON_SESSION_SECRET") {
		t.Errorf("error %q does not name the offending variable", err)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("METAON_STORE_BACKEND", "dynamo")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with an unknown store backend")
	}
}

func TestLoadRedisBackendRequiresURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("METAON_STORE_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without METAON_REDIS_URL")
	}

	t.Setenv("METAON_REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreBackend != BackendRedis {
		t.Errorf("StoreBackend = %q, want redis", cfg.StoreBackend)
	}
}

func TestChatAPIKeyFollowsProvider(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("METAON_GEMINI_API_KEY", "g-key")
	t.Setenv("METAON_OPENAI_API_KEY", "o-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.ChatAPIKey(); got != "g-key" {
		t.Errorf("ChatAPIKey() = %q, want gemini key", got)
	}

	t.Setenv("METAON_CHAT_PROVIDER", "openai")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.ChatAPIKey(); got != "o-key" {
		t.Errorf("ChatAPIKey() = %q, want openai key", got)
	}
}
