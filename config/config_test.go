package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("GIFTWISE_SERVER_PORT")
		os.Unsetenv("GIFTWISE_SERVER_ENVIRONMENT")
		os.Unsetenv("GIFTWISE_STORE_DATABASE_URL")
		os.Unsetenv("GIFTWISE_CACHE_TYPE")
		os.Unsetenv("GIFTWISE_CACHE_REDIS_URL")
		os.Unsetenv("GIFTWISE_CACHE_TTL")
		os.Unsetenv("GIFTWISE_RECOMMEND_RESULT_COUNT")
		os.Unsetenv("GIFTWISE_RECOMMEND_REFRESH_MINUTES")
		os.Unsetenv("GIFTWISE_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
		}
		if cfg.Recommend.ResultCount != 5 {
			t.Errorf("Recommend.ResultCount = %d, want 5", cfg.Recommend.ResultCount)
		}
		if cfg.Recommend.RefreshMinutes != 15 {
			t.Errorf("Recommend.RefreshMinutes = %d, want 15", cfg.Recommend.RefreshMinutes)
		}
		if cfg.RateLimit.PerIP != 60 {
			t.Errorf("RateLimit.PerIP = %d, want 60", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GIFTWISE_SERVER_PORT", "9090")
		os.Setenv("GIFTWISE_SERVER_ENVIRONMENT", "production")
		os.Setenv("GIFTWISE_STORE_DATABASE_URL", "postgres://db:5432/catalog")
		os.Setenv("GIFTWISE_CACHE_TYPE", "redis")
		os.Setenv("GIFTWISE_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("GIFTWISE_CACHE_TTL", "1h")
		os.Setenv("GIFTWISE_RECOMMEND_RESULT_COUNT", "8")
		os.Setenv("GIFTWISE_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Store.DatabaseURL != "postgres://db:5432/catalog" {
			t.Errorf("Store.DatabaseURL = %s, want postgres://db:5432/catalog", cfg.Store.DatabaseURL)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Recommend.ResultCount != 8 {
			t.Errorf("Recommend.ResultCount = %d, want 8", cfg.Recommend.ResultCount)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("rejects invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GIFTWISE_CACHE_TYPE", "memcached")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid cache type error")
		}
	})

	t.Run("redis cache requires a redis URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("GIFTWISE_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want missing redis URL error")
		}
	})
}
