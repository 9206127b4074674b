package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 120, cfg.Server.WriteTimeout)
		require.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		require.Equal(t, 60, cfg.OpenRouter.Timeout)
		require.Equal(t, "YatraGPT", cfg.OpenRouter.Title)
		require.Empty(t, cfg.OpenRouter.APIKey)
		require.Empty(t, cfg.Redis.Addr)
		require.Empty(t, cfg.Database.DSN)
		require.Equal(t, "meta-llama/llama-3.2-3b-instruct:free", cfg.Models.ChatModel)
		require.Equal(t, "qwen/qwen-2.5-72b-instruct:free", cfg.Models.ItineraryModel)
		require.Equal(t, 1000, cfg.Models.MaxTokens)
		require.Equal(t, 5000, cfg.Models.ItineraryMaxTokens)
		require.InDelta(t, 0.7, cfg.Models.Temperature, 0.001)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test-key")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("DATABASE_DSN", "postgres://test")
		t.Setenv("CHAT_MODEL", "vendor/chat-model")
		t.Setenv("CACHE_TTL_SECONDS", "600")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "sk-or-test-key", cfg.OpenRouter.APIKey)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "postgres://test", cfg.Database.DSN)
		require.Equal(t, "vendor/chat-model", cfg.Models.ChatModel)
		require.Equal(t, 600, cfg.Models.CacheTTLSeconds)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	t.Run("should fan out sub-configs and generation settings", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()
		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.Server)
		require.Same(t, &cfg.CORS, deps.CORS)
		require.NotNil(t, deps.Settings)
		require.Equal(t, cfg.Models.ItineraryModel, deps.Settings.ItineraryModel)
		require.Equal(t, time.Hour, deps.Settings.CacheTTL)
	})
}
