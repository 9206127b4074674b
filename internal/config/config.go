package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/openai"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/openrouter"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	OpenRouter openrouter.Config
	OpenAI     openai.Config
	Redis      RedisConfig
	Database   DatabaseConfig
	Models     ModelsConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains completion-cache settings. An empty Addr disables
// caching.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DatabaseConfig points at the Supabase Postgres instance backing hidden
// gems and profiles. An empty DSN disables those endpoints.
type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN"`
}

// ModelsConfig selects the models and sampling parameters for generation.
type ModelsConfig struct {
	ChatModel          string  `env:"CHAT_MODEL"           envDefault:"meta-llama/llama-3.2-3b-instruct:free"`
	ItineraryModel     string  `env:"ITINERARY_MODEL"      envDefault:"qwen/qwen-2.5-72b-instruct:free"`
	MaxTokens          int     `env:"MAX_TOKENS"           envDefault:"1000"`
	ItineraryMaxTokens int     `env:"ITINERARY_MAX_TOKENS" envDefault:"5000"`
	Temperature        float64 `env:"TEMPERATURE"          envDefault:"0.7"`
	CacheTTLSeconds    int     `env:"CACHE_TTL_SECONDS"    envDefault:"3600"`
}

// DepConfig is used for dependency injection with dig. The provider
// configs get named fields because their unqualified type names collide.
type DepConfig struct {
	dig.Out
	Server     *ServerConfig
	CORS       *CORSConfig
	OpenRouter *openrouter.Config
	OpenAI     *openai.Config
	Redis      *RedisConfig
	Database   *DatabaseConfig
	Settings   *domain.GenerationSettings
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency
// injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		OpenRouter: &cfg.OpenRouter,
		OpenAI:     &cfg.OpenAI,
		Redis:      &cfg.Redis,
		Database:   &cfg.Database,
		Settings: &domain.GenerationSettings{
			ChatModel:          cfg.Models.ChatModel,
			ItineraryModel:     cfg.Models.ItineraryModel,
			MaxTokens:          cfg.Models.MaxTokens,
			ItineraryMaxTokens: cfg.Models.ItineraryMaxTokens,
			Temperature:        cfg.Models.Temperature,
			CacheTTL:           time.Duration(cfg.Models.CacheTTLSeconds) * time.Second,
		},
	}
}
