package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	rediscache "github.com/ReyhanHussain/YatraGPT/internal/cache/redis"
	"github.com/ReyhanHussain/YatraGPT/internal/config"
	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/http"
	"github.com/ReyhanHussain/YatraGPT/internal/http/middleware"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
	"github.com/ReyhanHussain/YatraGPT/internal/pdf"
	"github.com/ReyhanHussain/YatraGPT/internal/planner"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/echo"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/openai"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/openrouter"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/registry"
	"github.com/ReyhanHussain/YatraGPT/internal/store/postgres"
	"github.com/ReyhanHussain/YatraGPT/internal/typing"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(observability.NewEventBus); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}
	if err := container.Provide(func(bus *observability.EventBus) domain.EventPublisher {
		return bus
	}); err != nil {
		log.Fatalf("Failed to provide event publisher: %v", err)
	}

	// Provider Registry
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// OpenRouter Provider
	if err := container.Provide(func(cfg *openrouter.Config) *openrouter.Client {
		return openrouter.NewClient(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenRouter provider: %v", err)
	}

	// OpenAI Provider (optional, nil when unconfigured)
	if err := container.Provide(func(cfg *openai.Config) (*openai.Provider, error) {
		if cfg.APIKey == "" {
			return nil, nil
		}
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI provider: %v", err)
	}

	// Echo Provider (offline fallback)
	if err := container.Provide(echo.NewProvider); err != nil {
		log.Fatalf("Failed to provide echo provider: %v", err)
	}

	// Register providers with registry (invoked for side effects)
	if err := container.Invoke(func(
		reg domain.ProviderRegistry,
		openrouterProvider *openrouter.Client,
		openaiProvider *openai.Provider,
		echoProvider *echo.Provider,
	) error {
		ctx := context.Background()

		if err := reg.Register(ctx, openrouterProvider); err != nil {
			return fmt.Errorf("failed to register OpenRouter provider: %w", err)
		}

		// Register OpenAI if enabled
		if openaiProvider != nil {
			if err := reg.Register(ctx, openaiProvider); err != nil {
				return fmt.Errorf("failed to register OpenAI provider: %w", err)
			}
		}

		if err := reg.Register(ctx, echoProvider); err != nil {
			return fmt.Errorf("failed to register echo provider: %w", err)
		}

		return nil
	}); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	// Completion cache (optional, nil when unconfigured)
	if err := container.Provide(func(cfg *config.RedisConfig) domain.ResponseCache {
		if cfg.Addr == "" {
			return nil
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		return rediscache.NewResponseCache(client)
	}); err != nil {
		log.Fatalf("Failed to provide response cache: %v", err)
	}

	// Stores (optional, nil when no database is configured)
	if err := container.Provide(func(cfg *config.DatabaseConfig) (*postgres.Store, error) {
		if cfg.DSN == "" {
			return nil, nil
		}
		pool, err := postgres.NewPool(context.Background(), cfg.DSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool), nil
	}); err != nil {
		log.Fatalf("Failed to provide store: %v", err)
	}
	if err := container.Provide(func(store *postgres.Store) domain.GemStore {
		if store == nil {
			return nil
		}
		return store
	}); err != nil {
		log.Fatalf("Failed to provide gem store: %v", err)
	}
	if err := container.Provide(func(store *postgres.Store) domain.ProfileStore {
		if store == nil {
			return nil
		}
		return store
	}); err != nil {
		log.Fatalf("Failed to provide profile store: %v", err)
	}

	// Typing engine
	if err := container.Provide(typing.NewReplayer); err != nil {
		log.Fatalf("Failed to provide replayer: %v", err)
	}

	// Domain Services
	if err := container.Provide(planner.NewPlannerService); err != nil {
		log.Fatalf("Failed to provide planner service: %v", err)
	}
	if err := container.Provide(planner.NewChatService); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}
	if err := container.Provide(func() domain.DocumentRenderer {
		return pdf.NewRenderer()
	}); err != nil {
		log.Fatalf("Failed to provide renderer: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
