package domain

import (
	"context"
	"time"
)

// Provider represents any text-completion backend.
type Provider interface {
	// Complete sends a one-shot completion request and returns the full
	// response. Failures are typed: *TransportError for network faults,
	// *APIError for provider-reported errors, *MalformedResponseError for
	// unrecognized payloads.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string

	// IsModelSupported checks if the provider supports the given model.
	IsModelSupported(ctx context.Context, model string) bool

	// SupportedModels returns the models the provider is known to serve.
	SupportedModels(ctx context.Context) []string
}

// ProviderRegistry manages available providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (Provider, error)

	// GetByModel retrieves a provider that serves the given model.
	GetByModel(ctx context.Context, model string) (Provider, error)

	// List returns all registered provider names.
	List(ctx context.Context) ([]string, error)
}

// ResponseCache stores completion responses keyed by request content.
type ResponseCache interface {
	// Get returns the cached response for an identical prior request, or
	// ErrCacheMiss.
	Get(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Set stores a response for the given request.
	Set(ctx context.Context, req *CompletionRequest, resp *CompletionResponse, ttl time.Duration) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// GemStore reads and writes hidden-gem records.
type GemStore interface {
	// ListGems returns gems matching the filter, ordered by id.
	ListGems(ctx context.Context, filter GemFilter) ([]HiddenGem, error)

	// IncrementViews bumps the view counter of one gem.
	IncrementViews(ctx context.Context, gemID int64) error

	// AddFavorite records a user's favorite for a gem.
	AddFavorite(ctx context.Context, gemID int64, userID string) error
}

// ProfileStore reads and rates cultural-connection profiles.
type ProfileStore interface {
	// ListProfiles returns all profiles ordered by id.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// GetProfile returns one profile by id.
	GetProfile(ctx context.Context, profileID int64) (*Profile, error)

	// UpdateRating applies a new rating and returns the refreshed profile.
	UpdateRating(ctx context.Context, profileID int64, rating float64) (*Profile, error)
}

// DocumentRenderer renders a completed itinerary into a downloadable
// document.
type DocumentRenderer interface {
	Render(itinerary *Itinerary) ([]byte, error)
}
