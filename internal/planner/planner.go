// Package planner orchestrates travel-plan generation: it builds the
// prompt, obtains a completion from whichever provider serves the
// configured model, and hands the raw text to the parsers. Each call is an
// independent request/parse sequence; no state is shared between calls.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
	"github.com/ReyhanHussain/YatraGPT/internal/parse"
	"github.com/ReyhanHussain/YatraGPT/internal/prompt"
)

const maxItineraryDays = 14

// PlannerService generates itineraries and recommendations.
type PlannerService struct {
	registry  domain.ProviderRegistry
	cache     domain.ResponseCache
	publisher domain.EventPublisher
	settings  *domain.GenerationSettings
}

// NewPlannerService creates a new planner service (DI constructor). Cache
// and publisher may be nil to disable those concerns.
func NewPlannerService(
	registry domain.ProviderRegistry,
	cache domain.ResponseCache,
	publisher domain.EventPublisher,
	settings *domain.GenerationSettings,
) *PlannerService {
	return &PlannerService{
		registry:  registry,
		cache:     cache,
		publisher: publisher,
		settings:  settings,
	}
}

// GenerateItinerary produces a structured itinerary for the request.
func (s *PlannerService) GenerateItinerary(ctx context.Context, req *domain.ItineraryRequest) (*domain.Itinerary, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Destination == "" {
		return nil, errors.New("destination cannot be empty")
	}
	if req.Days < 1 || req.Days > maxItineraryDays {
		return nil, fmt.Errorf("days must be between 1 and %d", maxItineraryDays)
	}

	ctx = observability.WithDestination(ctx, req.Destination)
	ctx = observability.WithModel(ctx, s.settings.ItineraryModel)

	completion := &domain.CompletionRequest{
		Model:        s.settings.ItineraryModel,
		SystemPrompt: prompt.ItinerarySystem,
		UserPrompt:   prompt.Itinerary(req.Destination, req.Interests, req.Days, req.Pace),
		MaxTokens:    s.settings.ItineraryMaxTokens,
		Temperature:  s.settings.Temperature,
	}

	resp, err := s.complete(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	itinerary, err := parse.ParseItinerary(resp.Content, req.Destination, req.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to parse itinerary: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, "itinerary.generated", map[string]interface{}{
			"destination":    req.Destination,
			"requested_days": req.Days,
			"matched_days":   len(itinerary.Days),
			"provider":       resp.Provider,
		})
	}

	return itinerary, nil
}

// GenerateRecommendations produces personalized recommendations.
func (s *PlannerService) GenerateRecommendations(ctx context.Context, req *domain.RecommendationRequest) ([]domain.Recommendation, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	ctx = observability.WithDestination(ctx, req.Destination)
	ctx = observability.WithModel(ctx, s.settings.ItineraryModel)

	completion := &domain.CompletionRequest{
		Model:        s.settings.ItineraryModel,
		SystemPrompt: prompt.RecommendationSystem,
		UserPrompt:   prompt.Recommendations(req.Destination, req.Interests, req.TravelStyle, req.AdditionalRequests),
		MaxTokens:    s.settings.ItineraryMaxTokens,
		Temperature:  s.settings.Temperature,
	}

	resp, err := s.complete(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	recs, err := parse.ParseRecommendations(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, "recommendations.generated", map[string]interface{}{
			"destination": req.Destination,
			"count":       len(recs),
			"provider":    resp.Provider,
		})
	}

	return recs, nil
}

// complete runs one completion with a cache-aside check. Cache failures are
// logged and ignored; the provider call is the source of truth.
func (s *PlannerService) complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	logger := observability.FromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, req)
		if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			logger.Warn("cache get failed, continuing without cache", observability.Error(err))
		}
		if cached != nil {
			logger.Info("cache hit, returning cached completion")
			return cached, nil
		}
	}

	provider, err := s.registry.GetByModel(ctx, req.Model)
	if err != nil {
		return nil, fmt.Errorf("provider routing failed: %w", err)
	}

	ctx = observability.WithProvider(ctx, provider.Name())

	resp, err := provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, resp, s.settings.CacheTTL); err != nil {
			logger.Warn("failed to store completion in cache", observability.Error(err))
		}
	}

	return resp, nil
}
