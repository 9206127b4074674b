// Package redis implements an exact-match completion cache. Itinerary and
// recommendation prompts are deterministic per form submission, so a
// content-hash lookup catches repeat requests without any similarity
// machinery.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

const keyPrefix = "completion:"

// ResponseCache implements domain.ResponseCache on Redis.
type ResponseCache struct {
	client *redis.Client
}

// NewResponseCache creates a new Redis-backed response cache.
func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{
		client: client,
	}
}

// Key derives the cache key from everything that shapes the completion:
// model, both prompts, and the sampling parameters.
func Key(req *domain.CompletionRequest) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%d|%g",
		req.Model, req.SystemPrompt, req.UserPrompt, req.MaxTokens, req.Temperature))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached response for an identical prior request.
func (c *ResponseCache) Get(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	data, err := c.client.Get(ctx, Key(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var resp domain.CompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}

	observability.FromContext(ctx).Debug("completion cache hit",
		observability.String("model", resp.Model))

	return &resp, nil
}

// Set stores a response for the given request.
func (c *ResponseCache) Set(ctx context.Context, req *domain.CompletionRequest, resp *domain.CompletionResponse, ttl time.Duration) error {
	if req == nil {
		return errors.New("request cannot be nil")
	}
	if resp == nil {
		return errors.New("response cannot be nil")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := c.client.Set(ctx, Key(req), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}
