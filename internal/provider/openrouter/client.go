// Package openrouter implements the domain.Provider interface against the
// OpenRouter chat-completions API. OpenRouter fronts many upstream models
// whose response payloads differ, so content extraction tolerates several
// shapes rather than trusting one schema.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

const providerName = "openrouter"

// minAPIKeyLen guards UpdateCredential against obviously truncated keys.
const minAPIKeyLen = 10

// Client is an HTTP client for the OpenRouter chat-completions endpoint.
// It implements domain.Provider.
type Client struct {
	mu         sync.RWMutex
	apiKey     string
	baseURL    string
	referer    string
	title      string
	models     []string
	httpClient *http.Client
}

// NewClient creates a new OpenRouter client from an injected configuration.
func NewClient(config Config) *Client {
	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		referer: config.Referer,
		title:   config.Title,
		models:  config.Models,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// UpdateCredential replaces the API key used for subsequent requests.
func (c *Client) UpdateCredential(apiKey string) error {
	if len(strings.TrimSpace(apiKey)) < minAPIKeyLen {
		return errors.New("invalid API key format")
	}

	c.mu.Lock()
	c.apiKey = strings.TrimSpace(apiKey)
	c.mu.Unlock()
	return nil
}

// OpenRouter wire structures.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature,omitempty"`
	Stream      bool         `json:"stream"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse keeps choices loosely typed: different upstream models put
// the text in different places.
type apiResponse struct {
	Error   *apiError        `json:"error"`
	Model   string           `json:"model"`
	Choices []map[string]any `json:"choices"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Message string `json:"message"`
}

// Complete sends a non-streaming completion request.
//
// Failure modes: *domain.TransportError when the call itself cannot
// complete, *domain.APIError when the body carries a provider-reported
// error object, *domain.MalformedResponseError when the payload is not a
// recognizable completion. A choice object with no known content field
// degrades to a fixed fallback string instead of failing.
func (c *Client) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	c.mu.RLock()
	apiKey := c.apiKey
	c.mu.RUnlock()
	if apiKey == "" {
		return nil, errors.New("API key is not configured")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenRouter API", observability.String("model", req.Model))

	body, err := json.Marshal(apiRequest{
		Model: req.Model,
		Messages: []apiMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stream:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("HTTP-Referer", c.referer)
	httpReq.Header.Set("X-Title", c.title)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("OpenRouter request failed", observability.Error(err))
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}

	var decoded apiResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &domain.MalformedResponseError{
			Message: fmt.Sprintf("undecodable body (status %d)", resp.StatusCode),
		}
	}

	// Providers report errors in the body, sometimes with HTTP 200.
	if decoded.Error != nil {
		message := decoded.Error.Message
		if message == "" {
			message = "API returned an error"
		}
		logger.Error("OpenRouter reported an error", observability.String("api_error", message))
		return nil, &domain.APIError{Message: message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.APIError{
			Message: fmt.Sprintf("API returned status %d", resp.StatusCode),
		}
	}

	if len(decoded.Choices) == 0 {
		return nil, &domain.MalformedResponseError{Message: "no choices in response"}
	}

	content := extractContent(decoded.Choices[0])

	logger.Debug("OpenRouter call succeeded",
		observability.Int("prompt_tokens", decoded.Usage.PromptTokens),
		observability.Int("completion_tokens", decoded.Usage.CompletionTokens),
	)

	model := decoded.Model
	if model == "" {
		model = req.Model
	}

	return &domain.CompletionResponse{
		Model:    model,
		Provider: providerName,
		Content:  content,
		Usage: domain.Usage{
			PromptTokens:     decoded.Usage.PromptTokens,
			CompletionTokens: decoded.Usage.CompletionTokens,
			TotalTokens:      decoded.Usage.TotalTokens,
		},
		FinishTime: time.Now(),
	}, nil
}

// extractContent pulls the text out of one choice object, trying the known
// shapes in order: chat-message content, a flat content field, a legacy
// text field, then any string-valued field at all. The last resort is
// non-deterministic across payload shapes and exists only so a degraded
// answer reaches the user instead of an error.
func extractContent(choice map[string]any) string {
	if message, ok := choice["message"].(map[string]any); ok {
		if content, ok := message["content"].(string); ok && content != "" {
			return strings.TrimSpace(content)
		}
	}

	if content, ok := choice["content"].(string); ok && content != "" {
		return strings.TrimSpace(content)
	}

	if text, ok := choice["text"].(string); ok && text != "" {
		return strings.TrimSpace(text)
	}

	for _, v := range choice {
		if s, ok := v.(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}

	return domain.DegradedResponseText
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return providerName
}

// IsModelSupported checks if the provider serves the given model.
// OpenRouter model ids are namespaced ("vendor/model"), so any namespaced
// id is accepted beyond the configured list.
func (c *Client) IsModelSupported(_ context.Context, model string) bool {
	for _, m := range c.models {
		if m == model {
			return true
		}
	}
	return strings.Contains(model, "/")
}

// SupportedModels returns the configured model list.
func (c *Client) SupportedModels(_ context.Context) []string {
	return c.models
}
