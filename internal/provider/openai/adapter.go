// Package openai provides an adapter for the OpenAI API using the official
// SDK, for deployments that talk to OpenAI directly instead of through
// OpenRouter. It implements the domain.Provider interface and converts
// between domain types and SDK types.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

const providerName = "openai"

// Provider implements the domain.Provider interface for OpenAI.
type Provider struct {
	client openai.Client
	models map[string]bool
}

// NewProvider creates a new OpenAI provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	models := make(map[string]bool, len(supportedModels))
	for _, m := range supportedModels {
		models[m] = true
	}

	return &Provider{
		client: openai.NewClient(opts...),
		models: models,
	}, nil
}

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API")

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
	}

	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, &domain.MalformedResponseError{Message: "no choices in response"}
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return &domain.CompletionResponse{
		Model:    string(resp.Model),
		Provider: providerName,
		Content:  resp.Choices[0].Message.Content,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		FinishTime: time.Now(),
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// IsModelSupported checks if the provider supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return p.models[model]
}

// SupportedModels returns the models this provider is known to serve.
func (p *Provider) SupportedModels(_ context.Context) []string {
	return supportedModels
}
