package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
	"github.com/ReyhanHussain/YatraGPT/internal/prompt"
	"github.com/ReyhanHussain/YatraGPT/internal/typing"
)

// ChatService answers free-form cultural questions and replays the answer
// through the typing engine. An unrecognizable completion body degrades to
// a generic answer instead of failing; transport and API errors propagate.
type ChatService struct {
	registry domain.ProviderRegistry
	replayer *typing.Replayer
	settings *domain.GenerationSettings
}

// NewChatService creates a new chat service (DI constructor).
func NewChatService(
	registry domain.ProviderRegistry,
	replayer *typing.Replayer,
	settings *domain.GenerationSettings,
) *ChatService {
	return &ChatService{
		registry: registry,
		replayer: replayer,
		settings: settings,
	}
}

// Respond obtains a reply to message and replays it chunk-by-chunk into
// sink. It returns the full normalized reply, which equals the last value
// the sink received. A nil sink skips the replay and returns the reply
// directly.
func (s *ChatService) Respond(ctx context.Context, message string, sink typing.Sink) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message cannot be empty")
	}

	ctx = observability.WithModel(ctx, s.settings.ChatModel)
	logger := observability.FromContext(ctx)

	provider, err := s.registry.GetByModel(ctx, s.settings.ChatModel)
	if err != nil {
		return "", fmt.Errorf("provider routing failed: %w", err)
	}

	ctx = observability.WithProvider(ctx, provider.Name())

	resp, err := provider.Complete(ctx, &domain.CompletionRequest{
		Model:        s.settings.ChatModel,
		SystemPrompt: prompt.ChatSystem,
		UserPrompt:   message,
		MaxTokens:    s.settings.MaxTokens,
		Temperature:  s.settings.Temperature,
	})

	var content string
	var malformed *domain.MalformedResponseError
	switch {
	case errors.As(err, &malformed):
		// A readable degraded answer beats a hard failure here.
		logger.Warn("malformed completion, serving degraded reply", observability.Error(err))
		content = domain.DegradedResponseText
	case err != nil:
		return "", fmt.Errorf("failed to get AI response: %w", err)
	default:
		content = resp.Content
	}

	normalized := typing.Normalize(content)

	if sink != nil {
		if err := s.replayer.Replay(ctx, content, sink); err != nil {
			return "", fmt.Errorf("replay interrupted: %w", err)
		}
	}

	return normalized, nil
}
