package echo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/parse"
	"github.com/ReyhanHussain/YatraGPT/internal/provider/echo"
)

func TestProvider_Complete(t *testing.T) {
	t.Run("should serve an itinerary-shaped document for itinerary prompts", func(t *testing.T) {
		provider := echo.NewProvider()

		resp, err := provider.Complete(context.Background(), &domain.CompletionRequest{
			Model:        "echo",
			SystemPrompt: "You produce a day-by-day itinerary.",
			UserPrompt:   "One day in Sampleville.",
		})
		require.NoError(t, err)
		require.Equal(t, "echo", resp.Provider)

		// The canned document must survive the real parser.
		itinerary, err := parse.ParseItinerary(resp.Content, "Sampleville", 1)
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 1)
		require.NotEmpty(t, itinerary.Days[0].Activities.Morning)
		require.NotEmpty(t, itinerary.Days[0].Activities.Evening)
		require.Contains(t, itinerary.EssentialTravelInfo, "LANGUAGE BASICS")
	})

	t.Run("should serve a chat blurb for other prompts", func(t *testing.T) {
		provider := echo.NewProvider()

		resp, err := provider.Complete(context.Background(), &domain.CompletionRequest{
			Model:        "echo",
			SystemPrompt: "You are a helpful travel assistant.",
			UserPrompt:   "Tell me about Sampleville.",
		})
		require.NoError(t, err)
		require.Contains(t, resp.Content, "**Cultural Highlights**")
		require.Greater(t, resp.Usage.TotalTokens, 0)
	})

	t.Run("should reject unsupported models", func(t *testing.T) {
		provider := echo.NewProvider()

		_, err := provider.Complete(context.Background(), &domain.CompletionRequest{Model: "gpt-4o"})
		require.Error(t, err)
	})

	t.Run("should reject nil requests", func(t *testing.T) {
		provider := echo.NewProvider()

		_, err := provider.Complete(context.Background(), nil)
		require.Error(t, err)
	})
}

func TestProvider_Models(t *testing.T) {
	t.Run("should advertise only the echo model", func(t *testing.T) {
		provider := echo.NewProvider()
		ctx := context.Background()

		require.Equal(t, []string{"echo"}, provider.SupportedModels(ctx))
		require.True(t, provider.IsModelSupported(ctx, "echo"))
		require.False(t, provider.IsModelSupported(ctx, "other"))
	})
}
