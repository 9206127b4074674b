package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/prompt"
)

func TestPaceLabel(t *testing.T) {
	t.Run("should map the slider range to its wording", func(t *testing.T) {
		require.Equal(t, "very relaxed", prompt.PaceLabel(1))
		require.Equal(t, "moderate", prompt.PaceLabel(3))
		require.Equal(t, "very active", prompt.PaceLabel(5))
	})

	t.Run("should default to moderate out of range", func(t *testing.T) {
		require.Equal(t, "moderate", prompt.PaceLabel(0))
		require.Equal(t, "moderate", prompt.PaceLabel(6))
		require.Equal(t, "moderate", prompt.PaceLabel(-1))
	})
}

func TestItinerary(t *testing.T) {
	t.Run("should pin the structure the parser depends on", func(t *testing.T) {
		p := prompt.Itinerary("Varanasi", []string{"temples", "music"}, 3, 4)

		require.Contains(t, p, "3-day cultural itinerary for Varanasi")
		require.Contains(t, p, "focused on temples, music")
		require.Contains(t, p, "active pace")
		require.Contains(t, p, `"Cultural Journey to Varanasi"`)
		require.Contains(t, p, "ESSENTIAL TRAVEL INFORMATION:")
		require.Contains(t, p, "PRACTICAL MATTERS:")
		require.Contains(t, p, "INSIDER KNOWLEDGE:")
		require.Contains(t, p, "LANGUAGE BASICS")
		require.Contains(t, p, "HIDDEN GEMS")
	})

	t.Run("should fall back to generic interests", func(t *testing.T) {
		p := prompt.Itinerary("Varanasi", nil, 2, 3)
		require.Contains(t, p, "covering diverse cultural experiences")
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("should include traveler context", func(t *testing.T) {
		p := prompt.Recommendations("Hampi", []string{"ruins"}, "slow travel", "vegetarian food only")

		require.Contains(t, p, "recommendations for Hampi")
		require.Contains(t, p, "Traveler interests: ruins")
		require.Contains(t, p, "Travel style: slow travel")
		require.Contains(t, p, "Special requests: vegetarian food only")
	})

	t.Run("should fill defaults for missing fields", func(t *testing.T) {
		p := prompt.Recommendations("", nil, "", "")

		require.Contains(t, p, "recommendations for my destination")
		require.Contains(t, p, "authentic cultural experiences")
		require.Contains(t, p, "balanced between popular and off-the-beaten-path")
		require.Contains(t, p, "Special requests: none")
	})
}
