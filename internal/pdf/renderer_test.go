package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/pdf"
)

func sampleItinerary() *domain.Itinerary {
	return &domain.Itinerary{
		Title:        "Cultural Journey to Udaipur",
		Subtitle:     "Crafted with YatraGPT",
		Destination:  "UDAIPUR",
		Introduction: "Udaipur folds white palaces around a string of lakes.",
		Days: []domain.DayPlan{
			{
				Title: "Day 1: Lakes and Palaces",
				Activities: domain.Activities{
					Morning:   "Morning\nBoat across **Lake Pichola** before the haze lifts.",
					Lunch:     "Lunch\nRooftop thali at **Ambrai Ghat**.",
					Afternoon: "Afternoon\nWander the **City Palace** museum wings.",
					Evening:   "Evening\nSunset from the **Monsoon Palace** road.",
				},
			},
			{
				Title: "Day 2: Old City",
				Activities: domain.Activities{
					Morning: "Morning\nMiniature painting workshops near Jagdish Temple.",
				},
			},
		},
		EssentialTravelInfo: "ESSENTIAL TRAVEL INFORMATION\n• **LANGUAGE BASICS**:\n  Namaste - hello",
		PracticalMatters:    "PRACTICAL MATTERS\n• **SEASONAL ADVICE**:\n  Winters are mild",
		InsiderKnowledge:    "INSIDER KNOWLEDGE\n• **HIDDEN GEMS**:\n  The stepwell behind the market",
		GeneratedAt:         time.Now(),
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Run("should produce a valid PDF document", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		document, err := renderer.Render(sampleItinerary())
		require.NoError(t, err)
		require.NotEmpty(t, document)
		require.Equal(t, "%PDF", string(document[:4]))
	})

	t.Run("should render itineraries with empty sections", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		itinerary := sampleItinerary()
		itinerary.Days = nil
		itinerary.Introduction = ""
		itinerary.EssentialTravelInfo = ""
		itinerary.PracticalMatters = ""
		itinerary.InsiderKnowledge = ""

		document, err := renderer.Render(itinerary)
		require.NoError(t, err)
		require.NotEmpty(t, document)
	})

	t.Run("should reject nil itineraries", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		_, err := renderer.Render(nil)
		require.Error(t, err)
	})
}
