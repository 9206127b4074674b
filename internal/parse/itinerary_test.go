package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/parse"
)

const sampleItinerary = `Cultural Journey to Kyoto
Kyoto rewards travellers who slow down: temples, tea houses, and lanes
that have kept their shape for centuries.

Day 1: Temples and Tea
Morning
Visit temple in the eastern hills before the crowds arrive.
Lunch
Local café near the philosopher's path serves seasonal sets.
Afternoon
Walk the Gion district and watch craftsmen at work.
Evening
Evening stroll along the river with street food stalls.

Day 2: Markets and Museums
Morning
Nishiki market opens early for breakfast skewers.
Evening
Night illumination at the pagoda.

ESSENTIAL TRAVEL INFORMATION:
LANGUAGE BASICS: "Arigatou" - thank you
GETTING AROUND: Buses loop the main temple routes

PRACTICAL MATTERS:
SEASONAL ADVICE: Autumn foliage peaks in late November

INSIDER KNOWLEDGE:
HIDDEN GEMS: The moss garden requires a reservation`

func TestParseItinerary(t *testing.T) {
	t.Run("should extract day blocks with all four activity slots", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 2)
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 2)

		day1 := itinerary.Days[0]
		require.Equal(t, "Day 1: Temples and Tea", day1.Title)
		require.Contains(t, day1.Activities.Morning, "Visit temple")
		require.Contains(t, day1.Activities.Lunch, "Local café")
		require.Contains(t, day1.Activities.Afternoon, "Gion district")
		require.Contains(t, day1.Activities.Evening, "river")

		// Activity regions include their own marker word but not the next one.
		require.NotContains(t, day1.Activities.Morning, "Lunch")
		require.NotContains(t, day1.Activities.Lunch, "Afternoon")
	})

	t.Run("should leave skipped activity slots empty", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 2)
		require.NoError(t, err)

		day2 := itinerary.Days[1]
		require.Contains(t, day2.Activities.Morning, "Nishiki market")
		require.Empty(t, day2.Activities.Lunch)
		require.Empty(t, day2.Activities.Afternoon)
		require.Contains(t, day2.Activities.Evening, "pagoda")
	})

	t.Run("should never exceed the requested day count", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 1)
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 1)
	})

	t.Run("should omit days the model skipped without padding", func(t *testing.T) {
		text := "Cultural Journey to Oslo\nA short trip.\n\nDay 1: Harbour\nMorning\nWalk the wharf.\n\nDay 3: Museums\nMorning\nShip museum."
		itinerary, err := parse.ParseItinerary(text, "Oslo", 3)
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 2)
		require.Equal(t, "Day 1: Harbour", itinerary.Days[0].Title)
		require.Equal(t, "Day 3: Museums", itinerary.Days[1].Title)
	})

	t.Run("should extract the introduction between title and first day", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 2)
		require.NoError(t, err)
		require.Contains(t, itinerary.Introduction, "rewards travellers")
		require.NotContains(t, itinerary.Introduction, "Day 1:")
	})

	t.Run("should fall back to a welcome line when no title is present", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary("Day 1: Only\nMorning\nSomething.", "Lima", 1)
		require.NoError(t, err)
		require.Equal(t, "Welcome to Lima!", itinerary.Introduction)
	})

	t.Run("should format the three information sections", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 2)
		require.NoError(t, err)

		require.Contains(t, itinerary.EssentialTravelInfo, "ESSENTIAL TRAVEL INFORMATION")
		require.Contains(t, itinerary.EssentialTravelInfo, "LANGUAGE BASICS")
		require.Contains(t, itinerary.PracticalMatters, "PRACTICAL MATTERS")
		require.Contains(t, itinerary.PracticalMatters, "SEASONAL ADVICE")
		require.Contains(t, itinerary.InsiderKnowledge, "INSIDER KNOWLEDGE")
		require.Contains(t, itinerary.InsiderKnowledge, "moss garden")
	})

	t.Run("should produce section titles even when sections are missing", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary("Day 1: Short\nMorning\nWalk.", "Lima", 1)
		require.NoError(t, err)
		require.Equal(t, "ESSENTIAL TRAVEL INFORMATION", itinerary.EssentialTravelInfo)
		require.Equal(t, "PRACTICAL MATTERS", itinerary.PracticalMatters)
		require.Equal(t, "INSIDER KNOWLEDGE", itinerary.InsiderKnowledge)
	})

	t.Run("should fill title, subtitle, and destination fields", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary(sampleItinerary, "Kyoto", 2)
		require.NoError(t, err)
		require.Equal(t, "Cultural Journey to Kyoto", itinerary.Title)
		require.Equal(t, "Crafted with YatraGPT", itinerary.Subtitle)
		require.Equal(t, "KYOTO", itinerary.Destination)
		require.False(t, itinerary.GeneratedAt.IsZero())
	})

	t.Run("should return parse error only for empty input", func(t *testing.T) {
		_, err := parse.ParseItinerary("   \n  ", "Kyoto", 2)
		require.Error(t, err)

		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("should return a sparse itinerary when nothing matches", func(t *testing.T) {
		itinerary, err := parse.ParseItinerary("The model wrote prose with no structure at all.", "Kyoto", 3)
		require.NoError(t, err)
		require.Empty(t, itinerary.Days)
	})
}
