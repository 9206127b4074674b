// Package prompt builds the system and user prompts sent to the completion
// providers. The templates pin down the output structure the response
// parsers expect: a fixed title line, "Day N:" headings, the four daily
// activity slots, and the three uppercase information sections.
package prompt

import (
	"fmt"
	"strings"
)

// ItinerarySystem primes the model for itinerary generation.
const ItinerarySystem = "You are a cultural travel itinerary expert that creates detailed day-by-day plans focusing on authentic local experiences."

// RecommendationSystem primes the model for recommendation generation.
const RecommendationSystem = "You are a cultural travel expert specializing in personalized recommendations."

// ChatSystem defines the chatbot's behavior and response style. The
// formatting rules matter: the typing engine segments replies on the bold
// headings and bullet glyphs requested here.
const ChatSystem = `You are YatraGPT's expert Cultural and Tourism AI Assistant. Provide engaging, insightful information about cultural traditions, travel destinations, and historical sites worldwide.

FORMAT YOUR RESPONSES CAREFULLY:
- Use a warm, confident tone that's accessible and informative
- For section headings: Use bold with double asterisks (e.g., **Cultural Highlights**)
- For lists: Use bullet points with the • symbol (never use raw * asterisks)
- Keep formatting clean with minimal spacing between sections
- Ensure headings never repeat consecutively

CONTENT GUIDELINES:
- Highlight 3-5 specific examples with brief, compelling descriptions
- Emphasize unique cultural aspects, historical significance, and traveler experiences
- Provide practical information when relevant (best times to visit, local tips)
- Keep responses concise, focusing on quality over quantity
- Prioritize accuracy, cultural sensitivity, and memorable details

Make your responses both educational and enjoyable, inspiring users to explore global heritage.`

// paceLevels maps the 1-5 pace slider to its wording in the prompt.
var paceLevels = [...]string{"very relaxed", "relaxed", "moderate", "active", "very active"}

// PaceLabel returns the wording for a 1-5 pace value, defaulting to
// moderate when out of range.
func PaceLabel(pace int) string {
	if pace < 1 || pace > len(paceLevels) {
		return "moderate"
	}
	return paceLevels[pace-1]
}

// Itinerary builds the user prompt for a day-by-day cultural itinerary.
func Itinerary(destination string, interests []string, days, pace int) string {
	interestsText := "covering diverse cultural experiences"
	if len(interests) > 0 {
		interestsText = "focused on " + strings.Join(interests, ", ")
	}

	return fmt.Sprintf(`Create a %d-day cultural itinerary for %s %s at a %s pace.

Format the itinerary as follows:
1. Start with "Cultural Journey to %s" as title
2. Include a brief introduction paragraph about the cultural highlights
3. For each day, include:
   - Day heading with a thematic title
   - Morning activity with specific venue name and description
   - Lunch recommendation with restaurant name
   - Afternoon activity with specific venue name and description
   - Evening activity with specific venue name and description
4. End with these distinct sections:

ESSENTIAL TRAVEL INFORMATION:
- LANGUAGE BASICS: 3-5 useful phrases with translations
- GETTING AROUND: Local transport methods and costs
- CULTURAL KNOW-HOW: Important customs and etiquette
- FOOD GUIDE: Must-try local dishes and where to find them
- VISITOR TIPS: Best times to visit attractions

PRACTICAL MATTERS:
- SEASONAL ADVICE: Weather patterns and ideal months to visit
- SAFETY & HEALTH: Local emergency numbers and safety tips
- MONEY MATTERS: Currency information and payment methods
- PACKING LIST: Essential items specific to this destination
- BUDGET PLANNING: Approximate costs for activities and meals

INSIDER KNOWLEDGE:
- HIDDEN GEMS: Lesser-known spots loved by locals
- LOCAL FESTIVALS: Notable cultural events throughout the year
- SHOPPING GUIDE: Best places for authentic souvenirs

Use **bold** formatting for all venue names, attraction names, and restaurant names.`,
		days, destination, interestsText, PaceLabel(pace), destination)
}

// Recommendations builds the user prompt for personalized recommendations.
func Recommendations(destination string, interests []string, travelStyle, additionalRequests string) string {
	if destination == "" {
		destination = "my destination"
	}
	interestsText := "authentic cultural experiences"
	if len(interests) > 0 {
		interestsText = strings.Join(interests, ", ")
	}
	if travelStyle == "" {
		travelStyle = "balanced between popular and off-the-beaten-path"
	}
	if additionalRequests == "" {
		additionalRequests = "none"
	}

	return fmt.Sprintf(`Provide 5 specific cultural travel recommendations for %s.

Traveler interests: %s
Travel style: %s
Special requests: %s

For each recommendation:
1. Start with a clear title
2. Include the specific venue or experience name
3. Explain its cultural significance
4. Provide practical details like location, cost, or timing
5. Format all venue and attraction names in **bold**`,
		destination, interestsText, travelStyle, additionalRequests)
}
