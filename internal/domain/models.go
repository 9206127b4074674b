package domain

import "time"

// CompletionRequest represents a single one-shot LLM request. It is
// constructed per call and never mutated afterwards.
type CompletionRequest struct {
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system_prompt"`
	UserPrompt   string  `json:"user_prompt"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
}

// CompletionResponse represents a successful completion.
type CompletionResponse struct {
	Model      string    `json:"model"`
	Provider   string    `json:"provider"`
	Content    string    `json:"content"`
	Usage      Usage     `json:"usage"`
	FinishTime time.Time `json:"finish_time"`
}

// Usage tracks token consumption as reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Itinerary is the structured result of parsing a free-text itinerary
// completion. Days holds however many day blocks were found, in order;
// it is never null-padded to the requested length.
type Itinerary struct {
	Title               string    `json:"title"`
	Subtitle            string    `json:"subtitle"`
	Destination         string    `json:"destination"`
	Introduction        string    `json:"introduction"`
	Days                []DayPlan `json:"days"`
	EssentialTravelInfo string    `json:"essential_travel_info"`
	PracticalMatters    string    `json:"practical_matters"`
	InsiderKnowledge    string    `json:"insider_knowledge"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// DayPlan is one day of an itinerary. The four activity slots are a fixed
// vocabulary; any of them may be empty when the model skipped that slot.
type DayPlan struct {
	Title      string     `json:"title"`
	Activities Activities `json:"activities"`
}

// Activities holds the four daily activity slots in their fixed order.
type Activities struct {
	Morning   string `json:"morning"`
	Lunch     string `json:"lunch"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// Recommendation is one extracted travel recommendation.
type Recommendation struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// RecommendationType is the fixed Type value of every Recommendation.
const RecommendationType = "recommendation"

// ItineraryRequest is the input to itinerary generation.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	Interests   []string `json:"interests"`
	Days        int      `json:"days"`
	Pace        int      `json:"pace"`
}

// RecommendationRequest is the input to recommendation generation.
type RecommendationRequest struct {
	Destination        string   `json:"destination"`
	Interests          []string `json:"interests"`
	TravelStyle        string   `json:"travel_style"`
	AdditionalRequests string   `json:"additional_requests"`
}

// GenerationSettings carries the model ids and sampling parameters used for
// generation. Injected at construction instead of living in mutable global
// configuration.
type GenerationSettings struct {
	ChatModel          string
	ItineraryModel     string
	MaxTokens          int
	ItineraryMaxTokens int
	Temperature        float64
	CacheTTL           time.Duration
}

// HiddenGem is a community-sourced off-the-beaten-path location record.
type HiddenGem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Difficulty  string    `json:"difficulty"`
	CrowdLevel  string    `json:"crowd_level"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// GemFilter narrows a hidden-gem listing. Empty or "all" values match
// everything for that field.
type GemFilter struct {
	State      string
	Difficulty string
	Crowd      string
}

// Profile is a cultural-connection profile with its community rating.
type Profile struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Bio         string  `json:"bio"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
}
