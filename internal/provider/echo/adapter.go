// Package echo provides an offline provider that returns canned travel
// content shaped like real completions. It implements the domain.Provider
// interface without network calls, so the full generate/parse/replay
// pipeline can run in development and tests.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

const (
	providerName = "echo"
	modelName    = "echo"
)

// Provider implements the domain.Provider interface with canned responses.
type Provider struct {
	models map[string]bool
}

// NewProvider creates a new echo provider. No configuration is required as
// this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		models: map[string]bool{
			modelName: true,
		},
	}
}

// Complete returns a canned completion matching the request's intent: an
// itinerary-shaped document for itinerary prompts, a formatted cultural
// blurb otherwise.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if !p.models[req.Model] {
		return nil, fmt.Errorf("model %s is not supported by echo provider", req.Model)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("serving canned completion")

	content := cannedChat
	if strings.Contains(strings.ToLower(req.SystemPrompt), "itinerary") {
		content = cannedItinerary
	}

	tokens := len(strings.Fields(content))

	return &domain.CompletionResponse{
		Model:    req.Model,
		Provider: providerName,
		Content:  content,
		Usage: domain.Usage{
			PromptTokens:     len(strings.Fields(req.UserPrompt)),
			CompletionTokens: tokens,
			TotalTokens:      len(strings.Fields(req.UserPrompt)) + tokens,
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

// SupportedModels returns the models this provider serves.
func (p *Provider) SupportedModels(_ context.Context) []string {
	return []string{modelName}
}

const cannedItinerary = `Cultural Journey to Sampleville
A compact taste of Sampleville's old quarter, crafted for a single unhurried day.

Day 1: Old Quarter Wanderings
Morning
Start at the **Heritage Museum** for an overview of the region's craft traditions.
Lunch
Try the thali at **Courtyard Kitchen**, a family-run spot near the museum.
Afternoon
Walk the **Artisan Lane** workshops and watch block printing in progress.
Evening
Catch the sunset drumming circle at **Riverside Ghat**.

ESSENTIAL TRAVEL INFORMATION:
- LANGUAGE BASICS: "Namaste" - hello; "Dhanyavaad" - thank you
- GETTING AROUND: Shared rickshaws cover the old quarter for small change
- CULTURAL KNOW-HOW: Remove shoes before entering temples
- FOOD GUIDE: Street-side chaat near the clock tower is the local favourite
- VISITOR TIPS: Museums are quietest right after opening

PRACTICAL MATTERS:
- SEASONAL ADVICE: October to February is the comfortable season
- SAFETY & HEALTH: Bottled water only; pharmacy on Main Bazaar
- MONEY MATTERS: Cash preferred in the old quarter
- PACKING LIST: Light scarf for temple visits
- BUDGET PLANNING: A full day runs modest by most standards

INSIDER KNOWLEDGE:
- HIDDEN GEMS: The stepwell behind the grain market is usually empty
- LOCAL FESTIVALS: The lantern fair lights the river each spring
- SHOPPING GUIDE: Buy block prints directly from Artisan Lane`

const cannedChat = `**Cultural Highlights**
Sampleville rewards slow exploration. A few places worth your time:

• The **Heritage Museum** anchors the old quarter with three centuries of craft
• **Artisan Lane** still works to the rhythm of hand looms
• The riverside drumming circle gathers every evening at dusk

Best visited October through February, when the courtyards stay cool all afternoon.`
