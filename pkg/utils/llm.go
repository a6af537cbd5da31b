package utils

import (
	"context"
	"fmt"
	"strings"
)

// ItineraryClientInterface is the minimal surface the planner needs from a
// text-generation provider: one JSON-mode call for the itinerary itself and
// one plain-text call used for per-activity kids challenges.
type ItineraryClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
	GenerateShortText(ctx context.Context, prompt string) (string, error)
}

// NewItineraryClient creates either an OpenAI or Gemini client based on the
// configured provider.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIItineraryClient(apiKey, model), nil
	case "gemini":
		return NewGeminiItineraryClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
