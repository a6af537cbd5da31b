package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiItineraryClient implements ItineraryClientInterface using Google's
// Gemini models.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

// NewGeminiItineraryClient creates a new Gemini client.
func NewGeminiItineraryClient(apiKey, model string) (ItineraryClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateItineraryJSON asks for JSON-only output. Low temperature keeps the
// structure stable; ResponseMIMEType spares us most markdown-fence cleanup,
// though the response is still run through CleanJSONResponse downstream
// because the model does not always honor it.
func (c *GeminiItineraryClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// GenerateShortText produces a single short free-form string.
func (c *GeminiItineraryClient) GenerateShortText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(200)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// Close closes the underlying Gemini client.
func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}
