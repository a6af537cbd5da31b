package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultGeminiModel     = "gemini-2.5-flash"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultLLMTimeout      = 30 * time.Second
	defaultGeoTimeout      = 10 * time.Second
	defaultGeocodeInterval = 1500 * time.Millisecond
	defaultCacheTTL        = time.Hour

	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	defaultPlacesBaseURL    = "https://maps.googleapis.com/maps/api/place"

	// Nominatim's usage policy requires an identifying User-Agent.
	defaultUserAgent = "family-travel-planner/1.0"
)

// Config holds all process-wide settings. It is read once at startup and
// passed into each component, never mutated afterwards.
type Config struct {
	Port string

	AIProvider string // "gemini" or "openai"
	AIAPIKey   string
	AIModel    string

	MapsAPIKey string

	NominatimBaseURL string
	PlacesBaseURL    string
	UserAgent        string

	LLMTimeout      time.Duration
	GeoTimeout      time.Duration
	GeocodeInterval time.Duration
	CacheTTL        time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment. A missing AI key or maps key is an error: the caller is
// expected to refuse to start rather than fail per request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvWithDefault("PORT", defaultPort),
		AIProvider:       strings.ToLower(getEnvWithDefault("AI_PROVIDER", "gemini")),
		MapsAPIKey:       os.Getenv("MAPS_API_KEY"),
		NominatimBaseURL: getEnvWithDefault("NOMINATIM_BASE_URL", defaultNominatimBaseURL),
		PlacesBaseURL:    getEnvWithDefault("PLACES_BASE_URL", defaultPlacesBaseURL),
		UserAgent:        getEnvWithDefault("GEOCODER_USER_AGENT", defaultUserAgent),
		LLMTimeout:       defaultLLMTimeout,
		GeoTimeout:       defaultGeoTimeout,
		GeocodeInterval:  defaultGeocodeInterval,
		CacheTTL:         defaultCacheTTL,
	}

	switch cfg.AIProvider {
	case "gemini":
		cfg.AIAPIKey = os.Getenv("GEMINI_API_KEY")
		cfg.AIModel = getEnvWithDefault("GEMINI_MODEL", defaultGeminiModel)
		if cfg.AIAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using the gemini provider")
		}
	case "openai":
		cfg.AIAPIKey = os.Getenv("OPENAI_API_KEY")
		cfg.AIModel = getEnvWithDefault("OPENAI_MODEL", defaultOpenAIModel)
		if cfg.AIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using the openai provider")
		}
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s (use 'gemini' or 'openai')", cfg.AIProvider)
	}

	if cfg.MapsAPIKey == "" {
		return nil, fmt.Errorf("MAPS_API_KEY is required for photo lookup and map tiles")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
