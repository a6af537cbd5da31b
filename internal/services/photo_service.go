package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"familytravel/pkg/config"
	mem "familytravel/pkg/memcache"
)

// PhotoLookupInterface finds one representative photo URL for a place.
// An empty string with a nil error means "no photo found".
type PhotoLookupInterface interface {
	FindPhoto(ctx context.Context, query string) (string, error)
}

type placesTextSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name   string `json:"name"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// GooglePlacesPhotoClient resolves a place description to a photo URL via the
// Places Text Search endpoint.
type GooglePlacesPhotoClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *mem.TTLCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewGooglePlacesPhotoClient(cfg *config.Config, logger *zap.Logger) *GooglePlacesPhotoClient {
	return &GooglePlacesPhotoClient{
		httpClient: &http.Client{Timeout: cfg.GeoTimeout},
		baseURL:    cfg.PlacesBaseURL,
		apiKey:     cfg.MapsAPIKey,
		cache:      mem.NewTTLCache(),
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
	}
}

func (p *GooglePlacesPhotoClient) FindPhoto(ctx context.Context, query string) (string, error) {
	if cached, ok := p.cache.Get(query); ok {
		return cached.(string), nil
	}

	u, err := url.Parse(p.baseURL + "/textsearch/json")
	if err != nil {
		return "", fmt.Errorf("invalid places base url: %w", err)
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", p.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var payload placesTextSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("places decode: %w", err)
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		p.cache.Set(query, "", p.cacheTTL)
		return "", nil
	default:
		return "", fmt.Errorf("places returned status %q", payload.Status)
	}

	photoURL := ""
	for _, result := range payload.Results {
		if len(result.Photos) > 0 && result.Photos[0].PhotoReference != "" {
			photoURL = p.photoURL(result.Photos[0].PhotoReference)
			break
		}
	}
	if photoURL == "" {
		p.logger.Debug("photo lookup miss", zap.String("query", query))
	}

	p.cache.Set(query, photoURL, p.cacheTTL)
	return photoURL, nil
}

func (p *GooglePlacesPhotoClient) photoURL(reference string) string {
	q := url.Values{}
	q.Set("maxwidth", "400")
	q.Set("photo_reference", reference)
	q.Set("key", p.apiKey)
	return p.baseURL + "/photo?" + q.Encode()
}
