package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"familytravel/internal/models/response_models"
	"familytravel/pkg/config"
	mem "familytravel/pkg/memcache"
)

// GeocoderInterface resolves a free-text place description to coordinates.
// A nil result with a nil error means "no match"; callers treat both misses
// and errors as "leave the activity unplottable".
type GeocoderInterface interface {
	Geocode(ctx context.Context, query string) (*response_models.Coordinates, error)
}

// nominatimResult is one hit from the Nominatim search API. Coordinates come
// back as strings.
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NominatimGeocoder queries the OpenStreetMap Nominatim service. Nominatim is
// keyless but rate-limited, so every live request goes through a token-bucket
// limiter and results (including misses) are cached for the configured TTL.
type NominatimGeocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	cache      *mem.TTLCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewNominatimGeocoder(cfg *config.Config, logger *zap.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		httpClient: &http.Client{Timeout: cfg.GeoTimeout},
		baseURL:    cfg.NominatimBaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Every(cfg.GeocodeInterval), 1),
		cache:      mem.NewTTLCache(),
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
	}
}

func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*response_models.Coordinates, error) {
	if cached, ok := g.cache.Get(query); ok {
		return cached.(*response_models.Coordinates), nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(g.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid nominatim base url: %w", err)
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}

	if len(results) == 0 {
		g.logger.Debug("geocoder miss", zap.String("query", query))
		g.cache.Set(query, (*response_models.Coordinates)(nil), g.cacheTTL)
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim bad latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim bad longitude %q: %w", results[0].Lon, err)
	}

	coords := &response_models.Coordinates{Lat: lat, Lng: lng}
	g.cache.Set(query, coords, g.cacheTTL)
	return coords, nil
}
