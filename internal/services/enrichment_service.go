package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"familytravel/internal/models/response_models"
)

type EnrichmentServiceInterface interface {
	EnrichItinerary(ctx context.Context, destination string, itinerary *response_models.Itinerary)
}

type EnrichmentService struct {
	geocoder GeocoderInterface
	photos   PhotoLookupInterface
	logger   *zap.Logger
}

func NewEnrichmentService(geocoder GeocoderInterface, photos PhotoLookupInterface, logger *zap.Logger) EnrichmentServiceInterface {
	return &EnrichmentService{
		geocoder: geocoder,
		photos:   photos,
		logger:   logger,
	}
}

// EnrichItinerary resolves coordinates and a photo for every activity, in
// order. Activities that already carry a coordinate or photo are left alone,
// so re-enriching the same itinerary is a no-op. Lookup failures downgrade to
// warnings; enrichment never fails the plan.
func (s *EnrichmentService) EnrichItinerary(ctx context.Context, destination string, itinerary *response_models.Itinerary) {
	for i := range itinerary.Activities {
		act := &itinerary.Activities[i]
		biased := fmt.Sprintf("%s, near %s", act.Location, destination)

		if act.Coordinates == nil {
			coords := s.geocodeActivity(ctx, act, destination, biased)
			if coords != nil {
				act.Coordinates = coords
			} else {
				itinerary.Warnings = append(itinerary.Warnings,
					fmt.Sprintf("could not locate %q on the map", act.Title))
			}
		}

		if act.PhotoURL == "" {
			photoURL, err := s.photos.FindPhoto(ctx, biased)
			if err != nil {
				s.logger.Warn("photo lookup failed",
					zap.String("activity", act.Title), zap.Error(err))
			} else {
				act.PhotoURL = photoURL
			}
		}
	}
}

// geocodeActivity tries the model-supplied location first, then falls back to
// the activity title anchored to the destination. Either query may legitimately
// match nothing; errors are logged and treated as a miss.
func (s *EnrichmentService) geocodeActivity(ctx context.Context, act *response_models.Activity, destination, biased string) *response_models.Coordinates {
	coords, err := s.geocoder.Geocode(ctx, biased)
	if err != nil {
		s.logger.Warn("geocoding failed",
			zap.String("query", biased), zap.Error(err))
	}
	if coords != nil {
		return coords
	}

	alt := fmt.Sprintf("%s, %s", act.Title, destination)
	coords, err = s.geocoder.Geocode(ctx, alt)
	if err != nil {
		s.logger.Warn("geocoding failed",
			zap.String("query", alt), zap.Error(err))
	}
	return coords
}
