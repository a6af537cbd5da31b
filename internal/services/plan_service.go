package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"familytravel/internal/models/request_models"
	"familytravel/internal/models/response_models"
	"familytravel/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.TravelPlan, error)
}

type PlanService struct {
	itineraries ItineraryServiceInterface
	enrichment  EnrichmentServiceInterface
	maps        MapServiceInterface
	logger      *zap.Logger
}

func NewPlanService(
	itineraries ItineraryServiceInterface,
	enrichment EnrichmentServiceInterface,
	maps MapServiceInterface,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		itineraries: itineraries,
		enrichment:  enrichment,
		maps:        maps,
		logger:      logger,
	}
}

// CreatePlan runs the full pipeline: generate, enrich, map.
func (s *PlanService) CreatePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.TravelPlan, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if req.Days < 1 || req.Days > 30 {
		return nil, utils.ErrInvalidInput
	}
	for _, age := range req.KidsAges {
		if age < 0 || age > 18 {
			return nil, utils.ErrInvalidInput
		}
	}

	itinerary, err := s.itineraries.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, err
	}

	s.enrichment.EnrichItinerary(ctx, req.Destination, itinerary)

	mapDoc, err := s.maps.BuildMap(ctx, req.Destination, itinerary)
	if err != nil {
		return nil, err
	}

	s.logger.Info("travel plan created",
		zap.String("destination", req.Destination),
		zap.Int("days", req.Days),
		zap.Int("activities", len(itinerary.Activities)),
		zap.Int("markers", len(mapDoc.Markers)),
		zap.Int("warnings", len(itinerary.Warnings)))

	return &response_models.TravelPlan{
		Destination: req.Destination,
		Days:        req.Days,
		Itinerary:   itinerary,
		Map:         mapDoc,
	}, nil
}
