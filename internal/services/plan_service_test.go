package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"familytravel/internal/models/request_models"
	"familytravel/internal/models/response_models"
	"familytravel/pkg/utils"
)

func newPipelinePlanService(client utils.ItineraryClientInterface, geocoder GeocoderInterface, photos PhotoLookupInterface) PlanServiceInterface {
	logger := zap.NewNop()
	return NewPlanService(
		newTestItineraryService(client),
		NewEnrichmentService(geocoder, photos, logger),
		NewMapService(geocoder, "", logger),
		logger,
	)
}

func TestCreatePlanValidatesInput(t *testing.T) {
	svc := newPipelinePlanService(&fakeItineraryClient{}, &fakeGeocoder{}, &fakePhotoLookup{})

	tests := []struct {
		name string
		req  request_models.PlanRequest
	}{
		{"empty destination", request_models.PlanRequest{Destination: "   ", Days: 3}},
		{"zero days", request_models.PlanRequest{Destination: "Lisbon", Days: 0}},
		{"too many days", request_models.PlanRequest{Destination: "Lisbon", Days: 31}},
		{"negative age", request_models.PlanRequest{Destination: "Lisbon", Days: 3, WithKids: true, KidsAges: []int{-1}}},
		{"age too high", request_models.PlanRequest{Destination: "Lisbon", Days: 3, WithKids: true, KidsAges: []int{19}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlan(context.Background(), tt.req)
			require.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func mapOfCoords(points map[string][2]float64) map[string]*response_models.Coordinates {
	out := make(map[string]*response_models.Coordinates, len(points))
	for query, p := range points {
		out[query] = &response_models.Coordinates{Lat: p[0], Lng: p[1]}
	}
	return out
}

func TestCreatePlanProducesMarkersAndWarnings(t *testing.T) {
	client := &fakeItineraryClient{jsonResponses: []string{validPlanJSON}}
	geocoder := &fakeGeocoder{results: mapOfCoords(map[string][2]float64{
		"Sagrada Familia, Barcelona, Spain, near Barcelona, Spain": {41.4036, 2.1744},
		"La Boqueria, Barcelona, Spain, near Barcelona, Spain":     {41.3817, 2.1716},
	})}
	photos := &fakePhotoLookup{results: map[string]string{
		"Sagrada Familia, Barcelona, Spain, near Barcelona, Spain": "https://photos.example/sf.jpg",
	}}
	svc := newPipelinePlanService(client, geocoder, photos)

	plan, err := svc.CreatePlan(context.Background(), request_models.PlanRequest{
		Destination: "Barcelona, Spain",
		Days:        2,
	})

	require.NoError(t, err)
	require.Equal(t, "Barcelona, Spain", plan.Destination)
	require.Len(t, plan.Itinerary.Activities, 3)
	require.Len(t, plan.Map.Markers, 2)
	require.NotNil(t, plan.Map.Bounds)

	// Park Guell had no geocoder hit on either query, so it is warned about
	// and left off the map.
	require.Len(t, plan.Itinerary.Warnings, 1)
	require.Contains(t, plan.Itinerary.Warnings[0], `"Park Guell"`)
	require.Equal(t, "https://photos.example/sf.jpg", plan.Itinerary.Activities[0].PhotoURL)
}

func TestCreatePlanSurvivesAllAdaptersFailing(t *testing.T) {
	client := &fakeItineraryClient{jsonResponses: []string{validPlanJSON}}
	geocoder := &fakeGeocoder{results: mapOfCoords(map[string][2]float64{
		"Barcelona, Spain": {41.3874, 2.1686},
	})}
	svc := newPipelinePlanService(client, geocoder, &fakePhotoLookup{})

	plan, err := svc.CreatePlan(context.Background(), request_models.PlanRequest{
		Destination: "Barcelona, Spain",
		Days:        2,
	})

	require.NoError(t, err)
	require.Empty(t, plan.Map.Markers)
	require.Equal(t, 13, plan.Map.Zoom)
	require.InDelta(t, 41.3874, plan.Map.Center.Lat, 1e-9)
	require.Len(t, plan.Itinerary.Warnings, 3)
}

func TestCreatePlanPropagatesGenerationFailure(t *testing.T) {
	client := &fakeItineraryClient{jsonResponses: []string{"garbage", "garbage"}}
	svc := newPipelinePlanService(client, &fakeGeocoder{}, &fakePhotoLookup{})

	_, err := svc.CreatePlan(context.Background(), request_models.PlanRequest{
		Destination: "Barcelona, Spain",
		Days:        2,
	})

	require.ErrorIs(t, err, utils.ErrItineraryGeneration)
}
