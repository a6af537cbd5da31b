package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familytravel/internal/api/controllers"
	"familytravel/internal/services"
	"familytravel/pkg/config"
	"familytravel/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryService,
	ProvideEnrichmentService,
	ProvideMapService,
	ProvidePlanService,
	ProvidePlanController)

func ProvideItineraryService(client utils.ItineraryClientInterface, cfg *config.Config, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, cfg.LLMTimeout, logger)
}

func ProvideEnrichmentService(geocoder services.GeocoderInterface, photos services.PhotoLookupInterface, logger *zap.Logger) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(geocoder, photos, logger)
}

func ProvideMapService(geocoder services.GeocoderInterface, cfg *config.Config, logger *zap.Logger) services.MapServiceInterface {
	return services.NewMapService(geocoder, cfg.MapsAPIKey, logger)
}

func ProvidePlanService(
	itineraries services.ItineraryServiceInterface,
	enrichment services.EnrichmentServiceInterface,
	maps services.MapServiceInterface,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(itineraries, enrichment, maps, logger)
}

func ProvidePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
