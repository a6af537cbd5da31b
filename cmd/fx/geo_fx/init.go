package geo_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familytravel/internal/services"
	"familytravel/pkg/config"
)

var Module = fx.Provide(
	ProvideGeocoder,
	ProvidePhotoLookup)

func ProvideGeocoder(cfg *config.Config, logger *zap.Logger) services.GeocoderInterface {
	return services.NewNominatimGeocoder(cfg, logger)
}

func ProvidePhotoLookup(cfg *config.Config, logger *zap.Logger) services.PhotoLookupInterface {
	return services.NewGooglePlacesPhotoClient(cfg, logger)
}
