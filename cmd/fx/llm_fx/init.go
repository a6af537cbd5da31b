package llm_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familytravel/pkg/config"
	"familytravel/pkg/utils"
)

var Module = fx.Provide(ProvideItineraryClient)

// ProvideItineraryClient creates the AI client for the configured provider.
func ProvideItineraryClient(cfg *config.Config, logger *zap.Logger) (utils.ItineraryClientInterface, error) {
	logger.Info("initializing AI client",
		zap.String("provider", cfg.AIProvider),
		zap.String("model", cfg.AIModel))

	return utils.NewItineraryClient(cfg.AIProvider, cfg.AIAPIKey, cfg.AIModel)
}
