package config_fx

import (
	"log"

	"go.uber.org/fx"

	"familytravel/pkg/config"
)

var Module = fx.Provide(ProvideConfig)

// ProvideConfig loads configuration once at startup. A missing API key is not
// recoverable at runtime, so the process refuses to start.
func ProvideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
