// Package providers contains dependency injection providers for the
// review reporting server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting review reporting server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"cache_ttl", cfg.Sheet.CacheTTL,
		"bulk_pace", cfg.Engine.BulkPace,
	)

	return log, nil
}
