// Package di provides dependency injection configuration for the review
// reporting server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/di/providers"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/service"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)
	do.Provide(injector, providers.ProvideTokenService)

	// Worksheet layer
	do.Provide(injector, providers.ProvideSheetSource)
	do.Provide(injector, providers.ProvideSheetCache)

	// Delivery layer
	do.Provide(injector, providers.ProvideChat)
	do.Provide(injector, providers.ProvideComposer)
	do.Provide(injector, providers.ProvideScheduler)
	do.Provide(injector, providers.ProvideDirectory)

	// Business services
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvidePrintingService)
	do.Provide(injector, providers.ProvideCopyrightService)
	do.Provide(injector, providers.ProvideAuthService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	_ = do.MustInvoke[sheet.Source](injector)
	_ = do.MustInvoke[*sheet.Cache](injector)

	_ = do.MustInvoke[notify.Chat](injector)
	_ = do.MustInvoke[*notify.Composer](injector)
	_ = do.MustInvoke[*dispatch.Scheduler](injector)
	_ = do.MustInvoke[domain.Directory](injector)

	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.PrintingService](injector)
	_ = do.MustInvoke[*service.CopyrightService](injector)
	_ = do.MustInvoke[*service.AuthService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
