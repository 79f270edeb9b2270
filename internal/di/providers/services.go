package providers

import (
	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/service"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// ProvideReviewService provides the review classification and delivery
// service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	cache := do.MustInvoke[*sheet.Cache](i)
	composer := do.MustInvoke[*notify.Composer](i)
	chat := do.MustInvoke[notify.Chat](i)
	scheduler := do.MustInvoke[*dispatch.Scheduler](i)
	directory := do.MustInvoke[domain.Directory](i)
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(cache, composer, chat, scheduler, directory, cfg, log.Logger), nil
}

// ProvidePrintingService provides the print-order rollup service.
func ProvidePrintingService(i do.Injector) (*service.PrintingService, error) {
	cache := do.MustInvoke[*sheet.Cache](i)
	cfg := do.MustInvoke[*config.Config](i)

	return service.NewPrintingService(cache, cfg), nil
}

// ProvideCopyrightService provides the copyright rollup service.
func ProvideCopyrightService(i do.Injector) (*service.CopyrightService, error) {
	cache := do.MustInvoke[*sheet.Cache](i)
	cfg := do.MustInvoke[*config.Config](i)

	return service.NewCopyrightService(cache, cfg), nil
}

// ProvideAuthService provides the dashboard login service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(cfg.Auth.OperatorsFile, tokens, log.Logger)
}
