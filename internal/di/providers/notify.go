package providers

import (
	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/service"
)

// ProvideChat provides the Slack delivery client.
func ProvideChat(i do.Injector) (notify.Chat, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return notify.NewSlackChat(cfg.Chat.Token, log.Logger), nil
}

// ProvideComposer provides the message composer.
func ProvideComposer(i do.Injector) (*notify.Composer, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return notify.NewComposer(cfg.Engine.BookTitleTruncate, cfg.Engine.IncludeSent), nil
}

// ProvideScheduler provides the paced dispatch scheduler.
func ProvideScheduler(i do.Injector) (*dispatch.Scheduler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return dispatch.New(cfg.Engine.BulkPace, log.Logger), nil
}

// ProvideDirectory provides the PM roster and channel directory.
func ProvideDirectory(i do.Injector) (domain.Directory, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return service.LoadDirectory(cfg)
}
