package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/logger"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// ProvideSheetSource provides the Google Sheets read-only client.
func ProvideSheetSource(i do.Injector) (sheet.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return sheet.NewGoogleSource(context.Background(), cfg.Sheet.SpreadsheetID, cfg.Sheet.CredentialsFile, log.Logger)
}

// ProvideSheetCache provides the TTL cache fronting the worksheet source.
func ProvideSheetCache(i do.Injector) (*sheet.Cache, error) {
	cfg := do.MustInvoke[*config.Config](i)
	source := do.MustInvoke[sheet.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return sheet.NewCache(source, cfg.Sheet.CacheTTL, log.Logger), nil
}
