package service

import (
	"context"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/metrics"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/normalize"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// PrintingService exposes the print-order worksheet as normalized records
// plus a cost/volume rollup.
type PrintingService struct {
	cache *sheet.Cache
	cfg   *config.Config
}

// NewPrintingService creates the printing service.
func NewPrintingService(cache *sheet.Cache, cfg *config.Config) *PrintingService {
	return &PrintingService{cache: cache, cfg: cfg}
}

// PrintingResult is the dashboard payload for the printing worksheet.
type PrintingResult struct {
	Orders  []domain.PrintOrder `json:"orders"`
	Summary domain.PrintSummary `json:"summary"`
}

// Data fetches, normalizes, and summarizes the print orders. When
// upcomingOnly is set, the order listing is restricted to upcoming rows;
// the summary always covers the full worksheet.
func (s *PrintingService) Data(ctx context.Context, upcomingOnly bool) (*PrintingResult, error) {
	table, err := s.cache.Values(ctx, s.cfg.Sheet.WorksheetPrinting)
	if err != nil {
		return nil, err
	}
	orders, err := normalize.Prints(table)
	if err != nil {
		return nil, err
	}

	listing := orders
	if upcomingOnly {
		listing = make([]domain.PrintOrder, 0)
		for _, o := range orders {
			if o.Type == domain.PrintTypeUpcoming {
				listing = append(listing, o)
			}
		}
	}

	return &PrintingResult{
		Orders:  listing,
		Summary: metrics.Prints(orders),
	}, nil
}
