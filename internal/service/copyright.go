package service

import (
	"context"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/metrics"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/normalize"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// CopyrightService exposes the copyright-submission worksheet as
// normalized records plus success-rate and spend rollups.
type CopyrightService struct {
	cache *sheet.Cache
	cfg   *config.Config
}

// NewCopyrightService creates the copyright service.
func NewCopyrightService(cache *sheet.Cache, cfg *config.Config) *CopyrightService {
	return &CopyrightService{cache: cache, cfg: cfg}
}

// CopyrightResult is the dashboard payload for the copyright worksheet.
type CopyrightResult struct {
	Records       []domain.CopyrightRecord `json:"records"`
	Summary       domain.CopyrightSummary  `json:"summary"`
	CountryCounts []domain.ValueCount      `json:"country_counts"`
}

// Data fetches, normalizes, and summarizes the copyright submissions.
func (s *CopyrightService) Data(ctx context.Context) (*CopyrightResult, error) {
	table, err := s.cache.Values(ctx, s.cfg.Sheet.WorksheetCopyright)
	if err != nil {
		return nil, err
	}
	records, err := normalize.Copyrights(table)
	if err != nil {
		return nil, err
	}
	return &CopyrightResult{
		Records:       records,
		Summary:       metrics.Copyrights(records, s.cfg.Engine.CopyrightUnitCost),
		CountryCounts: metrics.CountryCounts(records),
	}, nil
}
