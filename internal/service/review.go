// Package service orchestrates the review reporting engine: fetch,
// normalize, classify, aggregate, compose, dispatch.
package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/metrics"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/normalize"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/review"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// SendKind selects which review population a send carries.
type SendKind string

// Send kinds.
const (
	SendPending  SendKind = "pending"
	SendAttained SendKind = "attained"
)

// Valid reports whether the kind is recognized.
func (k SendKind) Valid() bool {
	return k == SendPending || k == SendAttained
}

// ReviewService derives per-PM review populations and drives reminder
// delivery.
type ReviewService struct {
	cache     *sheet.Cache
	composer  *notify.Composer
	chat      notify.Chat
	scheduler *dispatch.Scheduler
	directory domain.Directory
	cfg       *config.Config
	logger    *slog.Logger
}

// NewReviewService creates the review service.
func NewReviewService(
	cache *sheet.Cache,
	composer *notify.Composer,
	chat notify.Chat,
	scheduler *dispatch.Scheduler,
	directory domain.Directory,
	cfg *config.Config,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		cache:     cache,
		composer:  composer,
		chat:      chat,
		scheduler: scheduler,
		directory: directory,
		cfg:       cfg,
		logger:    logger,
	}
}

// ViewResult is the dashboard payload for one PM and window.
type ViewResult struct {
	Region         domain.Region        `json:"region"`
	ProjectManager string               `json:"project_manager"`
	Window         domain.ReviewWindow  `json:"window"`
	Pending        []domain.Project     `json:"pending"`
	Sent           []domain.Project     `json:"sent"`
	Attained       []domain.Project     `json:"attained"`
	Summary        domain.ReviewSummary `json:"summary"`
	BrandCounts    []domain.ValueCount  `json:"brand_counts"`
	PlatformCounts []domain.ValueCount  `json:"platform_counts"`
}

// View classifies a PM's populations and computes the attainment rollup.
func (s *ReviewService) View(ctx context.Context, region domain.Region, pm string, window domain.ReviewWindow) (*ViewResult, error) {
	projects, err := s.loadProjects(ctx, region)
	if err != nil {
		return nil, err
	}

	pm = normalize.TitleCase(pm)
	pending := review.Pending(projects, pm)
	unresolved := review.PendingAndSent(projects, pm)
	attained := review.Attained(projects, pm, window)

	sent := make([]domain.Project, 0)
	for _, p := range unresolved {
		if p.ReviewState == domain.ReviewSent {
			sent = append(sent, p)
		}
	}

	return &ViewResult{
		Region:         region,
		ProjectManager: pm,
		Window:         window,
		Pending:        pending,
		Sent:           sent,
		Attained:       attained,
		Summary:        metrics.Summarize(pm, len(pending), len(sent), len(attained)),
		BrandCounts:    metrics.BrandCounts(projects),
		PlatformCounts: metrics.PlatformCounts(projects),
	}, nil
}

// Managers lists the PMs for a region: the configured roster when present,
// otherwise the distinct managers appearing on the worksheet.
func (s *ReviewService) Managers(ctx context.Context, region domain.Region) ([]string, error) {
	roster := s.directory.Roster(region)
	if len(roster) > 0 {
		names := roster.Names()
		sort.Strings(names)
		return names, nil
	}

	projects, err := s.loadProjects(ctx, region)
	if err != nil {
		return nil, err
	}
	names := review.Managers(projects)
	sort.Strings(names)
	return names, nil
}

// Send delivers one PM's reminder or attainment report to the regional
// channel, then a confirmation DM to the administrator. The message is
// skipped entirely when the population is empty.
func (s *ReviewService) Send(ctx context.Context, region domain.Region, pm string, kind SendKind, window domain.ReviewWindow) error {
	result := s.scheduler.SendOne(ctx, normalize.TitleCase(pm), func(ctx context.Context, pm string) error {
		return s.sendOne(ctx, region, pm, kind, window)
	})
	return result.Err
}

// BulkSend fans a send out to many PMs with paced delivery. With no
// explicit list, the region's roster is used in sorted order. Per-PM
// failures (unknown recipient, empty population, transport) are counted
// and the batch continues.
func (s *ReviewService) BulkSend(
	ctx context.Context,
	region domain.Region,
	pms []string,
	kind SendKind,
	window domain.ReviewWindow,
	onProgress dispatch.ProgressFunc,
) (int, []dispatch.Result, error) {
	if len(pms) == 0 {
		var err error
		if pms, err = s.Managers(ctx, region); err != nil {
			return 0, nil, err
		}
	} else {
		normalized := make([]string, len(pms))
		for i, pm := range pms {
			normalized[i] = normalize.TitleCase(pm)
		}
		pms = normalized
	}

	return s.scheduler.SendMany(ctx, pms, func(ctx context.Context, pm string) error {
		return s.sendOne(ctx, region, pm, kind, window)
	}, onProgress)
}

// InvalidateCache clears every cached worksheet.
func (s *ReviewService) InvalidateCache() {
	s.cache.Invalidate()
}

// sendOne runs the full per-PM pipeline: load, classify, compose, deliver,
// confirm.
func (s *ReviewService) sendOne(ctx context.Context, region domain.Region, pm string, kind SendKind, window domain.ReviewWindow) error {
	projects, err := s.loadProjects(ctx, region)
	if err != nil {
		return err
	}

	pending := review.Pending(projects, pm)
	unresolved := review.PendingAndSent(projects, pm)
	attained := review.Attained(projects, pm, window)
	summary := metrics.Summarize(pm, len(pending), len(unresolved)-len(pending), len(attained))

	var body []domain.Project
	switch kind {
	case SendAttained:
		body = attained
	default:
		body = pending
		if s.composer.IncludeSent() {
			body = unresolved
		}
	}
	if len(body) == 0 {
		return errors.EmptyPopulationf("no %s reviews for %s", kind, pm)
	}

	channelID, ok := s.directory.Channel(region)
	if !ok {
		return errors.Internalf("no delivery channel configured for region %s", region)
	}

	email, ok := s.directory.Roster(region).Email(pm)
	if !ok {
		return errors.RecipientUnknownf("%s is not on the %s roster", pm, region)
	}
	userID, err := s.chat.LookupUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	var text string
	if kind == SendAttained {
		text = s.composer.AttainedReport(notify.Mention(userID), attained, summary)
	} else {
		text = s.composer.PendingReminder(notify.Mention(userID), body, summary)
	}

	// Deliver to the regional channel so the PM is mentioned publicly.
	if err := s.chat.PostChannel(ctx, channelID, text); err != nil {
		return err
	}

	s.confirmToAdmin(ctx, pm, summary)
	return nil
}

// confirmToAdmin DMs the administrator after a successful send. Failures
// here are logged, not surfaced; the reminder itself already landed.
func (s *ReviewService) confirmToAdmin(ctx context.Context, pm string, summary domain.ReviewSummary) {
	adminEmail := s.cfg.Chat.AdminNotifyEmail
	if adminEmail == "" {
		return
	}

	adminID, err := s.chat.LookupUserByEmail(ctx, adminEmail)
	if err != nil {
		s.logger.Warn("admin lookup failed", "email", adminEmail, "error", err)
		return
	}
	if err := s.chat.PostDM(ctx, adminID, s.composer.AdminConfirmation(pm, summary)); err != nil {
		s.logger.Warn("admin confirmation failed", "error", err)
	}
}

// loadProjects fetches and normalizes the region's worksheet.
func (s *ReviewService) loadProjects(ctx context.Context, region domain.Region) ([]domain.Project, error) {
	worksheet := s.cfg.Sheet.WorksheetUSA
	if region == domain.RegionUK {
		worksheet = s.cfg.Sheet.WorksheetUK
	}

	table, err := s.cache.Values(ctx, worksheet)
	if err != nil {
		return nil, err
	}
	return normalize.Projects(table)
}
