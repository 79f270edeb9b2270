package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/http/response"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/service"
)

// handleGetReviews returns one PM's classified populations and rollup for
// the requested window.
func (s *Server) handleGetReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pm := r.URL.Query().Get("pm")
	if pm == "" {
		response.BadRequest(w, "pm query parameter is required", s.logger)
		return
	}

	region := s.queryRegion(r)
	window, err := s.queryWindow(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	result, err := s.reviewService.View(ctx, region, pm, window)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}

// handleGetManagers lists the PMs a send can target for a region.
func (s *Server) handleGetManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := s.reviewService.Managers(r.Context(), s.queryRegion(r))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"managers": managers,
	}, s.logger)
}

// SendReviewRequest is the request body for a single-PM send.
type SendReviewRequest struct {
	Region string `json:"region" validate:"omitempty,oneof=USA UK"`
	PM     string `json:"pm" validate:"required,min=1,max=100"`
	Kind   string `json:"kind" validate:"required,oneof=pending attained"`
	Year   int    `json:"year" validate:"omitempty,min=2000,max=2100"`
	Month  int    `json:"month" validate:"omitempty,min=1,max=12"`
}

// handleSendReview delivers one PM's reminder or attainment report.
func (s *Server) handleSendReview(w http.ResponseWriter, r *http.Request) {
	var req SendReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	region, window, err := s.resolveTarget(r, req.Region, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.reviewService.Send(r.Context(), region, req.PM, service.SendKind(req.Kind), window); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"sent":   true,
		"pm":     req.PM,
		"region": region,
	}, s.logger)
}

// BulkSendRequest is the request body for a fan-out send. An empty PM list
// targets the full regional roster.
type BulkSendRequest struct {
	Region string   `json:"region" validate:"omitempty,oneof=USA UK"`
	PMs    []string `json:"pms" validate:"omitempty,dive,min=1,max=100"`
	Kind   string   `json:"kind" validate:"required,oneof=pending attained"`
	Year   int      `json:"year" validate:"omitempty,min=2000,max=2100"`
	Month  int      `json:"month" validate:"omitempty,min=1,max=12"`
}

// BulkSendResponse reports per-PM outcomes for a bulk send.
type BulkSendResponse struct {
	Requested int               `json:"requested"`
	Succeeded int               `json:"succeeded"`
	Results   []dispatch.Result `json:"results"`
	Canceled  bool              `json:"canceled"`
}

// handleBulkSend fans a send out across a roster with paced delivery.
// Individual failures are reported per PM; only cancellation aborts early.
func (s *Server) handleBulkSend(w http.ResponseWriter, r *http.Request) {
	var req BulkSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(&req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	region, window, err := s.resolveTarget(r, req.Region, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	succeeded, results, err := s.reviewService.BulkSend(
		r.Context(), region, req.PMs, service.SendKind(req.Kind), window,
		func(done, total int, last dispatch.Result) {
			s.logger.Info("bulk send progress",
				"done", done, "total", total,
				"pm", last.ProjectManager, "ok", last.Succeeded())
		},
	)
	if err != nil && len(results) == 0 {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, BulkSendResponse{
		Requested: len(results),
		Succeeded: succeeded,
		Results:   results,
		Canceled:  err != nil,
	}, s.logger)
}

// handleInvalidateCache drops every cached worksheet so the next read
// refetches.
func (s *Server) handleInvalidateCache(w http.ResponseWriter, _ *http.Request) {
	s.reviewService.InvalidateCache()
	response.Success(w, map[string]string{
		"status": "invalidated",
	}, s.logger)
}

// queryRegion resolves the target region: explicit query parameter first,
// then the operator's home region.
func (s *Server) queryRegion(r *http.Request) domain.Region {
	if raw := r.URL.Query().Get("region"); raw != "" {
		if region, ok := domain.ParseRegion(raw); ok {
			return region
		}
	}
	return getRegion(r.Context())
}

// queryWindow parses year/month query parameters. The year defaults to
// the current year; an absent month widens the window to the whole year.
func (s *Server) queryWindow(r *http.Request) (domain.ReviewWindow, error) {
	year, month := 0, 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ReviewWindow{}, errors.Validation("year must be an integer")
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ReviewWindow{}, errors.Validation("month must be an integer")
		}
		month = parsed
	}
	return s.buildWindow(year, month)
}

// buildWindow fills the year default and enforces the dashboard's year
// floor. Month zero means the window spans the whole year.
func (s *Server) buildWindow(year, month int) (domain.ReviewWindow, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if year < s.cfg.Engine.MinYear {
		return domain.ReviewWindow{}, errors.Validationf("year must be %d or later", s.cfg.Engine.MinYear)
	}
	if month < 0 || month > 12 {
		return domain.ReviewWindow{}, errors.Validation("month must be between 1 and 12")
	}
	return domain.ReviewWindow{Year: year, Month: time.Month(month)}, nil
}

// resolveTarget resolves region and window for the send handlers.
func (s *Server) resolveTarget(r *http.Request, region string, year, month int) (domain.Region, domain.ReviewWindow, error) {
	target := getRegion(r.Context())
	if region != "" {
		if parsed, ok := domain.ParseRegion(region); ok {
			target = parsed
		}
	}
	window, err := s.buildWindow(year, month)
	return target, window, err
}
