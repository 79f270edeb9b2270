// Package dispatch paces review reminder sends. Bulk dispatch is
// single-threaded and cooperative: attempts run in caller order, a fixed
// pause separates them, and per-attempt failures never abort the batch.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// SendFunc delivers one PM's message. An error marks the attempt failed.
type SendFunc func(ctx context.Context, pm string) error

// Result is the outcome of a single attempt.
type Result struct {
	ProjectManager string `json:"project_manager"`
	Err            error  `json:"-"`
	Error          string `json:"error,omitempty"`
}

// Succeeded reports whether the attempt delivered a message.
func (r Result) Succeeded() bool { return r.Err == nil }

// ProgressFunc observes batch progress after each attempt. done/total is
// non-decreasing and reaches 1 on completion.
type ProgressFunc func(done, total int, last Result)

// Scheduler runs paced sends against the chat platform.
type Scheduler struct {
	pace   time.Duration
	logger *slog.Logger
}

// New creates a scheduler with the given inter-send pace.
func New(pace time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pace:   pace,
		logger: logger,
	}
}

// SendOne runs a single attempt.
func (s *Scheduler) SendOne(ctx context.Context, pm string, send SendFunc) Result {
	err := send(ctx, pm)
	if err != nil {
		s.logger.Warn("send failed", "pm", pm, "error", err)
	} else {
		s.logger.Info("send delivered", "pm", pm)
	}
	return newResult(pm, err)
}

// SendMany fans out to every PM in the caller-provided order, pausing the
// configured pace between attempts. Cancellation is checked at the top of
// each iteration, so no partial message is emitted. Returns the success
// count, the per-recipient results, and the context error when the batch
// was cut short.
func (s *Scheduler) SendMany(ctx context.Context, pms []string, send SendFunc, onProgress ProgressFunc) (int, []Result, error) {
	total := len(pms)
	results := make([]Result, 0, total)
	successes := 0

	// Burst 1 with a full bucket: the first attempt runs immediately,
	// every later one waits out the pace.
	limiter := rate.NewLimiter(rate.Every(s.pace), 1)
	if s.pace <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	for _, pm := range pms {
		if err := ctx.Err(); err != nil {
			return successes, results, err
		}
		if err := limiter.Wait(ctx); err != nil {
			return successes, results, err
		}

		result := s.SendOne(ctx, pm, send)
		if result.Succeeded() {
			successes++
		}
		results = append(results, result)

		if onProgress != nil {
			onProgress(len(results), total, result)
		}
	}

	s.logger.Info("bulk send finished", "successes", successes, "total", total)
	return successes, results, nil
}

func newResult(pm string, err error) Result {
	r := Result{ProjectManager: pm, Err: err}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
