package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendOne(t *testing.T) {
	s := dispatch.New(0, discardLogger())

	result := s.SendOne(context.Background(), "Jane Doe", func(ctx context.Context, pm string) error {
		return nil
	})
	assert.True(t, result.Succeeded())
	assert.Equal(t, "Jane Doe", result.ProjectManager)

	result = s.SendOne(context.Background(), "Sam Reed", func(ctx context.Context, pm string) error {
		return errors.New("channel archived")
	})
	assert.False(t, result.Succeeded())
	assert.Equal(t, "channel archived", result.Error)
}

func TestSendManyPreservesOrder(t *testing.T) {
	s := dispatch.New(0, discardLogger())
	pms := []string{"Jane Doe", "Sam Reed", "Ada Lin"}

	var attempted []string
	successes, results, err := s.SendMany(context.Background(), pms, func(ctx context.Context, pm string) error {
		attempted = append(attempted, pm)
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, successes)
	assert.Equal(t, pms, attempted)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, pms[i], r.ProjectManager)
		assert.True(t, r.Succeeded())
	}
}

func TestSendManyToleratesFailures(t *testing.T) {
	s := dispatch.New(0, discardLogger())
	pms := []string{"Jane Doe", "Sam Reed", "Ada Lin"}

	successes, results, err := s.SendMany(context.Background(), pms, func(ctx context.Context, pm string) error {
		if pm == "Sam Reed" {
			return errors.New("no chat account")
		}
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, successes)
	require.Len(t, results, 3)
	assert.True(t, results[0].Succeeded())
	assert.False(t, results[1].Succeeded())
	assert.Equal(t, "no chat account", results[1].Error)
	assert.True(t, results[2].Succeeded())
}

func TestSendManyProgress(t *testing.T) {
	s := dispatch.New(0, discardLogger())
	pms := []string{"Jane Doe", "Sam Reed"}

	type tick struct {
		done, total int
		pm          string
	}
	var ticks []tick

	_, _, err := s.SendMany(context.Background(), pms, func(ctx context.Context, pm string) error {
		return nil
	}, func(done, total int, last dispatch.Result) {
		ticks = append(ticks, tick{done: done, total: total, pm: last.ProjectManager})
	})

	require.NoError(t, err)
	require.Len(t, ticks, 2)
	assert.Equal(t, tick{done: 1, total: 2, pm: "Jane Doe"}, ticks[0])
	assert.Equal(t, tick{done: 2, total: 2, pm: "Sam Reed"}, ticks[1])
}

func TestSendManyCancellation(t *testing.T) {
	s := dispatch.New(0, discardLogger())
	pms := []string{"Jane Doe", "Sam Reed", "Ada Lin"}

	ctx, cancel := context.WithCancel(context.Background())

	successes, results, err := s.SendMany(ctx, pms, func(ctx context.Context, pm string) error {
		if pm == "Jane Doe" {
			cancel()
		}
		return nil
	}, nil)

	// Cancellation is noticed before the next attempt; the completed one
	// still counts.
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, successes)
	assert.Len(t, results, 1)
}

func TestSendManyPacing(t *testing.T) {
	pace := 20 * time.Millisecond
	s := dispatch.New(pace, discardLogger())
	pms := []string{"Jane Doe", "Sam Reed", "Ada Lin"}

	start := time.Now()
	_, _, err := s.SendMany(context.Background(), pms, func(ctx context.Context, pm string) error {
		return nil
	}, nil)
	elapsed := time.Since(start)

	require.NoError(t, err)
	// First send is immediate, the remaining two each wait out the pace.
	assert.GreaterOrEqual(t, elapsed, 2*pace)
}

func TestSendManyEmpty(t *testing.T) {
	s := dispatch.New(0, discardLogger())

	successes, results, err := s.SendMany(context.Background(), nil, func(ctx context.Context, pm string) error {
		t.Fatal("send should not be called")
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Zero(t, successes)
	assert.Empty(t, results)
}
