package sheet

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
)

// fakeSource counts fetches and can be told to fail.
type fakeSource struct {
	table   Table
	err     error
	fetches int
}

func (f *fakeSource) Values(_ context.Context, _ string) (Table, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func newTestCache(t *testing.T, source Source, ttl time.Duration) (*Cache, *time.Time) {
	t.Helper()
	cache := NewCache(source, ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func TestCacheServesFreshEntry(t *testing.T) {
	source := &fakeSource{table: Table{{"Name"}, {"Dana Cole"}}}
	cache, _ := newTestCache(t, source, 300*time.Second)

	first, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	second, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.fetches)
}

func TestCacheRefetchesAfterTTL(t *testing.T) {
	source := &fakeSource{table: Table{{"Name"}}}
	cache, now := newTestCache(t, source, 300*time.Second)

	_, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)

	// One second short of the TTL: still fresh.
	*now = now.Add(299 * time.Second)
	_, err = cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	assert.Equal(t, 1, source.fetches)

	// At the TTL boundary the entry is stale.
	*now = now.Add(time.Second)
	_, err = cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCachePerWorksheetEntries(t *testing.T) {
	source := &fakeSource{table: Table{{"Name"}}}
	cache, _ := newTestCache(t, source, 300*time.Second)

	_, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	_, err = cache.Values(context.Background(), "UK")
	require.NoError(t, err)

	assert.Equal(t, 2, source.fetches)
}

func TestCacheInvalidate(t *testing.T) {
	source := &fakeSource{table: Table{{"Name"}}}
	cache, _ := newTestCache(t, source, 300*time.Second)

	_, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestCacheInvalidateSheet(t *testing.T) {
	source := &fakeSource{table: Table{{"Name"}}}
	cache, _ := newTestCache(t, source, 300*time.Second)

	_, err := cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	_, err = cache.Values(context.Background(), "UK")
	require.NoError(t, err)

	cache.InvalidateSheet("USA")

	_, err = cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	_, err = cache.Values(context.Background(), "UK")
	require.NoError(t, err)
	assert.Equal(t, 3, source.fetches)
}

func TestCacheFetchFailureNotCached(t *testing.T) {
	source := &fakeSource{err: errors.SheetUnavailable("credentials rejected")}
	cache, _ := newTestCache(t, source, 300*time.Second)

	_, err := cache.Values(context.Background(), "USA")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSheetUnavailable))

	// A later call retries instead of serving the failure.
	source.err = nil
	source.table = Table{{"Name"}}
	_, err = cache.Values(context.Background(), "USA")
	require.NoError(t, err)
	assert.Equal(t, 2, source.fetches)
}

func TestTableHeaderAndRows(t *testing.T) {
	table := Table{{"Name", "Brand"}, {"Dana Cole", "BookMarketeers"}}
	assert.Equal(t, []string{"Name", "Brand"}, table.Header())
	assert.Len(t, table.Rows(), 1)

	var empty Table
	assert.Nil(t, empty.Header())
	assert.Nil(t, empty.Rows())
}
