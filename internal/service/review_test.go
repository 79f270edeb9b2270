package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/dispatch"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// fakeSheetSource returns canned tables per worksheet.
type fakeSheetSource struct {
	tables map[string]sheet.Table
}

func (f *fakeSheetSource) Values(_ context.Context, worksheet string) (sheet.Table, error) {
	table, ok := f.tables[worksheet]
	if !ok {
		return nil, errors.SheetUnavailablef("worksheet %q missing", worksheet)
	}
	return table, nil
}

// fakeChat records posts and resolves a fixed email directory.
type fakeChat struct {
	users        map[string]string // email -> user id
	channelPosts []string          // channel ids posted to
	dmPosts      []string          // user ids DMed
	messages     []string
}

func (f *fakeChat) LookupUserByEmail(_ context.Context, email string) (string, error) {
	id, ok := f.users[email]
	if !ok {
		return "", errors.RecipientUnknownf("no chat account for %s", email)
	}
	return id, nil
}

func (f *fakeChat) OpenDM(_ context.Context, userID string) (string, error) {
	return "D" + userID, nil
}

func (f *fakeChat) PostChannel(_ context.Context, channelID, text string) error {
	f.channelPosts = append(f.channelPosts, channelID)
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeChat) PostDM(_ context.Context, userID, text string) error {
	f.dmPosts = append(f.dmPosts, userID)
	f.messages = append(f.messages, text)
	return nil
}

func usaTable() sheet.Table {
	return sheet.Table{
		{
			"Name", "Brand", "Book Name & Link", "Format", "Project Manager",
			"Platform", "Publishing Status", "Publishing Date", "Last Edited",
			"Trustpilot Review", "Trustpilot Review Date", "Review Link", "Issues",
		},
		{"Dana Cole", "BookMarketeers", "Harvest Moon", "", "Jane Doe", "Amazon", "Published", "10-March-2025", "", "Pending", "", "", ""},
		{"Ben Ray", "Writers Clique", "Night Shift", "", "Jane Doe", "Amazon", "Published", "01-February-2025", "", "Sent", "", "", ""},
		{"Ada Lin", "BookMarketeers", "First Light", "", "Jane Doe", "Amazon", "Published", "05-January-2025", "", "Attained", "15-March-2025", "", ""},
		{"Rex Ward", "KDP", "Sidetracked", "", "Jane Doe", "Amazon", "Published", "02-March-2025", "", "Pending", "", "", ""},
	}
}

func newTestReviewService(t *testing.T, chat *fakeChat) *ReviewService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Sheet.WorksheetUSA = "USA"
	cfg.Sheet.WorksheetUK = "UK"
	cfg.Chat.AdminNotifyEmail = "admin@example.com"

	source := &fakeSheetSource{tables: map[string]sheet.Table{"USA": usaTable()}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := sheet.NewCache(source, 300*time.Second, logger)

	directory := domain.Directory{
		Rosters: map[domain.Region]domain.Roster{
			domain.RegionUSA: {"Jane Doe": "jane@example.com"},
		},
		Channels: map[domain.Region]string{
			domain.RegionUSA: "C-USA",
		},
	}

	return NewReviewService(
		cache,
		notify.NewComposer(20, true),
		chat,
		dispatch.New(0, logger),
		directory,
		cfg,
		logger,
	)
}

func TestReviewServiceView(t *testing.T) {
	svc := newTestReviewService(t, &fakeChat{})
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	result, err := svc.View(context.Background(), domain.RegionUSA, "jane doe", window)
	require.NoError(t, err)

	// PM input is Title-Cased before matching.
	assert.Equal(t, "Jane Doe", result.ProjectManager)

	require.Len(t, result.Pending, 1)
	assert.Equal(t, "Dana Cole", result.Pending[0].ClientName)
	require.Len(t, result.Sent, 1)
	assert.Equal(t, "Ben Ray", result.Sent[0].ClientName)
	require.Len(t, result.Attained, 1)
	assert.Equal(t, "Ada Lin", result.Attained[0].ClientName)

	assert.Equal(t, 3, result.Summary.Total)
	assert.InDelta(t, 1.0/3.0, result.Summary.Retention, 0.001)

	// KDP rows never reach the brand counts.
	for _, vc := range result.BrandCounts {
		assert.NotEqual(t, "KDP", vc.Value)
	}
}

func TestReviewServiceSendPending(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	err := svc.Send(context.Background(), domain.RegionUSA, "Jane Doe", SendPending, window)
	require.NoError(t, err)

	// One channel post, then the admin confirmation DM.
	require.Equal(t, []string{"C-USA"}, chat.channelPosts)
	require.Equal(t, []string{"U9"}, chat.dmPosts)

	assert.Contains(t, chat.messages[0], "<@U1>")
	assert.Contains(t, chat.messages[0], "Dana Cole")
	assert.Contains(t, chat.messages[1], "*Jane Doe*")
}

func TestReviewServiceSendAttained(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	err := svc.Send(context.Background(), domain.RegionUSA, "Jane Doe", SendAttained, window)
	require.NoError(t, err)

	require.Len(t, chat.channelPosts, 1)
	assert.Contains(t, chat.messages[0], "Ada Lin")
	assert.Contains(t, chat.messages[0], "out of")
}

func TestReviewServiceSendEmptyPopulation(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)

	// No attained reviews in June: nothing is posted, not even to the admin.
	window := domain.ReviewWindow{Year: 2025, Month: time.June}
	err := svc.Send(context.Background(), domain.RegionUSA, "Jane Doe", SendAttained, window)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyPopulation))
	assert.Empty(t, chat.channelPosts)
	assert.Empty(t, chat.dmPosts)
}

func TestReviewServiceSendUnknownRecipient(t *testing.T) {
	chat := &fakeChat{users: map[string]string{"admin@example.com": "U9"}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	err := svc.Send(context.Background(), domain.RegionUSA, "Jane Doe", SendPending, window)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRecipientUnknown))
	assert.Empty(t, chat.channelPosts)
}

func TestReviewServiceSendOffRoster(t *testing.T) {
	chat := &fakeChat{users: map[string]string{"jane@example.com": "U1"}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	err := svc.Send(context.Background(), domain.RegionUSA, "Sam Reed", SendPending, window)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyPopulation))
}

func TestReviewServiceBulkSendUsesRoster(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	succeeded, results, err := svc.BulkSend(context.Background(), domain.RegionUSA, nil, SendPending, window, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, succeeded)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].ProjectManager)
	assert.True(t, results[0].Succeeded())
}

func TestReviewServiceBulkSendPartialFailure(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	succeeded, results, err := svc.BulkSend(
		context.Background(), domain.RegionUSA,
		[]string{"jane doe", "sam reed"}, SendPending, window, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, succeeded)
	require.Len(t, results, 2)
	assert.True(t, results[0].Succeeded())
	assert.False(t, results[1].Succeeded())
}

func TestReviewServiceBulkSendKeepsInputIntact(t *testing.T) {
	chat := &fakeChat{users: map[string]string{
		"jane@example.com":  "U1",
		"admin@example.com": "U9",
	}}
	svc := newTestReviewService(t, chat)
	window := domain.ReviewWindow{Year: 2025, Month: time.March}

	pms := []string{"jane doe"}
	_, results, err := svc.BulkSend(context.Background(), domain.RegionUSA, pms, SendPending, window, nil)
	require.NoError(t, err)

	// Title-casing happens on a copy; the caller's slice is untouched.
	assert.Equal(t, []string{"jane doe"}, pms)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].ProjectManager)
}

func TestReviewServiceManagersPrefersRoster(t *testing.T) {
	svc := newTestReviewService(t, &fakeChat{})

	managers, err := svc.Managers(context.Background(), domain.RegionUSA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, managers)
}

func TestReviewServiceManagersFallsBackToWorksheet(t *testing.T) {
	svc := newTestReviewService(t, &fakeChat{})
	svc.directory.Rosters = map[domain.Region]domain.Roster{}

	managers, err := svc.Managers(context.Background(), domain.RegionUSA)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, managers)
}
