package notify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/notify"
)

func pendingRow(client string, brand domain.Brand, book, published string) domain.Project {
	return domain.Project{
		ClientName:     client,
		Brand:          brand,
		Book:           book,
		PublishingDate: domain.ParseDate(published),
		ReviewState:    domain.ReviewPending,
	}
}

func TestPendingReminder(t *testing.T) {
	c := notify.NewComposer(20, false)
	rows := []domain.Project{
		pendingRow("Dana Cole", domain.BrandBookMarketeers, "Harvest Moon", "10-March-2025"),
	}
	summary := domain.ReviewSummary{ProjectManager: "Jane Doe", Pending: 1, Total: 1}

	msg := c.PendingReminder("<@U123>", rows, summary)

	// Preamble lists every outreach brand's review page.
	for brand, url := range domain.ReviewBrandURLs {
		assert.Contains(t, msg, string(brand))
		assert.Contains(t, msg, url)
	}

	assert.Contains(t, msg, "Hello <@U123>!")
	assert.Contains(t, msg, "for March 2025")
	assert.Contains(t, msg, "*1 pending reviews*")
	assert.Contains(t, msg, "Dana Cole")
	assert.Contains(t, msg, "10-March-2025")

	// Table is fenced.
	assert.Equal(t, 2, strings.Count(msg, "```"))
}

func TestPendingReminderMonthRange(t *testing.T) {
	c := notify.NewComposer(20, false)
	rows := []domain.Project{
		pendingRow("Gil Foss", domain.BrandAuroraWriters, "First Light", "05-February-2025"),
		pendingRow("Dana Cole", domain.BrandBookMarketeers, "Harvest Moon", "10-May-2025"),
	}
	summary := domain.ReviewSummary{Pending: 2, Total: 2}

	msg := c.PendingReminder("<@U123>", rows, summary)
	assert.Contains(t, msg, "from February to May 2025")
}

func TestPendingReminderIncludesSentCount(t *testing.T) {
	rows := []domain.Project{
		pendingRow("Dana Cole", domain.BrandBookMarketeers, "Harvest Moon", "10-March-2025"),
	}
	summary := domain.ReviewSummary{Pending: 2, Sent: 3, Total: 5}

	withSent := notify.NewComposer(20, true).PendingReminder("<@U123>", rows, summary)
	assert.Contains(t, withSent, "*5 pending reviews*")

	withoutSent := notify.NewComposer(20, false).PendingReminder("<@U123>", rows, summary)
	assert.Contains(t, withoutSent, "*2 pending reviews*")
}

func TestPendingReminderTruncatesTitles(t *testing.T) {
	c := notify.NewComposer(20, false)
	long := "An Exhaustive History of Everything Ever Printed"
	rows := []domain.Project{
		pendingRow("Dana Cole", domain.BrandBookMarketeers, long, "10-March-2025"),
	}

	msg := c.PendingReminder("<@U123>", rows, domain.ReviewSummary{Pending: 1, Total: 1})

	require.NotContains(t, msg, long)
	truncated := string([]rune(long)[:20]) + "…"
	assert.Contains(t, msg, truncated)
	assert.LessOrEqual(t, len(truncated), 23) // 20 runes plus a 3-byte ellipsis
}

func TestPendingReminderShortTitlesUntouched(t *testing.T) {
	c := notify.NewComposer(20, false)
	rows := []domain.Project{
		pendingRow("Dana Cole", domain.BrandBookMarketeers, "Harvest Moon", "10-March-2025"),
	}

	msg := c.PendingReminder("<@U123>", rows, domain.ReviewSummary{Pending: 1, Total: 1})
	assert.Contains(t, msg, "Harvest Moon")
	assert.NotContains(t, msg, "…")
}

func TestAttainedReport(t *testing.T) {
	c := notify.NewComposer(20, true)

	row := domain.Project{
		ClientName:  "Dana Cole",
		Brand:       domain.BrandBookMarketeers,
		ReviewDate:  domain.ParseDate("15-March-2025"),
		ReviewState: domain.ReviewAttained,
	}
	summary := domain.ReviewSummary{Attained: 3, Total: 4, Retention: 0.75}

	msg := c.AttainedReport("<@U123>", []domain.Project{row}, summary)

	assert.Contains(t, msg, "*3 out of 4 (75.0%)*")
	assert.Contains(t, msg, "for March 2025")
	assert.Contains(t, msg, "15-March-2025")
}

func TestAttainedReportNoDatesOmitsSpan(t *testing.T) {
	c := notify.NewComposer(20, true)

	msg := c.AttainedReport("<@U123>", nil, domain.ReviewSummary{Total: 0})
	assert.NotContains(t, msg, "for ")
	assert.Contains(t, msg, "*0 out of 0 (0.0%)*")
}

func TestAdminConfirmation(t *testing.T) {
	c := notify.NewComposer(20, true)
	summary := domain.ReviewSummary{Pending: 2, Sent: 1, Attained: 3, Total: 6, Retention: 0.5}

	msg := c.AdminConfirmation("Jane Doe", summary)
	assert.Contains(t, msg, "*Jane Doe*")
	assert.Contains(t, msg, "2 pending")
	assert.Contains(t, msg, "retention 50.0%")
}
