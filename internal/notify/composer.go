package notify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
)

// Ellipsis appended to truncated book titles.
const ellipsis = "…"

// Composer renders reminder and report messages. Output is plain Markdown:
// a fixed preamble, an addressing line, a summary line, and a fenced table.
type Composer struct {
	titleTruncate int
	includeSent   bool
}

// NewComposer creates a composer. titleTruncate is the rune budget for
// book titles; includeSent controls whether reminder bodies list Sent rows
// alongside Pending ones.
func NewComposer(titleTruncate int, includeSent bool) *Composer {
	return &Composer{
		titleTruncate: titleTruncate,
		includeSent:   includeSent,
	}
}

// IncludeSent reports whether reminder bodies list Sent rows.
func (c *Composer) IncludeSent() bool { return c.includeSent }

// PendingReminder renders the review reminder for a PM. rows is the
// unresolved population (Pending, plus Sent when configured), already
// sorted by publishing date.
func (c *Composer) PendingReminder(mention string, rows []domain.Project, summary domain.ReviewSummary) string {
	var b strings.Builder

	b.WriteString(preamble())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hello %s! :wave:\n", mention)

	dates := make([]domain.Date, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.PublishingDate)
	}
	if span := monthSpan(dates); span != "" {
		fmt.Fprintf(&b, "Your review status %s:\n", span)
	}

	unresolved := summary.Pending
	if c.includeSent {
		unresolved = summary.Pending + summary.Sent
	}
	fmt.Fprintf(&b, "*%d pending reviews*\n\n", unresolved)

	b.WriteString("```\n")
	b.WriteString(renderTable(
		[]string{"Name", "Brand", "Book Name & Link", "Publishing Date", "Trustpilot Review"},
		pendingCells(rows, c.titleTruncate),
	))
	b.WriteString("```\n")

	return b.String()
}

// AttainedReport renders the attainment summary for a PM. rows is the
// attained population, already sorted by review date.
func (c *Composer) AttainedReport(mention string, rows []domain.Project, summary domain.ReviewSummary) string {
	var b strings.Builder

	b.WriteString(preamble())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hello %s! :wave:\n", mention)

	dates := make([]domain.Date, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.ReviewDate)
	}
	if span := monthSpan(dates); span != "" {
		fmt.Fprintf(&b, "Your attained reviews %s:\n", span)
	}

	fmt.Fprintf(&b, "*%d out of %d (%.1f%%)*\n\n",
		summary.Attained, summary.Total, summary.Retention*100)

	b.WriteString("```\n")
	b.WriteString(renderTable(
		[]string{"Name", "Brand", "Trustpilot Review Date"},
		attainedCells(rows),
	))
	b.WriteString("```\n")

	return b.String()
}

// AdminConfirmation renders the confirmation DM sent to the administrator
// after a successful send.
func (c *Composer) AdminConfirmation(pm string, summary domain.ReviewSummary) string {
	return fmt.Sprintf(
		"Reminder delivered for *%s*: %d pending, %d sent, %d attained (retention %.1f%%).",
		pm, summary.Pending, summary.Sent, summary.Attained, summary.Retention*100)
}

// preamble is the fixed guidance block listing each brand's review page.
func preamble() string {
	brands := make([]domain.Brand, 0, len(domain.ReviewBrandURLs))
	for b := range domain.ReviewBrandURLs {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i] < brands[j] })

	var b strings.Builder
	b.WriteString("*Please ask clients to leave their Trustpilot review on the correct brand page:*\n")
	for _, brand := range brands {
		fmt.Fprintf(&b, "• %s: %s\n", brand, domain.ReviewBrandURLs[brand])
	}
	return b.String()
}

// monthSpan renders the heading span over the valid dates:
// "from February to May 2025" when months differ, "for May 2025" otherwise.
// Empty when no row carries a date.
func monthSpan(dates []domain.Date) string {
	var minDate, maxDate domain.Date
	for _, d := range dates {
		if !d.Valid() {
			continue
		}
		if !minDate.Valid() || d.Before(minDate) {
			minDate = d
		}
		if !maxDate.Valid() || maxDate.Before(d) {
			maxDate = d
		}
	}
	if !minDate.Valid() {
		return ""
	}

	if minDate.Month() == maxDate.Month() && minDate.Year() == maxDate.Year() {
		return fmt.Sprintf("for %s %d", maxDate.Month(), maxDate.Year())
	}
	return fmt.Sprintf("from %s to %s %d", minDate.Month(), maxDate.Month(), maxDate.Year())
}

// pendingCells renders the five-column reminder rows.
func pendingCells(rows []domain.Project, titleTruncate int) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.ClientName,
			string(r.Brand),
			truncate(r.Book, titleTruncate),
			r.PublishingDate.String(),
			string(r.ReviewState),
		})
	}
	return cells
}

// attainedCells renders the three-column report rows.
func attainedCells(rows []domain.Project) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.ClientName,
			string(r.Brand),
			r.ReviewDate.String(),
		})
	}
	return cells
}

// renderTable renders a Markdown table with padded columns.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range header {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			fmt.Fprintf(&b, " %-*s |", widths[i], value)
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(" " + strings.Repeat("-", w) + " |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// truncate cuts a string at limit runes, appending an ellipsis when
// anything was dropped.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
