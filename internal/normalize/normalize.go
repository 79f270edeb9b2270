// Package normalize turns raw worksheet tables into typed records.
//
// All three normalizers work column-wise: locate the sentinel column and
// drop everything to its right, coerce the declared date columns, then sort
// by the entity's primary date. Normalization is idempotent; feeding a
// normalized table back through produces the same records.
package normalize

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

// Sentinel column headers. Columns to the right are ignored.
const (
	projectSentinel   = "Issues"
	printSentinel     = "Accepted"
	copyrightSentinel = "Country"
)

// Projects normalizes a per-country worksheet into project records sorted
// by publishing date ascending. An empty table yields an empty slice.
func Projects(table sheet.Table) ([]domain.Project, error) {
	header := table.Header()
	if header == nil {
		return nil, nil
	}

	cols, err := locate(header, projectSentinel)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(table.Rows()))
	for _, row := range table.Rows() {
		if isBlank(row) {
			continue
		}
		projects = append(projects, domain.Project{
			ClientName:       cell(row, cols, "Name"),
			Brand:            domain.ParseBrand(cell(row, cols, "Brand")),
			Book:             cell(row, cols, "Book Name & Link"),
			Format:           fillMissing(cell(row, cols, "Format")),
			ProjectManager:   TitleCase(cell(row, cols, "Project Manager")),
			Platform:         domain.ParsePlatform(cell(row, cols, "Platform")),
			PublishingStatus: domain.ParsePublishingStatus(cell(row, cols, "Publishing Status")),
			PublishingDate:   domain.ParseDate(cell(row, cols, "Publishing Date")),
			LastEditDate:     domain.ParseDate(cell(row, cols, "Last Edited")),
			ReviewState:      domain.ParseReviewState(cell(row, cols, "Trustpilot Review")),
			ReviewDate:       domain.ParseDate(cell(row, cols, "Trustpilot Review Date")),
			ReviewLink:       fillMissing(cell(row, cols, "Review Link")),
			Issues:           fillMissing(cell(row, cols, projectSentinel)),
		})
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].PublishingDate.Before(projects[j].PublishingDate)
	})
	for i := range projects {
		projects[i].Ordinal = i + 1
	}
	return projects, nil
}

// Prints normalizes the print-order worksheet sorted by order date
// ascending.
func Prints(table sheet.Table) ([]domain.PrintOrder, error) {
	header := table.Header()
	if header == nil {
		return nil, nil
	}

	cols, err := locate(header, printSentinel)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.PrintOrder, 0, len(table.Rows()))
	for _, row := range table.Rows() {
		if isBlank(row) {
			continue
		}
		orders = append(orders, domain.PrintOrder{
			ClientName:     cell(row, cols, "Name"),
			Brand:          domain.ParseBrand(cell(row, cols, "Brand")),
			ProjectManager: TitleCase(cell(row, cols, "Project Manager")),
			Address:        fillMissing(cell(row, cols, "Address")),
			Book:           cell(row, cols, "Book Name & Link"),
			Format:         fillMissing(cell(row, cols, "Format")),
			InkType:        fillMissing(cell(row, cols, "Ink Type")),
			Copies:         parseNumber(cell(row, cols, "No of Copies")),
			OrderCost:      ParseCurrency(cell(row, cols, "Order Cost")),
			OrderDate:      domain.ParseDate(cell(row, cols, "Order Date")),
			ShippingDate:   domain.ParseDate(cell(row, cols, "Shipping Date")),
			FulfilledDate:  domain.ParseDate(cell(row, cols, "Fulfilled Date")),
			DeliveryMethod: fillMissing(cell(row, cols, "Delivery Method")),
			Status:         fillMissing(cell(row, cols, "Status")),
			Type:           domain.ParsePrintType(cell(row, cols, "Type")),
			Accepted:       fillMissing(cell(row, cols, printSentinel)),
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	for i := range orders {
		orders[i].Ordinal = i + 1
	}
	return orders, nil
}

// Copyrights normalizes the copyright worksheet sorted by submission date
// ascending.
func Copyrights(table sheet.Table) ([]domain.CopyrightRecord, error) {
	header := table.Header()
	if header == nil {
		return nil, nil
	}

	cols, err := locate(header, copyrightSentinel)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CopyrightRecord, 0, len(table.Rows()))
	for _, row := range table.Rows() {
		if isBlank(row) {
			continue
		}
		records = append(records, domain.CopyrightRecord{
			ClientName:     cell(row, cols, "Name"),
			ProjectManager: TitleCase(cell(row, cols, "Project Manager")),
			SubmissionDate: domain.ParseDate(cell(row, cols, "Submission Date")),
			Result:         domain.ParseCopyrightResult(cell(row, cols, "Result")),
			Country:        domain.ParseCopyrightCountry(cell(row, cols, copyrightSentinel)),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SubmissionDate.Before(records[j].SubmissionDate)
	})
	for i := range records {
		records[i].Ordinal = i + 1
	}
	return records, nil
}

// TitleCase trims and Title-Cases a name so PM comparisons are stable
// regardless of how the sheet was typed.
func TitleCase(raw string) string {
	return cases.Title(language.English).String(strings.TrimSpace(raw))
}

// ParseCurrency turns a "$X,Y" literal into a float. Unparsable values
// become 0.
func ParseCurrency(raw string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseNumber parses a plain numeric cell, 0 when unparsable.
func parseNumber(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// fillMissing substitutes the display sentinel for empty presentation-only
// cells.
func fillMissing(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.MissingValue
	}
	return trimmed
}

// columns maps canonical header names (lowercased) to their index within
// the kept window.
type columns map[string]int

// locate finds each header's index and truncates the window at the sentinel
// column. A missing sentinel is schema drift: the worksheet no longer looks
// like the one this engine was built against.
func locate(header []string, sentinel string) (columns, error) {
	sentinelIdx := -1
	cols := make(columns, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
		if strings.EqualFold(name, sentinel) && sentinelIdx == -1 {
			sentinelIdx = i
		}
	}
	if sentinelIdx == -1 {
		return nil, errors.SchemaDriftf("sentinel column %q not found", sentinel)
	}

	// Drop everything right of the sentinel.
	for key, idx := range cols {
		if idx > sentinelIdx {
			delete(cols, key)
		}
	}
	return cols, nil
}

// cell reads a named column from a row; absent columns and ragged rows
// yield "".
func cell(row []string, cols columns, name string) string {
	idx, ok := cols[strings.ToLower(name)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isBlank reports whether a row has no content at all.
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
