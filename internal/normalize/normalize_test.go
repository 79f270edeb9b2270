package normalize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	domainerrors "github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/normalize"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/sheet"
)

func projectHeader() []string {
	return []string{
		"Name", "Brand", "Book Name & Link", "Format", "Project Manager",
		"Platform", "Publishing Status", "Publishing Date", "Last Edited",
		"Trustpilot Review", "Trustpilot Review Date", "Review Link", "Issues",
	}
}

func TestProjects(t *testing.T) {
	table := sheet.Table{
		projectHeader(),
		{"Dana Cole", "bookmarketeers", "Harvest Moon", "eBook", "jane doe", "Amazon", "Published", "10-March-2025", "11-March-2025", "Pending", "", "", ""},
		{"Ben Ray", "KDP", "Night Shift", "", "JANE DOE", "Amazon", "Published", "01-February-2025", "", "Pending", "", "", "cover misprint"},
	}

	projects, err := normalize.Projects(table)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Sorted by publishing date ascending, ordinals 1-based.
	assert.Equal(t, "Ben Ray", projects[0].ClientName)
	assert.Equal(t, 1, projects[0].Ordinal)
	assert.Equal(t, "Dana Cole", projects[1].ClientName)
	assert.Equal(t, 2, projects[1].Ordinal)

	// PM names are Title-Cased regardless of sheet casing.
	assert.Equal(t, "Jane Doe", projects[0].ProjectManager)
	assert.Equal(t, "Jane Doe", projects[1].ProjectManager)

	// Brand canonicalization.
	assert.Equal(t, domain.BrandBookMarketeers, projects[1].Brand)
	assert.Equal(t, domain.BrandKDP, projects[0].Brand)

	// Empty presentation cells become N/A; populated ones stay.
	assert.Equal(t, "N/A", projects[0].Format)
	assert.Equal(t, "eBook", projects[1].Format)
	assert.Equal(t, "cover misprint", projects[0].Issues)
	assert.Equal(t, "N/A", projects[1].Issues)

	// Dates.
	assert.True(t, projects[1].PublishingDate.Valid())
	assert.False(t, projects[0].ReviewDate.Valid())
}

func TestProjectsIdempotent(t *testing.T) {
	table := sheet.Table{
		projectHeader(),
		{"Dana Cole", "bookmarketeers", "Harvest Moon", "eBook", "jane doe", "amazon", "published", "10-March-2025", "11-March-2025", "pending", "", "", ""},
		{"Ben Ray", "KDP", "Night Shift", "", "JANE DOE", "Amazon", "Published", "01-February-2025", "", "Sent", "", "", "cover misprint"},
		{"Ada Lin", "Writers Clique", "First Light", "Hardcover", "Jane Doe", "FAV", "Published", "", "", "Attained", "15-March-2025", "", ""},
	}

	first, err := normalize.Projects(table)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Render the normalized records back into a worksheet and normalize
	// again. The second pass must reproduce the first exactly.
	rendered := sheet.Table{projectHeader()}
	for _, p := range first {
		rendered = append(rendered, []string{
			p.ClientName, string(p.Brand), p.Book, p.Format, p.ProjectManager,
			string(p.Platform), string(p.PublishingStatus), p.PublishingDate.String(),
			p.LastEditDate.String(), string(p.ReviewState), p.ReviewDate.String(),
			p.ReviewLink, p.Issues,
		})
	}

	second, err := normalize.Projects(rendered)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProjectsSentinelTruncation(t *testing.T) {
	// A "Notes" column right of the sentinel must be ignored even though a
	// known header name repeats there.
	header := append(projectHeader(), "Notes", "Name")
	table := sheet.Table{
		header,
		{"Dana Cole", "BookMarketeers", "Harvest Moon", "", "Jane Doe", "Amazon", "Published", "10-March-2025", "", "Pending", "", "", "", "internal note", "SHOULD NOT APPEAR"},
	}

	projects, err := normalize.Projects(table)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Dana Cole", projects[0].ClientName)
}

func TestProjectsSchemaDrift(t *testing.T) {
	table := sheet.Table{
		{"Name", "Brand", "Publishing Date"},
		{"Dana Cole", "BookMarketeers", "10-March-2025"},
	}

	_, err := normalize.Projects(table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSchemaDrift))
}

func TestProjectsSkipsBlankRows(t *testing.T) {
	table := sheet.Table{
		projectHeader(),
		{"", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Dana Cole", "BookMarketeers", "Harvest Moon", "", "Jane Doe", "Amazon", "Published", "10-March-2025", "", "Pending", "", "", ""},
	}

	projects, err := normalize.Projects(table)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestProjectsEmptyTable(t *testing.T) {
	projects, err := normalize.Projects(sheet.Table{})
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestPrints(t *testing.T) {
	table := sheet.Table{
		{"Name", "Brand", "Project Manager", "Address", "Book Name & Link", "Format", "Ink Type", "No of Copies", "Order Cost", "Order Date", "Shipping Date", "Fulfilled Date", "Delivery Method", "Status", "Type", "Accepted"},
		{"Dana Cole", "BookMarketeers", "jane doe", "12 Elm St", "Harvest Moon", "Paperback", "Black & White", "150", "$1,250.50", "02-April-2025", "", "", "Courier", "Processing", "Order", "Yes"},
		{"Ben Ray", "Writers Clique", "sam reed", "", "Night Shift", "", "", "40", "$300", "01-March-2025", "", "", "", "", "Upcoming", ""},
	}

	orders, err := normalize.Prints(table)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Sorted by order date ascending.
	assert.Equal(t, "Ben Ray", orders[0].ClientName)
	assert.Equal(t, "Dana Cole", orders[1].ClientName)

	assert.Equal(t, 1250.50, orders[1].OrderCost)
	assert.Equal(t, float64(150), orders[1].Copies)
	assert.Equal(t, domain.PrintTypeUpcoming, orders[0].Type)
	assert.Equal(t, "N/A", orders[0].Address)
	assert.Equal(t, "Yes", orders[1].Accepted)
}

func TestCopyrights(t *testing.T) {
	table := sheet.Table{
		{"Name", "Project Manager", "Submission Date", "Result", "Country"},
		{"Dana Cole", "jane doe", "05-February-2025", "Yes", "USA"},
		{"Ben Ray", "sam reed", "01-January-2025", "No", "canada"},
	}

	records, err := normalize.Copyrights(table)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ben Ray", records[0].ClientName)
	assert.Equal(t, domain.CopyrightDenied, records[0].Result)
	assert.Equal(t, domain.CopyrightCanada, records[0].Country)
	assert.Equal(t, domain.CopyrightGranted, records[1].Result)
	assert.Equal(t, domain.CopyrightUSA, records[1].Country)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Jane Doe", normalize.TitleCase("  jane doe "))
	assert.Equal(t, "Jane Doe", normalize.TitleCase("JANE DOE"))
	assert.Equal(t, "", normalize.TitleCase("   "))
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, 1250.50, normalize.ParseCurrency("$1,250.50"))
	assert.Equal(t, 300.0, normalize.ParseCurrency("$300"))
	assert.Equal(t, 99.0, normalize.ParseCurrency(" 99 "))
	assert.Equal(t, 0.0, normalize.ParseCurrency("TBD"))
	assert.Equal(t, 0.0, normalize.ParseCurrency(""))
}
