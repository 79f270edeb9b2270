// Package sheet fetches worksheets from the operations spreadsheet as
// rectangular tables of raw strings.
package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
)

// Table is a rectangular grid of raw worksheet cells. The first row is the
// header; every cell is a string.
type Table [][]string

// Header returns the header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns everything below the header.
func (t Table) Rows() [][]string {
	if len(t) <= 1 {
		return nil
	}
	return t[1:]
}

// Source fetches a worksheet by name.
type Source interface {
	// Values returns all cells of the worksheet as a 2-D string grid.
	// Transport and authorization failures surface as SheetUnavailable.
	Values(ctx context.Context, worksheet string) (Table, error)
}

// GoogleSource reads worksheets through the Google Sheets API using a
// read-only service credential.
type GoogleSource struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewGoogleSource builds a Sheets client from a service-account key file.
// Credentials are read once here; the client is long-lived.
func NewGoogleSource(ctx context.Context, spreadsheetID, credentialsFile string, logger *slog.Logger) (*GoogleSource, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSheetUnavailable, "create sheets client")
	}

	return &GoogleSource{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// Values fetches all cells of a worksheet.
func (g *GoogleSource) Values(ctx context.Context, worksheet string) (Table, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, worksheet).Context(ctx).Do()
	if err != nil {
		g.logger.Error("worksheet fetch failed", "worksheet", worksheet, "error", err)
		return nil, errors.Wrapf(err, errors.CodeSheetUnavailable, "fetch worksheet %q", worksheet)
	}

	table := make(Table, 0, len(resp.Values))
	width := 0
	for _, row := range resp.Values {
		if len(row) > width {
			width = len(row)
		}
	}
	for _, row := range resp.Values {
		cells := make([]string, width)
		for i, v := range row {
			cells[i] = stringifyCell(v)
		}
		table = append(table, cells)
	}

	g.logger.Debug("worksheet fetched", "worksheet", worksheet, "rows", len(table))
	return table, nil
}

// stringifyCell renders a Sheets API cell value as a raw string. The API
// reports untyped JSON values; numbers arrive as float64.
func stringifyCell(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Avoid "1.000000" for integral cells.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
