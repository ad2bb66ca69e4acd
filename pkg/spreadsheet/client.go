// Package spreadsheet reads and writes cell ranges of a Google Sheets document.
package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client is bound to a single spreadsheet document.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets v4 client. Callers pass credentials through opts,
// e.g. option.WithCredentialsFile for a service account key.
func NewClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id cannot be empty")
	}
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange returns the formatted cell text of rng, row by row.
// Trailing empty cells are omitted by the API, so rows may be ragged.
func (c *Client) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return toStrings(resp.Values), nil
}

// WriteRange clears rng and writes values starting at its top-left cell.
func (c *Client) WriteRange(ctx context.Context, rng string, values [][]string) error {
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("clear %s: %w", rng, err)
	}

	body := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         toInterfaces(values),
	}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	return nil
}

func toStrings(values [][]interface{}) [][]string {
	out := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				continue
			}
			cells[i] = fmt.Sprint(cell)
		}
		out = append(out, cells)
	}
	return out
}

func toInterfaces(values [][]string) [][]interface{} {
	out := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
