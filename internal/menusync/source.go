package menusync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSourceUnavailable wraps every failure to read the spreadsheet.
var ErrSourceUnavailable = errors.New("menu source unavailable")

const (
	availableKeyword = "tersedia"
	minCells         = 3
)

// SourceRow is one parsed spreadsheet row. It carries no identity beyond Name.
type SourceRow struct {
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

type DataSource interface {
	FetchAll(ctx context.Context) ([]SourceRow, error)
}

// ValuesClient is the cell-level transport, implemented by pkg/spreadsheet.Client.
type ValuesClient interface {
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	WriteRange(ctx context.Context, rng string, values [][]string) error
}

// SheetSource reads the menu table (name, price, stock) from a spreadsheet range.
type SheetSource struct {
	client ValuesClient
	rng    string
}

func NewSheetSource(client ValuesClient, rng string) *SheetSource {
	return &SheetSource{client: client, rng: rng}
}

func (s *SheetSource) FetchAll(ctx context.Context) ([]SourceRow, error) {
	values, err := s.client.ReadRange(ctx, s.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return ParseRows(values), nil
}

// WriteAll replaces the whole table, header included. The sync job never calls it.
func (s *SheetSource) WriteAll(ctx context.Context, rows []SourceRow) error {
	values := make([][]string, 0, len(rows)+1)
	values = append(values, []string{"Nama", "Harga", "Stok"})
	for _, r := range rows {
		stock := "Habis"
		if r.Available {
			stock = "Tersedia"
		}
		values = append(values, []string{r.Name, strconv.FormatInt(r.Price, 10), stock})
	}
	if err := s.client.WriteRange(ctx, s.rng, values); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return nil
}

// DisabledSource stands in when no spreadsheet is configured; every fetch fails as unavailable.
type DisabledSource struct{}

func (DisabledSource) FetchAll(ctx context.Context) ([]SourceRow, error) {
	return nil, fmt.Errorf("%w: no spreadsheet configured", ErrSourceUnavailable)
}

// ParseRows skips the header row and drops rows with fewer than three cells.
func ParseRows(values [][]string) []SourceRow {
	rows := make([]SourceRow, 0, len(values))
	for i, cells := range values {
		if i == 0 {
			continue
		}
		if row, ok := ParseRow(cells); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func ParseRow(cells []string) (SourceRow, bool) {
	if len(cells) < minCells {
		return SourceRow{}, false
	}
	return SourceRow{
		Name:      strings.TrimSpace(cells[0]),
		Price:     parsePrice(cells[1]),
		Available: strings.Contains(strings.ToLower(cells[2]), availableKeyword),
	}, true
}

// parsePrice keeps only the digits, so "Rp 15.000" becomes 15000.
// Empty or overflowing input yields 0.
func parsePrice(raw string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
