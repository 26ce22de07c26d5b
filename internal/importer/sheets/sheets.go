// Package sheets reads transaction rows from a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saku-app/backend/internal/config"
	"github.com/saku-app/backend/internal/importer"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var (
	ErrSpreadsheetIDMissing = errors.New("no spreadsheet ID is configured")
	ErrHeaderRowMissing     = errors.New("the sheet does not contain a header row")
)

// The columns the import reads. The header row of the sheet decides
// which column holds which value.
const (
	headerNote     = "Transaction"
	headerType     = "Type"
	headerCategory = "Category or Account"
	headerDate     = "Date"
	headerAmount   = "Amount"
)

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	readRange     string
}

// New creates a Sheets client from the import configuration.
//
// When no credentials file is configured, Application Default Credentials
// are used.
func New(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, ErrSpreadsheetIDMissing
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.Range,
	}, nil
}

// Fetch reads all transaction rows from the configured range.
func (c *Client) Fetch(ctx context.Context) ([]importer.Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return Rows(resp.Values)
}

// Rows converts a values matrix as returned by the Sheets API into
// import rows using the header row for the column mapping.
func Rows(values [][]interface{}) ([]importer.Row, error) {
	if len(values) == 0 {
		return nil, ErrHeaderRowMissing
	}

	columns := make(map[string]int)
	for i, cell := range values[0] {
		columns[strings.TrimSpace(toString(cell))] = i
	}

	rows := make([]importer.Row, 0, len(values)-1)
	for _, value := range values[1:] {
		row := importer.Row{
			Note:     cellAt(value, columns, headerNote),
			Type:     cellAt(value, columns, headerType),
			Category: cellAt(value, columns, headerCategory),
			Date:     cellAt(value, columns, headerDate),
			Amount:   cellAt(value, columns, headerAmount),
		}

		// Rows without a date are decoration in the sheet, e.g. sums
		if row.Date == "" {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func cellAt(row []interface{}, columns map[string]int, header string) string {
	i, ok := columns[header]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(toString(row[i]))
}

func toString(cell interface{}) string {
	s, ok := cell.(string)
	if ok {
		return s
	}

	return fmt.Sprintf("%v", cell)
}
