package sheetstore

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements RowAPI against a Google spreadsheet through the
// Sheets v4 API with service account credentials.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64 // tab title -> numeric sheet id
}

// Connect authenticates with the service account key, opens the
// spreadsheet by ID and caches the numeric sheet ids of its tabs. A
// revoked key, a sheet that was never shared with the client email or a
// plain network failure all surface here, wrapped as ErrNotConnected so
// the caller can run degraded instead of crashing.
func Connect(ctx context.Context, credentials []byte, spreadsheetID string) (*Client, error) {
	conf, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing service account key: %v", ErrNotConnected, err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: creating sheets service: %v", ErrNotConnected, err)
	}

	c := &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
	if err := c.refreshSheetIDs(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) refreshSheetIDs(ctx context.Context) error {
	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: opening spreadsheet %s: %v", ErrNotConnected, c.spreadsheetID, err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			c.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	return nil
}

// Rows returns every row of the tab, header included, as strings.
func (c *Client) Rows(tab string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, tab).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrNotConnected, tab, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprintf("%v", cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Header returns the first row of the tab.
func (c *Client) Header(tab string) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, tab+"!1:1").Do()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s header: %v", ErrNotConnected, tab, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrWriteRejected, tab)
	}
	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprintf("%v", cell)
	}
	return header, nil
}

// Append adds the row after the tab's last non-empty row.
func (c *Client) Append(tab string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, tab, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("%w: appending to %s: %v", ErrWriteRejected, tab, err)
	}
	return nil
}

// UpdateRow rewrites one 1-based row in place, starting at column A.
func (c *Client) UpdateRow(tab string, rowIndex int, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	rng := fmt.Sprintf("%s!A%d", tab, rowIndex)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("%w: updating %s row %d: %v", ErrWriteRejected, tab, rowIndex, err)
	}
	return nil
}

// DeleteRow removes one 1-based row via a DeleteDimension request, which
// needs the numeric sheet id rather than the tab title.
func (c *Client) DeleteRow(tab string, rowIndex int) error {
	sheetID, ok := c.sheetIDs[tab]
	if !ok {
		return fmt.Errorf("%w: unknown tab %s", ErrWriteRejected, tab)
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex - 1), // API range is 0-based half-open
					EndIndex:   int64(rowIndex),
				},
			},
		}},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Do()
	if err != nil {
		return fmt.Errorf("%w: deleting %s row %d: %v", ErrWriteRejected, tab, rowIndex, err)
	}
	return nil
}

// EnsureTab creates the tab with its header row when it does not exist.
func (c *Client) EnsureTab(tab string, header []string) error {
	if _, ok := c.sheetIDs[tab]; ok {
		return nil
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: tab,
					GridProperties: &sheets.GridProperties{
						RowCount:    1000,
						ColumnCount: 20,
					},
				},
			},
		}},
	}
	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Do()
	if err != nil {
		// Another writer may have created it between Get and BatchUpdate.
		if strings.Contains(err.Error(), "already exists") {
			return c.refreshSheetIDs(context.Background())
		}
		return fmt.Errorf("%w: creating tab %s: %v", ErrWriteRejected, tab, err)
	}
	for _, r := range resp.Replies {
		if r.AddSheet != nil && r.AddSheet.Properties != nil {
			c.sheetIDs[tab] = r.AddSheet.Properties.SheetId
		}
	}
	return c.Append(tab, header)
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
