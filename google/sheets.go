package google

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/daily-yolk/yolk-app-sheets/entries"
)

// Client is a minimal Google Sheets client that appends rows to, and reads ranges
// from, a spreadsheet using a bearer token issued by Credentials.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient() *Client {
	return &Client{}
}

// Append adds rows after the last row of the table in 'area'.
func (c *Client) Append(ctx context.Context, token *oauth2.Token, spreadsheet, area string, rows ...entries.Row) error {
	google, err := c.service(ctx, token)
	if err != nil {
		return err
	}

	rq := sheets.ValueRange{
		Values: [][]interface{}{},
	}

	for _, row := range rows {
		rq.Values = append(rq.Values, row.Values())
	}

	if _, err := google.Spreadsheets.Values.Append(spreadsheet, area, &rq).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return upstream(err)
	}

	return nil
}

// Read retrieves the values in 'area' as a rectangular grid, padding short rows
// with blank cells.
func (c *Client) Read(ctx context.Context, token *oauth2.Token, spreadsheet, area string) ([][]string, error) {
	google, err := c.service(ctx, token)
	if err != nil {
		return nil, err
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, upstream(err)
	}

	width := 0
	for _, row := range response.Values {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make([][]string, len(response.Values))
	for i, row := range response.Values {
		grid[i] = make([]string, width)
		for j, v := range row {
			if v != nil {
				grid[i][j] = fmt.Sprintf("%v", v)
			}
		}
	}

	return grid, nil
}

func (c *Client) service(ctx context.Context, token *oauth2.Token) (*sheets.Service, error) {
	if c.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	options := []option.ClientOption{
		option.WithHTTPClient(client),
	}

	if c.endpoint != "" {
		options = append(options, option.WithEndpoint(c.endpoint))
	}

	google, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return google, nil
}

// Range returns the A1 notation for 'columns' on the named worksheet, quoting the
// worksheet name if necessary e.g. Range("Egg Log", "B:B") returns 'Egg Log'!B:B.
// An empty 'columns' refers to the whole worksheet.
func Range(sheet string, columns string) string {
	name := sheet
	if !regexp.MustCompile(`^[A-Za-z0-9_]+$`).MatchString(sheet) {
		name = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}

	if columns == "" {
		return name
	}

	return name + "!" + columns
}
