// Package sheets implements the Google Sheets side of the bridge as a
// tabular.Source, authenticated with a service account.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

const SCOPE = "https://www.googleapis.com/auth/spreadsheets"

// Client reads and writes a single worksheet range of a Google Sheets
// spreadsheet. Writes replace the whole range (clear and update), which
// makes re-writing an unchanged snapshot a no-op as far as the sheet
// contents are concerned.
type Client struct {
	google      *sheetsv4.Service
	spreadsheet string
	area        string
}

// NewClient authorizes against the Sheets API with the service account
// credentials JSON and binds the client to a spreadsheet ID and A1 range
// e.g. 'Sheet1!A:Z'.
func NewClient(ctx context.Context, credentials []byte, spreadsheet, area string) (*Client, error) {
	if spreadsheet == "" || area == "" {
		return nil, fmt.Errorf("%w: spreadsheet ID and range are required", tabular.ErrNotConfigured)
	}

	config, err := google.JWTConfigFromJSON(credentials, SCOPE)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service account credentials (%v)", tabular.ErrAuth, err)
	}

	service, err := sheetsv4.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to create new Sheets client (%v)", tabular.ErrAuth, err)
	}

	return &Client{
		google:      service,
		spreadsheet: spreadsheet,
		area:        area,
	}, nil
}

func (c *Client) Read(ctx context.Context) (tabular.Snapshot, error) {
	if c == nil || c.google == nil {
		return nil, tabular.ErrNotConfigured
	}

	response, err := c.google.Spreadsheets.Values.Get(c.spreadsheet, c.area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to retrieve data from sheet (%v)", tabular.ErrRead, err)
	}

	if len(response.Values) == 0 {
		return nil, fmt.Errorf("%w: no data in spreadsheet/range", tabular.ErrRead)
	}

	return fromValues(response.Values), nil
}

func (c *Client) Write(ctx context.Context, snapshot tabular.Snapshot) error {
	if c == nil || c.google == nil {
		return tabular.ErrNotConfigured
	}

	// ... clear existing data
	rq := sheetsv4.ClearValuesRequest{}
	if _, err := c.google.Spreadsheets.Values.Clear(c.spreadsheet, c.area, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: unable to clear sheet (%v)", tabular.ErrWrite, err)
	}

	// ... write snapshot
	values := sheetsv4.ValueRange{
		Values: toValues(snapshot),
	}

	if _, err := c.google.Spreadsheets.Values.Update(c.spreadsheet, c.area, &values).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("%w: unable to update sheet (%v)", tabular.ErrWrite, err)
	}

	return nil
}
