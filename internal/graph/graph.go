// Package graph implements the OneDrive workbook side of the bridge as a
// tabular.Source, using the Microsoft Graph drive item content API with an
// OAuth2 client credentials grant.
package graph

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

const (
	SCOPE           = "https://graph.microsoft.com/.default"
	DefaultBaseURL  = "https://graph.microsoft.com/v1.0"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Client reads and writes one worksheet of an Excel workbook stored as a
// OneDrive drive item. The workbook is downloaded and uploaded whole; the
// xlsx payload is decoded and encoded entirely in memory.
type Client struct {
	http      *http.Client
	baseURL   string
	fileID    string
	worksheet string
}

// NewClient binds the client to a drive item ID and worksheet name. Tokens
// are acquired with the client credentials flow for the tenant and cached
// in memory by the underlying oauth2 transport - nothing is persisted.
func NewClient(ctx context.Context, clientID, tenantID, clientSecret, fileID, worksheet, baseURL string) (*Client, error) {
	if clientID == "" || tenantID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: client ID, tenant ID and client secret are required", tabular.ErrNotConfigured)
	}

	if fileID == "" || worksheet == "" {
		return nil, fmt.Errorf("%w: drive item ID and worksheet name are required", tabular.ErrNotConfigured)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	config := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
		Scopes:       []string{SCOPE},
	}

	return &Client{
		http:      config.Client(ctx),
		baseURL:   baseURL,
		fileID:    fileID,
		worksheet: worksheet,
	}, nil
}

func (c *Client) Read(ctx context.Context) (tabular.Snapshot, error) {
	if c == nil || c.http == nil {
		return nil, tabular.ErrNotConfigured
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabular.ErrRead, err)
	}

	response, err := c.http.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to download workbook (%v)", classify(err, tabular.ErrRead), err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: error downloading workbook (%v)", tabular.ErrRead, response.Status)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to download workbook (%v)", tabular.ErrRead, err)
	}

	snapshot, err := decodeWorkbook(b, c.worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabular.ErrRead, err)
	}

	return snapshot, nil
}

func (c *Client) Write(ctx context.Context, snapshot tabular.Snapshot) error {
	if c == nil || c.http == nil {
		return tabular.ErrNotConfigured
	}

	b, err := encodeWorkbook(snapshot, c.worksheet)
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrWrite, err)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrWrite, err)
	}

	rq.Header.Set("Content-Type", contentTypeXLSX)

	response, err := c.http.Do(rq)
	if err != nil {
		return fmt.Errorf("%w: unable to upload workbook (%v)", classify(err, tabular.ErrWrite), err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: error uploading workbook (%v)", tabular.ErrWrite, response.Status)
	}

	return nil
}

func (c *Client) contentURL() string {
	return fmt.Sprintf("%s/me/drive/items/%s/content", c.baseURL, c.fileID)
}

// classify maps token endpoint failures to ErrAuth so that the caller can
// distinguish 'could not authenticate' from 'remote operation failed'.
func classify(err error, fallback error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		return tabular.ErrAuth
	}

	return fallback
}
