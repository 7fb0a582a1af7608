// Package config assembles the service configuration from environment
// variables, optionally preloaded from a .env file. Every default is an
// insecure placeholder - production deployments must override all of them.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the bridge service.
type Config struct {
	HTTP   HTTPConfig
	Sheets SheetsConfig
	Graph  GraphConfig
}

// HTTPConfig covers the web surface.
type HTTPConfig struct {
	Addr string
}

// SheetsConfig identifies the Google Sheets source and its credentials.
type SheetsConfig struct {
	SpreadsheetID string
	Range         string
	Credentials   string
}

// GraphConfig identifies the OneDrive workbook and the Azure application
// used to access it.
type GraphConfig struct {
	ClientID     string
	TenantID     string
	ClientSecret string
	FileID       string
	Worksheet    string
	BaseURL      string
}

// Default returns the placeholder configuration.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr: ":12001",
		},
		Sheets: SheetsConfig{
			SpreadsheetID: "your-google-sheets-id",
			Range:         "Sheet1!A:Z",
			Credentials:   "credentials.json",
		},
		Graph: GraphConfig{
			ClientID:     "your-client-id",
			TenantID:     "your-tenant-id",
			ClientSecret: "your-client-secret",
			FileID:       "your-onedrive-file-id",
			Worksheet:    "Sheet1",
			BaseURL:      "",
		},
	}
}

// Load reads the environment on top of the defaults. envfile, if not
// empty, names a dotenv file to preload; a missing default .env is not an
// error.
func Load(envfile string) Config {
	if envfile != "" {
		_ = godotenv.Load(envfile)
	} else {
		_ = godotenv.Load()
	}

	config := Default()

	getenv(&config.HTTP.Addr, "HTTP_ADDR")
	getenv(&config.Sheets.SpreadsheetID, "GOOGLE_SHEETS_ID")
	getenv(&config.Sheets.Range, "GOOGLE_SHEET_RANGE")
	getenv(&config.Sheets.Credentials, "GOOGLE_CREDENTIALS")
	getenv(&config.Graph.ClientID, "AZURE_CLIENT_ID")
	getenv(&config.Graph.TenantID, "AZURE_TENANT_ID")
	getenv(&config.Graph.ClientSecret, "AZURE_CLIENT_SECRET")
	getenv(&config.Graph.FileID, "ONEDRIVE_FILE_ID")
	getenv(&config.Graph.Worksheet, "EXCEL_WORKSHEET_NAME")
	getenv(&config.Graph.BaseURL, "GRAPH_BASE_URL")

	return config
}

// Configured returns true if none of the identifying values is empty or a
// placeholder.
func (c SheetsConfig) Configured() bool {
	return !placeholder(c.SpreadsheetID) && !placeholder(c.Range) && !placeholder(c.Credentials)
}

// Configured returns true if none of the identifying values is empty or a
// placeholder.
func (c GraphConfig) Configured() bool {
	return !placeholder(c.ClientID) &&
		!placeholder(c.TenantID) &&
		!placeholder(c.ClientSecret) &&
		!placeholder(c.FileID) &&
		!placeholder(c.Worksheet)
}

func getenv(v *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*v = value
	}
}

func placeholder(v string) bool {
	return v == "" || strings.HasPrefix(v, "your-")
}
