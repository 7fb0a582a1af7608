package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheetbridge/sheetbridge/internal/config"
	"github.com/sheetbridge/sheetbridge/internal/graph"
	"github.com/sheetbridge/sheetbridge/internal/httpd"
	"github.com/sheetbridge/sheetbridge/internal/sheets"
	"github.com/sheetbridge/sheetbridge/internal/syncer"
	"github.com/sheetbridge/sheetbridge/internal/tabular"
)

const VERSION = "v0.1.0"

var options = struct {
	env     string
	addr    string
	debug   bool
	version bool
}{}

func main() {
	flag.StringVar(&options.env, "env", "", "Path for a dotenv file to preload into the environment")
	flag.StringVar(&options.addr, "addr", "", "HTTP listen address. Overrides HTTP_ADDR")
	flag.BoolVar(&options.debug, "debug", false, "Enable debugging information")
	flag.BoolVar(&options.version, "version", false, "Display the current version")
	flag.Parse()

	if options.version {
		fmt.Printf("%s\n", VERSION)
		return
	}

	if options.debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg := config.Load(options.env)
	if options.addr != "" {
		cfg.HTTP.Addr = options.addr
	}

	ctx := context.Background()

	// ... collaborator handles are built once at process start; a source
	// that fails to initialise leaves the server running in a degraded
	// state that /status reports as 'Not configured'
	sourceA, okA := newSpreadsheet(ctx, cfg.Sheets)
	sourceB, okB := newWorkbook(ctx, cfg.Graph)

	orchestrator := syncer.New(sourceA, sourceB)

	server := httpd.NewServer(orchestrator, cfg.HTTP.Addr, okA, okB)
	if err := server.Start(); err != nil {
		slog.Error("Failed to start HTTP server", "error", err)
		os.Exit(1)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	if err := server.Stop(); err != nil {
		slog.Error("Error shutting down", "error", err)
		os.Exit(1)
	}
}

func newSpreadsheet(ctx context.Context, cfg config.SheetsConfig) (tabular.Source, bool) {
	if !cfg.Configured() {
		slog.Warn("Google Sheets source not configured")
		return tabular.Unconfigured{}, false
	}

	credentials, err := os.ReadFile(cfg.Credentials)
	if err != nil {
		slog.Warn("Unable to read Google Sheets credentials", "error", err)
		return tabular.Unconfigured{}, false
	}

	client, err := sheets.NewClient(ctx, credentials, cfg.SpreadsheetID, cfg.Range)
	if err != nil {
		slog.Warn("Unable to initialise Google Sheets client", "error", err)
		return tabular.Unconfigured{}, false
	}

	slog.Debug("Google Sheets source initialised", "spreadsheet", cfg.SpreadsheetID, "range", cfg.Range)

	return client, true
}

func newWorkbook(ctx context.Context, cfg config.GraphConfig) (tabular.Source, bool) {
	if !cfg.Configured() {
		slog.Warn("OneDrive workbook source not configured")
		return tabular.Unconfigured{}, false
	}

	client, err := graph.NewClient(ctx, cfg.ClientID, cfg.TenantID, cfg.ClientSecret, cfg.FileID, cfg.Worksheet, cfg.BaseURL)
	if err != nil {
		slog.Warn("Unable to initialise OneDrive workbook client", "error", err)
		return tabular.Unconfigured{}, false
	}

	slog.Debug("OneDrive workbook source initialised", "file", cfg.FileID, "worksheet", cfg.Worksheet)

	return client, true
}
