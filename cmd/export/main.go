// Command export performs a one-shot tender export from the data provider
// (or a local JSON payload) without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tenderpulse/internal/config"
	"tenderpulse/internal/exporter"
	"tenderpulse/internal/filter"
	"tenderpulse/internal/infrastructure"
	"tenderpulse/internal/provider"
	"tenderpulse/pkg/contracts/domain"
)

func main() {
	format := flag.String("format", "xlsx", "export format: xlsx | csv")
	source := flag.String("source", "all", "source tag filter, or 'all'")
	search := flag.String("search", "", "free-text search term")
	dateFrom := flag.String("date-from", "", "inclusive lower date bound (YYYY-MM-DD)")
	dateTo := flag.String("date-to", "", "inclusive upper date bound (YYYY-MM-DD)")
	status := flag.String("status", "all", "status filter: all | active | closed")
	input := flag.String("input", "", "local JSON payload file (skips the provider fetch)")
	outDir := flag.String("out", "", "output directory (defaults to the configured exports dir)")
	force := flag.Bool("force", false, "ask the provider to bypass its cache")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", slog.String("error", err.Error()))
		logger = slog.Default()
	}

	exportFormat := exporter.Format(*format)
	if !exportFormat.Valid() {
		logger.Error("Unsupported format", slog.String("format", *format))
		os.Exit(1)
	}

	data, err := loadData(cfg, logger, *input, *force)
	if err != nil {
		logger.Warn("Provider fetch failed, using sample data", slog.String("error", err.Error()))
		data = provider.SampleData()
	}

	f := domain.FilterState{
		Source:     *source,
		SearchTerm: *search,
		DateFrom:   *dateFrom,
		DateTo:     *dateTo,
		Status:     *status,
	}
	rows := exporter.PrepareRows(filter.NewEngine().Apply(data.Flatten(), f))
	if len(rows) == 0 {
		logger.Error("No records match the current filters, nothing exported")
		os.Exit(1)
	}

	var content []byte
	switch exportFormat {
	case exporter.FormatXLSX:
		content, err = exporter.ToWorkbook(rows)
		if err != nil {
			logger.Error("Failed to build workbook", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case exporter.FormatCSV:
		content = []byte(exporter.ToDelimitedText(rows))
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.Paths.ExportsDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("Failed to create output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	filename := exporter.Filename(time.Now(), f, exportFormat)
	outPath := filepath.Join(dir, filename)
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		logger.Error("Failed to write export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Export written",
		slog.String("path", outPath),
		slog.Int("row_count", len(rows)))
	fmt.Printf("Exported %d tenders to %s\n", len(rows), outPath)
}

// loadData reads the record map from a local payload file when given,
// otherwise fetches it from the provider with a single attempt.
func loadData(cfg *config.Config, logger *slog.Logger, input string, force bool) (domain.SourceMap, error) {
	if input != "" {
		raw, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload file: %w", err)
		}
		var data domain.SourceMap
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse payload file: %w", err)
		}
		return data, nil
	}

	client := provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, logger)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Provider.Timeout)
	defer cancel()
	resp, err := client.ScrapeAll(ctx, force)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
