package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-result-table/internal/config"
	"go-result-table/internal/ftp"
	"go-result-table/internal/metrics"
	"go-result-table/internal/parser"
	"go-result-table/internal/render"
	"go-result-table/internal/table"
)

// RunFetch downloads result reports from the harness host into the
// fetch directory. Registered only when an FTP host is configured.
func RunFetch(ctx context.Context, cfg *config.Config) error {
	client, err := ftp.NewClient(cfg.FTP)
	if err != nil {
		return err
	}
	defer client.Close()

	files, err := client.DownloadReports(cfg.FetchDir)
	if err != nil {
		return err
	}

	log.Printf("Downloaded %d report(s)\n", len(files))
	return nil
}

// RunAggregate reads the result report at path and fills both count
// tables. A missing or unreadable report is fatal for the run; dirty
// lines inside it are not.
func RunAggregate(
	ctx context.Context,
	path string,
	totals *table.Counts,
	verified *table.Counts,
	sourceMetrics chan<- metrics.SourceMetric,
) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open result report: %w", err)
	}
	defer f.Close()

	start := time.Now()

	stats, err := parser.Aggregate(f, totals, verified)
	if err != nil {
		return fmt.Errorf("read result report: %w", err)
	}

	sourceMetrics <- metrics.SourceMetric{
		FileName:    filepath.Base(path),
		StartTime:   start,
		EndTime:     time.Now(),
		Duration:    time.Since(start),
		TotalLines:  stats.Lines,
		ParsedRows:  stats.Parsed,
		SkippedRows: stats.Skipped,
		Status:      "SUCCESS",
	}

	log.Printf("Aggregated %d case(s) from %d line(s)\n", verified.Len(), stats.Lines)
	return nil
}

// RunRender writes the summary table rows to w.
func RunRender(ctx context.Context, w io.Writer, totals, verified *table.Counts) error {
	return render.Rows(w, totals, verified)
}
