package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"go-result-table/internal/config"
	"go-result-table/internal/logger"
	"go-result-table/internal/metrics"
	"go-result-table/internal/orchestrator"
	"go-result-table/internal/table"
	"go-result-table/internal/utils"
)

func main() {
	start := time.Now()
	ctx := context.Background()

	cfg := config.Load()

	if err := utils.EnsureDir(cfg.LogsDir); err != nil {
		log.Fatalf("Failed to create dir %s: %v", cfg.LogsDir, err)
	}

	runID := uuid.New().String()
	logger.Init(filepath.Join(cfg.LogsDir, "run.log"), runID)

	log.Printf("Run ID %s\n", runID)
	logger.L().Printf("result file: %s", cfg.ResultFile)

	// Diagnostics go to stderr and the run log; stdout carries
	// table rows only.
	totals := table.New()
	verified := table.New()

	sourceMetrics := make(chan metrics.SourceMetric, 10)
	metricsDone := make(chan struct{})
	go metrics.Collect(sourceMetrics, metricsDone)

	chain := orchestrator.New()

	if cfg.FTP.Host != "" {
		chain.Add("FETCH RESULTS", func(ctx context.Context) error {
			return orchestrator.RunFetch(ctx, cfg)
		})
	}

	chain.Add("AGGREGATE RESULTS", func(ctx context.Context) error {
		return orchestrator.RunAggregate(
			ctx,
			cfg.ResultFile,
			totals,
			verified,
			sourceMetrics,
		)
	})

	chain.Add("RENDER TABLE", func(ctx context.Context) error {
		return orchestrator.RunRender(ctx, os.Stdout, totals, verified)
	})

	err := chain.Run(ctx)

	close(sourceMetrics)
	<-metricsDone

	if err != nil {
		logger.L().Printf("RUN FAILED: %v", err)
		log.Fatalf("RUN FAILED: %v", err)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Alloc=%dMB Sys=%dMB", m.Alloc/1024/1024, m.Sys/1024/1024)
	log.Printf("TABLE GENERATED IN %s\n", time.Since(start))
	logger.L().Printf("table generated in %s", time.Since(start))
}
