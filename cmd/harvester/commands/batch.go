package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/qepting91/complaint-harvester/internal/config"
	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/qepting91/complaint-harvester/internal/ingest"
	"github.com/qepting91/complaint-harvester/internal/storage"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	batchTargets *string
	batchOutDir  *string
	batchWorkers *int
)

func init() {
	batchTargets = batchCmd.Flags().String("targets", "input/targets.csv", "CSV of company,max_items.")
	batchOutDir = batchCmd.Flags().String("out-dir", "data", "Directory for <company>.json outputs.")
	batchWorkers = batchCmd.Flags().Int("workers", 2, "Harvests running at once.")
	rootCmd.AddCommand(batchCmd)
}

type batchRow struct {
	target ingest.Target
	sink   string
	result *domain.HarvestResult
	err    error
}

var batchCmd = &cobra.Command{
	Use:   "batch [--targets <path>] [--out-dir <dir>] [--workers <n>]",
	Short: "Harvests every company in a CSV, each in its own browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		targets, err := ingest.LoadTargets(*batchTargets)
		if err != nil {
			return fmt.Errorf("load targets: %w", err)
		}
		slog.Info("Starting batch", "targets", len(targets), "workers", *batchWorkers)

		rows := runBatch(cmd.Context(), cfg, targets, *batchOutDir, *batchWorkers)
		renderBatch(rows)

		for _, r := range rows {
			if r.err != nil {
				return fmt.Errorf("%d of %d harvests reported errors", countFailed(rows), len(rows))
			}
		}
		return nil
	},
}

func runBatch(ctx context.Context, cfg config.File, targets []ingest.Target, outDir string, workers int) []batchRow {
	perMinute := max(cfg.NavigationsPerMinute, 1)
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	controller := harvest.NewController(cfg.Harvest(), storage.JSONWriter{}, slog.Default())

	p := pool.NewWithResults[batchRow]().WithMaxGoroutines(max(workers, 1))
	for _, t := range targets {
		t := t
		p.Go(func() batchRow {
			row := batchRow{target: t, sink: filepath.Join(outDir, t.Company+".json")}
			if err := limiter.Wait(ctx); err != nil {
				row.err = err
				return row
			}
			page, err := newProvider(cfg, false)
			if err != nil {
				row.err = err
				return row
			}
			row.result, row.err = controller.Run(ctx, page, domain.HarvestRequest{
				TargetID:   t.Company,
				MaxItems:   t.MaxItems,
				OutputSink: row.sink,
			})
			return row
		})
	}

	rows := p.Wait()
	sort.Slice(rows, func(i, j int) bool { return rows[i].target.Company < rows[j].target.Company })
	return rows
}

func renderBatch(rows []batchRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Company", "Collected", "Skipped", "Reason", "Output", "Error"})
	for _, r := range rows {
		collected, skipped, reason := 0, 0, ""
		if r.result != nil {
			collected, skipped, reason = r.result.CollectedCount, r.result.Skipped, string(r.result.TerminationReason)
		}
		errText := ""
		if r.err != nil {
			errText = r.err.Error()
		}
		t.AppendRow(table.Row{r.target.Company, collected, skipped, reason, r.sink, errText})
	}
	t.Render()
}

func countFailed(rows []batchRow) int {
	n := 0
	for _, r := range rows {
		if r.err != nil {
			n++
		}
	}
	return n
}
