package commands

import (
	"fmt"
	"log/slog"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/qepting91/complaint-harvester/internal/storage"
	"github.com/spf13/cobra"
)

var (
	harvestCompany *string
	harvestMax     *int
	harvestOutput  *string
	harvestHeadful *bool
)

func init() {
	harvestCompany = harvestCmd.Flags().String("company", "turk-telekom", "Company slug to scrape.")
	harvestMax = harvestCmd.Flags().Int("max", 100, "Maximum number of complaints to collect.")
	harvestOutput = harvestCmd.Flags().String("output", "data.json", "Output JSON file path.")
	harvestHeadful = harvestCmd.Flags().Bool("headful", false, "Show the browser window.")
	rootCmd.AddCommand(harvestCmd)
}

var harvestCmd = &cobra.Command{
	Use:   "harvest --company <slug> [--max <n>] [--output <path>]",
	Short: "Collects complaints for one company into a JSON file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		page, err := newProvider(cfg, *harvestHeadful)
		if err != nil {
			return err
		}

		controller := harvest.NewController(cfg.Harvest(), storage.JSONWriter{}, slog.Default())
		result, err := controller.Run(cmd.Context(), page, domain.HarvestRequest{
			TargetID:   *harvestCompany,
			MaxItems:   *harvestMax,
			OutputSink: *harvestOutput,
		})
		if result != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result.CollectedCount)
		}
		return err
	},
}
