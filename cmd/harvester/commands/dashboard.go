package commands

import (
	"log/slog"
	"os"

	"github.com/qepting91/complaint-harvester/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	dashboardData *string
	dashboardPort *string
)

func init() {
	dashboardData = dashboardCmd.Flags().String("data", "data.json", "Harvested JSON file to chart.")
	dashboardPort = dashboardCmd.Flags().String("port", "", "Listen port. Defaults to $PORT, then 8080.")
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [--data <harvest.json>] [--port <p>]",
	Short: "Serves charts for a harvested file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := *dashboardPort
		if port == "" {
			port = os.Getenv("PORT")
		}
		if port == "" {
			port = "8080"
		}
		slog.Info("Starting Dashboard", "port", port, "data", *dashboardData)
		return dashboard.StartServer(*dashboardData, port)
	},
}
