package cmd

import (
	"os"

	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	dashboardSearch searchFlags
	dashboardView   viewFlags
)

var dashboardCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the price table",
	Long:  `Show every instance matching the search, grouped by instance, region and engine.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := dashboardSearch.config(cmd)
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}
		if err := dashboardView.show(os.Stdout, engine.Dashboard, config); err != nil {
			logger.Fatalf("[!] %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardSearch.register(dashboardCmd, true)
	dashboardView.register(dashboardCmd)
}
