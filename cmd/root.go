package cmd

import (
	"fmt"
	"os"

	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	logFormat   string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "dbcost",
	Short: "Compare managed database instance prices",
	Long:  "A CLI to compare AWS RDS and GCP Cloud SQL instance prices across regions, engines and reservation terms",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logger.SetLogLevel(logLevel); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := logger.SetFormat(logFormat); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "set the log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a catalog JSON file, the bundled catalog if not set")
}
