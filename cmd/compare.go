package cmd

import (
	"os"

	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/spf13/cobra"
)

var (
	compareSearch searchFlags
	compareView   viewFlags
)

var compareCmd = &cobra.Command{
	Use:   "compare [name] [name]",
	Short: "Compare two instances",
	Long:  `Compare two instances side by side, each in N. Virginia or in its first region when not offered there.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := compareSearch.config(cmd)
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}
		for _, name := range args {
			if _, ok := engine.Catalog().Find(name); !ok {
				logger.Fatalf("[!] Unknown instance %s", name)
			}
		}

		generate := func(config search.Config) []table.Row {
			return engine.Compare(args[0], args[1], config)
		}
		if err := compareView.show(os.Stdout, generate, config); err != nil {
			logger.Fatalf("[!] %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareSearch.register(compareCmd, false)
	compareView.register(compareCmd)
}
