package cmd

import (
	"fmt"
	"os"

	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/spf13/cobra"
)

var (
	instanceSearch searchFlags
	instanceView   viewFlags
)

var instanceCmd = &cobra.Command{
	Use:   "instance [name]",
	Short: "Show the prices of one instance",
	Long:  `Show the prices of one instance in every region it is offered in, followed by the instances of the same class and family.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		config, err := instanceSearch.config(cmd)
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}
		if _, ok := engine.Catalog().Find(name); !ok {
			logger.Fatalf("[!] Unknown instance %s", name)
		}

		generate := func(config search.Config) []table.Row {
			return engine.Instance(name, config)
		}
		if err := instanceView.show(os.Stdout, generate, config); err != nil {
			logger.Fatalf("[!] %s", err)
		}
		if instanceView.output != "table" {
			return
		}

		fmt.Println()
		table.RenderRelated(os.Stdout, "Same class", name, engine.RelatedCosts(engine.Catalog().SameClass(name), config))
		if family := engine.Catalog().SameFamily(name); len(family) > 0 {
			fmt.Println()
			table.RenderRelated(os.Stdout, "Same family", name, engine.RelatedCosts(family, config))
		}
	},
}

func init() {
	rootCmd.AddCommand(instanceCmd)
	instanceSearch.register(instanceCmd, false)
	instanceView.register(instanceCmd)
}
