package cmd

import (
	"os"
	"sort"
	"strings"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	regionSearch searchFlags
	regionView   viewFlags
)

var regionCmd = &cobra.Command{
	Use:   "region [name]",
	Short: "Show the prices of every instance in one region",
	Long:  `Show the prices of every instance offered in one region, e.g. "Europe (Ireland)". See the regions command for the available names.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := regionSearch.config(cmd)
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}
		if len(engine.Regions().Codes(args[0])) == 0 {
			logger.Fatalf("[!] Unknown region %s", args[0])
		}

		generate := func(config search.Config) []table.Row {
			return engine.Region(args[0], config)
		}
		if err := regionView.show(os.Stdout, generate, config); err != nil {
			logger.Fatalf("[!] %s", err)
		}
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions of the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine()
		if err != nil {
			logger.Fatalf("[!] Could not load catalog: %s", err)
		}

		t := tablewriter.NewWriter(os.Stdout)
		t.SetHeader([]string{"Region", "AWS", "GCP"})
		for _, region := range engine.Regions().Available(engine.Catalog()) {
			t.Append([]string{
				region.Name,
				region.ProviderCode[catalog.CloudProviderAWS],
				region.ProviderCode[catalog.CloudProviderGCP],
			})
		}
		t.Render()
	},
}

// regionNames lists the known region names, for shell completion.
func regionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	engine, err := loadEngine()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, region := range engine.Regions().Available(engine.Catalog()) {
		if strings.HasPrefix(strings.ToLower(region.Name), strings.ToLower(toComplete)) {
			names = append(names, region.Name)
		}
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(regionCmd)
	rootCmd.AddCommand(regionsCmd)
	regionCmd.ValidArgsFunction = regionNames
	regionSearch.register(regionCmd, false)
	regionView.register(regionCmd)
}
