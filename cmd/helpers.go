package cmd

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/catalog/source"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func loadEngine() (*table.Engine, error) {
	instances, err := (&source.FileSource{Path: catalogPath}).Instances()
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %s instances", humanize.Comma(int64(len(instances))))
	return table.NewEngine(catalog.New(instances), catalog.NewRegionCatalog()), nil
}

// searchFlags are the search facets settable from the command line. Flags
// override the values of --config, which override the defaults.
type searchFlags struct {
	configFile  string
	providers   []string
	regions     []string
	engines     []string
	charges     []string
	minCPU      float64
	minRAM      float64
	keyword     string
	utilization float64
	lease       int
}

func (f *searchFlags) register(cmd *cobra.Command, withRegion bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "Path to a YAML search config")
	flags.StringSliceVar(&f.providers, "provider", nil, "Cloud providers (AWS, GCP)")
	if withRegion {
		flags.StringSliceVar(&f.regions, "region", nil, "Region names, e.g. \"US East (N. Virginia)\"")
	}
	flags.StringSliceVar(&f.engines, "engine", nil, "Database engines (MYSQL, POSTGRES, ORACLE, SQLSERVER)")
	flags.StringSliceVar(&f.charges, "charge", nil, "Charge types (OnDemand, Reserved)")
	flags.Float64Var(&f.minCPU, "min-cpu", 0, "Minimum vCPU count")
	flags.Float64Var(&f.minRAM, "min-ram", 0, "Minimum memory in GB")
	flags.StringVarP(&f.keyword, "keyword", "k", "", "Keep rows whose name, memory, processor or region contains the keyword")
	flags.Float64VarP(&f.utilization, "utilization", "u", 1, "Expected utilization of on-demand instances, in (0, 1]")
	flags.IntVarP(&f.lease, "lease", "l", 1, "Lease length in years (1-3)")
}

func (f *searchFlags) config(cmd *cobra.Command) (search.Config, error) {
	config := search.Default()
	if f.configFile != "" {
		var err error
		if config, err = search.ParseConfig(f.configFile); err != nil {
			return search.Config{}, err
		}
	}

	// Reuse the query parser so flags and the HTTP API accept the same values.
	values := config.Encode()
	changed := cmd.Flags().Changed
	if changed("provider") {
		values.Set(search.KeyProvider, joinList(f.providers))
	}
	if changed("region") {
		values.Set(search.KeyRegion, joinList(f.regions))
	}
	if changed("engine") {
		values.Set(search.KeyEngine, joinList(f.engines))
	}
	if changed("charge") {
		values.Set(search.KeyCharge, joinList(f.charges))
	}
	if changed("min-cpu") {
		values.Set(search.KeyMinCPU, formatFloat(f.minCPU))
	}
	if changed("min-ram") {
		values.Set(search.KeyMinRAM, formatFloat(f.minRAM))
	}
	if changed("keyword") {
		values.Set(search.KeyKeyword, f.keyword)
	}
	if changed("utilization") {
		values.Set(search.KeyUtilization, formatFloat(f.utilization))
	}
	if changed("lease") {
		values.Set(search.KeyLease, formatInt(f.lease))
	}

	config, err := search.ParseQuery(values)
	if err != nil {
		return search.Config{}, errors.Wrap(err, "invalid search")
	}
	logger.Debugf("Search config: %# v", pretty.Formatter(config))
	return config, nil
}

// viewFlags control how a table view is sorted, paged and printed.
type viewFlags struct {
	sortField string
	desc      bool
	page      int
	pageSize  int
	output    string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.sortField, "sort", "s", "", "Sort rows by region, cpu, memory or expectedCost")
	flags.BoolVar(&f.desc, "desc", false, "Sort in descending order")
	flags.IntVar(&f.page, "page", 1, "Page to display")
	flags.IntVar(&f.pageSize, "page-size", 50, "Rows per page, 0 for a single page")
	flags.StringVarP(&f.output, "output", "o", "table", "Output format (table, json)")
}

// show computes a view and prints the requested page to w.
func (f *viewFlags) show(w io.Writer, generate table.Generator, config search.Config) error {
	t := table.New(generate, config)
	if f.sortField != "" {
		field, err := table.ParseSortField(f.sortField)
		if err != nil {
			return err
		}
		t.Sort(table.SortOrder{Field: field, Ascending: !f.desc})
	}

	page := table.Paginate(t.Rows(), table.Pagination{Current: f.page, PageSize: f.pageSize}, config.IsFiltering())
	logger.Debugf("Showing page %d of %d, %s rows", page.Number, page.PageCount, humanize.Comma(int64(page.Total)))

	switch f.output {
	case "table":
		if page.Total == 0 {
			logger.Warn("No instance matches the search")
		}
		table.Render(w, page, config)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(page), "could not encode rows")
	default:
		return errors.Errorf("unknown output format %q", f.output)
	}
	return nil
}

func joinList(list []string) string {
	return strings.Join(list, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
