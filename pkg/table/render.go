package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/pricing"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/olekukonko/tablewriter"
)

// Render writes a page of rows as a text table. Group columns are only printed
// on the first row of each span.
func Render(w io.Writer, page Page, config search.Config) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Region", "Engine", "CPU", "Memory", "Lease Length", "Commitment", "Hourly", "Expected Cost"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	showDiff := config.HasBothChargeTypes()
	for i, row := range page.Rows {
		name, region, engine, cpu, memory := "", "", "", "", ""
		if page.Spans[i] > 0 {
			name = row.Name
			region = row.Region
			engine = string(row.EngineType)
			cpu = strconv.Itoa(row.CPU)
			memory = row.Memory + " GB"
		}
		table.Append([]string{
			name, region, engine, cpu, memory,
			row.LeaseLength,
			commitmentCell(row),
			pricing.FormatUSD(row.HourlyUSD, 2),
			expectedCostCell(row, config, showDiff),
		})
	}

	if page.PageCount > 1 {
		table.SetCaption(true, fmt.Sprintf("Page %d/%d, %d rows", page.Number, page.PageCount, page.Total))
	}
	table.Render()
}

func commitmentCell(row Row) string {
	if row.OnDemand() {
		return "-"
	}
	return pricing.FormatUSD(row.CommitmentUSD, 0)
}

func expectedCostCell(row Row, config search.Config, showDiff bool) string {
	cost := pricing.FormatUSD(row.ExpectedCost, 0)
	if !showDiff || row.OnDemand() || !row.ExpectedCost.Valid {
		return cost
	}
	return fmt.Sprintf("%s (%s)", cost, pricing.FormatDiff(row.Diff(config.Utilization, config.LeaseLength)))
}

// RenderRelated writes a related instance list, marking current.
func RenderRelated(w io.Writer, title, current string, related []Related) {
	fmt.Fprintln(w, title)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "CPU", "Memory", "Cost"})
	table.SetAutoWrapText(false)
	for _, r := range related {
		name := r.Name
		if name == current {
			name = "* " + name
		}
		table.Append([]string{
			name,
			strconv.Itoa(r.CPU),
			strconv.FormatFloat(r.Memory, 'f', -1, 64) + " GB",
			pricing.FormatUSD(r.Cost, 0),
		})
	}
	table.Render()
}

// Related is a related instance with its projected on-demand cost.
type Related struct {
	catalog.Related
	Cost catalog.Price `json:"cost"`
}
