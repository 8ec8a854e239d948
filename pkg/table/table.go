package table

import (
	"github.com/davidcollom/dbcost/pkg/search"
)

// Recompute is the work an update of the search config required.
type Recompute int

const (
	// RecomputeNone means the config did not change.
	RecomputeNone Recompute = iota
	// RecomputeCost means only utilization or lease length changed: expected
	// costs were recomputed in place and the active sort reapplied.
	RecomputeCost
	// RecomputeStructural means the rows were rebuilt from the catalog.
	RecomputeStructural
)

func (r Recompute) String() string {
	switch r {
	case RecomputeNone:
		return "none"
	case RecomputeCost:
		return "cost"
	case RecomputeStructural:
		return "structural"
	}
	return "unknown"
}

// Generator builds the rows of one view (dashboard, instance, region...).
type Generator func(search.Config) []Row

// Table holds the rows of a view for the current config and sort, for long-lived
// callers such as an interactive session that changes one setting at a time.
// It is not safe for concurrent use; give each caller its own Table.
type Table struct {
	generate Generator
	config   search.Config
	order    *SortOrder
	rows     []Row
}

// New computes the rows of generate for config.
func New(generate Generator, config search.Config) *Table {
	return &Table{
		generate: generate,
		config:   config,
		rows:     generate(config),
	}
}

func (t *Table) Rows() []Row {
	return t.rows
}

func (t *Table) Config() search.Config {
	return t.config
}

// SortOrder returns the active sort, if any.
func (t *Table) SortOrder() (SortOrder, bool) {
	if t.order == nil {
		return SortOrder{}, false
	}
	return *t.order, true
}

// Update switches to config. Structural changes rebuild the rows; changes
// limited to utilization and lease length only recompute expected costs and
// reorder the existing rows.
func (t *Table) Update(config search.Config) Recompute {
	if !search.HasChanged(t.config, config) {
		return RecomputeNone
	}
	structural := search.ShouldRefresh(t.config, config)
	t.config = config

	if structural {
		t.rows = t.generate(config)
		t.applySort()
		return RecomputeStructural
	}

	for i := range t.rows {
		t.rows[i].refreshCost(config.Utilization, config.LeaseLength)
	}
	t.applySort()
	return RecomputeCost
}

// Sort applies order and keeps it active for later updates.
func (t *Table) Sort(order SortOrder) {
	t.order = &order
	t.applySort()
}

// ClearSort drops the active sort and rebuilds the rows in catalog order.
func (t *Table) ClearSort() {
	t.order = nil
	t.rows = t.generate(t.config)
}

// applySort orders rows the way a fresh generate followed by the active sort
// would. Field sorts tie inside a group, so the group order is restored first.
func (t *Table) applySort() {
	restoreGroupOrder(t.rows)
	if t.order != nil {
		SortRows(t.rows, *t.order)
	}
}
