package table

import (
	"sort"
	"strings"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/pkg/errors"
)

// SortField is a column the table can be sorted on.
type SortField string

const (
	SortByRegion       SortField = "region"
	SortByCPU          SortField = "cpu"
	SortByMemory       SortField = "memory"
	SortByExpectedCost SortField = "expectedCost"
)

// ParseSortField accepts a field name, ignoring case.
func ParseSortField(s string) (SortField, error) {
	for _, f := range []SortField{SortByRegion, SortByCPU, SortByMemory, SortByExpectedCost} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown sort field %q", s)
}

// SortOrder is a requested cross-row sort.
type SortOrder struct {
	Field     SortField `json:"field"`
	Ascending bool      `json:"ascending"`
}

// SortRows sorts rows in place. The sort is stable, and rows of different
// groups that compare equal are ordered by ascending id so groups stay together.
//
// Sorting on expected cost orders groups by their on-demand hourly price and
// keeps each group's on-demand row on top whatever the direction; reserved rows
// follow by expected cost in the requested direction.
func SortRows(rows []Row, order SortOrder) {
	compare := comparer(order.Field)
	if compare == nil {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return compare(&rows[i], &rows[j], order.Ascending) < 0
	})
}

type compareFunc func(a, b *Row, ascending bool) int

func comparer(field SortField) compareFunc {
	switch field {
	case SortByRegion:
		return byField(func(a, b *Row) int {
			return strings.Compare(strings.ToLower(a.Region), strings.ToLower(b.Region))
		})
	case SortByCPU:
		return byField(func(a, b *Row) int {
			return compareInt(a.CPU, b.CPU)
		})
	case SortByMemory:
		return byField(func(a, b *Row) int {
			return compareFloat(catalog.ParseMemory(a.Memory), catalog.ParseMemory(b.Memory))
		})
	case SortByExpectedCost:
		return dashboardCostComparer
	}
	return nil
}

func byField(cmp func(a, b *Row) int) compareFunc {
	return func(a, b *Row, ascending bool) int {
		if c := directed(cmp(a, b), ascending); c != 0 {
			return c
		}
		return compareInt(a.ID, b.ID)
	}
}

func dashboardCostComparer(a, b *Row, ascending bool) int {
	if a.ID != b.ID {
		if c := comparePrice(a.BaseHourlyUSD, b.BaseHourlyUSD, ascending); c != 0 {
			return c
		}
		return compareInt(a.ID, b.ID)
	}
	return compareWithinGroup(a, b, ascending)
}

// compareWithinGroup pins the on-demand row first and orders the reserved rows
// by expected cost.
func compareWithinGroup(a, b *Row, ascending bool) int {
	if a.OnDemand() != b.OnDemand() {
		if a.OnDemand() {
			return -1
		}
		return 1
	}
	if a.OnDemand() {
		return 0
	}
	return comparePrice(a.ExpectedCost, b.ExpectedCost, ascending)
}

// comparePrice orders missing prices after available ones in both directions.
func comparePrice(a, b catalog.Price, ascending bool) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return 1
	case !b.Valid:
		return -1
	}
	return directed(compareFloat(a.USD, b.USD), ascending)
}

func directed(c int, ascending bool) int {
	if ascending {
		return c
	}
	return -c
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
