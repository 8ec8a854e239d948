package pricing

import (
	"math"

	"github.com/davidcollom/dbcost/pkg/catalog"
)

// HoursPerYear is the number of billable hours in a (non leap) year.
const HoursPerYear = 365 * 24

// Quote is the pricing input of one table row.
type Quote struct {
	// Contract is empty for on-demand terms.
	Contract   catalog.ContractLength
	Hourly     catalog.Price
	Commitment catalog.Price
}

// OnDemand reports whether the quote is billed per used hour.
func (q Quote) OnDemand() bool {
	return q.Contract == ""
}

// ExpectedCost projects the total cost of a quote over leaseLength years.
//
// On-demand hours are discounted by utilization. Reserved hours are billed
// whether used or not, plus one commitment per contract started: every year for
// 1yr contracts, every started 3 year block for 3yr contracts.
//
// The result is unavailable when the hourly price, or the commitment of a
// reserved quote, is missing.
func ExpectedCost(q Quote, utilization float64, leaseLength int) catalog.Price {
	if !q.Hourly.Valid {
		return catalog.Price{}
	}
	years := float64(leaseLength)
	if q.OnDemand() {
		return catalog.USD(years * HoursPerYear * q.Hourly.USD * utilization)
	}

	cost := years * HoursPerYear * q.Hourly.USD
	switch q.Contract {
	case catalog.ContractLength1Year:
		if !q.Commitment.Valid {
			return catalog.Price{}
		}
		cost += q.Commitment.USD * years
	case catalog.ContractLength3Year:
		if !q.Commitment.Valid {
			return catalog.Price{}
		}
		cost += q.Commitment.USD * math.Ceil(years/3)
	}
	return catalog.USD(cost)
}

// Diff returns the relative difference between expected and the on-demand cost
// of the base hourly price. ok is false when the base price is missing or its
// projected cost is zero.
func Diff(expected, baseHourly catalog.Price, utilization float64, leaseLength int) (diff float64, ok bool) {
	if !expected.Valid || !baseHourly.Valid {
		return 0, false
	}
	baseline := float64(leaseLength) * HoursPerYear * baseHourly.USD * utilization
	if baseline == 0 {
		return 0, false
	}
	return (expected.USD - baseline) / baseline, true
}
