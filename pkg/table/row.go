package table

import (
	"fmt"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/pricing"
)

// LeaseOnDemand is the lease length label of on-demand rows.
const LeaseOnDemand = "OnDemand"

// Row is one priced term of an instance in a region, ready for display.
type Row struct {
	// ID is shared by the rows of one group (instance, region, engine). It is
	// only stable within one computation.
	ID int `json:"id"`
	// Key is unique across the table: name::regionCode::termCode.
	Key string `json:"key"`

	CloudProvider catalog.CloudProvider `json:"cloudProvider"`
	Name          string                `json:"name"`
	Processor     string                `json:"processor"`
	CPU           int                   `json:"cpu"`
	Memory        string                `json:"memory"`
	EngineType    catalog.EngineType    `json:"engineType"`
	// LeaseLength is LeaseOnDemand, "1yr" or "3yr".
	LeaseLength string `json:"leaseLength"`
	Region      string `json:"region"`
	RegionCode  string `json:"regionCode"`

	CommitmentUSD catalog.Price `json:"commitmentUSD"`
	HourlyUSD     catalog.Price `json:"hourlyUSD"`
	// BaseHourlyUSD is the on-demand hourly price of the group.
	BaseHourlyUSD catalog.Price `json:"baseHourlyUSD"`
	ExpectedCost  catalog.Price `json:"expectedCost"`

	ChildCount int `json:"childCount"`
}

func (r *Row) OnDemand() bool {
	return r.LeaseLength == LeaseOnDemand
}

func (r *Row) quote() pricing.Quote {
	q := pricing.Quote{Hourly: r.HourlyUSD, Commitment: r.CommitmentUSD}
	if !r.OnDemand() {
		q.Contract = catalog.ContractLength(r.LeaseLength)
	}
	return q
}

func (r *Row) refreshCost(utilization float64, leaseLength int) {
	r.ExpectedCost = pricing.ExpectedCost(r.quote(), utilization, leaseLength)
}

// Diff is the relative difference between the row cost and the on-demand cost
// of its group. ok is false for on-demand rows and when no base price exists.
func (r *Row) Diff(utilization float64, leaseLength int) (diff float64, ok bool) {
	if r.OnDemand() {
		return 0, false
	}
	return pricing.Diff(r.ExpectedCost, r.BaseHourlyUSD, utilization, leaseLength)
}

// AWS uses "." and GCP uses "-" inside names, hence "::" as separator.
func groupKey(name, regionCode string, engine catalog.EngineType) string {
	return fmt.Sprintf("%s::%s::%s", name, regionCode, engine)
}

func rowKey(name, regionCode, termCode string) string {
	return fmt.Sprintf("%s::%s::%s", name, regionCode, termCode)
}

func leaseLabel(term *catalog.Term) string {
	if term.Type == catalog.ChargeTypeOnDemand {
		return LeaseOnDemand
	}
	if term.Payload == nil || term.Payload.LeaseContractLength == "" {
		return string(term.Type)
	}
	return string(term.Payload.LeaseContractLength)
}
