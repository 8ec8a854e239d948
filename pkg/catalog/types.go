package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CloudProvider identifies the cloud vendor offering an instance.
type CloudProvider string

const (
	CloudProviderAWS CloudProvider = "AWS"
	CloudProviderGCP CloudProvider = "GCP"
)

// EngineType is the database engine a term is priced for.
// The same instance may be priced differently per engine.
type EngineType string

const (
	EngineTypeMySQL      EngineType = "MYSQL"
	EngineTypePostgreSQL EngineType = "POSTGRES"
	EngineTypeOracle     EngineType = "ORACLE"
	EngineTypeSQLServer  EngineType = "SQLSERVER"
)

// ChargeType is the billing model of a term.
type ChargeType string

const (
	ChargeTypeOnDemand ChargeType = "OnDemand"
	ChargeTypeReserved ChargeType = "Reserved"
)

// ContractLength is the length of a reserved contract.
type ContractLength string

const (
	ContractLength1Year ContractLength = "1yr"
	ContractLength3Year ContractLength = "3yr"
)

func ValidCloudProvider(p CloudProvider) bool {
	return p == CloudProviderAWS || p == CloudProviderGCP
}

func ValidEngineType(e EngineType) bool {
	switch e {
	case EngineTypeMySQL, EngineTypePostgreSQL, EngineTypeOracle, EngineTypeSQLServer:
		return true
	}
	return false
}

func ValidChargeType(c ChargeType) bool {
	return c == ChargeTypeOnDemand || c == ChargeTypeReserved
}

// Price is an optional amount in USD. The zero value is an unavailable price.
type Price struct {
	USD   float64
	Valid bool
}

// USD returns an available price.
func USD(v float64) Price {
	return Price{USD: v, Valid: true}
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(p.USD, 'f', -1, 64)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = USD(v)
	return nil
}

// TermPayload carries the reserved contract details. It is nil for on-demand terms.
type TermPayload struct {
	// e.g. 1yr, 3yr
	LeaseContractLength ContractLength `json:"leaseContractLength"`
	// e.g. All Upfront, Partial Upfront
	PurchaseOption string `json:"purchaseOption"`
}

// Term is one pricing term of an instance in a region.
type Term struct {
	Code           string       `json:"code"`
	DatabaseEngine EngineType   `json:"databaseEngine"`
	Type           ChargeType   `json:"type"`
	Payload        *TermPayload `json:"payload"`
	HourlyUSD      Price        `json:"hourlyUSD"`
	CommitmentUSD  Price        `json:"commitmentUSD"`
}

// Region holds the terms an instance is offered with in one provider region.
type Region struct {
	Code     string  `json:"code"`
	TermList []*Term `json:"termList"`
}

// Instance is a catalog entry. Instances are never mutated after load.
type Instance struct {
	ID            int           `json:"id"`
	CloudProvider CloudProvider `json:"cloudProvider"`
	Name          string        `json:"name"`
	CPU           int           `json:"cpu"`
	// Memory is the size in GB, kept as the catalog string (e.g. "0.6", "16").
	Memory     string    `json:"memory"`
	Processor  string    `json:"processor"`
	RegionList []*Region `json:"regionList"`
}

// MemoryGB returns the numeric memory size, or 0 when it cannot be parsed.
func (i *Instance) MemoryGB() float64 {
	return ParseMemory(i.Memory)
}

// ParseMemory parses a catalog memory string.
func ParseMemory(memory string) float64 {
	v, err := strconv.ParseFloat(memory, 64)
	if err != nil {
		return 0
	}
	return v
}
