package search

import (
	"os"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the user-chosen search over the catalog. A new value triggers a
// recompute of the table; values are never mutated by the engine.
//
// Empty Region, EngineType or ChargeType facets select nothing.
type Config struct {
	CloudProvider []catalog.CloudProvider `yaml:"cloudProvider" json:"cloudProvider"`
	Region        []string                `yaml:"region" json:"region"`
	EngineType    []catalog.EngineType    `yaml:"engineType" json:"engineType"`
	ChargeType    []catalog.ChargeType    `yaml:"chargeType" json:"chargeType"`
	MinCPU        *float64                `yaml:"minCPU,omitempty" json:"minCPU,omitempty"`
	MinRAM        *float64                `yaml:"minRAM,omitempty" json:"minRAM,omitempty"`
	Keyword       string                  `yaml:"keyword,omitempty" json:"keyword,omitempty"`
	Utilization   float64                 `yaml:"utilization" json:"utilization"`
	LeaseLength   int                     `yaml:"leaseLength" json:"leaseLength"`
}

// Default is the configuration of the dashboard on first load.
func Default() Config {
	return Config{
		CloudProvider: []catalog.CloudProvider{catalog.CloudProviderAWS},
		Region:        []string{"US East (N. Virginia)"},
		EngineType:    []catalog.EngineType{catalog.EngineTypeMySQL},
		ChargeType:    []catalog.ChargeType{catalog.ChargeTypeOnDemand, catalog.ChargeTypeReserved},
		Utilization:   1,
		LeaseLength:   1,
	}
}

// Empty clears every facet but keeps the default utilization and lease length.
func Empty() Config {
	return Config{
		CloudProvider: []catalog.CloudProvider{},
		Region:        []string{},
		EngineType:    []catalog.EngineType{},
		ChargeType:    []catalog.ChargeType{},
		Utilization:   1,
		LeaseLength:   1,
	}
}

// Validate rejects configurations the engine cannot price.
func (c Config) Validate() error {
	for _, p := range c.CloudProvider {
		if !catalog.ValidCloudProvider(p) {
			return errors.Errorf("invalid cloud provider %q", p)
		}
	}
	for _, e := range c.EngineType {
		if !catalog.ValidEngineType(e) {
			return errors.Errorf("invalid engine type %q", e)
		}
	}
	for _, ct := range c.ChargeType {
		if !catalog.ValidChargeType(ct) {
			return errors.Errorf("invalid charge type %q", ct)
		}
	}
	if c.MinCPU != nil && *c.MinCPU < 0 {
		return errors.Errorf("minCPU must not be negative, got %v", *c.MinCPU)
	}
	if c.MinRAM != nil && *c.MinRAM < 0 {
		return errors.Errorf("minRAM must not be negative, got %v", *c.MinRAM)
	}
	if c.Utilization <= 0 || c.Utilization > 1 {
		return errors.Errorf("utilization must be in (0, 1], got %v", c.Utilization)
	}
	if c.LeaseLength < 1 || c.LeaseLength > 3 {
		return errors.Errorf("lease length must be 1, 2 or 3 years, got %d", c.LeaseLength)
	}
	return nil
}

// IsFiltering reports whether the config narrows the table beyond the facets,
// in which case the table may have fewer pages than before.
func (c Config) IsFiltering() bool {
	return c.Keyword != "" ||
		(c.MinCPU != nil && *c.MinCPU > 0) ||
		(c.MinRAM != nil && *c.MinRAM > 0) ||
		len(c.ChargeType) < 2
}

// HasBothChargeTypes reports whether on-demand and reserved terms are both
// selected, which is when reserved rows show their difference to on-demand.
func (c Config) HasBothChargeTypes() bool {
	var onDemand, reserved bool
	for _, ct := range c.ChargeType {
		switch ct {
		case catalog.ChargeTypeOnDemand:
			onDemand = true
		case catalog.ChargeTypeReserved:
			reserved = true
		}
	}
	return onDemand && reserved
}

var equateEmpty = cmpopts.EquateEmpty()

// HasChanged reports whether any field differs.
func HasChanged(oldConfig, newConfig Config) bool {
	return !cmp.Equal(oldConfig, newConfig, equateEmpty)
}

// ShouldRefresh reports whether the change between two configs needs the rows
// rebuilt. A change limited to utilization and lease length only needs the
// expected costs recomputed.
func ShouldRefresh(oldConfig, newConfig Config) bool {
	return !cmp.Equal(costNeutral(oldConfig), costNeutral(newConfig), equateEmpty)
}

func costNeutral(c Config) Config {
	c.Utilization = 0
	c.LeaseLength = 0
	return c
}

// ParseConfig reads a YAML search config. Fields missing from the file keep
// their Default value.
func ParseConfig(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read search config %s", filePath)
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse search config %s", filePath)
	}
	return config, nil
}
