package table

import (
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/search"
)

// Candidate is an instance retained by the search together with the subset of
// its regions that were selected.
type Candidate struct {
	Instance *catalog.Instance
	Regions  []*catalog.Region
}

// Candidates selects the instances matching the provider, region, CPU and RAM
// constraints of config. An empty region, engine or charge type facet selects
// nothing.
func Candidates(c *catalog.Catalog, regions *catalog.RegionCatalog, config search.Config) []Candidate {
	if len(config.Region) == 0 || len(config.EngineType) == 0 || len(config.ChargeType) == 0 {
		return nil
	}

	providers := make(map[catalog.CloudProvider]bool, len(config.CloudProvider))
	for _, p := range config.CloudProvider {
		providers[p] = true
	}
	// One name may resolve to a code per provider.
	codes := map[string]bool{}
	for _, name := range config.Region {
		for _, code := range regions.Codes(name) {
			codes[code] = true
		}
	}

	var result []Candidate
	for _, instance := range c.Instances() {
		if config.MinRAM != nil && instance.MemoryGB() < *config.MinRAM {
			continue
		}
		if config.MinCPU != nil && float64(instance.CPU) < *config.MinCPU {
			continue
		}
		if !providers[instance.CloudProvider] {
			continue
		}

		var selected []*catalog.Region
		for _, region := range instance.RegionList {
			if codes[region.Code] {
				selected = append(selected, region)
			}
		}
		if len(selected) == 0 {
			continue
		}
		result = append(result, Candidate{Instance: instance, Regions: selected})
	}
	return result
}
