package table

import (
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/search"
)

// Engine turns a catalog and a search config into priced, grouped rows.
// It never mutates the catalog and may be shared between goroutines.
type Engine struct {
	catalog *catalog.Catalog
	regions *catalog.RegionCatalog
}

// NewEngine registers every region code of c in regions, so that synthesized
// "Other (<code>)" names can be searched for.
func NewEngine(c *catalog.Catalog, regions *catalog.RegionCatalog) *Engine {
	regions.RegisterCatalog(c)
	return &Engine{catalog: c, regions: regions}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) Regions() *catalog.RegionCatalog {
	return e.regions
}

// Dashboard returns the rows of every instance matching config.
func (e *Engine) Dashboard(config search.Config) []Row {
	return e.build(Candidates(e.catalog, e.regions, config), config)
}

// Region returns the rows of the instances offered in the region named name,
// ignoring the region facet of config.
func (e *Engine) Region(name string, config search.Config) []Row {
	config.Region = []string{name}
	return e.Dashboard(config)
}

// Instance returns the rows of one instance in all of its regions. Only the
// engine, charge type and keyword filters of config apply.
func (e *Engine) Instance(name string, config search.Config) []Row {
	instance, ok := e.catalog.Find(name)
	if !ok || len(instance.RegionList) == 0 {
		return []Row{}
	}
	return e.build([]Candidate{{Instance: instance, Regions: instance.RegionList}}, config)
}

// Compare returns the rows of two instances, each priced in N. Virginia or,
// when unavailable there, in its first region.
func (e *Engine) Compare(a, b string, config search.Config) []Row {
	var candidates []Candidate
	for _, name := range []string{a, b} {
		instance, ok := e.catalog.Find(name)
		if !ok {
			return []Row{}
		}
		if region := defaultRegion(instance); region != nil {
			candidates = append(candidates, Candidate{Instance: instance, Regions: []*catalog.Region{region}})
		}
	}
	return e.build(candidates, config)
}

func defaultRegion(instance *catalog.Instance) *catalog.Region {
	if len(instance.RegionList) == 0 {
		return nil
	}
	code := catalog.VirginiaCodeAWS
	if instance.CloudProvider == catalog.CloudProviderGCP {
		code = catalog.VirginiaCodeGCP
	}
	for _, region := range instance.RegionList {
		if region.Code == code {
			return region
		}
	}
	return instance.RegionList[0]
}

func (e *Engine) build(candidates []Candidate, config search.Config) []Row {
	rows := []Row{}
	if len(config.EngineType) == 0 || len(config.ChargeType) == 0 {
		return rows
	}

	engines := make(map[catalog.EngineType]bool, len(config.EngineType))
	for _, engine := range config.EngineType {
		engines[engine] = true
	}
	charges := make(map[catalog.ChargeType]bool, len(config.ChargeType))
	for _, charge := range config.ChargeType {
		charges[charge] = true
	}
	lastID := 0
	nextID := func() int {
		lastID++
		return lastID
	}
	for _, candidate := range candidates {
		groups := newGroupSet()
		for _, region := range candidate.Regions {
			for _, row := range e.expandTerms(candidate.Instance, region, engines, charges) {
				row.refreshCost(config.Utilization, config.LeaseLength)
				groups.add(groupKey(row.Name, row.RegionCode, row.EngineType), row, nextID)
			}
		}
		rows = append(rows, groups.flatten(config.Keyword)...)
	}
	return rows
}

// expandTerms returns one unpriced row per selected term of region.
func (e *Engine) expandTerms(instance *catalog.Instance, region *catalog.Region, engines map[catalog.EngineType]bool, charges map[catalog.ChargeType]bool) []Row {
	var terms []*catalog.Term
	basePrice := map[catalog.EngineType]catalog.Price{}
	for _, term := range region.TermList {
		if !charges[term.Type] || !engines[term.DatabaseEngine] {
			continue
		}
		terms = append(terms, term)
		if term.Type == catalog.ChargeTypeOnDemand {
			basePrice[term.DatabaseEngine] = term.HourlyUSD
		}
	}

	regionName := e.regions.Name(region.Code)
	rows := make([]Row, 0, len(terms))
	for _, term := range terms {
		rows = append(rows, Row{
			Key:           rowKey(instance.Name, region.Code, term.Code),
			CloudProvider: instance.CloudProvider,
			Name:          instance.Name,
			Processor:     instance.Processor,
			CPU:           instance.CPU,
			Memory:        instance.Memory,
			EngineType:    term.DatabaseEngine,
			LeaseLength:   leaseLabel(term),
			Region:        regionName,
			RegionCode:    region.Code,
			CommitmentUSD: term.CommitmentUSD,
			HourlyUSD:     term.HourlyUSD,
			BaseHourlyUSD: basePrice[term.DatabaseEngine],
		})
	}
	return rows
}
