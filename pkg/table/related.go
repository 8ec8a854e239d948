package table

import (
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/pricing"
	"github.com/davidcollom/dbcost/pkg/search"
)

// RelatedCosts prices each related instance on demand in N. Virginia, for the
// first engine of config (MySQL when none is selected). Instances not offered
// there get an unavailable cost.
func (e *Engine) RelatedCosts(related []catalog.Related, config search.Config) []Related {
	engine := catalog.EngineTypeMySQL
	if len(config.EngineType) > 0 {
		engine = config.EngineType[0]
	}

	result := make([]Related, 0, len(related))
	for _, r := range related {
		item := Related{Related: r}
		if instance, ok := e.catalog.Find(r.Name); ok {
			if hourly, ok := virginiaOnDemand(instance, engine); ok {
				item.Cost = pricing.ExpectedCost(pricing.Quote{Hourly: hourly}, config.Utilization, config.LeaseLength)
			}
		}
		result = append(result, item)
	}
	return result
}

func virginiaOnDemand(instance *catalog.Instance, engine catalog.EngineType) (catalog.Price, bool) {
	code := catalog.VirginiaCodeAWS
	if instance.CloudProvider == catalog.CloudProviderGCP {
		code = catalog.VirginiaCodeGCP
	}
	for _, region := range instance.RegionList {
		if region.Code != code {
			continue
		}
		for _, term := range region.TermList {
			if term.Type == catalog.ChargeTypeOnDemand && term.DatabaseEngine == engine {
				return term.HourlyUSD, true
			}
		}
	}
	return catalog.Price{}, false
}
