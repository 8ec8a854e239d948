package table

import (
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/search"
)

func onDemand(code string, engine catalog.EngineType, hourly float64) *catalog.Term {
	return &catalog.Term{
		Code:           code,
		DatabaseEngine: engine,
		Type:           catalog.ChargeTypeOnDemand,
		HourlyUSD:      catalog.USD(hourly),
		CommitmentUSD:  catalog.USD(0),
	}
}

func reserved(code string, engine catalog.EngineType, contract catalog.ContractLength, hourly, commitment float64) *catalog.Term {
	return &catalog.Term{
		Code:           code,
		DatabaseEngine: engine,
		Type:           catalog.ChargeTypeReserved,
		Payload:        &catalog.TermPayload{LeaseContractLength: contract, PurchaseOption: "Partial Upfront"},
		HourlyUSD:      catalog.USD(hourly),
		CommitmentUSD:  catalog.USD(commitment),
	}
}

func region(code string, terms ...*catalog.Term) *catalog.Region {
	return &catalog.Region{Code: code, TermList: terms}
}

const (
	mysql    = catalog.EngineTypeMySQL
	postgres = catalog.EngineTypePostgreSQL
	oneYear  = catalog.ContractLength1Year
	three    = catalog.ContractLength3Year
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]*catalog.Instance{
		{
			ID: 0, CloudProvider: catalog.CloudProviderAWS, Name: "db.m5.large", CPU: 2, Memory: "8", Processor: "Intel Xeon Platinum",
			RegionList: []*catalog.Region{
				region("us-east-1",
					onDemand("m5-od", mysql, 0.171),
					reserved("m5-3yr", mysql, three, 0, 2173),
					reserved("m5-1yr", mysql, oneYear, 0.0495, 433),
					onDemand("m5-od-pg", postgres, 0.178),
				),
				region("us-west-2", onDemand("m5-od-w2", mysql, 0.18)),
			},
		},
		{
			ID: 1, CloudProvider: catalog.CloudProviderAWS, Name: "db.r5.large", CPU: 2, Memory: "16", Processor: "Intel Xeon Platinum",
			RegionList: []*catalog.Region{
				region("us-east-1",
					reserved("r5-1yr", mysql, oneYear, 0.1, 876),
					onDemand("r5-od", mysql, 0.25),
				),
			},
		},
		{
			ID: 2, CloudProvider: catalog.CloudProviderAWS, Name: "db.r5.xlarge", CPU: 4, Memory: "32", Processor: "Intel Xeon Platinum",
			RegionList: []*catalog.Region{
				region("us-east-1", onDemand("r5x-od", mysql, 0.5)),
			},
		},
		{
			ID: 3, CloudProvider: catalog.CloudProviderAWS, Name: "db.t3.micro", CPU: 1, Memory: "1", Processor: "Intel Xeon Family",
			RegionList: []*catalog.Region{
				region("us-east-1", reserved("t3-1yr", mysql, oneYear, 0.012, 0)),
			},
		},
		{
			ID: 4, CloudProvider: catalog.CloudProviderGCP, Name: "db-custom-2-7680", CPU: 2, Memory: "7.5",
			RegionList: []*catalog.Region{
				region("us-east4", onDemand("c2-od", mysql, 0.1652)),
				region("europe-west1", onDemand("c2-od-eu", mysql, 0.16)),
			},
		},
		{
			ID: 5, CloudProvider: catalog.CloudProviderAWS, Name: "db.x9.large", CPU: 2, Memory: "8", Processor: "AWS Graviton9",
			RegionList: []*catalog.Region{
				region("ap-new-9", onDemand("x9-od", mysql, 0.3)),
			},
		},
	})
}

func testEngine() *Engine {
	return NewEngine(testCatalog(), catalog.NewRegionCatalog())
}

func bothProviders() search.Config {
	config := search.Default()
	config.CloudProvider = []catalog.CloudProvider{catalog.CloudProviderAWS, catalog.CloudProviderGCP}
	config.EngineType = []catalog.EngineType{mysql, postgres}
	return config
}

func names(rows []Row) []string {
	result := make([]string, len(rows))
	for i, row := range rows {
		result[i] = row.Name + "/" + row.LeaseLength
	}
	return result
}

// runs splits rows into runs of consecutive equal ids.
func runs(rows []Row) [][]Row {
	var result [][]Row
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].ID == rows[start].ID {
			end++
		}
		result = append(result, rows[start:end])
		start = end
	}
	return result
}
