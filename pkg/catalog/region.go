package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var regionNames = map[string]string{
	// AWS
	"us-gov-east-1":   "AWS GovCloud (US-East)",
	"us-gov-west-1":   "AWS GovCloud (US-West)",
	"af-south-1":      "Africa (Cape Town)",
	"ap-east-1":       "Asia Pacific (Hong Kong)",
	"ap-northeast-1":  "Asia Pacific (Tokyo)",
	"ap-northeast-2":  "Asia Pacific (Seoul)",
	"ap-northeast-3":  "Asia Pacific (Osaka)",
	"ap-south-1":      "Asia Pacific (Mumbai)",
	"ap-southeast-1":  "Asia Pacific (Singapore)",
	"ap-southeast-2":  "Asia Pacific (Sydney)",
	"ap-southeast-3":  "Asia Pacific (Jakarta)",
	"ca-central-1":    "Canada (Central)",
	"eu-central-1":    "Europe (Frankfurt)",
	"eu-north-1":      "Europe (Stockholm)",
	"eu-south-1":      "Europe (Milan)",
	"eu-west-1":       "Europe (Ireland)",
	"eu-west-2":       "Europe (London)",
	"eu-west-3":       "Europe (Paris)",
	"me-south-1":      "Middle East (Bahrain)",
	"sa-east-1":       "South America (Sao Paulo)",
	"us-east-1":       "US East (N. Virginia)",
	"us-east-2":       "US East (Ohio)",
	"us-west-1":       "US West (N. California)",
	"us-west-2":       "US West (Oregon)",
	"us-west-2-lax-1": "US West (Los Angeles)",

	// GCP
	"asia-east1":              "Asia Pacific (Taiwan)",
	"asia-east2":              "Asia Pacific (Hong Kong)",
	"asia-northeast1":         "Asia Pacific (Tokyo)",
	"asia-northeast2":         "Asia Pacific (Osaka)",
	"asia-northeast3":         "Asia Pacific (Seoul)",
	"asia-south1":             "Asia Pacific (Mumbai)",
	"asia-south2":             "Asia Pacific (Delhi)",
	"asia-southeast1":         "Asia Pacific (Singapore)",
	"asia-southeast2":         "Asia Pacific (Jakarta)",
	"australia-southeast1":    "Asia Pacific (Sydney)",
	"australia-southeast2":    "Asia Pacific (Melbourne)",
	"europe-central2":         "Europe (Warsaw)",
	"europe-north1":           "Europe (Finland)",
	"europe-west1":            "Europe (Belgium)",
	"europe-west2":            "Europe (London)",
	"europe-west3":            "Europe (Frankfurt)",
	"europe-west4":            "Europe (Netherlands)",
	"europe-west6":            "Europe (Zurich)",
	"europe-west8":            "Europe (Milan)",
	"europe-west9":            "Europe (Paris)",
	"northamerica-northeast1": "Canada (Montréal)",
	"northamerica-northeast2": "Canada (Toronto)",
	"southamerica-east1":      "South America (Osasco)",
	"southamerica-west1":      "South America (Santiago)",
	"us-central1":             "US Central (Iowa)",
	"us-east1":                "US East (South Carolina)",
	"us-east4":                "US East (N. Virginia)",
	"us-west1":                "US West (Oregon)",
	"us-west2":                "US West (Los Angeles)",
	"us-west3":                "US West (Salt Lake City)",
	"us-west4":                "US West (Las Vegas)",
}

// Region codes of N. Virginia, the default region of the comparison pages.
const (
	VirginiaCodeAWS = "us-east-1"
	VirginiaCodeGCP = "us-east4"
)

const otherRegionPrefix = "Other ("

// OtherRegionName is the name given to a code missing from the lookup table.
func OtherRegionName(code string) string {
	return fmt.Sprintf("Other (%s)", code)
}

// RegionCatalog maps provider region codes to human region names. Several codes
// (one per provider) may share a name. It is safe for concurrent use.
type RegionCatalog struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewRegionCatalog returns a lookup seeded with the known AWS and GCP regions.
func NewRegionCatalog() *RegionCatalog {
	r := &RegionCatalog{names: make(map[string]string, len(regionNames))}
	for code, name := range regionNames {
		r.names[code] = name
	}
	return r
}

// Name returns the region name for code. Unknown codes are registered as
// "Other (<code>)".
func (r *RegionCatalog) Name(code string) string {
	r.mu.RLock()
	name, ok := r.names[code]
	r.mu.RUnlock()
	if ok {
		return name
	}
	return r.Register(code, OtherRegionName(code))
}

// Register maps code to name unless code is already known, and returns the
// name now associated with code.
func (r *RegionCatalog) Register(code, name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.names[code]; ok {
		return existing
	}
	r.names[code] = name
	return name
}

// RegisterCatalog registers every region code used by the catalog.
func (r *RegionCatalog) RegisterCatalog(c *Catalog) {
	for _, instance := range c.Instances() {
		for _, region := range instance.RegionList {
			r.Name(region.Code)
		}
	}
}

// Codes returns every code mapped to name, sorted.
func (r *RegionCatalog) Codes(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var codes []string
	for code, n := range r.names {
		if n == name {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// AvailableRegion is a region name offered by the catalog together with the
// code each provider uses for it.
type AvailableRegion struct {
	Name         string                   `json:"name"`
	ProviderCode map[CloudProvider]string `json:"providerCode"`
}

// Available lists the regions used by the catalog, sorted by name with the
// "Other (...)" regions last.
func (r *RegionCatalog) Available(c *Catalog) []AvailableRegion {
	byName := map[string]map[CloudProvider]string{}
	for _, instance := range c.Instances() {
		for _, region := range instance.RegionList {
			name := r.Name(region.Code)
			if _, ok := byName[name]; !ok {
				byName[name] = map[CloudProvider]string{}
			}
			byName[name][instance.CloudProvider] = region.Code
		}
	}

	result := make([]AvailableRegion, 0, len(byName))
	for name, codes := range byName {
		result = append(result, AvailableRegion{Name: name, ProviderCode: codes})
	}
	sort.Slice(result, func(a, b int) bool {
		aOther := strings.HasPrefix(result[a].Name, otherRegionPrefix)
		bOther := strings.HasPrefix(result[b].Name, otherRegionPrefix)
		if aOther != bOther {
			return bOther
		}
		return result[a].Name < result[b].Name
	})
	return result
}
