package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/pkg/errors"
)

// Query string keys. List values are comma separated.
const (
	KeyProvider    = "provider"
	KeyEngine      = "engine"
	KeyCharge      = "charge"
	KeyRegion      = "region"
	KeyMinCPU      = "minCPU"
	KeyMinRAM      = "minRAM"
	KeyKeyword     = "keyword"
	KeyLease       = "lease"
	KeyUtilization = "utilization"
)

// ParseQuery builds a validated Config from query values. Keys that are absent
// keep their Default value; a present but empty list key clears the facet.
func ParseQuery(values url.Values) (Config, error) {
	config := Default()

	if values.Has(KeyProvider) {
		config.CloudProvider = nil
		for _, v := range splitList(values.Get(KeyProvider)) {
			config.CloudProvider = append(config.CloudProvider, catalog.CloudProvider(strings.ToUpper(v)))
		}
	}
	if values.Has(KeyEngine) {
		config.EngineType = nil
		for _, v := range splitList(values.Get(KeyEngine)) {
			config.EngineType = append(config.EngineType, catalog.EngineType(strings.ToUpper(v)))
		}
	}
	if values.Has(KeyCharge) {
		config.ChargeType = nil
		for _, v := range splitList(values.Get(KeyCharge)) {
			config.ChargeType = append(config.ChargeType, parseChargeType(v))
		}
	}
	if values.Has(KeyRegion) {
		config.Region = splitList(values.Get(KeyRegion))
	}
	if v := values.Get(KeyMinCPU); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", KeyMinCPU)
		}
		config.MinCPU = &f
	}
	if v := values.Get(KeyMinRAM); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", KeyMinRAM)
		}
		config.MinRAM = &f
	}
	config.Keyword = strings.TrimSpace(values.Get(KeyKeyword))
	if v := values.Get(KeyUtilization); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", KeyUtilization)
		}
		config.Utilization = f
	}
	if v := values.Get(KeyLease); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %s", KeyLease)
		}
		config.LeaseLength = n
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Encode is the inverse of ParseQuery.
func (c Config) Encode() url.Values {
	values := url.Values{}
	providers := make([]string, len(c.CloudProvider))
	for i, p := range c.CloudProvider {
		providers[i] = string(p)
	}
	engines := make([]string, len(c.EngineType))
	for i, e := range c.EngineType {
		engines[i] = string(e)
	}
	charges := make([]string, len(c.ChargeType))
	for i, ct := range c.ChargeType {
		charges[i] = string(ct)
	}
	values.Set(KeyProvider, strings.Join(providers, ","))
	values.Set(KeyEngine, strings.Join(engines, ","))
	values.Set(KeyCharge, strings.Join(charges, ","))
	values.Set(KeyRegion, strings.Join(c.Region, ","))
	if c.MinCPU != nil {
		values.Set(KeyMinCPU, strconv.FormatFloat(*c.MinCPU, 'f', -1, 64))
	}
	if c.MinRAM != nil {
		values.Set(KeyMinRAM, strconv.FormatFloat(*c.MinRAM, 'f', -1, 64))
	}
	if c.Keyword != "" {
		values.Set(KeyKeyword, c.Keyword)
	}
	values.Set(KeyUtilization, strconv.FormatFloat(c.Utilization, 'f', -1, 64))
	values.Set(KeyLease, strconv.Itoa(c.LeaseLength))
	return values
}

func splitList(s string) []string {
	result := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func parseChargeType(v string) catalog.ChargeType {
	for _, ct := range []catalog.ChargeType{catalog.ChargeTypeOnDemand, catalog.ChargeTypeReserved} {
		if strings.EqualFold(v, string(ct)) {
			return ct
		}
	}
	return catalog.ChargeType(v)
}
