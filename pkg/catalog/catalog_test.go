package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundled(t *testing.T) {
	c, err := Bundled()
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())

	instance, ok := c.Find("db.r5.large")
	require.True(t, ok)
	assert.Equal(t, CloudProviderAWS, instance.CloudProvider)
	assert.Equal(t, 2, instance.CPU)
	assert.Equal(t, 16.0, instance.MemoryGB())

	_, ok = c.Find("db.z1.nano")
	assert.False(t, ok)
}

func TestBundledMissingPrice(t *testing.T) {
	c, err := Bundled()
	require.NoError(t, err)

	instance, ok := c.Find("db-n1-standard-4")
	require.True(t, ok)
	var missing int
	for _, region := range instance.RegionList {
		for _, term := range region.TermList {
			if !term.HourlyUSD.Valid {
				missing++
				assert.Equal(t, VirginiaCodeGCP, region.Code)
			}
		}
	}
	assert.Equal(t, 1, missing)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":0,"cloudProvider":"GCP","name":"db-custom-1-3840","cpu":1,"memory":"3.75","regionList":[]}]`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3.75, c.Instances()[0].MemoryGB())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestPriceJSON(t *testing.T) {
	var term Term
	require.NoError(t, json.Unmarshal([]byte(`{"code":"X","hourlyUSD":null,"commitmentUSD":12.5}`), &term))
	assert.False(t, term.HourlyUSD.Valid)
	assert.Equal(t, USD(12.5), term.CommitmentUSD)

	data, err := json.Marshal(term)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hourlyUSD":null`)
	assert.Contains(t, string(data), `"commitmentUSD":12.5`)

	// A zero price is available.
	data, err = json.Marshal(USD(0))
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestSameClass(t *testing.T) {
	c, err := Bundled()
	require.NoError(t, err)

	assert.Equal(t, []Related{
		{Name: "db.r5.large", CPU: 2, Memory: 16},
		{Name: "db.r5.xlarge", CPU: 4, Memory: 32},
	}, c.SameClass("db.r5.large"))

	assert.Equal(t, []Related{
		{Name: "db-custom-1-3840", CPU: 1, Memory: 3.75},
		{Name: "db-custom-2-7680", CPU: 2, Memory: 7.5},
	}, c.SameClass("db-custom-2-7680"))

	assert.Empty(t, c.SameClass("db.unknown.large"))
	assert.NotNil(t, c.SameClass("db.unknown.large"))
}

func TestSameFamily(t *testing.T) {
	c, err := Bundled()
	require.NoError(t, err)

	assert.Equal(t, []Related{
		{Name: "db.r5.large", CPU: 2, Memory: 16},
		{Name: "db.r6g.large", CPU: 2, Memory: 16},
	}, c.SameFamily("db.r5.large"))

	assert.Empty(t, c.SameFamily("db-custom-2-7680"))
	assert.Empty(t, c.SameFamily("db.unknown.large"))
}

func TestInstanceNameParts(t *testing.T) {
	assert.Equal(t, "db.r5.", InstanceClass("db.r5.large", CloudProviderAWS))
	assert.Equal(t, "db-custom-", InstanceClass("db-custom-2-7680", CloudProviderGCP))
	assert.Equal(t, "", InstanceClass("db", CloudProviderAWS))

	assert.Equal(t, "r", InstanceFamily("db.r6g.large", CloudProviderAWS))
	assert.Equal(t, "", InstanceFamily("db-n1-standard-4", CloudProviderGCP))

	assert.Equal(t, "xlarge", InstanceSize("db.r5.xlarge", CloudProviderAWS))
	assert.Equal(t, "", InstanceSize("db.r5", CloudProviderAWS))
}

func TestParseMemory(t *testing.T) {
	assert.Equal(t, 0.6, ParseMemory("0.6"))
	assert.Equal(t, 0.0, ParseMemory("n/a"))
}
