package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSearch(t *testing.T, args ...string) (search.Config, error) {
	var f searchFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd, true)
	require.NoError(t, cmd.Flags().Parse(args))
	return f.config(cmd)
}

func TestSearchFlagsDefault(t *testing.T) {
	config, err := parseSearch(t)
	require.NoError(t, err)
	assert.False(t, search.HasChanged(search.Default(), config))
}

func TestSearchFlagsOverride(t *testing.T) {
	config, err := parseSearch(t, "--provider", "aws,gcp", "--engine", "postgres", "--charge", "reserved", "--lease", "3", "-u", "0.5", "--min-cpu", "2", "-k", "r5")
	require.NoError(t, err)

	assert.Equal(t, []catalog.CloudProvider{catalog.CloudProviderAWS, catalog.CloudProviderGCP}, config.CloudProvider)
	assert.Equal(t, []catalog.EngineType{catalog.EngineTypePostgreSQL}, config.EngineType)
	assert.Equal(t, []catalog.ChargeType{catalog.ChargeTypeReserved}, config.ChargeType)
	assert.Equal(t, search.Default().Region, config.Region)
	assert.Equal(t, 3, config.LeaseLength)
	assert.Equal(t, 0.5, config.Utilization)
	require.NotNil(t, config.MinCPU)
	assert.Equal(t, 2.0, *config.MinCPU)
	assert.Nil(t, config.MinRAM)
	assert.Equal(t, "r5", config.Keyword)
}

func TestSearchFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region:\n  - Europe (Ireland)\nleaseLength: 2\n"), 0o600))

	config, err := parseSearch(t, "--config", path, "--lease", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"Europe (Ireland)"}, config.Region)
	assert.Equal(t, 3, config.LeaseLength)
}

func TestSearchFlagsInvalid(t *testing.T) {
	_, err := parseSearch(t, "--utilization", "0")
	assert.Error(t, err)

	_, err = parseSearch(t, "--provider", "azure")
	assert.Error(t, err)
}

func TestViewFlagsShow(t *testing.T) {
	c, err := catalog.Bundled()
	require.NoError(t, err)
	engine := table.NewEngine(c, catalog.NewRegionCatalog())

	view := viewFlags{sortField: "cpu", desc: true, page: 1, pageSize: 2, output: "json"}
	var buf bytes.Buffer
	require.NoError(t, view.show(&buf, engine.Dashboard, search.Default()))

	var page table.Page
	require.NoError(t, json.Unmarshal(buf.Bytes(), &page))
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, "db.r5.xlarge", page.Rows[0].Name)

	buf.Reset()
	view.output = "table"
	require.NoError(t, view.show(&buf, engine.Dashboard, search.Default()))
	assert.Contains(t, buf.String(), "db.r5.xlarge")

	view.output = "csv"
	assert.Error(t, view.show(&buf, engine.Dashboard, search.Default()))
	view.sortField = "price"
	assert.Error(t, view.show(&buf, engine.Dashboard, search.Default()))
}
