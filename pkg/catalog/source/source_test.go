package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	ec2instancesinfo "github.com/cristim/ec2-instances-info"
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProgress struct {
	max, done int
}

func (p *countingProgress) ChangeMax(max int) { p.max = max }

func (p *countingProgress) Add(num int) error {
	p.done += num
	return nil
}

func TestGet(t *testing.T) {
	s, err := Get("file")
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name())

	s, err = Get("ec2")
	require.NoError(t, err)
	assert.Equal(t, "AWS", s.Name())
	ec2, ok := s.(*EC2Source)
	require.True(t, ok)
	assert.Equal(t, []catalog.EngineType{catalog.EngineTypeMySQL, catalog.EngineTypePostgreSQL}, ec2.Engines)

	_, err = Get("azure")
	assert.Error(t, err)
}

func TestFileSourceBundled(t *testing.T) {
	instances, err := (&FileSource{}).Instances()
	require.NoError(t, err)
	assert.Len(t, instances, 8)

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Instances()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	instances := []*catalog.Instance{
		{ID: 7, CloudProvider: catalog.CloudProviderGCP, Name: "db-custom-1-3840", CPU: 1, Memory: "3.75"},
		{ID: 3, CloudProvider: catalog.CloudProviderAWS, Name: "db.t3.micro", CPU: 2, Memory: "1", RegionList: []*catalog.Region{
			{Code: "us-west-2"},
			{Code: "us-east-1", TermList: []*catalog.Term{{Code: "X", Type: catalog.ChargeTypeOnDemand, HourlyUSD: catalog.USD(0.017)}}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, instances))

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	loaded, err := (&FileSource{Path: path}).Instances()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, 0, loaded[0].ID)
	assert.Equal(t, "db.t3.micro", loaded[0].Name)
	assert.Equal(t, "us-east-1", loaded[0].RegionList[0].Code)
	assert.False(t, loaded[0].RegionList[0].TermList[0].CommitmentUSD.Valid)
	assert.Equal(t, 1, loaded[1].ID)

	// The input is left untouched.
	assert.Equal(t, 7, instances[0].ID)
	assert.Equal(t, "us-west-2", instances[1].RegionList[0].Code)
}

func TestMerge(t *testing.T) {
	a := &catalog.Instance{Name: "db.m5.large", CPU: 2}
	b := &catalog.Instance{Name: "db.r5.large"}
	newer := &catalog.Instance{Name: "db.m5.large", CPU: 4}

	merged := Merge([]*catalog.Instance{a, b}, []*catalog.Instance{newer})
	assert.Equal(t, []*catalog.Instance{newer, b}, merged)
}

func TestEC2Convert(t *testing.T) {
	s := NewEC2Source()
	s.Regions = []string{"us-east-1", "eu-west-1"}

	instance := s.convert(ec2Instance{
		InstanceType: "m5.large",
		VCPU:         2,
		Memory:       8,
		Arch:         []string{"x86_64"},
		OnDemand:     map[string]float64{"us-east-1": 0.096, "eu-west-1": 0, "ap-south-1": 0.101},
	})
	require.NotNil(t, instance)
	assert.Equal(t, "db.m5.large", instance.Name)
	assert.Equal(t, "8", instance.Memory)
	assert.Equal(t, "x86_64", instance.Processor)
	require.Len(t, instance.RegionList, 1)

	region := instance.RegionList[0]
	assert.Equal(t, "us-east-1", region.Code)
	require.Len(t, region.TermList, 2)
	for _, term := range region.TermList {
		assert.Equal(t, catalog.ChargeTypeOnDemand, term.Type)
		assert.Equal(t, catalog.USD(0.096), term.HourlyUSD)
		assert.Nil(t, term.Payload)
	}
	assert.NotEqual(t, region.TermList[0].Code, region.TermList[1].Code)

	assert.Nil(t, s.convert(ec2Instance{InstanceType: "m5.large", OnDemand: map[string]float64{"ap-south-1": 0.1}}))
}

func TestEC2SourceErrors(t *testing.T) {
	s := NewEC2Source()
	s.data = func() (*ec2instancesinfo.InstanceData, error) {
		return nil, errors.New("boom")
	}
	_, err := s.Instances()
	assert.ErrorContains(t, err, "boom")
}

func TestEC2SourceBundledData(t *testing.T) {
	progress := &countingProgress{}
	s := NewEC2Source()
	s.InstanceTypes = []string{`^m5\.large$`}
	s.Regions = []string{"us-east-1"}
	s.Engines = []catalog.EngineType{catalog.EngineTypeMySQL}
	s.Progress = progress

	instances, err := s.Instances()
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "db.m5.large", instances[0].Name)
	assert.Equal(t, 2, instances[0].CPU)
	require.Len(t, instances[0].RegionList, 1)
	assert.True(t, instances[0].RegionList[0].TermList[0].HourlyUSD.Valid)

	assert.Positive(t, progress.max)
	assert.Equal(t, progress.max, progress.done)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("m5.large", []string{"", `^m5\.`}))
	assert.False(t, matchesAny("r5.large", []string{`^m5\.`, "("}))
}
