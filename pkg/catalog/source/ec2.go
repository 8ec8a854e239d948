package source

import (
	"fmt"
	"strconv"
	"strings"

	ec2instancesinfo "github.com/cristim/ec2-instances-info"
	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EC2Source builds an AWS catalog of self-managed databases from the EC2
// instance data: every region with a Linux on-demand price becomes one
// on-demand term per engine. Instance types are prefixed with "db.".
type EC2Source struct {
	// InstanceTypes keeps only the matching types (e.g. "m5.large"). Empty keeps all.
	InstanceTypes []string
	// Regions keeps only the given region codes. Empty keeps all.
	Regions  []string
	Engines  []catalog.EngineType
	Progress Progress

	data func() (*ec2instancesinfo.InstanceData, error)
}

func NewEC2Source() *EC2Source {
	return &EC2Source{
		Engines: []catalog.EngineType{catalog.EngineTypeMySQL, catalog.EngineTypePostgreSQL},
		data:    ec2instancesinfo.Data,
	}
}

func (s *EC2Source) Name() string {
	return "AWS"
}

func (s *EC2Source) Instances() ([]*catalog.Instance, error) {
	load := s.data
	if load == nil {
		load = ec2instancesinfo.Data
	}
	data, err := load()
	if err != nil {
		return nil, errors.Wrap(err, "could not get ec2 instances info")
	}
	if len(s.Engines) == 0 {
		return nil, errors.New("no database engine selected")
	}

	if s.Progress != nil {
		s.Progress.ChangeMax(len(*data))
	}
	var instances []*catalog.Instance
	for _, instance := range *data {
		if s.Progress != nil {
			_ = s.Progress.Add(1)
		}
		if !s.keepType(instance.InstanceType) {
			continue
		}

		prices := map[string]float64{}
		for code, pricing := range instance.Pricing {
			prices[code] = pricing.Linux.OnDemand
		}
		converted := s.convert(ec2Instance{
			InstanceType: instance.InstanceType,
			VCPU:         instance.VCPU,
			Memory:       instance.Memory,
			Arch:         instance.Arch,
			OnDemand:     prices,
		})
		if converted == nil {
			logger.WithFields(logrus.Fields{
				"instanceType": instance.InstanceType,
			}).Debug("Skipping instance without on-demand price")
			continue
		}
		instances = append(instances, converted)
	}

	if len(instances) == 0 {
		return nil, errors.New("no ec2 instance matched")
	}
	logger.Debugf("Converted %d ec2 instances", len(instances))
	return instances, nil
}

type ec2Instance struct {
	InstanceType string
	VCPU         int
	Memory       float32
	Arch         []string
	OnDemand     map[string]float64
}

// convert returns nil when the instance has no priced region left.
func (s *EC2Source) convert(instance ec2Instance) *catalog.Instance {
	var regions []*catalog.Region
	for code, price := range instance.OnDemand {
		if price <= 0 || !s.keepRegion(code) {
			continue
		}
		region := &catalog.Region{Code: code}
		for _, engine := range s.Engines {
			region.TermList = append(region.TermList, &catalog.Term{
				Code:           fmt.Sprintf("EC2-%s-%s", engine, catalog.ChargeTypeOnDemand),
				DatabaseEngine: engine,
				Type:           catalog.ChargeTypeOnDemand,
				HourlyUSD:      catalog.USD(price),
				CommitmentUSD:  catalog.USD(0),
			})
		}
		regions = append(regions, region)
	}
	if len(regions) == 0 {
		return nil
	}

	return &catalog.Instance{
		CloudProvider: catalog.CloudProviderAWS,
		Name:          "db." + instance.InstanceType,
		CPU:           instance.VCPU,
		Memory:        strconv.FormatFloat(float64(instance.Memory), 'f', -1, 32),
		Processor:     strings.Join(instance.Arch, ", "),
		RegionList:    regions,
	}
}

func (s *EC2Source) keepType(instanceType string) bool {
	if len(s.InstanceTypes) == 0 {
		return true
	}
	return matchesAny(instanceType, s.InstanceTypes)
}

func (s *EC2Source) keepRegion(code string) bool {
	if len(s.Regions) == 0 {
		return true
	}
	for _, region := range s.Regions {
		if region == code {
			return true
		}
	}
	return false
}
