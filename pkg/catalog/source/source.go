package source

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/pkg/errors"
)

// Source produces catalog instances.
type Source interface {
	Name() string
	Instances() ([]*catalog.Instance, error)
}

// Progress is notified while a source walks its input. A
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	ChangeMax(max int)
	Add(num int) error
}

func Get(kind string) (Source, error) {
	switch kind {
	case "file":
		return &FileSource{}, nil
	case "ec2":
		return NewEC2Source(), nil
	}
	return nil, errors.Errorf("unknown catalog source %q", kind)
}

// Save writes instances as a catalog JSON document. Instances are ordered by
// provider and name, regions by code, and ids are reassigned in that order.
func Save(w io.Writer, instances []*catalog.Instance) error {
	sorted := make([]*catalog.Instance, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].CloudProvider != sorted[b].CloudProvider {
			return sorted[a].CloudProvider < sorted[b].CloudProvider
		}
		return sorted[a].Name < sorted[b].Name
	})

	out := make([]*catalog.Instance, len(sorted))
	for i, instance := range sorted {
		saved := *instance
		saved.ID = i
		saved.RegionList = make([]*catalog.Region, len(instance.RegionList))
		copy(saved.RegionList, instance.RegionList)
		sort.SliceStable(saved.RegionList, func(a, b int) bool {
			return saved.RegionList[a].Code < saved.RegionList[b].Code
		})
		out[i] = &saved
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(out), "could not write catalog")
}

// Merge concatenates instance lists. Later lists win on duplicate names.
func Merge(lists ...[]*catalog.Instance) []*catalog.Instance {
	index := map[string]int{}
	var result []*catalog.Instance
	for _, list := range lists {
		for _, instance := range list {
			if i, ok := index[instance.Name]; ok {
				result[i] = instance
				continue
			}
			index[instance.Name] = len(result)
			result = append(result, instance)
		}
	}
	return result
}
