package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed data/catalog.json
var bundledData []byte

// Catalog is a read-only view over a snapshot of instances.
type Catalog struct {
	instances []*Instance
	byName    map[string]*Instance
}

// New indexes the given instances. The slice must not be modified afterwards.
func New(instances []*Instance) *Catalog {
	c := &Catalog{
		instances: instances,
		byName:    make(map[string]*Instance, len(instances)),
	}
	for _, instance := range instances {
		if _, ok := c.byName[instance.Name]; !ok {
			c.byName[instance.Name] = instance
		}
	}
	return c
}

// Load decodes a catalog JSON document.
func Load(r io.Reader) (*Catalog, error) {
	var instances []*Instance
	if err := json.NewDecoder(r).Decode(&instances); err != nil {
		return nil, errors.Wrap(err, "could not decode catalog")
	}
	return New(instances), nil
}

// LoadFile loads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open catalog %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Bundled returns the catalog shipped with the binary.
func Bundled() (*Catalog, error) {
	return Load(bytes.NewReader(bundledData))
}

func (c *Catalog) Instances() []*Instance {
	return c.instances
}

func (c *Catalog) Len() int {
	return len(c.instances)
}

// Find returns the instance with the given name.
func (c *Catalog) Find(name string) (*Instance, bool) {
	instance, ok := c.byName[name]
	return instance, ok
}

// Related is a short description of an instance listed next to another one.
type Related struct {
	Name   string  `json:"name"`
	CPU    int     `json:"cpu"`
	Memory float64 `json:"memory"`
}

// SameClass lists the instances sharing the class of name (e.g. every db.r5.*).
// An unknown name yields an empty list.
func (c *Catalog) SameClass(name string) []Related {
	instance, ok := c.Find(name)
	if !ok {
		return []Related{}
	}
	class := InstanceClass(name, instance.CloudProvider)
	if class == "" {
		return []Related{}
	}
	return c.related(func(i *Instance) bool {
		return strings.HasPrefix(i.Name, class)
	})
}

// SameFamily lists the AWS instances of the same family and size
// (e.g. db.r5.large and db.r6g.large).
func (c *Catalog) SameFamily(name string) []Related {
	instance, ok := c.Find(name)
	if !ok {
		return []Related{}
	}
	family := InstanceFamily(name, instance.CloudProvider)
	size := InstanceSize(name, instance.CloudProvider)
	if family == "" || size == "" {
		return []Related{}
	}
	return c.related(func(i *Instance) bool {
		return strings.HasPrefix(i.Name, "db."+family) && strings.HasSuffix(i.Name, "."+size)
	})
}

func (c *Catalog) related(match func(*Instance) bool) []Related {
	result := []Related{}
	for _, instance := range c.instances {
		if !match(instance) {
			continue
		}
		result = append(result, Related{
			Name:   instance.Name,
			CPU:    instance.CPU,
			Memory: instance.MemoryGB(),
		})
	}
	// CPU first, then memory.
	sort.SliceStable(result, func(a, b int) bool {
		if result[a].CPU != result[b].CPU {
			return result[a].CPU < result[b].CPU
		}
		return result[a].Memory < result[b].Memory
	})
	return result
}

// InstanceClass returns the name prefix shared by instances of one class,
// "db.r5." for AWS db.r5.large and "db-custom-" for GCP db-custom-2-7680.
func InstanceClass(name string, provider CloudProvider) string {
	switch provider {
	case CloudProviderAWS:
		parts := strings.Split(name, ".")
		if len(parts) < 2 {
			return ""
		}
		return strings.Join(parts[:2], ".") + "."
	case CloudProviderGCP:
		parts := strings.Split(name, "-")
		if len(parts) < 2 {
			return ""
		}
		return strings.Join(parts[:2], "-") + "-"
	}
	return ""
}

// InstanceFamily returns the AWS family letter, "r" for db.r5.large.
func InstanceFamily(name string, provider CloudProvider) string {
	if provider != CloudProviderAWS {
		return ""
	}
	parts := strings.Split(name, ".")
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}
	return parts[1][:1]
}

// InstanceSize returns the AWS size suffix, "large" for db.r5.large.
func InstanceSize(name string, provider CloudProvider) string {
	if provider != CloudProviderAWS {
		return ""
	}
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
