// Package catalogs holds the static reference data the estimator consumes:
// a GPU catalog (memory, throughput, bandwidth) and a cloud-instance price
// catalog. Catalogs are loaded once, at startup, from YAML files on any
// fs.FS — usually the embedded defaults — and are immutable afterwards.
package catalogs

import (
	"io/fs"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/infercast/infercast/pkg/errors"
)

// File names a catalog filesystem is expected to contain.
const (
	gpusFile      = "gpus.yaml"
	instancesFile = "instances.yaml"
)

// Catalog is an immutable collection of GPU and cloud-instance reference
// records. Accessors return copies, so callers can never alter the loaded
// data. A Catalog is safe for concurrent use.
type Catalog struct {
	gpus      []GPU
	gpusByID  map[GPUID]GPU
	instances []CloudInstance
}

// New builds a catalog from explicit records. Useful for tests and for
// callers supplying their own price lists.
func New(gpus []GPU, instances []CloudInstance) *Catalog {
	c := &Catalog{
		gpus:      make([]GPU, len(gpus)),
		gpusByID:  make(map[GPUID]GPU, len(gpus)),
		instances: make([]CloudInstance, len(instances)),
	}
	copy(c.gpus, gpus)
	copy(c.instances, instances)
	for _, g := range gpus {
		c.gpusByID[g.ID] = g
	}
	return c
}

// Load reads gpus.yaml and instances.yaml from the given filesystem and
// builds the catalog. A missing instances file is tolerated (a GPU-only
// catalog is still useful); a missing GPU file is not.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, gpusFile)
	if err != nil {
		return nil, errors.WrapIO("read", gpusFile, err)
	}

	var gpus []GPU
	if err := yaml.Unmarshal(data, &gpus); err != nil {
		return nil, errors.WrapParse("yaml", gpusFile, err)
	}

	var instances []CloudInstance
	if data, err := fs.ReadFile(fsys, instancesFile); err == nil {
		if err := yaml.Unmarshal(data, &instances); err != nil {
			return nil, errors.WrapParse("yaml", instancesFile, err)
		}
	}

	return New(gpus, instances), nil
}

// GPUs returns all GPUs sorted by memory capacity, smallest first.
func (c *Catalog) GPUs() []GPU {
	out := make([]GPU, len(c.gpus))
	copy(out, c.gpus)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemoryGB < out[j].MemoryGB
	})
	return out
}

// GPU looks up a GPU by ID.
func (c *Catalog) GPU(id GPUID) (GPU, error) {
	g, ok := c.gpusByID[id]
	if !ok {
		return GPU{}, errors.NewNotFoundError("gpu", string(id))
	}
	return g, nil
}

// Instances returns all cloud instances sorted by hourly rate, cheapest
// first.
func (c *Catalog) Instances() []CloudInstance {
	out := make([]CloudInstance, len(c.instances))
	copy(out, c.instances)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HourlyRate < out[j].HourlyRate
	})
	return out
}

// InstancesForGPU returns the instances carrying the given GPU, cheapest
// first.
func (c *Catalog) InstancesForGPU(id GPUID) []CloudInstance {
	var out []CloudInstance
	for _, ci := range c.instances {
		if ci.GPU == id {
			out = append(out, ci)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HourlyRate < out[j].HourlyRate
	})
	return out
}

// CheapestInstanceForGPU returns the lowest-rate instance carrying the given
// GPU.
func (c *Catalog) CheapestInstanceForGPU(id GPUID) (CloudInstance, error) {
	instances := c.InstancesForGPU(id)
	if len(instances) == 0 {
		return CloudInstance{}, errors.NewNotFoundError("instance", string(id))
	}
	return instances[0], nil
}
