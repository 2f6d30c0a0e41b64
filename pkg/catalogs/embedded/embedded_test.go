package embedded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/catalogs/embedded"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	catalog, err := embedded.New()
	require.NoError(t, err)

	gpus := catalog.GPUs()
	assert.NotEmpty(t, gpus)
	for _, g := range gpus {
		assert.NotEmpty(t, g.ID, "gpu missing id")
		assert.NotEmpty(t, g.Name, "gpu %s missing name", g.ID)
		assert.Greater(t, g.MemoryGB, 0.0, "gpu %s", g.ID)
		assert.Greater(t, g.TFLOPS, 0.0, "gpu %s", g.ID)
		assert.Greater(t, g.BandwidthGBps, 0.0, "gpu %s", g.ID)
	}

	instances := catalog.Instances()
	assert.NotEmpty(t, instances)
	for _, ci := range instances {
		assert.NotEmpty(t, ci.Provider, "instance %s", ci.Name)
		assert.Greater(t, ci.GPUCount, 0, "instance %s", ci.Name)
		assert.Greater(t, ci.HourlyRate, 0.0, "instance %s", ci.Name)

		// Every instance must reference a GPU present in the catalog.
		_, err := catalog.GPU(ci.GPU)
		assert.NoError(t, err, "instance %s references unknown gpu %s", ci.Name, ci.GPU)
	}
}

func TestEmbeddedCatalogKnownGPUs(t *testing.T) {
	catalog, err := embedded.New()
	require.NoError(t, err)

	for _, id := range []string{"rtx-4090", "a100-80", "h100-sxm"} {
		_, err := catalog.GPU(catalogs.GPUID(id))
		assert.NoError(t, err, id)
	}
}
