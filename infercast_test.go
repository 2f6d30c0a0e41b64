package infercast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infercast "github.com/infercast/infercast"
	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/errors"
	"github.com/infercast/infercast/pkg/estimator"
)

func TestNewDefaultsToEmbeddedCatalog(t *testing.T) {
	client, err := infercast.New()
	require.NoError(t, err)
	assert.NotEmpty(t, client.Catalog().GPUs())
}

func TestNewWithCustomCatalog(t *testing.T) {
	catalog := catalogs.New(
		[]catalogs.GPU{{ID: "test-gpu", Name: "Test GPU", MemoryGB: 48, TFLOPS: 50, BandwidthGBps: 1000}},
		[]catalogs.CloudInstance{{Provider: catalogs.ProviderLambda, Name: "test-1x", GPU: "test-gpu", GPUCount: 1, HourlyRate: 2.0}},
	)

	client, err := infercast.New(infercast.WithCatalog(catalog))
	require.NoError(t, err)
	assert.Len(t, client.Catalog().GPUs(), 1)
}

func TestNewNilCatalogRejected(t *testing.T) {
	_, err := infercast.New(infercast.WithCatalog(nil))
	require.Error(t, err)
}

func TestClientEndToEnd(t *testing.T) {
	client, err := infercast.New()
	require.NoError(t, err)

	// A 7B model at fp16 for inference.
	breakdown, err := client.EstimateMemory(estimator.MemoryInput{
		ParameterCount: 7e9,
		Precision:      estimator.PrecisionFP16,
		Mode:           estimator.ModeInference,
		SequenceLength: 2048,
		BatchSize:      1,
		NumLayers:      32,
		HiddenSize:     4096,
	})
	require.NoError(t, err)
	assert.Greater(t, breakdown.TotalGB, 13.0)

	recs := client.RecommendGPUs(breakdown.TotalGB, 3)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.MemoryHeadroomGB, 0.0)
		assert.GreaterOrEqual(t, r.MemoryGB, breakdown.TotalGB)
	}

	tp, err := client.ThroughputOnGPU(7e9, recs[0].ID, 0)
	require.NoError(t, err)
	assert.Greater(t, tp.TokensPerSecond, 0.0)

	cost, err := client.RentalCost("h100-sxm", 24)
	require.NoError(t, err)
	assert.Greater(t, cost.TotalCost, 0.0)
}

func TestThroughputOnUnknownGPU(t *testing.T) {
	client, err := infercast.New()
	require.NoError(t, err)

	_, err = client.ThroughputOnGPU(7e9, "no-such-gpu", 0)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
