// Package infercast is an analytical estimator for transformer language-model
// resource consumption. It combines a pure estimation engine (pkg/estimator)
// with immutable GPU and cloud-price reference catalogs (pkg/catalogs) into a
// convenience client for the common questions: how much memory does this
// model need, which GPUs fit it, how fast will it generate, and what will the
// hardware cost.
package infercast

import (
	"fmt"

	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/catalogs/embedded"
	"github.com/infercast/infercast/pkg/estimator"
)

// Client joins the estimation engine with a loaded catalog. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	catalog *catalogs.Catalog
}

// New creates a Client with the given options, defaulting to the embedded
// catalogs.
func New(opts ...Option) (*Client, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	if cfg.catalog == nil {
		catalog, err := embedded.New()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}
		cfg.catalog = catalog
	}

	return &Client{catalog: cfg.catalog}, nil
}

// Catalog returns the client's reference catalog.
func (c *Client) Catalog() *catalogs.Catalog {
	return c.catalog
}

// EstimateMemory estimates the full memory breakdown for a model.
func (c *Client) EstimateMemory(in estimator.MemoryInput) (estimator.MemoryBreakdown, error) {
	return estimator.EstimateMemory(in)
}

// RecommendGPUs returns the catalog GPUs that fit the required memory
// footprint, tightest fit first.
func (c *Client) RecommendGPUs(requiredMemoryGB float64, maxResults int) []catalogs.RecommendedGPU {
	return c.catalog.RecommendGPUs(requiredMemoryGB, maxResults)
}

// ThroughputOnGPU estimates generation throughput for a model of the given
// parameter count on a catalog GPU. Efficiency 0 uses the default.
func (c *Client) ThroughputOnGPU(parameterCount float64, id catalogs.GPUID, efficiency float64) (estimator.ThroughputEstimate, error) {
	gpu, err := c.catalog.GPU(id)
	if err != nil {
		return estimator.ThroughputEstimate{}, err
	}

	return estimator.EstimateThroughput(estimator.ThroughputInput{
		ParameterCount: parameterCount,
		GPUTFLOPS:      gpu.TFLOPS,
		Efficiency:     efficiency,
	}), nil
}

// RentalCost projects the cost of renting the cheapest catalog instance
// carrying the given GPU for a duration.
func (c *Client) RentalCost(id catalogs.GPUID, durationHours float64) (estimator.CloudCostEstimate, error) {
	instance, err := c.catalog.CheapestInstanceForGPU(id)
	if err != nil {
		return estimator.CloudCostEstimate{}, err
	}

	return estimator.EstimateCloudCost(instance.HourlyRate, durationHours)
}
