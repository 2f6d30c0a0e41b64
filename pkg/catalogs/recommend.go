package catalogs

import (
	"sort"

	"github.com/infercast/infercast/pkg/constants"
)

// RecommendGPUs returns the GPUs whose memory covers the required footprint,
// tightest fit first. Headroom is memory minus requirement and is never
// negative in the result. maxResults caps the list; non-positive values use
// the default of 3. An unknown (non-positive) requirement yields no
// recommendations.
func (c *Catalog) RecommendGPUs(requiredMemoryGB float64, maxResults int) []RecommendedGPU {
	if requiredMemoryGB <= 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxRecommendations
	}

	var out []RecommendedGPU
	for _, g := range c.gpus {
		headroom := g.MemoryGB - requiredMemoryGB
		if headroom < 0 {
			continue
		}
		out = append(out, RecommendedGPU{GPU: g, MemoryHeadroomGB: headroom})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemoryHeadroomGB < out[j].MemoryHeadroomGB
	})

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// gpuClassTier is one row of the legacy quick-pick table: a memory ceiling, a
// compute ceiling in GFLOPs, and the named card for workloads under both.
type gpuClassTier struct {
	maxMemoryGB float64
	maxGFLOPs   float64
	label       string
}

// gpuClassTiers is checked in ascending order; the first tier whose two
// ceilings both hold wins, and anything larger falls through to the top tier.
var gpuClassTiers = []gpuClassTier{
	{maxMemoryGB: 8, maxGFLOPs: 15_000, label: "NVIDIA RTX 3060"},
	{maxMemoryGB: 16, maxGFLOPs: 50_000, label: "NVIDIA RTX 4080"},
	{maxMemoryGB: 40, maxGFLOPs: 150_000, label: "NVIDIA A100 40GB"},
	{maxMemoryGB: 80, maxGFLOPs: 1_000_000, label: "NVIDIA H100 80GB"},
}

// RecommendGPUClass is the legacy single-label recommendation: it maps a
// memory footprint and a compute demand in GFLOPs onto a fixed four-tier
// table and returns the tier's card name. Demands beyond every tier return
// the highest tier's card.
func RecommendGPUClass(memoryGB, gflops float64) string {
	for _, tier := range gpuClassTiers {
		if memoryGB <= tier.maxMemoryGB && gflops <= tier.maxGFLOPs {
			return tier.label
		}
	}
	return gpuClassTiers[len(gpuClassTiers)-1].label
}
