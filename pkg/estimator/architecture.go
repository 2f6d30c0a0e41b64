package estimator

import "math"

// ArchitectureEstimate holds derived shape guesses for a decoder-only
// transformer given nothing but a total parameter count.
type ArchitectureEstimate struct {
	HiddenSize       int `json:"hidden_size"`
	NumLayers        int `json:"num_layers"`
	NumHeads         int `json:"num_heads"`
	IntermediateSize int `json:"intermediate_size"`
}

// archetype is a breakpoint in the llama-family sizing table. The first
// archetype whose MaxBillions ceiling covers the requested size is selected.
type archetype struct {
	maxBillions float64
	hiddenSize  int
	numLayers   int
}

// llamaArchetypes maps parameter-count ceilings (in billions) to typical
// llama-family shapes. Ordered ascending; hidden size and depth never
// decrease as the ceiling grows.
var llamaArchetypes = []archetype{
	{maxBillions: 0.2, hiddenSize: 768, numLayers: 12},
	{maxBillions: 0.5, hiddenSize: 1024, numLayers: 24},
	{maxBillions: 1.5, hiddenSize: 2048, numLayers: 24},
	{maxBillions: 3, hiddenSize: 2560, numLayers: 32},
	{maxBillions: 8, hiddenSize: 4096, numLayers: 32},
	{maxBillions: 15, hiddenSize: 5120, numLayers: 40},
	{maxBillions: 35, hiddenSize: 6656, numLayers: 60},
	{maxBillions: 75, hiddenSize: 8192, numLayers: 80},
	{maxBillions: 200, hiddenSize: 12288, numLayers: 96},
	{maxBillions: math.MaxFloat64, hiddenSize: 16384, numLayers: 120},
}

// EstimateLlamaArchitecture guesses a llama-style architecture for the given
// total parameter count. It returns the zero estimate when the count is
// non-positive or non-finite; zero is the "unknown" sentinel, not an error.
func EstimateLlamaArchitecture(parameterCount float64) ArchitectureEstimate {
	if parameterCount <= 0 || math.IsNaN(parameterCount) || math.IsInf(parameterCount, 0) {
		return ArchitectureEstimate{}
	}

	billions := parameterCount / 1e9
	selected := llamaArchetypes[len(llamaArchetypes)-1]
	for _, a := range llamaArchetypes {
		if billions <= a.maxBillions {
			selected = a
			break
		}
	}

	numHeads := int(math.Round(float64(selected.hiddenSize) / 128))
	if numHeads < 1 {
		numHeads = 1
	}

	return ArchitectureEstimate{
		HiddenSize:       selected.hiddenSize,
		NumLayers:        selected.numLayers,
		NumHeads:         numHeads,
		IntermediateSize: selected.hiddenSize * 4,
	}
}

// TransformerConfig describes a transformer architecture explicitly, as
// published in a model's configuration. IntermediateSize and NumKeyValueHeads
// are optional; zero values fall back to hidden*4 and NumAttentionHeads
// respectively, which supports grouped-query attention sizing.
type TransformerConfig struct {
	VocabSize         int `json:"vocab_size"`
	HiddenSize        int `json:"hidden_size"`
	NumLayers         int `json:"num_layers"`
	NumAttentionHeads int `json:"num_attention_heads"`
	IntermediateSize  int `json:"intermediate_size,omitempty"`
	NumKeyValueHeads  int `json:"num_key_value_heads,omitempty"`
}

// EstimateParameters computes a closed-form parameter count for the given
// architecture: embedding plus per-layer attention, feed-forward, and
// normalization terms. The attention term is doubled to approximate weights
// plus biases. Returns 0 when any required dimension is non-positive.
func EstimateParameters(cfg TransformerConfig) float64 {
	if cfg.VocabSize <= 0 || cfg.HiddenSize <= 0 || cfg.NumLayers <= 0 || cfg.NumAttentionHeads <= 0 {
		return 0
	}

	hidden := float64(cfg.HiddenSize)

	intermediate := float64(cfg.IntermediateSize)
	if intermediate <= 0 {
		intermediate = hidden * 4
	}

	kvHeads := float64(cfg.NumKeyValueHeads)
	if kvHeads <= 0 {
		kvHeads = float64(cfg.NumAttentionHeads)
	}
	kvHeadDim := hidden / kvHeads

	embedding := float64(cfg.VocabSize) * hidden

	// Q and output projections plus K/V projections, doubled for biases.
	attention := (hidden*hidden + hidden*kvHeadDim*kvHeads*2 + hidden*hidden) * 2
	feedForward := hidden * intermediate * 2
	norms := hidden * 2 * 2

	perLayer := attention + feedForward + norms

	return embedding + float64(cfg.NumLayers)*perLayer
}
