package estimator

import "github.com/infercast/infercast/pkg/constants"

// FLOPsInput holds the dimensions of a forward-pass FLOP count request.
type FLOPsInput struct {
	NumLayers      int
	HiddenSize     int
	SequenceLength int
	VocabSize      int
}

// EstimateDecoderFLOPs counts the floating-point operations of a single
// forward pass over SequenceLength tokens of a decoder-only transformer:
// attention (4*L*S*H²), MLP (8*L*S*H²), and the output projection
// (2*S*H*V). This is not the per-token incremental decoding cost.
// Returns 0 when any dimension is non-positive.
func EstimateDecoderFLOPs(in FLOPsInput) float64 {
	if in.NumLayers <= 0 || in.HiddenSize <= 0 || in.SequenceLength <= 0 || in.VocabSize <= 0 {
		return 0
	}

	layers := float64(in.NumLayers)
	hidden := float64(in.HiddenSize)
	seq := float64(in.SequenceLength)
	vocab := float64(in.VocabSize)

	attention := 4 * layers * seq * hidden * hidden
	mlp := 8 * layers * seq * hidden * hidden
	projection := 2 * seq * hidden * vocab

	return attention + mlp + projection
}

// ThroughputInput holds a token throughput estimation request.
// Efficiency defaults to 0.3 when unset.
type ThroughputInput struct {
	ParameterCount float64
	GPUTFLOPS      float64
	Efficiency     float64
}

// ThroughputEstimate holds generation speed in both directions:
// MillisecondsPerToken = 1000/TokensPerSecond when nonzero.
type ThroughputEstimate struct {
	TokensPerSecond      float64 `json:"tokens_per_second"`
	MillisecondsPerToken float64 `json:"milliseconds_per_token"`
}

// EstimateThroughput approximates autoregressive generation speed using
// 2 FLOPs of work per parameter per generated token against the GPU's
// effective (efficiency-scaled) throughput. Returns the zero estimate when
// any input is non-positive.
func EstimateThroughput(in ThroughputInput) ThroughputEstimate {
	efficiency := in.Efficiency
	if efficiency == 0 {
		efficiency = constants.DefaultGPUEfficiency
	}
	if in.ParameterCount <= 0 || in.GPUTFLOPS <= 0 || efficiency <= 0 {
		return ThroughputEstimate{}
	}

	flopsPerToken := in.ParameterCount * 2
	effectiveFLOPs := in.GPUTFLOPS * constants.FLOPsPerTFLOP * efficiency

	tps := effectiveFLOPs / flopsPerToken

	var msPerToken float64
	if tps > 0 {
		msPerToken = 1000 / tps
	}

	return ThroughputEstimate{
		TokensPerSecond:      tps,
		MillisecondsPerToken: msPerToken,
	}
}

// InferenceTimeInput holds a latency estimation request. FLOPs are given in
// GFLOPs and bandwidth in GB/s. OverheadFactor defaults to 1.0 when unset.
type InferenceTimeInput struct {
	GFLOPs         float64
	GPUTFLOPS      float64
	ParameterCount float64
	BandwidthGBps  float64
	OverheadFactor float64
	BytesPerParam  float64
}

// EstimateInferenceTime returns the latency in seconds of one forward pass
// using a roofline model: the operation is bound by whichever of compute time
// and weight-transfer time is larger, because the two overlap rather than
// accumulate. The result is scaled by the overhead factor.
func EstimateInferenceTime(in InferenceTimeInput) float64 {
	if in.GFLOPs <= 0 || in.GPUTFLOPS <= 0 || in.ParameterCount <= 0 ||
		in.BandwidthGBps <= 0 || in.BytesPerParam <= 0 {
		return 0
	}

	overhead := in.OverheadFactor
	if overhead <= 0 {
		overhead = 1
	}

	computeTime := in.GFLOPs * constants.FLOPsPerGFLOP / (in.GPUTFLOPS * constants.FLOPsPerTFLOP)
	memoryTime := in.ParameterCount * in.BytesPerParam / (in.BandwidthGBps * constants.BytesPerGiB)

	bound := computeTime
	if memoryTime > bound {
		bound = memoryTime
	}

	return bound * overhead
}

// TrainingCostInput holds a training cost estimation request.
// InferenceGFLOPsPerSequence is the forward-pass cost of one training
// sequence; dataset size is in sequences.
type TrainingCostInput struct {
	InferenceGFLOPsPerSequence float64
	GPUTFLOPS                  float64
	ParameterCount             float64
	BandwidthGBps              float64
	OverheadFactor             float64
	GPUHourlyCost              float64
	Epochs                     int
	DatasetSize                int
	Precision                  Precision
}

// EstimateTrainingCost projects the cloud cost of a training run. Training
// FLOPs per sequence are approximated as 3x the forward pass (forward plus
// two backward-weighted passes). The memory-bound roofline term carries model
// weights, same-precision gradients, and 8 bytes of Adam-style optimizer
// state per parameter. Returns 0 when any input is non-positive.
func EstimateTrainingCost(in TrainingCostInput) float64 {
	if in.InferenceGFLOPsPerSequence <= 0 || in.GPUHourlyCost <= 0 ||
		in.Epochs <= 0 || in.DatasetSize <= 0 {
		return 0
	}

	modelBytes := in.Precision.Bytes()
	gradientBytes := modelBytes
	bytesPerParam := modelBytes + gradientBytes + constants.OptimizerStateBytesPerParam

	perSequenceSeconds := EstimateInferenceTime(InferenceTimeInput{
		GFLOPs:         in.InferenceGFLOPsPerSequence * constants.TrainingFLOPsMultiplier,
		GPUTFLOPS:      in.GPUTFLOPS,
		ParameterCount: in.ParameterCount,
		BandwidthGBps:  in.BandwidthGBps,
		OverheadFactor: in.OverheadFactor,
		BytesPerParam:  bytesPerParam,
	})
	if perSequenceSeconds == 0 {
		return 0
	}

	totalSeconds := perSequenceSeconds * float64(in.DatasetSize) * float64(in.Epochs)
	totalHours := totalSeconds / constants.SecondsPerHour

	return totalHours * in.GPUHourlyCost
}
