package estimator

import (
	"github.com/infercast/infercast/pkg/constants"
	"github.com/infercast/infercast/pkg/errors"
)

// Mode selects between inference and training estimation behavior.
type Mode string

// Estimation modes.
const (
	ModeInference Mode = "inference"
	ModeTraining  Mode = "training"
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	return string(m)
}

// Optimizer identifies the optimizer whose state memory is being sized.
type Optimizer string

// Supported optimizers.
const (
	OptimizerNone      Optimizer = "none"
	OptimizerAdam      Optimizer = "adam"
	OptimizerAdamW     Optimizer = "adamw"
	OptimizerLamb      Optimizer = "lamb"
	OptimizerAdafactor Optimizer = "adafactor"
)

// String returns the string representation of an Optimizer.
func (o Optimizer) String() string {
	return string(o)
}

// StateMultiplier returns the optimizer state size relative to raw weight
// bytes. Adam-family optimizers store two fp32 moments per parameter;
// Adafactor stores factored second-moment estimates.
func (o Optimizer) StateMultiplier() float64 {
	switch o {
	case OptimizerAdam, OptimizerAdamW, OptimizerLamb:
		return 4
	case OptimizerAdafactor:
		return 1.5
	default:
		return 0
	}
}

// MemoryBreakdown is a per-category memory estimate in gibibytes.
// BaseTotalGB is the sum of the four categories; TotalGB scales it by the
// overhead factor and OverheadGB is the difference.
type MemoryBreakdown struct {
	WeightsGB     float64 `json:"weights_gb"`
	ActivationsGB float64 `json:"activations_gb"`
	KVCacheGB     float64 `json:"kv_cache_gb"`
	OptimizerGB   float64 `json:"optimizer_gb"`
	BaseTotalGB   float64 `json:"base_total_gb"`
	OverheadGB    float64 `json:"overhead_gb"`
	TotalGB       float64 `json:"total_gb"`
}

// WeightMemoryGB returns the memory needed to hold the model weights at the
// given precision. Non-positive parameter counts return 0.
func WeightMemoryGB(parameterCount float64, precision Precision) float64 {
	if parameterCount <= 0 {
		return 0
	}
	return parameterCount * precision.Bytes() / constants.BytesPerGiB
}

// WeightMemoryFromBillionsGB is a convenience wrapper over WeightMemoryGB for
// parameter counts expressed in billions.
func WeightMemoryFromBillionsGB(billions float64, precision Precision) float64 {
	return WeightMemoryGB(billions*1e9, precision)
}

// ActivationMemoryGB sizes activation memory as a multiple of weight memory.
// The default multiplier is 0.2 for inference and 2.0 for training; pass an
// explicit positive multiplier to override.
func ActivationMemoryGB(parameterCount float64, precision Precision, mode Mode, multiplier ...float64) float64 {
	weights := WeightMemoryGB(parameterCount, precision)
	if weights == 0 {
		return 0
	}

	factor := constants.DefaultInferenceActivationMultiplier
	if mode == ModeTraining {
		factor = constants.DefaultTrainingActivationMultiplier
	}
	if len(multiplier) > 0 && multiplier[0] > 0 {
		factor = multiplier[0]
	}

	return weights * factor
}

// KVCacheInput holds the dimensions of a KV cache sizing request.
type KVCacheInput struct {
	SequenceLength int
	BatchSize      int
	NumLayers      int
	HiddenSize     int
	Precision      Precision
}

// KVCacheMemoryGB sizes the key/value cache for autoregressive decoding:
// one K and one V vector per layer per position per batch element.
// Any non-positive dimension returns 0.
func KVCacheMemoryGB(in KVCacheInput) float64 {
	if in.SequenceLength <= 0 || in.BatchSize <= 0 || in.NumLayers <= 0 || in.HiddenSize <= 0 {
		return 0
	}

	elements := 2 * float64(in.NumLayers) * float64(in.HiddenSize) *
		float64(in.SequenceLength) * float64(in.BatchSize)

	return elements * in.Precision.Bytes() / constants.BytesPerGiB
}

// OptimizerMemoryGB sizes optimizer state as a multiple of weight memory.
func OptimizerMemoryGB(parameterCount float64, precision Precision, opt Optimizer) float64 {
	return WeightMemoryGB(parameterCount, precision) * opt.StateMultiplier()
}

// MemoryInput holds a full memory estimation request. Optional fields use
// zero as "unset": Optimizer defaults by mode (adamw when training, none when
// inferring), OverheadFactor defaults to 1.15, and ActivationMultiplier
// defaults by mode.
type MemoryInput struct {
	ParameterCount       float64
	Precision            Precision
	Mode                 Mode
	SequenceLength       int
	BatchSize            int
	NumLayers            int
	HiddenSize           int
	Optimizer            Optimizer
	OverheadFactor       float64
	ActivationMultiplier float64
}

// EstimateMemory composes the per-category helpers into a MemoryBreakdown.
// The KV cache is counted only in inference mode and optimizer state only in
// training mode. A negative parameter count is rejected with a validation
// error; every other out-of-range input degrades to a zero contribution.
func EstimateMemory(in MemoryInput) (MemoryBreakdown, error) {
	if in.ParameterCount < 0 {
		return MemoryBreakdown{}, errors.NewValidationError(
			"parameterCount", in.ParameterCount, "must not be negative")
	}

	mode := in.Mode
	if mode == "" {
		mode = ModeInference
	}

	opt := in.Optimizer
	if opt == "" {
		if mode == ModeTraining {
			opt = OptimizerAdamW
		} else {
			opt = OptimizerNone
		}
	}

	overhead := in.OverheadFactor
	if overhead <= 0 {
		overhead = constants.DefaultMemoryOverheadFactor
	}

	var b MemoryBreakdown
	b.WeightsGB = WeightMemoryGB(in.ParameterCount, in.Precision)
	b.ActivationsGB = ActivationMemoryGB(in.ParameterCount, in.Precision, mode, in.ActivationMultiplier)

	if mode == ModeInference {
		b.KVCacheGB = KVCacheMemoryGB(KVCacheInput{
			SequenceLength: in.SequenceLength,
			BatchSize:      in.BatchSize,
			NumLayers:      in.NumLayers,
			HiddenSize:     in.HiddenSize,
			Precision:      in.Precision,
		})
	}

	if mode == ModeTraining {
		b.OptimizerGB = OptimizerMemoryGB(in.ParameterCount, in.Precision, opt)
	}

	b.BaseTotalGB = b.WeightsGB + b.ActivationsGB + b.KVCacheGB + b.OptimizerGB
	b.TotalGB = b.BaseTotalGB * overhead
	b.OverheadGB = b.BaseTotalGB * (overhead - 1)

	return b, nil
}
