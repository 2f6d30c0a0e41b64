// Package constants provides shared constants used throughout the infercast
// codebase: unit conversions, default estimation factors, and timeouts for
// the remote-config source adapters.
package constants

import "time"

// Unit conversion constants
const (
	// BytesPerKiB is the number of bytes in a kibibyte
	BytesPerKiB = 1024

	// BytesPerMiB is the number of bytes in a mebibyte
	BytesPerMiB = 1024 * 1024

	// BytesPerGiB is the number of bytes in a gibibyte
	BytesPerGiB = 1024 * 1024 * 1024

	// FLOPsPerGFLOP is the number of floating-point operations in a gigaFLOP
	FLOPsPerGFLOP = 1e9

	// FLOPsPerTFLOP is the number of floating-point operations in a teraFLOP
	FLOPsPerTFLOP = 1e12

	// SecondsPerHour converts seconds to billing hours
	SecondsPerHour = 3600
)

// Default estimation factors
const (
	// DefaultMemoryOverheadFactor scales a summed memory total to account for
	// framework allocations, fragmentation, and CUDA context
	DefaultMemoryOverheadFactor = 1.15

	// DefaultGPUEfficiency is the fraction of peak GPU throughput a
	// memory-bound autoregressive decode typically achieves
	DefaultGPUEfficiency = 0.3

	// DefaultInferenceActivationMultiplier sizes inference activations
	// relative to weight memory
	DefaultInferenceActivationMultiplier = 0.2

	// DefaultTrainingActivationMultiplier sizes training activations
	// relative to weight memory
	DefaultTrainingActivationMultiplier = 2.0

	// TrainingFLOPsMultiplier approximates forward plus backward passes
	// relative to a single forward pass
	TrainingFLOPsMultiplier = 3.0

	// OptimizerStateBytesPerParam is the fixed byte cost per parameter for
	// Adam-style moment and variance state during training
	OptimizerStateBytesPerParam = 8.0
)

// Timeout constants for remote source adapters
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to
	// model-config APIs
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second
)

// Limit constants
const (
	// DefaultMaxRecommendations is the default number of GPUs returned by a
	// recommendation query
	DefaultMaxRecommendations = 3
)
