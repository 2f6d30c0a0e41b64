package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infercast/infercast/pkg/errors"
	"github.com/infercast/infercast/pkg/estimator"
)

func TestWeightMemoryGB(t *testing.T) {
	t.Run("7B at fp16 is about 13GB", func(t *testing.T) {
		got := estimator.WeightMemoryGB(7e9, estimator.PrecisionFP16)
		assert.InDelta(t, 13.04, got, 0.05)
	})

	t.Run("halving precision halves memory", func(t *testing.T) {
		for _, params := range []float64{1e6, 7e9, 180e9} {
			fp16 := estimator.WeightMemoryGB(params, estimator.PrecisionFP16)
			int8 := estimator.WeightMemoryGB(params, estimator.PrecisionInt8)
			assert.InEpsilon(t, 2*int8, fp16, 1e-12, "params=%g", params)
		}
	})

	t.Run("non-positive count is unknown", func(t *testing.T) {
		assert.Zero(t, estimator.WeightMemoryGB(0, estimator.PrecisionFP16))
		assert.Zero(t, estimator.WeightMemoryGB(-1, estimator.PrecisionFP16))
	})
}

func TestWeightMemoryFromBillionsGB(t *testing.T) {
	// Round-trip against the raw-count helper.
	for _, billions := range []float64{0.5, 7, 70, 405} {
		assert.Equal(t,
			estimator.WeightMemoryGB(billions*1e9, estimator.PrecisionInt8),
			estimator.WeightMemoryFromBillionsGB(billions, estimator.PrecisionInt8),
			"billions=%g", billions)
	}
}

func TestActivationMemoryGB(t *testing.T) {
	t.Run("training is 10x inference under defaults", func(t *testing.T) {
		for _, params := range []float64{1e9, 7e9, 70e9} {
			inference := estimator.ActivationMemoryGB(params, estimator.PrecisionFP16, estimator.ModeInference)
			training := estimator.ActivationMemoryGB(params, estimator.PrecisionFP16, estimator.ModeTraining)
			assert.InEpsilon(t, 10.0, training/inference, 1e-9, "params=%g", params)
		}
	})

	t.Run("explicit multiplier overrides the mode default", func(t *testing.T) {
		weights := estimator.WeightMemoryGB(7e9, estimator.PrecisionFP16)
		got := estimator.ActivationMemoryGB(7e9, estimator.PrecisionFP16, estimator.ModeInference, 1.5)
		assert.InEpsilon(t, weights*1.5, got, 1e-12)
	})

	t.Run("zero for zero weights", func(t *testing.T) {
		assert.Zero(t, estimator.ActivationMemoryGB(0, estimator.PrecisionFP16, estimator.ModeTraining))
	})
}

func TestKVCacheMemoryGB(t *testing.T) {
	in := estimator.KVCacheInput{
		SequenceLength: 2048,
		BatchSize:      1,
		NumLayers:      32,
		HiddenSize:     4096,
		Precision:      estimator.PrecisionFP16,
	}

	t.Run("llama-7B shape at 2k context is about 1GB", func(t *testing.T) {
		// 2*32*4096*2B*2048 = 1 GiB exactly.
		assert.InDelta(t, 1.0, estimator.KVCacheMemoryGB(in), 1e-9)
	})

	t.Run("scales linearly with batch size", func(t *testing.T) {
		batched := in
		batched.BatchSize = 8
		assert.InEpsilon(t, 8*estimator.KVCacheMemoryGB(in), estimator.KVCacheMemoryGB(batched), 1e-12)
	})

	t.Run("zero on any non-positive dimension", func(t *testing.T) {
		for name, mutate := range map[string]func(*estimator.KVCacheInput){
			"sequence": func(c *estimator.KVCacheInput) { c.SequenceLength = 0 },
			"batch":    func(c *estimator.KVCacheInput) { c.BatchSize = -1 },
			"layers":   func(c *estimator.KVCacheInput) { c.NumLayers = 0 },
			"hidden":   func(c *estimator.KVCacheInput) { c.HiddenSize = 0 },
		} {
			cfg := in
			mutate(&cfg)
			assert.Zero(t, estimator.KVCacheMemoryGB(cfg), name)
		}
	})
}

func TestOptimizerMemoryGB(t *testing.T) {
	weights := estimator.WeightMemoryGB(7e9, estimator.PrecisionFP16)

	tests := []struct {
		optimizer  estimator.Optimizer
		multiplier float64
	}{
		{estimator.OptimizerNone, 0},
		{estimator.OptimizerAdam, 4},
		{estimator.OptimizerAdamW, 4},
		{estimator.OptimizerLamb, 4},
		{estimator.OptimizerAdafactor, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.optimizer.String(), func(t *testing.T) {
			got := estimator.OptimizerMemoryGB(7e9, estimator.PrecisionFP16, tt.optimizer)
			if tt.multiplier == 0 {
				assert.Zero(t, got)
				return
			}
			assert.InEpsilon(t, weights*tt.multiplier, got, 1e-12)
		})
	}
}

func TestEstimateMemory(t *testing.T) {
	t.Run("negative parameter count is rejected", func(t *testing.T) {
		_, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: -1,
			Precision:      estimator.PrecisionFP16,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("all-zero breakdown for zero shape", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			Precision: estimator.PrecisionFP16,
			Mode:      estimator.ModeInference,
		})
		require.NoError(t, err)
		assert.Equal(t, estimator.MemoryBreakdown{}, b)
	})

	t.Run("inference counts kv cache but no optimizer", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 7e9,
			Precision:      estimator.PrecisionFP16,
			Mode:           estimator.ModeInference,
			SequenceLength: 2048,
			BatchSize:      1,
			NumLayers:      32,
			HiddenSize:     4096,
		})
		require.NoError(t, err)
		assert.Greater(t, b.KVCacheGB, 0.0)
		assert.Zero(t, b.OptimizerGB)
	})

	t.Run("training counts optimizer but no kv cache", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 7e9,
			Precision:      estimator.PrecisionFP16,
			Mode:           estimator.ModeTraining,
			SequenceLength: 2048,
			BatchSize:      1,
			NumLayers:      32,
			HiddenSize:     4096,
		})
		require.NoError(t, err)
		assert.Zero(t, b.KVCacheGB)
		// Default training optimizer is adamw: 4x weights.
		assert.InEpsilon(t, 4*b.WeightsGB, b.OptimizerGB, 1e-12)
	})

	t.Run("base total sums the categories and overhead scales it", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 13e9,
			Precision:      estimator.PrecisionFP16,
			Mode:           estimator.ModeInference,
			SequenceLength: 4096,
			BatchSize:      4,
			NumLayers:      40,
			HiddenSize:     5120,
		})
		require.NoError(t, err)
		sum := b.WeightsGB + b.ActivationsGB + b.KVCacheGB + b.OptimizerGB
		assert.InEpsilon(t, sum, b.BaseTotalGB, 1e-12)
		assert.InEpsilon(t, sum*1.15, b.TotalGB, 1e-12)
		assert.InDelta(t, b.TotalGB-b.BaseTotalGB, b.OverheadGB, 1e-9)
	})

	t.Run("explicit overhead factor", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 7e9,
			Precision:      estimator.PrecisionFP16,
			OverheadFactor: 1.5,
		})
		require.NoError(t, err)
		assert.InEpsilon(t, b.BaseTotalGB*1.5, b.TotalGB, 1e-12)
	})

	t.Run("explicit optimizer override", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 7e9,
			Precision:      estimator.PrecisionFP16,
			Mode:           estimator.ModeTraining,
			Optimizer:      estimator.OptimizerAdafactor,
		})
		require.NoError(t, err)
		assert.InEpsilon(t, 1.5*b.WeightsGB, b.OptimizerGB, 1e-12)
	})

	t.Run("fields are never negative", func(t *testing.T) {
		b, err := estimator.EstimateMemory(estimator.MemoryInput{
			ParameterCount: 3e9,
			Precision:      estimator.PrecisionInt4,
			Mode:           estimator.ModeInference,
			SequenceLength: -5, // degrades to zero kv cache
			NumLayers:      32,
			HiddenSize:     2560,
		})
		require.NoError(t, err)
		for name, v := range map[string]float64{
			"weights":     b.WeightsGB,
			"activations": b.ActivationsGB,
			"kv":          b.KVCacheGB,
			"optimizer":   b.OptimizerGB,
			"base":        b.BaseTotalGB,
			"overhead":    b.OverheadGB,
			"total":       b.TotalGB,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
		}
	})
}
