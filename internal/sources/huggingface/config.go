package huggingface

import "github.com/infercast/infercast/pkg/estimator"

// Published config.json documents disagree on field names across model
// families: llama-style configs say hidden_size/num_hidden_layers, GPT-2
// style say n_embd/n_layer, and encoder-decoder families say d_model.
// Normalize resolves each concept through its known aliases, first match
// wins, so the estimator only ever sees one canonical record.

var (
	hiddenSizeKeys   = []string{"hidden_size", "d_model", "n_embd", "dim"}
	numLayersKeys    = []string{"num_hidden_layers", "n_layer", "num_layers", "n_layers"}
	numHeadsKeys     = []string{"num_attention_heads", "n_head", "num_heads", "n_heads"}
	vocabSizeKeys    = []string{"vocab_size"}
	intermediateKeys = []string{"intermediate_size", "ffn_dim", "n_inner", "d_ff", "hidden_dim"}
	kvHeadsKeys      = []string{"num_key_value_heads", "num_kv_heads", "n_kv_heads"}
)

// Normalize maps a raw config.json document onto the estimator's canonical
// architecture record. Missing optional fields stay zero, which the
// estimator's own defaulting rules handle; missing required fields also stay
// zero and make downstream estimates degrade to the unknown sentinel.
func Normalize(raw map[string]any) estimator.TransformerConfig {
	return estimator.TransformerConfig{
		VocabSize:         firstInt(raw, vocabSizeKeys),
		HiddenSize:        firstInt(raw, hiddenSizeKeys),
		NumLayers:         firstInt(raw, numLayersKeys),
		NumAttentionHeads: firstInt(raw, numHeadsKeys),
		IntermediateSize:  firstInt(raw, intermediateKeys),
		NumKeyValueHeads:  firstInt(raw, kvHeadsKeys),
	}
}

// NormalizePrecision maps a config's torch_dtype onto a storage precision,
// defaulting to fp16 when the dtype is absent or unrecognized.
func NormalizePrecision(raw map[string]any) estimator.Precision {
	dtype, _ := raw["torch_dtype"].(string)
	switch dtype {
	case "float32", "fp32":
		return estimator.PrecisionFP32
	case "int8":
		return estimator.PrecisionInt8
	case "int4":
		return estimator.PrecisionInt4
	default:
		return estimator.PrecisionFP16
	}
}

// firstInt returns the first key present in raw with a usable numeric value.
func firstInt(raw map[string]any, keys []string) int {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64: // encoding/json decodes all numbers as float64
			return int(n)
		case int:
			return n
		}
	}
	return 0
}
