package estimator

import "github.com/infercast/infercast/pkg/errors"

// Precision represents a numeric storage precision as a bit-width.
type Precision int

// Supported storage precisions.
const (
	PrecisionInt4 Precision = 4  // 4-bit quantized
	PrecisionInt8 Precision = 8  // 8-bit quantized
	PrecisionFP16 Precision = 16 // half precision (fp16/bf16)
	PrecisionFP32 Precision = 32 // full precision
)

// Valid reports whether the precision is one of the supported bit-widths.
func (p Precision) Valid() bool {
	switch p {
	case PrecisionInt4, PrecisionInt8, PrecisionFP16, PrecisionFP32:
		return true
	}
	return false
}

// Bits returns the bit-width of the precision.
func (p Precision) Bits() int {
	return int(p)
}

// Bytes returns the storage size in bytes of a single element.
func (p Precision) Bytes() float64 {
	return BitsToBytes(int(p))
}

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionInt4:
		return "int4"
	case PrecisionInt8:
		return "int8"
	case PrecisionFP16:
		return "fp16"
	case PrecisionFP32:
		return "fp32"
	default:
		return "unknown"
	}
}

// ParsePrecision converts a precision name to its bit-width. It accepts the
// short names used in output ("fp16") as well as common framework dtype
// spellings ("bfloat16", "float32").
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "int4":
		return PrecisionInt4, nil
	case "int8":
		return PrecisionInt8, nil
	case "fp16", "bf16", "float16", "bfloat16", "half":
		return PrecisionFP16, nil
	case "fp32", "float32", "float", "full":
		return PrecisionFP32, nil
	}
	return 0, &errors.ValidationError{
		Field:   "precision",
		Value:   s,
		Message: "must be one of int4, int8, fp16, fp32",
	}
}

// BitsToBytes converts a bit-width to bytes per element.
func BitsToBytes(bits int) float64 {
	return float64(bits) / 8
}
