// Package estimator provides analytical resource estimation for transformer
// language models: parameter counts, memory footprint, FLOP counts,
// throughput, inference latency, and training cost.
//
// Every function is a pure, deterministic transform of its arguments. The
// package holds no mutable state and performs no I/O, so functions may be
// called concurrently without coordination. Reference data such as GPU specs
// and cloud prices lives in pkg/catalogs and is passed in as plain numbers.
//
// The formulas are deliberate closed-form approximations. They aim for
// plausible order-of-magnitude projections during interactive what-if
// exploration, not bit-exact agreement with any particular checkpoint.
//
// Two error policies coexist. Most helpers treat non-positive or missing
// inputs as "unknown" and return zero, which suits partially filled
// interactive forms. EstimateMemory and EstimateCloudCost reject genuinely
// meaningless values (a negative parameter count, a negative hourly rate)
// with a validation error.
package estimator
