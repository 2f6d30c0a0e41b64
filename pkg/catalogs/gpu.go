package catalogs

// GPUID uniquely identifies a GPU in the catalog.
type GPUID string

// String returns the string representation of a GPUID.
func (id GPUID) String() string {
	return string(id)
}

// GPU describes a single accelerator: its memory capacity, peak FP32
// throughput, and memory bandwidth. Records are read-only reference data
// loaded at startup and never mutated.
type GPU struct {
	ID            GPUID   `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	MemoryGB      float64 `json:"memory_gb" yaml:"memory_gb"`
	TFLOPS        float64 `json:"tflops" yaml:"tflops"`
	BandwidthGBps float64 `json:"bandwidth_gbps" yaml:"bandwidth_gbps"`
}

// RecommendedGPU is a GPU annotated with how much memory it has to spare
// beyond a required footprint. Only GPUs with non-negative headroom are ever
// recommended.
type RecommendedGPU struct {
	GPU              `json:",inline" yaml:",inline"`
	MemoryHeadroomGB float64 `json:"memory_headroom_gb" yaml:"memory_headroom_gb"`
}
