package catalogs

// Provider identifies a cloud GPU provider.
type Provider string

// Known cloud providers.
const (
	ProviderAWS       Provider = "aws"
	ProviderGCP       Provider = "gcp"
	ProviderAzure     Provider = "azure"
	ProviderLambda    Provider = "lambda"
	ProviderCoreWeave Provider = "coreweave"
)

// String returns the string representation of a Provider.
func (p Provider) String() string {
	return string(p)
}

// CloudInstance describes a rentable cloud machine: which GPU it carries, how
// many of them, and the on-demand hourly price in USD. Like GPU records,
// instances are immutable reference data.
type CloudInstance struct {
	Provider   Provider `json:"provider" yaml:"provider"`
	Name       string   `json:"name" yaml:"name"`
	GPU        GPUID    `json:"gpu" yaml:"gpu"`
	GPUCount   int      `json:"gpu_count" yaml:"gpu_count"`
	HourlyRate float64  `json:"hourly_rate" yaml:"hourly_rate"`
}

// TotalMemoryGB returns the combined GPU memory of the instance given the
// per-GPU capacity.
func (ci CloudInstance) TotalMemoryGB(perGPU float64) float64 {
	if ci.GPUCount <= 0 {
		return 0
	}
	return perGPU * float64(ci.GPUCount)
}
