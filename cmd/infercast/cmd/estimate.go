package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infercast/infercast"
	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/constants"
	"github.com/infercast/infercast/pkg/estimator"
)

var estimateFlags struct {
	paramsBillions float64
	precision      string
	mode           string
	optimizer      string
	seqLength      int
	batchSize      int
	vocabSize      int
	gpu            string
	maxResults     int
}

// estimateReport is the JSON shape of a full estimate.
type estimateReport struct {
	ParameterCount float64                        `json:"parameter_count"`
	Precision      string                         `json:"precision"`
	Mode           string                         `json:"mode"`
	Architecture   estimator.ArchitectureEstimate `json:"architecture"`
	Memory         estimator.MemoryBreakdown      `json:"memory"`
	ForwardGFLOPs  float64                        `json:"forward_gflops"`
	GPUClass       string                         `json:"gpu_class"`
	Throughput     *estimator.ThroughputEstimate  `json:"throughput,omitempty"`
	LatencySeconds float64                        `json:"latency_seconds,omitempty"`
	Recommended    []catalogs.RecommendedGPU      `json:"recommended_gpus"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate memory, compute, and GPU fit for a model size",
	Long: `Estimate derives a representative architecture for the given parameter
count, breaks down its memory footprint, counts forward-pass FLOPs, and
recommends GPUs from the built-in catalog. With --gpu it also projects
throughput and single-pass latency on that card.`,
	Example: `  infercast estimate --params 7
  infercast estimate --params 70 --precision int8 --seq 8192
  infercast estimate --params 7 --mode training --optimizer adamw
  infercast estimate --params 7 --gpu a100-80 --json`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().Float64Var(&estimateFlags.paramsBillions, "params", 0, "model size in billions of parameters (required)")
	estimateCmd.Flags().StringVar(&estimateFlags.precision, "precision", "fp16", "storage precision (int4, int8, fp16, fp32)")
	estimateCmd.Flags().StringVar(&estimateFlags.mode, "mode", "inference", "estimation mode (inference or training)")
	estimateCmd.Flags().StringVar(&estimateFlags.optimizer, "optimizer", "", "training optimizer (adam, adamw, lamb, adafactor, none)")
	estimateCmd.Flags().IntVar(&estimateFlags.seqLength, "seq", 2048, "sequence length in tokens")
	estimateCmd.Flags().IntVar(&estimateFlags.batchSize, "batch", 1, "batch size")
	estimateCmd.Flags().IntVar(&estimateFlags.vocabSize, "vocab", 32000, "vocabulary size")
	estimateCmd.Flags().StringVar(&estimateFlags.gpu, "gpu", "", "catalog GPU id for throughput and latency projection")
	estimateCmd.Flags().IntVar(&estimateFlags.maxResults, "max-results", constants.DefaultMaxRecommendations, "maximum GPU recommendations")

	_ = estimateCmd.MarkFlagRequired("params")
}

func runEstimate(_ *cobra.Command, _ []string) error {
	report, err := buildEstimateReport()
	if err != nil {
		return err
	}

	if jsonOutput {
		return renderJSON(os.Stdout, report)
	}
	return printEstimate(report)
}

// buildEstimateReport assembles the full report from the estimate flags.
func buildEstimateReport() (estimateReport, error) {
	precision, err := estimator.ParsePrecision(estimateFlags.precision)
	if err != nil {
		return estimateReport{}, err
	}

	mode := estimator.Mode(estimateFlags.mode)
	switch mode {
	case estimator.ModeInference, estimator.ModeTraining:
	default:
		return estimateReport{}, fmt.Errorf("unknown mode %q: expected inference or training", estimateFlags.mode)
	}

	client, err := infercast.New()
	if err != nil {
		return estimateReport{}, err
	}

	paramCount := estimateFlags.paramsBillions * 1e9
	arch := estimator.EstimateLlamaArchitecture(paramCount)

	memory, err := client.EstimateMemory(estimator.MemoryInput{
		ParameterCount: paramCount,
		Precision:      precision,
		Mode:           mode,
		SequenceLength: estimateFlags.seqLength,
		BatchSize:      estimateFlags.batchSize,
		NumLayers:      arch.NumLayers,
		HiddenSize:     arch.HiddenSize,
		Optimizer:      estimator.Optimizer(estimateFlags.optimizer),
	})
	if err != nil {
		return estimateReport{}, err
	}

	flops := estimator.EstimateDecoderFLOPs(estimator.FLOPsInput{
		NumLayers:      arch.NumLayers,
		HiddenSize:     arch.HiddenSize,
		SequenceLength: estimateFlags.seqLength,
		VocabSize:      estimateFlags.vocabSize,
	})
	gflops := flops / constants.FLOPsPerGFLOP

	report := estimateReport{
		ParameterCount: paramCount,
		Precision:      precision.String(),
		Mode:           mode.String(),
		Architecture:   arch,
		Memory:         memory,
		ForwardGFLOPs:  gflops,
		GPUClass:       catalogs.RecommendGPUClass(memory.TotalGB, gflops),
		Recommended:    client.RecommendGPUs(memory.TotalGB, estimateFlags.maxResults),
	}

	if estimateFlags.gpu != "" {
		gpu, err := client.Catalog().GPU(catalogs.GPUID(estimateFlags.gpu))
		if err != nil {
			return estimateReport{}, err
		}
		tp := estimator.EstimateThroughput(estimator.ThroughputInput{
			ParameterCount: paramCount,
			GPUTFLOPS:      gpu.TFLOPS,
		})
		report.Throughput = &tp
		report.LatencySeconds = estimator.EstimateInferenceTime(estimator.InferenceTimeInput{
			GFLOPs:         gflops,
			GPUTFLOPS:      gpu.TFLOPS,
			ParameterCount: paramCount,
			BandwidthGBps:  gpu.BandwidthGBps,
			OverheadFactor: constants.DefaultMemoryOverheadFactor,
			BytesPerParam:  precision.Bytes(),
		})
	}

	return report, nil
}

func printEstimate(r estimateReport) error {
	rows := [][]string{
		{"Parameters", formatCount(r.ParameterCount)},
		{"Precision", r.Precision},
		{"Mode", r.Mode},
		{"Hidden size", fmt.Sprintf("%d", r.Architecture.HiddenSize)},
		{"Layers", fmt.Sprintf("%d", r.Architecture.NumLayers)},
		{"Attention heads", fmt.Sprintf("%d", r.Architecture.NumHeads)},
		{"Weights", fmt.Sprintf("%.2f GB", r.Memory.WeightsGB)},
		{"Activations", fmt.Sprintf("%.2f GB", r.Memory.ActivationsGB)},
		{"KV cache", fmt.Sprintf("%.2f GB", r.Memory.KVCacheGB)},
		{"Optimizer state", fmt.Sprintf("%.2f GB", r.Memory.OptimizerGB)},
		{"Overhead", fmt.Sprintf("%.2f GB", r.Memory.OverheadGB)},
		{"Total memory", fmt.Sprintf("%.2f GB", r.Memory.TotalGB)},
		{"Forward pass", fmt.Sprintf("%.1f GFLOPs", r.ForwardGFLOPs)},
		{"GPU class", r.GPUClass},
	}
	if r.Throughput != nil {
		rows = append(rows,
			[]string{"Throughput", fmt.Sprintf("%.1f tok/s", r.Throughput.TokensPerSecond)},
			[]string{"Per token", fmt.Sprintf("%.2f ms", r.Throughput.MillisecondsPerToken)},
			[]string{"Forward latency", fmt.Sprintf("%.4f s", r.LatencySeconds)},
		)
	}
	if err := renderTable(os.Stdout, []string{"Metric", "Value"}, rows); err != nil {
		return err
	}

	if len(r.Recommended) == 0 {
		fmt.Println("\nNo single catalog GPU fits this workload.")
		return nil
	}

	recRows := make([][]string, 0, len(r.Recommended))
	for _, rec := range r.Recommended {
		recRows = append(recRows, []string{
			rec.Name,
			fmt.Sprintf("%.0f GB", rec.MemoryGB),
			fmt.Sprintf("%.1f", rec.TFLOPS),
			fmt.Sprintf("%.2f GB", rec.MemoryHeadroomGB),
		})
	}
	fmt.Println()
	return renderTable(os.Stdout, []string{"Recommended GPU", "Memory", "TFLOPS", "Headroom"}, recRows)
}
