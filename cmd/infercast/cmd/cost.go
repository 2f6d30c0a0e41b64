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

var costFlags struct {
	rate  float64
	hours float64
	gpu   string
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Project the cost of renting GPU hardware",
	Long: `Cost multiplies an hourly rental rate by a duration. The rate comes
either from --rate or from the cheapest catalog instance carrying the GPU
named by --gpu.`,
	Example: `  infercast cost --rate 3.06 --hours 2
  infercast cost --gpu a100-80 --hours 24`,
	RunE: runCost,
}

var trainCostFlags struct {
	paramsBillions float64
	precision      string
	seqLength      int
	vocabSize      int
	datasetSize    int
	epochs         int
	gpu            string
	rate           float64
}

var trainCostCmd = &cobra.Command{
	Use:   "traincost",
	Short: "Project the cloud cost of a training run",
	Long: `Traincost estimates per-sequence training time on a catalog GPU with a
roofline model and multiplies it out over the dataset, epochs, and the GPU's
hourly rental rate. Training work is counted as three forward passes per
sequence, with gradients and optimizer state widening the memory-bound term.`,
	Example: `  infercast traincost --params 7 --dataset 100000 --epochs 3 --gpu a100-80
  infercast traincost --params 1.5 --dataset 50000 --gpu h100-sxm --rate 4.50`,
	RunE: runTrainCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(trainCostCmd)

	costCmd.Flags().Float64Var(&costFlags.rate, "rate", 0, "hourly rental rate in USD")
	costCmd.Flags().Float64Var(&costFlags.hours, "hours", 0, "rental duration in hours (required)")
	costCmd.Flags().StringVar(&costFlags.gpu, "gpu", "", "catalog GPU id; uses its cheapest instance's rate")
	_ = costCmd.MarkFlagRequired("hours")

	trainCostCmd.Flags().Float64Var(&trainCostFlags.paramsBillions, "params", 0, "model size in billions of parameters (required)")
	trainCostCmd.Flags().StringVar(&trainCostFlags.precision, "precision", "fp16", "training precision (int4, int8, fp16, fp32)")
	trainCostCmd.Flags().IntVar(&trainCostFlags.seqLength, "seq", 2048, "training sequence length in tokens")
	trainCostCmd.Flags().IntVar(&trainCostFlags.vocabSize, "vocab", 32000, "vocabulary size")
	trainCostCmd.Flags().IntVar(&trainCostFlags.datasetSize, "dataset", 0, "dataset size in sequences (required)")
	trainCostCmd.Flags().IntVar(&trainCostFlags.epochs, "epochs", 1, "number of training epochs")
	trainCostCmd.Flags().StringVar(&trainCostFlags.gpu, "gpu", "", "catalog GPU id to train on (required)")
	trainCostCmd.Flags().Float64Var(&trainCostFlags.rate, "rate", 0, "hourly rate override; default is the GPU's cheapest instance")
	_ = trainCostCmd.MarkFlagRequired("params")
	_ = trainCostCmd.MarkFlagRequired("dataset")
	_ = trainCostCmd.MarkFlagRequired("gpu")
}

func runCost(_ *cobra.Command, _ []string) error {
	var (
		estimate estimator.CloudCostEstimate
		err      error
	)

	switch {
	case costFlags.gpu != "":
		client, cerr := infercast.New()
		if cerr != nil {
			return cerr
		}
		estimate, err = client.RentalCost(catalogs.GPUID(costFlags.gpu), costFlags.hours)
	case costFlags.rate != 0:
		// Non-zero rates always reach the validator so a negative value is
		// reported as invalid rather than as a missing flag.
		estimate, err = estimator.EstimateCloudCost(costFlags.rate, costFlags.hours)
	default:
		return fmt.Errorf("either --rate or --gpu is required")
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return renderJSON(os.Stdout, estimate)
	}
	return renderTable(os.Stdout, []string{"Field", "Value"}, [][]string{
		{"Hourly rate", fmt.Sprintf("$%.2f", estimate.HourlyRate)},
		{"Duration", fmt.Sprintf("%.1f h", estimate.DurationHours)},
		{"Total", fmt.Sprintf("$%.2f", estimate.TotalCost)},
	})
}

// trainCostReport is the JSON shape of a training cost projection.
type trainCostReport struct {
	ParameterCount float64 `json:"parameter_count"`
	Precision      string  `json:"precision"`
	GPU            string  `json:"gpu"`
	HourlyRate     float64 `json:"hourly_rate"`
	DatasetSize    int     `json:"dataset_size"`
	Epochs         int     `json:"epochs"`
	GFLOPsPerSeq   float64 `json:"gflops_per_sequence"`
	TotalCost      float64 `json:"total_cost"`
}

func runTrainCost(_ *cobra.Command, _ []string) error {
	report, err := buildTrainCostReport()
	if err != nil {
		return err
	}

	if jsonOutput {
		return renderJSON(os.Stdout, report)
	}
	return printTrainCost(report)
}

// buildTrainCostReport assembles the training cost projection from the
// traincost flags.
func buildTrainCostReport() (trainCostReport, error) {
	precision, err := estimator.ParsePrecision(trainCostFlags.precision)
	if err != nil {
		return trainCostReport{}, err
	}

	client, err := infercast.New()
	if err != nil {
		return trainCostReport{}, err
	}
	gpu, err := client.Catalog().GPU(catalogs.GPUID(trainCostFlags.gpu))
	if err != nil {
		return trainCostReport{}, err
	}

	rate := trainCostFlags.rate
	if rate <= 0 {
		instance, err := client.Catalog().CheapestInstanceForGPU(gpu.ID)
		if err != nil {
			return trainCostReport{}, err
		}
		rate = instance.HourlyRate
	}

	paramCount := trainCostFlags.paramsBillions * 1e9
	arch := estimator.EstimateLlamaArchitecture(paramCount)
	gflopsPerSeq := estimator.EstimateDecoderFLOPs(estimator.FLOPsInput{
		NumLayers:      arch.NumLayers,
		HiddenSize:     arch.HiddenSize,
		SequenceLength: trainCostFlags.seqLength,
		VocabSize:      trainCostFlags.vocabSize,
	}) / constants.FLOPsPerGFLOP

	total := estimator.EstimateTrainingCost(estimator.TrainingCostInput{
		InferenceGFLOPsPerSequence: gflopsPerSeq,
		GPUTFLOPS:                  gpu.TFLOPS,
		ParameterCount:             paramCount,
		BandwidthGBps:              gpu.BandwidthGBps,
		OverheadFactor:             constants.DefaultMemoryOverheadFactor,
		GPUHourlyCost:              rate,
		Epochs:                     trainCostFlags.epochs,
		DatasetSize:                trainCostFlags.datasetSize,
		Precision:                  precision,
	})

	return trainCostReport{
		ParameterCount: paramCount,
		Precision:      precision.String(),
		GPU:            gpu.ID.String(),
		HourlyRate:     rate,
		DatasetSize:    trainCostFlags.datasetSize,
		Epochs:         trainCostFlags.epochs,
		GFLOPsPerSeq:   gflopsPerSeq,
		TotalCost:      total,
	}, nil
}

func printTrainCost(report trainCostReport) error {
	return renderTable(os.Stdout, []string{"Field", "Value"}, [][]string{
		{"Parameters", formatCount(report.ParameterCount)},
		{"Precision", report.Precision},
		{"GPU", report.GPU},
		{"Hourly rate", fmt.Sprintf("$%.2f", report.HourlyRate)},
		{"Dataset", fmt.Sprintf("%d sequences", report.DatasetSize)},
		{"Epochs", fmt.Sprintf("%d", report.Epochs)},
		{"Per sequence", fmt.Sprintf("%.1f GFLOPs", report.GFLOPsPerSeq)},
		{"Total cost", fmt.Sprintf("$%.2f", report.TotalCost)},
	})
}
