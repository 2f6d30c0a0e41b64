package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/infercast/infercast/internal/sources/huggingface"
	"github.com/infercast/infercast/pkg/estimator"
)

var paramsFlags struct {
	model        string
	vocabSize    int
	hiddenSize   int
	numLayers    int
	numHeads     int
	intermediate int
	kvHeads      int
}

// paramsReport is the JSON shape of a parameter count.
type paramsReport struct {
	Model          string                      `json:"model,omitempty"`
	Config         estimator.TransformerConfig `json:"config"`
	Precision      string                      `json:"precision,omitempty"`
	ParameterCount float64                     `json:"parameter_count"`
	Billions       float64                     `json:"billions"`
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Count parameters from an architecture or a Hugging Face model",
	Long: `Params computes a closed-form parameter count. The architecture comes
either from explicit dimension flags or from a published config.json fetched
by Hugging Face repo ID with --model. Gated repos need a token in HF_TOKEN
or a .env file.`,
	Example: `  infercast params --hidden 4096 --layers 32 --heads 32 --vocab 128256
  infercast params --model meta-llama/Llama-3.1-8B`,
	RunE: runParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)

	paramsCmd.Flags().StringVar(&paramsFlags.model, "model", "", "Hugging Face repo ID to fetch the config from")
	paramsCmd.Flags().IntVar(&paramsFlags.vocabSize, "vocab", 32000, "vocabulary size")
	paramsCmd.Flags().IntVar(&paramsFlags.hiddenSize, "hidden", 0, "hidden size")
	paramsCmd.Flags().IntVar(&paramsFlags.numLayers, "layers", 0, "number of transformer layers")
	paramsCmd.Flags().IntVar(&paramsFlags.numHeads, "heads", 0, "number of attention heads")
	paramsCmd.Flags().IntVar(&paramsFlags.intermediate, "intermediate", 0, "feed-forward intermediate size (default 4x hidden)")
	paramsCmd.Flags().IntVar(&paramsFlags.kvHeads, "kv-heads", 0, "number of key/value heads (default same as --heads)")
}

func runParams(cmd *cobra.Command, _ []string) error {
	report := paramsReport{}

	if paramsFlags.model != "" {
		opts := []huggingface.Option{}
		if token := viper.GetString("hf_token"); token != "" {
			opts = append(opts, huggingface.WithToken(token))
		}
		client := huggingface.NewClient(opts...)

		cfg, err := client.FetchConfig(cmd.Context(), paramsFlags.model)
		if err != nil {
			return err
		}
		report.Model = cfg.ModelID
		report.Config = cfg.Architecture
		report.Precision = cfg.Precision.String()
	} else {
		if paramsFlags.hiddenSize <= 0 || paramsFlags.numLayers <= 0 || paramsFlags.numHeads <= 0 {
			return fmt.Errorf("either --model or all of --hidden, --layers, and --heads are required")
		}
		report.Config = estimator.TransformerConfig{
			VocabSize:         paramsFlags.vocabSize,
			HiddenSize:        paramsFlags.hiddenSize,
			NumLayers:         paramsFlags.numLayers,
			NumAttentionHeads: paramsFlags.numHeads,
			IntermediateSize:  paramsFlags.intermediate,
			NumKeyValueHeads:  paramsFlags.kvHeads,
		}
	}

	report.ParameterCount = estimator.EstimateParameters(report.Config)
	report.Billions = report.ParameterCount / 1e9

	if jsonOutput {
		return renderJSON(os.Stdout, report)
	}

	rows := [][]string{
		{"Vocabulary", fmt.Sprintf("%d", report.Config.VocabSize)},
		{"Hidden size", fmt.Sprintf("%d", report.Config.HiddenSize)},
		{"Layers", fmt.Sprintf("%d", report.Config.NumLayers)},
		{"Attention heads", fmt.Sprintf("%d", report.Config.NumAttentionHeads)},
	}
	if report.Model != "" {
		rows = append([][]string{{"Model", report.Model}}, rows...)
	}
	if report.Config.NumKeyValueHeads > 0 {
		rows = append(rows, []string{"KV heads", fmt.Sprintf("%d", report.Config.NumKeyValueHeads)})
	}
	if report.Precision != "" {
		rows = append(rows, []string{"Precision", report.Precision})
	}
	rows = append(rows,
		[]string{"Parameters", formatCount(report.ParameterCount)},
		[]string{"Billions", fmt.Sprintf("%.2fB", report.Billions)},
	)
	return renderTable(os.Stdout, []string{"Field", "Value"}, rows)
}
