package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infercast/infercast"
	"github.com/infercast/infercast/pkg/catalogs"
	"github.com/infercast/infercast/pkg/constants"
)

var gpusFlags struct {
	memoryGB   float64
	maxResults int
}

var gpusCmd = &cobra.Command{
	Use:   "gpus",
	Short: "List catalog GPUs or recommend cards for a memory footprint",
	Example: `  infercast gpus
  infercast gpus --memory 16.5
  infercast gpus --memory 40 --max-results 5 --json`,
	RunE: runGPUs,
}

func init() {
	rootCmd.AddCommand(gpusCmd)

	gpusCmd.Flags().Float64Var(&gpusFlags.memoryGB, "memory", 0, "required memory in GB; recommends fitting cards instead of listing")
	gpusCmd.Flags().IntVar(&gpusFlags.maxResults, "max-results", constants.DefaultMaxRecommendations, "maximum recommendations with --memory")
}

func runGPUs(_ *cobra.Command, _ []string) error {
	client, err := infercast.New()
	if err != nil {
		return err
	}

	if gpusFlags.memoryGB > 0 {
		return printRecommendations(client)
	}
	return printGPUList(client)
}

func printGPUList(client *infercast.Client) error {
	gpus := client.Catalog().GPUs()
	if jsonOutput {
		return renderJSON(os.Stdout, gpus)
	}

	rows := make([][]string, 0, len(gpus))
	for _, gpu := range gpus {
		rows = append(rows, []string{
			gpu.ID.String(),
			gpu.Name,
			fmt.Sprintf("%.0f GB", gpu.MemoryGB),
			fmt.Sprintf("%.1f", gpu.TFLOPS),
			fmt.Sprintf("%.0f GB/s", gpu.BandwidthGBps),
		})
	}
	return renderTable(os.Stdout, []string{"ID", "Name", "Memory", "TFLOPS", "Bandwidth"}, rows)
}

func printRecommendations(client *infercast.Client) error {
	recs := client.RecommendGPUs(gpusFlags.memoryGB, gpusFlags.maxResults)
	if jsonOutput {
		if recs == nil {
			recs = []catalogs.RecommendedGPU{}
		}
		return renderJSON(os.Stdout, recs)
	}

	if len(recs) == 0 {
		fmt.Printf("No catalog GPU has %.2f GB of memory.\n", gpusFlags.memoryGB)
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.ID.String(),
			rec.Name,
			fmt.Sprintf("%.0f GB", rec.MemoryGB),
			fmt.Sprintf("%.2f GB", rec.MemoryHeadroomGB),
		})
	}
	return renderTable(os.Stdout, []string{"ID", "Name", "Memory", "Headroom"}, rows)
}
