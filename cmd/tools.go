package cmd

import (
	"github.com/nathanhack/lhc/cmd/internal/tools/bpsk"
	"github.com/nathanhack/lhc/cmd/internal/tools/bsc"
	"github.com/nathanhack/lhc/cmd/internal/tools/chart"
	"github.com/nathanhack/lhc/cmd/internal/tools/coding"
	"github.com/nathanhack/lhc/cmd/internal/tools/csv"
	"github.com/nathanhack/lhc/cmd/internal/tools/table"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for linear Hamming codes",
	Long:    `Tools for linear Hamming codes`,
}

// toolsEncodeCmd represents the encode command
var toolsEncodeCmd = &cobra.Command{
	Use:     "encode HAMMING_JSON WORD [WORD] ...",
	Aliases: []string{"e"},
	Short:   "Encodes source words",
	Long:    `Encodes each source word (a string of 0 and 1) and prints the channel codeword.`,
	Args:    cobra.MinimumNArgs(2),
	Run:     coding.EncodeRun,
}

// toolsDecodeCmd represents the decode command
var toolsDecodeCmd = &cobra.Command{
	Use:     "decode HAMMING_JSON CODEWORD [CODEWORD] ...",
	Aliases: []string{"d"},
	Short:   "Decodes channel codewords",
	Long:    `Decodes each channel codeword (a string of 0 and 1) and prints whether it was valid, corrected or uncorrectable.`,
	Args:    cobra.MinimumNArgs(2),
	Run:     coding.DecodeRun,
}

// toolsTableCmd represents the table command
var toolsTableCmd = &cobra.Command{
	Use:   "table HAMMING_JSON OUTPUT_TXT",
	Short: "Writes every codeword",
	Long:  `Writes the codeword of every source word, one per line in source word order.`,
	Args:  cobra.ExactArgs(2),
	Run:   table.TableRun,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for linear Hamming codes`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc HAMMING_JSON RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for linear Hamming codes`,
	Args:  cobra.ExactArgs(2),
	Run:   bsc.BscRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk HAMMING_JSON RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over additive white gaussian noise channel simulator with hard decisions for linear Hamming codes`,
	Args:  cobra.ExactArgs(2),
	Run:   bpsk.BpskRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an html bar chart",
	Long:  `Export to an html bar chart`,
	Args:  cobra.MinimumNArgs(1),
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsEncodeCmd)
	toolsCmd.AddCommand(toolsDecodeCmd)
	toolsCmd.AddCommand(toolsTableCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsEncodeCmd.Flags().BoolVarP(&coding.Integer, "integer", "i", false, "read words as non-negative integers zero padded to the word length")
	toolsDecodeCmd.Flags().BoolVarP(&coding.Integer, "integer", "i", false, "read words as non-negative integers zero padded to the word length")

	toolsTableCmd.Flags().UintVarP(&table.Threads, "threads", "t", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.05, 0.10, 0.15, 0.20}, "probability of crossover errors to test [0, 0.5]")
	toolsBscCmd.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "s", []float64{0.5, 1, 2, 4, 8, 16}, "E_b/N_0 ratios to test (>0)")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVarP(&csv.Metric, "metric", "m", "uncorrectable", "the metric to export: valid, corrected, uncorrectable, undetected or message")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.Metric, "metric", "m", "uncorrectable", "the metric to chart: valid, corrected, uncorrectable, undetected or message")
}
