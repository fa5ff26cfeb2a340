package cmd

import (
	"github.com/nathanhack/lhc/cmd/internal/create/hamming"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new code",
	Long:    `create provides the ability to make a new linear Hamming code and save it so it can be used later by the tools.`,
}

// createHammingCmd represents the hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_HAMMING_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new linear Hamming code",
	Long: `Creates the minimal linear Hamming code for the given source word length.
With --extended an overall parity bit is appended making it a SECDED code.`,
	Args: cobra.ExactArgs(1),
	Run:  hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.Length, "length", "l", 5, "the source word length in bits (>=1)")
	createHammingCmd.Flags().UintVarP(&hamming.Correct, "correct", "e", 1, "the number of bit errors to correct")
	createHammingCmd.Flags().BoolVarP(&hamming.Extended, "extended", "x", false, "append an overall parity bit (SECDED)")
	createHammingCmd.Flags().BoolVarP(&hamming.Print, "print", "p", false, "print the H and G matrices")
}
