package cmd

import (
	"github.com/pgoelter/sequence-assembly/internal/assembly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var strategyHelp = `assembly strategy. "greedy" repeatedly merges the pair of reads with
the largest overlap. "hamiltonian" searches for a maximum-weight path visiting
every read once and merges along it; it is exact but exponential.`

// assembleCmd is for merging a fragment file down to a single sequence
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble DNA fragments into a single sequence",
	Run:                        assembly.AssembleCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble a file of DNA fragments, one read per line, into a single sequence.

An overlap graph is built from the reads: every read becomes a vertex and
every suffix of one read matching a prefix of another becomes a weighted,
directed edge. Vertices are then merged along edges until one remains. If the
overlaps run out first, the reads that couldn't be merged are reported instead.`,
}

// set flags
func init() {
	RootCmd.AddCommand(assembleCmd)

	// Flags for specifying the paths to the input file and output file
	assembleCmd.Flags().StringP("in", "i", "", "Input file with one DNA fragment per line")
	assembleCmd.Flags().StringP("out", "o", "", "Output file name for the assembly result <JSON>")
	assembleCmd.Flags().StringP("strategy", "s", "greedy", strategyHelp)
	assembleCmd.Flags().BoolP("random", "r", false, "Break ties between max-weight edges randomly instead of deterministically")
	assembleCmd.Flags().Int64("seed", 0, "Seed for random tie-breaks (0 seeds from the clock)")
	assembleCmd.Flags().Bool("orient", false, "Resolve double-strand orientation before building the overlap graph")
	assembleCmd.Flags().BoolP("trace", "t", false, "Write a DOT snapshot of the graph after every merge")
	assembleCmd.Flags().String("trace-dir", ".", "Directory trace snapshots are written to")
	assembleCmd.Flags().Int("ham-budget", 5_000_000, "Max vertex visits in the hamiltonian search before giving up")

	// Bind the parameters to viper
	viper.BindPFlag("strategy", assembleCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("random", assembleCmd.Flags().Lookup("random"))
	viper.BindPFlag("seed", assembleCmd.Flags().Lookup("seed"))
	viper.BindPFlag("orient", assembleCmd.Flags().Lookup("orient"))
	viper.BindPFlag("trace", assembleCmd.Flags().Lookup("trace"))
	viper.BindPFlag("trace-dir", assembleCmd.Flags().Lookup("trace-dir"))
	viper.BindPFlag("ham-budget", assembleCmd.Flags().Lookup("ham-budget"))
}
