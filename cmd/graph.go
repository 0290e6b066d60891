package cmd

import (
	"github.com/pgoelter/sequence-assembly/internal/assembly"
	"github.com/spf13/cobra"
)

// graphCmd renders the overlap graph without assembling, for inspection
var graphCmd = &cobra.Command{
	Use:                        "graph",
	Short:                      "Render the overlap graph of a fragment file to DOT",
	Run:                        assembly.GraphCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Build the overlap graph for a file of DNA fragments and write it out in
Graphviz DOT format, without merging anything. Useful for eyeballing the
overlaps before an assembly, e.g.:

  sequence-assembly graph -i reads.dat && dot -Tpdf reads.gv -o reads.pdf`,
}

// set flags
func init() {
	RootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("in", "i", "", "Input file with one DNA fragment per line")
	graphCmd.Flags().StringP("out", "o", "", "Output file name for the rendered graph <DOT>")
	graphCmd.Flags().Bool("orient", false, "Resolve double-strand orientation before building the overlap graph")
}
