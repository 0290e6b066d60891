package assembly

import (
	"fmt"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/pgoelter/sequence-assembly/config"
	"github.com/spf13/cobra"
)

// AssembleCmd is the entry for the assemble command: read the fragment
// file, run the configured strategy and write the result
func AssembleCmd(cmd *cobra.Command, args []string) {
	start := time.Now()

	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("no input file path")
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = guessOutput(in)
	}

	conf := config.New()
	if !conf.ValidStrategy() {
		stderr.Fatalf("unrecognized strategy %q, expected %q or %q",
			conf.Strategy, config.StrategyGreedy, config.StrategyHamiltonian)
	}

	fragments, err := ReadFragments(in)
	if err != nil {
		stderr.Fatal(err)
	}

	res, runErr := Assemble(fragments, conf, tracer(conf))

	o := newOutput(res, conf.Strategy, len(fragments), time.Since(start).Seconds())
	if runErr != nil {
		o.Reason = runErr.Error()
		o.Assembled = false
	}
	if _, err := writeJSON(out, o); err != nil {
		stderr.Fatal(err)
	}

	switch {
	case runErr != nil:
		fmt.Println(runErr)
	case res.Assembled():
		fmt.Printf("Resulting sequence: %s\n", res.Seq)
	default:
		fmt.Println("Could not assemble all fragments! Those are left:")
		for _, v := range res.Remainder {
			fmt.Printf("Node %d: %s\n", v.ID, v.Seq)
		}
	}
}

// GraphCmd is the entry for the graph command: build the overlap graph
// for a fragment file and render it to DOT without assembling
func GraphCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("no input file path")
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = strings.TrimSuffix(in, path.Ext(in)) + ".gv"
	}

	fragments, err := ReadFragments(in)
	if err != nil {
		stderr.Fatal(err)
	}

	if orient, _ := cmd.Flags().GetBool("orient"); orient {
		fragments = Orient(fragments)
	}

	g := NewOverlapGraph(fragments)
	if err := WriteDOT(g.Snapshot(), "overlap_graph", out); err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("Wrote %d vertices and %d edges to %s\n", g.VertexCount(), g.EdgeCount(), out)
}

// Assemble runs the full pipeline against a validated fragment list:
// optional orientation pre-pass, graph construction, then the configured
// strategy. A nil error with a Remainder is a partial greedy assembly;
// ErrNoAssembly means the Hamiltonian search found no complete path.
func Assemble(fragments []string, conf config.Config, trace func(Snapshot)) (Result, error) {
	if conf.Orient {
		fragments = Orient(fragments)
	}

	g := NewOverlapGraph(fragments)

	opt := Options{
		Random: conf.Random,
		Budget: conf.HamiltonianBudget,
		Trace:  trace,
	}
	if conf.Random {
		opt.Rand = rand.New(rand.NewSource(conf.Seed))
	}

	if conf.Strategy == config.StrategyHamiltonian {
		return g.Hamiltonian(opt)
	}
	return g.Greedy(opt), nil
}

// tracer returns a per-merge snapshot callback writing numbered DOT
// files, or nil when tracing is off
func tracer(conf config.Config) func(Snapshot) {
	if !conf.Trace {
		return nil
	}

	step := 0
	return func(s Snapshot) {
		step++
		name := fmt.Sprintf("graph_%d", step)
		if err := WriteDOT(s, name, path.Join(conf.TraceDir, name+".gv")); err != nil {
			stderr.Fatal(err)
		}
	}
}

// guessOutput names the result file after the input file
func guessOutput(in string) string {
	return strings.TrimSuffix(in, path.Ext(in)) + ".json"
}
