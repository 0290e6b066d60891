// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// strategies recognized by the assemble command
const (
	// StrategyGreedy merges the maximum-weight edge until no edges remain
	StrategyGreedy = "greedy"

	// StrategyHamiltonian searches for a maximum-weight Hamiltonian path
	// and merges the vertices along it
	StrategyHamiltonian = "hamiltonian"
)

// Config is the root-level settings struct and is a mix of settings
// available in defaults set here and those from the command line
type Config struct {
	// which assembly strategy to run: "greedy" or "hamiltonian"
	Strategy string `mapstructure:"strategy"`

	// whether to break max-weight ties randomly rather than deterministically
	Random bool `mapstructure:"random"`

	// seed for the random tie-break source. 0 means seed from the clock
	Seed int64 `mapstructure:"seed"`

	// whether to run the double-strand orientation pre-pass before
	// building the overlap graph
	Orient bool `mapstructure:"orient"`

	// whether to write a DOT snapshot of the graph after every merge
	Trace bool `mapstructure:"trace"`

	// the directory trace snapshots are written to
	TraceDir string `mapstructure:"trace-dir"`

	// upper bound on vertex visits during the Hamiltonian path search,
	// after which the search fails closed
	HamiltonianBudget int `mapstructure:"ham-budget"`
}

// ValidStrategy reports whether the configured strategy is one the
// assembler recognizes
func (c Config) ValidStrategy() bool {
	return c.Strategy == StrategyGreedy || c.Strategy == StrategyHamiltonian
}

// New returns a new Config struct populated by Viper settings,
// either defaults or those set from the command line
func New() Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	if c.Random && c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	return c
}

// setDefaults fills in settings the user didn't pass via flags
func setDefaults() {
	viper.SetDefault("strategy", StrategyGreedy)
	viper.SetDefault("random", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("orient", false)
	viper.SetDefault("trace", false)
	viper.SetDefault("trace-dir", ".")
	viper.SetDefault("ham-budget", 5_000_000)
}
