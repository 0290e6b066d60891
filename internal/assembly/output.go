package assembly

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output is a struct containing assembly results written for the user
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Strategy that produced the result: "greedy" or "hamiltonian"
	Strategy string `json:"strategy"`

	// FragmentCount is the number of input reads after validation
	FragmentCount int `json:"fragmentCount"`

	// Assembled is whether every read merged into a single sequence
	Assembled bool `json:"assembled"`

	// Seq is the assembled sequence, when assembly completed
	Seq string `json:"seq,omitempty"`

	// Remainder holds the unmergeable vertices of a partial assembly
	Remainder []VertexSnapshot `json:"remainder,omitempty"`

	// Reason is set when the Hamiltonian search found no complete
	// path, distinct from a partial assembly
	Reason string `json:"reason,omitempty"`
}

// newOutput fills an Output from a run's result and timing
func newOutput(res Result, strategy string, fragmentCount int, seconds float64) Output {
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	return Output{
		Time:          stamp,
		Execution:     seconds,
		Strategy:      strategy,
		FragmentCount: fragmentCount,
		Assembled:     res.Assembled(),
		Seq:           res.Seq,
		Remainder:     res.Remainder,
	}
}

// writeJSON marshals an Output and writes it to the filename requested
func writeJSON(filename string, out Output) ([]byte, error) {
	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write result to %s: %v", filename, err)
	}

	return output, nil
}
