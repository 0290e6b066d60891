package assembly

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Orient decides, for each fragment, whether to keep it as read or to
// flip it to its reverse complement, so every read ends up on the same
// strand before the overlap graph is built.
//
// Every fragment is tried as a seed: an oriented set grows from the seed
// by scoring each remaining fragment both as-is and complemented against
// everything oriented so far, keeping whichever direction overlaps more.
// The seed whose finished set accumulated the highest total score wins.
// Fragments keep their input positions; only their strand may change.
//
// Seed trials are independent and read-only over the input, so they run
// concurrently and are reduced to the single best by total score.
func Orient(fragments []string) []string {
	if len(fragments) < 2 {
		return fragments
	}

	oriented := make([][]string, len(fragments))
	scores := make([]int, len(fragments))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range fragments {
		i := i
		eg.Go(func() error {
			oriented[i], scores[i] = orientFrom(fragments, i)
			return nil
		})
	}
	_ = eg.Wait() // trials can't fail, the group is only for fan-out

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return oriented[best]
}

// orientFrom grows an oriented set from the fragment at seed, returning
// the strand assignment for every input position and the total score it
// accumulated
func orientFrom(fragments []string, seed int) ([]string, int) {
	out := make([]string, len(fragments))
	out[seed] = fragments[seed]

	// fragments oriented so far, seed first then input order
	set := []string{fragments[seed]}

	total := 0
	for i, frag := range fragments {
		if i == seed {
			continue
		}

		comp := ReverseComplement(frag)
		same, opp := 0, 0
		for _, member := range set {
			same += pairScore(member, frag)
			opp += pairScore(member, comp)
		}

		// as-read wins ties, like the original strand assignment
		if same >= opp {
			out[i] = frag
			total += same
		} else {
			out[i] = comp
			total += opp
		}
		set = append(set, out[i])
	}

	return out, total
}

// pairScore is the best overlap weight between two fragments in either
// direction
func pairScore(a, b string) int {
	w := overlap(a, b).Weight
	if rev := overlap(b, a).Weight; rev > w {
		w = rev
	}
	return w
}
