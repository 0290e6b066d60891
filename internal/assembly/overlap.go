package assembly

// Overlap is the best suffix-of-a/prefix-of-b alignment between two
// sequences. Weight is the length of the matched affix; PrefixStart and
// PrefixEnd are the slice bounds of the match within b.
type Overlap struct {
	Weight      int
	Match       string
	PrefixStart int
	PrefixEnd   int
}

// overlap finds the longest suffix of a that equals a prefix of b.
//
// Candidate suffixes are scanned from longest to shortest so the first
// hit is the longest; ties are impossible by construction. A zero Weight
// means the two sequences share no affix at all (callers encode that by
// omitting the edge, never by storing a zero-weight one). Empty inputs
// always score zero.
func overlap(a, b string) Overlap {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}

	for i := len(a) - max; i < len(a); i++ {
		n := len(a) - i
		if a[i:] == b[:n] {
			return Overlap{
				Weight:      n,
				Match:       b[:n],
				PrefixStart: 0,
				PrefixEnd:   n,
			}
		}
	}

	return Overlap{}
}
