package assembly

import (
	"reflect"
	"testing"
)

func TestOrient(t *testing.T) {
	t.Run("flips a read from the opposite strand", func(t *testing.T) {
		// TACG is CGTA read off the other strand. Flipped back, it
		// overlaps ATCG on "CG"; as read it overlaps nothing.
		got := Orient([]string{"ATCG", "TACG"})

		want := []string{"ATCG", "CGTA"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Orient() = %v, want %v", got, want)
		}
	})

	t.Run("keeps consistently oriented reads unchanged", func(t *testing.T) {
		frags := []string{"ATCG", "CGTA", "TAGG"}

		got := Orient(frags)

		if !reflect.DeepEqual(got, frags) {
			t.Errorf("Orient() = %v, want the unchanged inputs %v", got, frags)
		}
	})

	t.Run("single fragment passes through", func(t *testing.T) {
		got := Orient([]string{"GATTACA"})

		if !reflect.DeepEqual(got, []string{"GATTACA"}) {
			t.Errorf("Orient() = %v, want the input back", got)
		}
	})

	t.Run("every output is the input or its complement", func(t *testing.T) {
		frags := []string{"ATCGCC", "GGCATT", "TTACGA", "CGATAG"}

		got := Orient(frags)

		if len(got) != len(frags) {
			t.Fatalf("Orient() returned %d fragments, want %d", len(got), len(frags))
		}
		for i, frag := range frags {
			if got[i] != frag && got[i] != ReverseComplement(frag) {
				t.Errorf("Orient()[%d] = %q, want %q or %q", i, got[i], frag, ReverseComplement(frag))
			}
		}
	})
}

func Test_pairScore(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			"takes the better direction",
			"ATCG",
			"CGTA",
			2,
		},
		{
			"no overlap either way",
			"AAAA",
			"CCCC",
			0,
		},
		{
			"symmetric",
			"CGTA",
			"ATCG",
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pairScore(tt.a, tt.b); got != tt.want {
				t.Errorf("pairScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
