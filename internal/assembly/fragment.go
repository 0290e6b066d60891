package assembly

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ReadFragments parses a fragment file: one read per line, over the
// alphabet {A,C,G,T}. Lines are trimmed of surrounding whitespace and
// blank lines are skipped. The whole file is validated before any graph
// is built; the first bad character or an empty fragment list fails the
// read.
func ReadFragments(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fragment file: %v", err)
	}
	defer f.Close()

	var frags []string
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		frag := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if frag == "" {
			continue
		}

		if err := validFragment(frag); err != nil {
			return nil, fmt.Errorf("%s line %d: %v", path, line, err)
		}
		frags = append(frags, frag)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	if len(frags) == 0 {
		return nil, fmt.Errorf("no fragments in %s", path)
	}

	return frags, nil
}

// validFragment checks a single read against the {A,C,G,T} alphabet
func validFragment(frag string) error {
	for i := 0; i < len(frag); i++ {
		switch frag[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("unrecognized base %q at index %d", frag[i], i)
		}
	}
	return nil
}

// ReverseComplement returns the sequence of the opposite strand: the
// input reversed with every base swapped for its Watson-Crick complement
func ReverseComplement(seq string) string {
	seq = strings.ToUpper(seq)

	revCompMap := map[rune]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	var revCompBuffer bytes.Buffer
	for _, c := range seq {
		revCompBuffer.WriteByte(revCompMap[c])
	}

	revCompBytes := revCompBuffer.Bytes()
	for i := 0; i < len(revCompBytes)/2; i++ {
		j := len(revCompBytes) - i - 1
		revCompBytes[i], revCompBytes[j] = revCompBytes[j], revCompBytes[i]
	}

	return string(revCompBytes)
}
