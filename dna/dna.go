// Package dna adapts fmindex's pattern matching to nucleotide reads:
// reverse-complement lookups and batch matching over FASTA-formatted
// pattern files.
package dna

import (
	"github.com/danieldk/fmindex/fmindex"
)

var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// ReverseComplement returns the reverse complement of read. It returns
// an error if read contains a symbol outside {A, C, G, T}; the
// sentinel is never a valid input.
func ReverseComplement(read []byte) ([]byte, error) {
	rc := make([]byte, len(read))
	for i, c := range read {
		comp, ok := complement[c]
		if !ok {
			return nil, &fmindex.InputError{Reason: "read contains a non-ACGT symbol: " + string(c)}
		}
		rc[len(read)-1-i] = comp
	}
	return rc, nil
}

// Record is a single FASTA entry: a header line (including the leading
// '>') and its sequence.
type Record struct {
	Name     string
	Sequence []byte
}

// Match is the outcome of matching one Record against an Index: the
// positions the read (or, failing that, its reverse complement)
// occurs at, and whether the reverse complement was the one that hit.
type Match struct {
	Name              string
	Positions         []int
	ReverseComplement bool
}

// isACGT reports whether seq consists entirely of the four-letter DNA
// alphabet; reads containing ambiguity codes such as N are skipped by
// MatchFASTA before any index lookup is attempted, mirroring the
// original read-matching script.
func isACGT(seq []byte) bool {
	for _, c := range seq {
		if _, ok := complement[c]; !ok {
			return false
		}
	}
	return true
}

// MatchFASTA locates every record of records in idx, trying the
// forward read first and falling back to its reverse complement if
// the forward read doesn't occur. Records containing a symbol outside
// {A, C, G, T} are skipped entirely, matching the original script's
// treatment of ambiguity codes. Output preserves the order of records.
func MatchFASTA(idx *fmindex.Index, records []Record) ([]Match, error) {
	matches := make([]Match, 0, len(records))

	for _, rec := range records {
		if !isACGT(rec.Sequence) {
			continue
		}

		m, err := matchOne(idx, rec)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		matches = append(matches, *m)
	}

	return matches, nil
}

func matchOne(idx *fmindex.Index, rec Record) (*Match, error) {
	positions, err := idx.Locate(rec.Sequence)
	if err != nil {
		return nil, err
	}
	if len(positions) > 0 {
		return &Match{Name: rec.Name, Positions: positions}, nil
	}

	rc, err := ReverseComplement(rec.Sequence)
	if err != nil {
		return nil, err
	}

	positions, err = idx.Locate(rc)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, nil
	}

	return &Match{Name: rec.Name, Positions: positions, ReverseComplement: true}, nil
}
