package fmindex

import (
	"github.com/danieldk/fmindex/bwt"
	"github.com/danieldk/fmindex/suffixtree"
	"github.com/danieldk/fmindex/text"
)

// Build constructs an Index for t: a suffix tree is threaded, the BWT
// and full suffix array are extracted from it by a single DFS, and the
// rank/first-occurrence tables and the sampled representations are
// computed from that. suffixGap and countGap are sample gaps (0 means
// dense, i.e. retain every entry); negative gaps are rejected.
func Build(t text.Text, suffixGap, countGap int) (*Index, error) {
	if suffixGap < 0 {
		return nil, &InputError{Reason: "suffix array sample gap must not be negative"}
	}
	if countGap < 0 {
		return nil, &InputError{Reason: "rank checkpoint sample gap must not be negative"}
	}

	tree := suffixtree.Build(t)
	extracted := bwt.Extract(tree)

	alphabet := t.Alphabet()
	dense, firstOcc := buildRankTables(extracted.L, alphabet)
	countTable := sampleRankTable(dense, alphabet, countGap)

	rankOf := make(map[byte]int, len(alphabet))
	for r, c := range alphabet {
		rankOf[c] = r
	}

	saSampled, saValue := sampleSuffixArray(extracted.SA, suffixGap)

	return &Index{
		bwt:        extracted.L,
		alphabet:   alphabet,
		rankOf:     rankOf,
		firstOcc:   firstOcc,
		countTable: countTable,
		cGap:       countGap,
		saSampled:  saSampled,
		saValue:    saValue,
		saGap:      suffixGap,
	}, nil
}
