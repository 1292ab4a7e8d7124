package dna

import (
	"golang.org/x/sync/errgroup"

	"github.com/danieldk/fmindex/fmindex"
)

// MatchFASTAConcurrent is MatchFASTA, but fans the forward/reverse-
// complement lookups for each record out across an errgroup, since
// idx is safe for unlimited concurrent readers once built. Results are
// restored to input order before being returned, so callers see the
// same ordering as MatchFASTA regardless of goroutine scheduling.
func MatchFASTAConcurrent(idx *fmindex.Index, records []Record) ([]Match, error) {
	results := make([]*Match, len(records))

	var g errgroup.Group
	for i, rec := range records {
		i, rec := i, rec
		if !isACGT(rec.Sequence) {
			continue
		}

		g.Go(func() error {
			m, err := matchOne(idx, rec)
			if err != nil {
				return err
			}
			results[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(records))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}
