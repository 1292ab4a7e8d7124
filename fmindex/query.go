package fmindex

// Rank returns the number of occurrences of c in BWT()[0:k). It is
// reconstructed from the (possibly sampled) checkpointed rank table:
// starting from the nearest retained checkpoint at or before k, it
// linearly scans forward to k, so the work done is bounded by
// CountGap(). c need not be in the index's alphabet; Rank returns 0 for
// an unknown symbol.
func (idx *Index) Rank(c byte, k int) int {
	r, ok := idx.rankOf[c]
	if !ok {
		return 0
	}

	if idx.cGap == 0 {
		return idx.countTable[r][k]
	}

	base := (k / idx.cGap) * idx.cGap
	n := idx.countTable[r][base/idx.cGap]
	for loc := base; loc < k; loc++ {
		if idx.bwt[loc] == c {
			n++
		}
	}
	return n
}

// LF is the last-to-first mapping: F[L[i]] + rank(L[i], i).
func (idx *Index) LF(i int) int {
	c := idx.bwt[i]
	return idx.firstOcc[c] + idx.Rank(c, i)
}

// Walk recovers the original-text position SA[i] from the sampled
// suffix array by repeatedly applying LF until a retained entry is
// reached. Because LF is a permutation and every gap-th suffix-array
// value was retained, this terminates within SuffixGap() steps (or
// immediately, if dense); it returns an InternalError if it somehow
// fails to terminate within Len() steps, which would indicate a
// corrupted index.
func (idx *Index) Walk(i int) (int, error) {
	steps := 0
	for !idx.saSampled[i] {
		if steps > idx.Len() {
			return 0, &InternalError{Reason: "last-to-first walk did not reach a sampled suffix array entry"}
		}
		i = idx.LF(i)
		steps++
	}
	return idx.saValue[i] + steps, nil
}

// Count returns the number of occurrences of pattern in the indexed
// text. A pattern containing a symbol outside the index's alphabet
// never matches and Count returns 0 for it, rather than an error.
func (idx *Index) Count(pattern []byte) int {
	top, bottom, ok := idx.backwardSearch(pattern)
	if !ok {
		return 0
	}
	return bottom - top + 1
}

// Locate returns every starting position of pattern in the indexed
// text, in implementation-defined order. A pattern containing a symbol
// outside the index's alphabet never matches and Locate returns nil for
// it, rather than an error. It returns a non-nil error only if the
// index is corrupted (see Walk).
func (idx *Index) Locate(pattern []byte) ([]int, error) {
	top, bottom, ok := idx.backwardSearch(pattern)
	if !ok {
		return nil, nil
	}

	positions := make([]int, 0, bottom-top+1)
	for i := top; i <= bottom; i++ {
		pos, err := idx.Walk(i)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// backwardSearch runs the state machine described in the design:
// SEARCHING narrows [top, bottom] one pattern symbol at a time, from
// the right; it transitions to DONE_EMPTY (ok == false) the moment the
// window collapses or a symbol outside the alphabet is read, and to
// DONE_RANGE (ok == true) once every symbol has been consumed.
func (idx *Index) backwardSearch(pattern []byte) (top, bottom int, ok bool) {
	if idx.Len() == 0 {
		return 0, 0, false
	}

	top, bottom = 0, idx.Len()-1

	for i := len(pattern) - 1; i >= 0; i-- {
		symbol := pattern[i]
		if !idx.contains(symbol) {
			return 0, 0, false
		}

		rankTop := idx.Rank(symbol, top)
		rankBottom := idx.Rank(symbol, bottom+1)
		if rankBottom-rankTop == 0 {
			return 0, 0, false
		}

		top = idx.firstOcc[symbol] + rankTop
		bottom = idx.firstOcc[symbol] + rankBottom - 1
	}

	return top, bottom, true
}
