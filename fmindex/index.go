// Package fmindex implements the sampled FM-index: the Burrows-Wheeler
// transform of a sentinel-terminated text, a sampled suffix array,
// checkpointed per-symbol rank tables, and the first-occurrence table,
// together with the backward-search query engine (Count, Locate) and
// the last-to-first walk that recovers suffix-array positions from
// sampled entries.
//
// An Index is produced once, by Build or ReadFrom, and is immutable and
// safe for any number of concurrent readers afterwards.
package fmindex

// Index is the queryable FM-index: the BWT string, the sampled suffix
// array, the checkpointed rank table, and the first-occurrence table.
// All fields are fixed at construction time; Index has no mutating
// methods.
type Index struct {
	bwt      []byte
	alphabet []byte      // sorted, sentinel first
	rankOf   map[byte]int // symbol -> its ordinal in alphabet
	firstOcc map[byte]int // F[c]

	// countTable[r] holds the retained C[c][k] values for the symbol
	// with alphabet rank r, at the k positions described by cGap (see
	// Rank). countTable[r][0] == 0 for every r, per the invariant in
	// the data model.
	countTable [][]int
	cGap       int // 0 means dense (every k retained)

	// saSampled[i] reports whether SA[i] was retained; saValue[i] is
	// only meaningful where saSampled[i] is true.
	saSampled []bool
	saValue   []int
	saGap     int // 0 means dense (every SA[i] retained)
}

// Len returns the length of the indexed text, including its sentinel.
func (idx *Index) Len() int {
	return len(idx.bwt)
}

// Alphabet returns the sorted alphabet of the indexed text, sentinel
// first.
func (idx *Index) Alphabet() []byte {
	return idx.alphabet
}

// BWT returns the Burrows-Wheeler transform string L.
func (idx *Index) BWT() []byte {
	return idx.bwt
}

// SuffixGap returns the sample gap used for the suffix array (0 means
// dense).
func (idx *Index) SuffixGap() int {
	return idx.saGap
}

// CountGap returns the sample gap used for the rank checkpoints (0
// means dense).
func (idx *Index) CountGap() int {
	return idx.cGap
}

// contains reports whether c is in the index's alphabet.
func (idx *Index) contains(c byte) bool {
	_, ok := idx.rankOf[c]
	return ok
}
