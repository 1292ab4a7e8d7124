package fmindex

// buildRankTables computes the dense per-symbol prefix-count table and
// the first-occurrence table from L, per the data model: for every k in
// [0, len(L)], dense[c][k] is the number of occurrences of c in
// L[0:k); firstOcc[c] is the sum of the frequencies of every symbol
// strictly less than c (with alphabet sorted, sentinel least).
func buildRankTables(bwtL []byte, alphabet []byte) (dense map[byte][]int, firstOcc map[byte]int) {
	dense = make(map[byte][]int, len(alphabet))
	for _, c := range alphabet {
		dense[c] = make([]int, len(bwtL)+1)
	}

	for k := 1; k <= len(bwtL); k++ {
		symbol := bwtL[k-1]
		for _, c := range alphabet {
			if c == symbol {
				dense[c][k] = dense[c][k-1] + 1
			} else {
				dense[c][k] = dense[c][k-1]
			}
		}
	}

	firstOcc = make(map[byte]int, len(alphabet))
	index := 0
	for i, c := range alphabet {
		if i == 0 {
			firstOcc[c] = 0
			continue
		}
		prev := alphabet[i-1]
		index += dense[prev][len(bwtL)]
		firstOcc[c] = index
	}

	return dense, firstOcc
}

// sampleRankTable retains dense[c][k] only for k divisible by gap (or
// every k when gap is 0, meaning dense). It returns a table indexed by
// the symbol's position in alphabet (not by the symbol byte itself),
// matching Index.countTable's dense, branch-free layout.
func sampleRankTable(dense map[byte][]int, alphabet []byte, gap int) [][]int {
	table := make([][]int, len(alphabet))
	n := len(dense[alphabet[0]]) - 1 // len(L)

	for r, c := range alphabet {
		col := dense[c]
		if gap == 0 {
			table[r] = append([]int(nil), col...)
			continue
		}

		retained := make([]int, 0, n/gap+1)
		for k := 0; k <= n; k += gap {
			retained = append(retained, col[k])
		}
		table[r] = retained
	}

	return table
}
