package fmindex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes idx to w in the line-oriented text format described in
// the design: the BWT string, the sampled suffix array, the alphabet,
// one rank row per alphabet symbol, the first-occurrence row, and the
// two sample gaps (literal "None" when dense).
func (idx *Index) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, string(idx.bwt))

	pairs := make([]string, 0, len(idx.saValue))
	for i, sampled := range idx.saSampled {
		if sampled {
			pairs = append(pairs, fmt.Sprintf("%d;%d", i, idx.saValue[i]))
		}
	}
	fmt.Fprintln(bw, strings.Join(pairs, ","))

	alphabetStrs := make([]string, len(idx.alphabet))
	for i, c := range idx.alphabet {
		alphabetStrs[i] = string(c)
	}
	fmt.Fprintln(bw, strings.Join(alphabetStrs, ","))

	for _, c := range idx.alphabet {
		row := idx.countTable[idx.rankOf[c]]
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(bw, strings.Join(strs, ","))
	}

	foStrs := make([]string, len(idx.alphabet))
	for i, c := range idx.alphabet {
		foStrs[i] = strconv.Itoa(idx.firstOcc[c])
	}
	fmt.Fprintln(bw, strings.Join(foStrs, ","))

	fmt.Fprintln(bw, gapToString(idx.saGap))
	fmt.Fprintln(bw, gapToString(idx.cGap))

	return bw.Flush()
}

// ReadFrom parses the line-oriented text format written by WriteTo. It
// returns a FormatError describing the offending line on any
// malformation: wrong line count, a non-integer field, or an
// alphabet/rank row whose length doesn't match the rest of the file.
func ReadFrom(r io.Reader) (*Index, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)

	lines := make([]string, 0, 8)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &InputError{Reason: "cannot read index: " + err.Error()}
	}

	if len(lines) < 6 {
		return nil, &FormatError{Line: len(lines), Reason: "index file has too few lines"}
	}

	bwtL := []byte(lines[0])
	if len(bwtL) == 0 {
		return nil, &FormatError{Line: 1, Reason: "BWT string is empty"}
	}

	alphabetLine := lines[2]
	alphabet, err := parseAlphabet(alphabetLine)
	if err != nil {
		return nil, &FormatError{Line: 3, Reason: err.Error()}
	}

	wantLines := 3 + len(alphabet) + 1 + 2
	if len(lines) != wantLines {
		return nil, &FormatError{
			Line:   len(lines),
			Reason: fmt.Sprintf("expected %d lines for an alphabet of size %d, got %d", wantLines, len(alphabet), len(lines)),
		}
	}

	saGap, err := parseGap(lines[wantLines-2])
	if err != nil {
		return nil, &FormatError{Line: wantLines - 1, Reason: err.Error()}
	}
	cGap, err := parseGap(lines[wantLines-1])
	if err != nil {
		return nil, &FormatError{Line: wantLines, Reason: err.Error()}
	}

	saSampled, saValue, err := parseSuffixArray(lines[1], len(bwtL))
	if err != nil {
		return nil, &FormatError{Line: 2, Reason: err.Error()}
	}

	wantRowLen := expectedRankRowLen(len(bwtL), cGap)

	countTable := make([][]int, len(alphabet))
	for i, c := range alphabet {
		lineNo := 4 + i
		row, err := parseIntCSV(lines[lineNo-1])
		if err != nil {
			return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("rank row for %q: %s", string(c), err.Error())}
		}
		if len(row) != wantRowLen {
			return nil, &FormatError{
				Line:   lineNo,
				Reason: fmt.Sprintf("rank row for %q has %d values, expected %d", string(c), len(row), wantRowLen),
			}
		}
		countTable[i] = row
	}

	foLineNo := 4 + len(alphabet)
	foValues, err := parseIntCSV(lines[foLineNo-1])
	if err != nil {
		return nil, &FormatError{Line: foLineNo, Reason: "first-occurrence row: " + err.Error()}
	}
	if len(foValues) != len(alphabet) {
		return nil, &FormatError{
			Line:   foLineNo,
			Reason: fmt.Sprintf("first-occurrence row has %d values, expected %d (one per alphabet symbol)", len(foValues), len(alphabet)),
		}
	}

	rankOf := make(map[byte]int, len(alphabet))
	firstOcc := make(map[byte]int, len(alphabet))
	for i, c := range alphabet {
		rankOf[c] = i
		firstOcc[c] = foValues[i]
	}

	return &Index{
		bwt:        bwtL,
		alphabet:   alphabet,
		rankOf:     rankOf,
		firstOcc:   firstOcc,
		countTable: countTable,
		cGap:       cGap,
		saSampled:  saSampled,
		saValue:    saValue,
		saGap:      saGap,
	}, nil
}

// expectedRankRowLen returns the number of entries a rank row must have
// for a BWT of length n sampled at gap (0 meaning dense): one entry per
// retained checkpoint k in [0, n], stepping by gap (or every k when
// dense). This matches sampleRankTable's construction exactly, so a
// row of any other length indicates a corrupted or hand-edited index.
func expectedRankRowLen(n, gap int) int {
	if gap == 0 {
		return n + 1
	}
	return n/gap + 1
}

func gapToString(gap int) string {
	if gap == 0 {
		return "None"
	}
	return strconv.Itoa(gap)
}

func parseGap(s string) (int, error) {
	if s == "None" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("sample gap %q is neither an integer nor \"None\"", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("sample gap %d must not be negative", n)
	}
	return n, nil
}

func parseAlphabet(s string) ([]byte, error) {
	parts := strings.Split(s, ",")
	alphabet := make([]byte, 0, len(parts))
	for _, p := range parts {
		if len(p) != 1 {
			return nil, fmt.Errorf("alphabet symbol %q is not a single byte", p)
		}
		alphabet = append(alphabet, p[0])
	}
	return alphabet, nil
}

func parseIntCSV(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q) is not an integer", i, p)
		}
		values[i] = n
	}
	return values, nil
}

func parseSuffixArray(s string, n int) (sampled []bool, value []int, err error) {
	sampled = make([]bool, n)
	value = make([]int, n)

	if s == "" {
		return sampled, value, nil
	}

	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(pair, ";", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("suffix array entry %q is not an \"i;value\" pair", pair)
		}

		i, err1 := strconv.Atoi(parts[0])
		v, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return nil, nil, fmt.Errorf("suffix array entry %q has a non-integer field", pair)
		}
		if i < 0 || i >= n {
			return nil, nil, fmt.Errorf("suffix array index %d is out of range [0, %d)", i, n)
		}

		sampled[i] = true
		value[i] = v
	}

	return sampled, value, nil
}
