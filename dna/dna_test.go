package dna_test

import (
	"sort"
	"testing"

	"github.com/danieldk/fmindex/dna"
	"github.com/danieldk/fmindex/fmindex"
	"github.com/danieldk/fmindex/text"
)

func TestReverseComplement(t *testing.T) {
	got, err := dna.ReverseComplement([]byte("GATTACA"))
	if err != nil {
		t.Fatalf("ReverseComplement failed: %v", err)
	}
	if want := "TGTAATC"; string(got) != want {
		t.Errorf("ReverseComplement(\"GATTACA\") = %q, want %q", got, want)
	}
}

func TestReverseComplementRejectsAmbiguityCodes(t *testing.T) {
	if _, err := dna.ReverseComplement([]byte("GATTNACA")); err == nil {
		t.Error("ReverseComplement with an N should fail, but didn't")
	}
}

func buildGenomeIndex(t *testing.T, genome string) *fmindex.Index {
	t.Helper()
	tx, err := text.New([]byte(genome + "$"))
	if err != nil {
		t.Fatalf("text.New failed: %v", err)
	}
	idx, err := fmindex.Build(tx, 0, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return idx
}

func TestMatchFASTAForwardAndReverseComplement(t *testing.T) {
	genome := "ACGTACGTTTTTGGGGCATCATCAT"
	idx := buildGenomeIndex(t, genome)

	records := []dna.Record{
		{Name: ">read-forward", Sequence: []byte("CATCAT")},
		{Name: ">read-revcomp", Sequence: []byte("ATGATG")}, // reverse complement of CATCAT
		{Name: ">read-ambiguous", Sequence: []byte("CATNAT")},
		{Name: ">read-absent", Sequence: []byte("TTTTTTTTTT")},
	}

	matches, err := dna.MatchFASTA(idx, records)
	if err != nil {
		t.Fatalf("MatchFASTA failed: %v", err)
	}

	byName := make(map[string]dna.Match)
	for _, m := range matches {
		byName[m.Name] = m
	}

	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2 (ambiguous and absent reads should be skipped): %+v", len(matches), matches)
	}

	fwd, ok := byName[">read-forward"]
	if !ok {
		t.Fatal("missing match for >read-forward")
	}
	if fwd.ReverseComplement {
		t.Error(">read-forward should match on the forward strand")
	}

	rc, ok := byName[">read-revcomp"]
	if !ok {
		t.Fatal("missing match for >read-revcomp")
	}
	if !rc.ReverseComplement {
		t.Error(">read-revcomp should only match via its reverse complement")
	}

	sort.Ints(fwd.Positions)
	sort.Ints(rc.Positions)
	if len(fwd.Positions) == 0 || len(rc.Positions) == 0 {
		t.Fatal("expected non-empty positions for both matching reads")
	}
}

func TestMatchFASTAConcurrentAgreesWithSequential(t *testing.T) {
	genome := "ACGTACGTTTTTGGGGCATCATCAT"
	idx := buildGenomeIndex(t, genome)

	records := []dna.Record{
		{Name: ">a", Sequence: []byte("CATCAT")},
		{Name: ">b", Sequence: []byte("ATGATG")},
		{Name: ">c", Sequence: []byte("GGGG")},
		{Name: ">d", Sequence: []byte("TTTTTTTTTT")},
	}

	seq, err := dna.MatchFASTA(idx, records)
	if err != nil {
		t.Fatalf("MatchFASTA failed: %v", err)
	}
	conc, err := dna.MatchFASTAConcurrent(idx, records)
	if err != nil {
		t.Fatalf("MatchFASTAConcurrent failed: %v", err)
	}

	byName := func(matches []dna.Match) map[string][]int {
		m := make(map[string][]int)
		for _, match := range matches {
			positions := append([]int(nil), match.Positions...)
			sort.Ints(positions)
			m[match.Name] = positions
		}
		return m
	}

	seqByName := byName(seq)
	concByName := byName(conc)

	if len(seqByName) != len(concByName) {
		t.Fatalf("sequential found %d records, concurrent found %d", len(seqByName), len(concByName))
	}
	for name, positions := range seqByName {
		other, ok := concByName[name]
		if !ok {
			t.Errorf("concurrent match missing record %s", name)
			continue
		}
		if len(positions) != len(other) {
			t.Errorf("record %s: sequential positions %v, concurrent %v", name, positions, other)
			continue
		}
		for i := range positions {
			if positions[i] != other[i] {
				t.Errorf("record %s: sequential positions %v, concurrent %v", name, positions, other)
				break
			}
		}
	}
}
