package fmindex_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieldk/fmindex/fmindex"
	"github.com/danieldk/fmindex/text"
)

func TestWriteToReadFromRoundTrip(t *testing.T) {
	tx, err := text.New([]byte("GGCGCCGCTAGTCACACACGCCGTA$"))
	if err != nil {
		t.Fatalf("text.New failed: %v", err)
	}

	idx, err := fmindex.Build(tx, 5, 5)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := idx.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	restored, err := fmindex.ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	if restored.SuffixGap() != idx.SuffixGap() {
		t.Errorf("SuffixGap() = %d, want %d", restored.SuffixGap(), idx.SuffixGap())
	}
	if restored.CountGap() != idx.CountGap() {
		t.Errorf("CountGap() = %d, want %d", restored.CountGap(), idx.CountGap())
	}
	if string(restored.BWT()) != string(idx.BWT()) {
		t.Errorf("BWT() = %q, want %q", restored.BWT(), idx.BWT())
	}

	for _, pattern := range []string{"CCG", "CAG", "GC"} {
		want, err := idx.Locate([]byte(pattern))
		if err != nil {
			t.Fatalf("Locate(%q) on original failed: %v", pattern, err)
		}
		got, err := restored.Locate([]byte(pattern))
		if err != nil {
			t.Fatalf("Locate(%q) on restored failed: %v", pattern, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Locate(%q) mismatch after round trip (-want +got):\n%s", pattern, diff)
		}
	}
}

func TestWriteToUsesNoneForDenseGaps(t *testing.T) {
	tx, err := text.New([]byte("banana$"))
	if err != nil {
		t.Fatalf("text.New failed: %v", err)
	}
	idx, err := fmindex.Build(tx, 0, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := idx.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if got := lines[len(lines)-1]; got != "None" {
		t.Errorf("count gap line = %q, want %q", got, "None")
	}
	if got := lines[len(lines)-2]; got != "None" {
		t.Errorf("suffix gap line = %q, want %q", got, "None")
	}
}

func TestReadFromRejectsTruncatedFile(t *testing.T) {
	_, err := fmindex.ReadFrom(strings.NewReader("abc$\n0;0\n"))
	if err == nil {
		t.Fatal("ReadFrom on a truncated index should fail, but didn't")
	}

	if _, ok := err.(*fmindex.FormatError); !ok {
		t.Errorf("ReadFrom error = %T (%v), want *fmindex.FormatError", err, err)
	}
}

func TestReadFromRejectsShortRankRow(t *testing.T) {
	// Well-formed except the rank row for 'a', which has 2 values
	// instead of the 3 a dense index over a 2-symbol BWT requires.
	bad := "a$\n0;0,1;1\n$,a\n0,0,0\n0,0\n0,0\nNone\nNone\n"
	_, err := fmindex.ReadFrom(strings.NewReader(bad))
	if err == nil {
		t.Fatal("ReadFrom with a short rank row should fail, but didn't")
	}

	formatErr, ok := err.(*fmindex.FormatError)
	if !ok {
		t.Fatalf("ReadFrom error = %T (%v), want *fmindex.FormatError", err, err)
	}
	if formatErr.Line != 5 {
		t.Errorf("FormatError.Line = %d, want 5 (the 'a' rank row)", formatErr.Line)
	}
}

func TestReadFromRejectsBadAlphabetLine(t *testing.T) {
	bad := "a$\n0;0\nab,$\n0,0,0\n0,0,0\n0,0\n0\n0\n"
	_, err := fmindex.ReadFrom(strings.NewReader(bad))
	if err == nil {
		t.Fatal("ReadFrom with a multi-byte alphabet symbol should fail, but didn't")
	}
	if _, ok := err.(*fmindex.FormatError); !ok {
		t.Errorf("ReadFrom error = %T (%v), want *fmindex.FormatError", err, err)
	}
}
