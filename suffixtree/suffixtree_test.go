package suffixtree_test

import (
	"testing"

	"github.com/danieldk/fmindex/suffixtree"
	"github.com/danieldk/fmindex/text"
)

func build(t *testing.T, raw string) *suffixtree.Tree {
	t.Helper()
	tx, err := text.New([]byte(raw))
	if err != nil {
		t.Fatalf("text.New(%q) failed: %v", raw, err)
	}
	return suffixtree.Build(tx)
}

// countLeaves walks the tree with an explicit stack (mirroring the
// traversal style used by package bwt) and returns every leaf's suffix
// start, to check against the expected set of suffix starts.
func countLeaves(tree *suffixtree.Tree) []int {
	var leaves []int
	stack := []int32{0}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if tree.IsLeaf(node) {
			leaves = append(leaves, tree.SuffixStart(node))
			continue
		}
		stack = append(stack, tree.Children(node)...)
	}
	return leaves
}

func TestBuildOneLeafPerSuffix(t *testing.T) {
	tree := build(t, "banana$")

	leaves := countLeaves(tree)
	if len(leaves) != 7 {
		t.Fatalf("got %d leaves, want 7", len(leaves))
	}

	seen := make(map[int]bool)
	for _, s := range leaves {
		if seen[s] {
			t.Errorf("suffix start %d reached by more than one leaf", s)
		}
		seen[s] = true
	}
	for i := 0; i < 7; i++ {
		if !seen[i] {
			t.Errorf("no leaf for suffix start %d", i)
		}
	}
}

func TestBuildRootChildrenMatchDistinctFirstBytes(t *testing.T) {
	tree := build(t, "abab$")

	firstBytes := make(map[byte]bool)
	for _, child := range tree.Children(0) {
		b := tree.EdgeFirstByte(child)
		if firstBytes[b] {
			t.Errorf("two root children share first byte %q", b)
		}
		firstBytes[b] = true
	}

	// "abab$" has suffixes starting with 'a', 'b', and '$'.
	for _, want := range []byte{'a', 'b', '$'} {
		if !firstBytes[want] {
			t.Errorf("no root child with first byte %q", want)
		}
	}
}

func TestBuildSingleCharacterText(t *testing.T) {
	tree := build(t, "$")

	if tree.NumNodes() != 2 {
		t.Fatalf("NumNodes() = %d, want 2 (root + one leaf)", tree.NumNodes())
	}

	children := tree.Children(0)
	if len(children) != 1 {
		t.Fatalf("root has %d children, want 1", len(children))
	}
	if !tree.IsLeaf(children[0]) || tree.SuffixStart(children[0]) != 0 {
		t.Errorf("root's only child should be a leaf with suffix start 0")
	}
}
