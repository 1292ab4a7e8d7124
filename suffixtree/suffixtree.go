// Package suffixtree builds a generalized suffix tree over a sentinel-
// terminated text using explicit suffix threading: for each starting
// index, walk from the root along matching edges, splitting an edge the
// moment a mismatch (or the end of the current suffix) is found. There
// are no suffix links; the asymptotic cost is O(len(T)^2) in the worst
// case, which is acceptable for the genome sizes this module targets.
//
// The tree is built once, in Build, and is never mutated afterwards. Its
// only consumer is package bwt, which performs the lexicographic DFS
// that extracts the Burrows-Wheeler transform and the suffix array.
package suffixtree

import "github.com/danieldk/fmindex/text"

// noSuffix marks an internal node: only leaves carry a suffix start.
const noSuffix = -1

// Tree is an explicit, position-indexed suffix tree. Node 0 is the
// root. All other fields are indexed by node id and run in parallel;
// there is no pointer-based node type, per the flat representation
// favored for this kind of dense, fixed-alphabet structure.
type Tree struct {
	Text        text.Text
	parent      []int32
	edgeLo      []int32
	edgeHi      []int32 // half-open: edge label is Text[edgeLo:edgeHi]
	suffixStart []int32 // noSuffix for internal nodes
	children    [][]int32
}

// NumNodes returns the number of nodes in the tree, including the root.
func (t *Tree) NumNodes() int {
	return len(t.edgeLo)
}

// IsLeaf reports whether node is a leaf.
func (t *Tree) IsLeaf(node int32) bool {
	return t.suffixStart[node] != noSuffix
}

// SuffixStart returns the starting index in Text of the suffix spelled
// out by the root-to-leaf path ending at node. Only valid for leaves.
func (t *Tree) SuffixStart(node int32) int {
	return int(t.suffixStart[node])
}

// Children returns the (unsorted) child node ids of node.
func (t *Tree) Children(node int32) []int32 {
	return t.children[node]
}

// EdgeFirstByte returns the first byte of the edge label leading into
// node, used by the extractor to order children lexicographically.
func (t *Tree) EdgeFirstByte(node int32) byte {
	return t.Text.At(int(t.edgeLo[node]))
}

// Build constructs the suffix tree for t by threading each suffix in
// from the root. Construction happens here, not lazily: a Tree is
// always fully built by the time Build returns.
func Build(t text.Text) *Tree {
	n := t.Len()

	tree := &Tree{
		Text:        t,
		parent:      make([]int32, 1, n+1),
		edgeLo:      make([]int32, 1, n+1),
		edgeHi:      make([]int32, 1, n+1),
		suffixStart: []int32{noSuffix},
		children:    make([][]int32, 1, n+1),
	}

	for i := 0; i < n; i++ {
		tree.threadSuffix(i)
	}

	return tree
}

// threadSuffix inserts the suffix starting at ix into the tree.
func (t *Tree) threadSuffix(ix int) {
	const root = int32(0)

	node := root
	cur := ix
	for {
		next := t.findMatchingChild(node, cur)
		if next == -1 {
			t.appendLeaf(node, cur, ix)
			return
		}

		node = next
		splitAt, found := t.firstMismatch(node, cur)
		if !found {
			// The edge was fully consumed without a mismatch: advance
			// past it and keep walking from this node.
			cur += int(t.edgeHi[node] - t.edgeLo[node])
			continue
		}

		newInternal := t.splitEdge(node, int32(splitAt))
		t.appendLeaf(newInternal, splitAt+(cur-int(t.edgeLo[newInternal])), ix)
		return
	}
}

// findMatchingChild returns the child of node whose edge label begins
// with Text[loc], or -1 if there is none.
func (t *Tree) findMatchingChild(node int32, loc int) int32 {
	want := t.Text.At(loc)
	for _, child := range t.children[node] {
		if t.Text.At(int(t.edgeLo[child])) == want {
			return child
		}
	}
	return -1
}

// firstMismatch walks along node's edge, starting one byte past its
// start, looking for the first position where the edge's text diverges
// from the suffix being inserted (which currently reads Text starting
// at cur). It returns the absolute text position of that divergence and
// true, or (0, false) if the edge is consumed without any mismatch. A
// suffix running out of text mid-edge (which cannot happen for a
// sentinel-terminated text, since no suffix of it is a prefix of
// another) is treated as a mismatch at that position, per the spec.
func (t *Tree) firstMismatch(node int32, cur int) (int, bool) {
	offset := 1
	for {
		if cur+offset >= t.Text.Len() {
			return int(t.edgeLo[node]) + offset, true
		}
		if t.edgeLo[node]+int32(offset) >= t.edgeHi[node] {
			return 0, false
		}
		if t.Text.At(int(t.edgeLo[node])+offset) != t.Text.At(cur+offset) {
			return int(t.edgeLo[node]) + offset, true
		}
		offset++
	}
}

// appendLeaf attaches a new leaf to parent with edge label
// Text[edgeStart:Text.Len()] and the given suffix start.
func (t *Tree) appendLeaf(parent int32, edgeStart, suffixStart int) {
	node := t.newNode(parent, int32(edgeStart), int32(t.Text.Len()))
	t.suffixStart[node] = int32(suffixStart)
	t.children[parent] = append(t.children[parent], node)
}

// splitEdge introduces a new internal node between child and its parent
// at absolute text position p: the new node inherits child's edge up to
// p, and child's edge becomes Text[p:edgeHi(child)]. It returns the new
// node's id.
func (t *Tree) splitEdge(child int32, p int32) int32 {
	parent := t.parent[child]

	newNode := t.newNode(parent, t.edgeLo[child], p)

	siblings := t.children[parent]
	for i, s := range siblings {
		if s == child {
			siblings[i] = newNode
			break
		}
	}

	t.parent[child] = newNode
	t.edgeLo[child] = p
	t.children[newNode] = append(t.children[newNode], child)

	return newNode
}

// newNode allocates a node's slots without registering it as anyone's
// child; callers are responsible for linking it into the tree.
func (t *Tree) newNode(parent, edgeLo, edgeHi int32) int32 {
	id := int32(len(t.edgeLo))
	t.parent = append(t.parent, parent)
	t.edgeLo = append(t.edgeLo, edgeLo)
	t.edgeHi = append(t.edgeHi, edgeHi)
	t.suffixStart = append(t.suffixStart, noSuffix)
	t.children = append(t.children, nil)
	return id
}
