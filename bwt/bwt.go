// Package bwt extracts the Burrows-Wheeler transform and the full
// suffix array from a suffix tree in a single lexicographic
// depth-first traversal.
package bwt

import "github.com/danieldk/fmindex/suffixtree"

// Result holds the Burrows-Wheeler transform L and the full suffix
// array SA extracted from a suffix tree, both of length len(Text).
type Result struct {
	L  []byte
	SA []int
}

// stackFrame is an explicit DFS stack entry: the node to visit and,
// for re-visits of an internal node, the index of the next child to
// descend into. Recursion is avoided so traversal depth is bounded by
// tree depth rather than Go call-stack depth on long texts.
type stackFrame struct {
	node        int32
	childCursor int
}

// Extract performs the lexicographic DFS described in the design: at
// each internal node, children are visited in ascending order of their
// edge's first byte; at each leaf, Text[suffixStart-1] is appended to L
// (suffixStart == 0 maps to the sentinel at the end of Text) and
// suffixStart is appended to SA. Emission order is exactly SA order.
func Extract(t *suffixtree.Tree) Result {
	n := t.Text.Len()

	result := Result{
		L:  make([]byte, 0, n),
		SA: make([]int, 0, n),
	}

	order := sortedChildren(t, 0)
	stack := []stackFrame{{node: 0, childCursor: 0}}
	childrenByNode := map[int32][]int32{0: order}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if t.IsLeaf(top.node) {
			s := t.SuffixStart(top.node)
			if s == 0 {
				result.L = append(result.L, t.Text.At(-1))
			} else {
				result.L = append(result.L, t.Text.At(s-1))
			}
			result.SA = append(result.SA, s)
			stack = stack[:len(stack)-1]
			continue
		}

		children := childrenByNode[top.node]
		if top.childCursor >= len(children) {
			stack = stack[:len(stack)-1]
			continue
		}

		child := children[top.childCursor]
		top.childCursor++

		childOrder := sortedChildren(t, child)
		childrenByNode[child] = childOrder
		stack = append(stack, stackFrame{node: child, childCursor: 0})
	}

	return result
}

// sortedChildren returns node's children ordered by the first byte of
// their incoming edge, ascending, so the smallest-first child is
// visited first (a simple insertion sort: node fan-out is bounded by
// the alphabet size).
func sortedChildren(t *suffixtree.Tree, node int32) []int32 {
	children := append([]int32(nil), t.Children(node)...)
	for i := 1; i < len(children); i++ {
		for j := i; j > 0 && t.EdgeFirstByte(children[j-1]) > t.EdgeFirstByte(children[j]); j-- {
			children[j-1], children[j] = children[j], children[j-1]
		}
	}
	return children
}
