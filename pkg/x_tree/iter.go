// file:sfx/pkg/x_tree/iter.go
package x_tree

import (
	"iter"
	"slices"
)

//---------------------
// Traversal
//---------------------

// Edges yields the label of every node except the root, parent before
// children, children in ascending alphabet order. The sequence can be
// ranged over any number of times and never mutates the tree.
func (t *SuffixTree) Edges() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !t.Built() {
			return
		}
		stack := t.root.pushChildren(nil)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.label(n)) {
				return
			}
			stack = n.pushChildren(stack)
		}
	}
}

// CollectEdges returns Edges as a slice.
func (t *SuffixTree) CollectEdges() []string {
	return slices.Collect(t.Edges())
}

type pathFrame struct {
	n    *node
	path string
}

// Suffixes yields the concatenated root-to-node labels of every node where a
// suffix ends, in the same order as Edges.
func (t *SuffixTree) Suffixes() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !t.Built() {
			return
		}
		var stack []pathFrame
		push := func(parent *node, path string) {
			for i := len(parent.child) - 1; i >= 0; i-- {
				if c := parent.child[i]; c != nil {
					stack = append(stack, pathFrame{c, path + t.label(c)})
				}
			}
		}
		push(t.root, "")
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.n.leaf && !yield(f.path) {
				return
			}
			push(f.n, f.path)
		}
	}
}

// Contains reports whether sub occurs in the pattern.
func (t *SuffixTree) Contains(sub string) bool {
	if !t.Built() {
		return false
	}
	n := t.root
	for i := 0; i < len(sub); {
		c, err := t.alpha.IndexOf(sub[i])
		if err != nil || c >= t.radix {
			return false
		}
		next := n.child[c]
		if next == nil {
			return false
		}
		m := min(next.length, len(sub)-i)
		if t.pattern[next.start:next.start+m] != sub[i:i+m] {
			return false
		}
		i += m
		n = next
	}
	return true
}
