// file:sfx/pkg/x_tree/dump.go
package x_tree

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Painter decorates dump output.
type Painter interface {
	RenderLabel(label string) string
	RenderBranch(branch string) string
}

type plain struct{}

func (plain) RenderLabel(label string) string   { return label }
func (plain) RenderBranch(branch string) string { return branch }

// Dump writes a visual tree representation to writer.
func (t *SuffixTree) Dump(w io.Writer) { t.DumpWith(w, plain{}) }

// DumpWith is Dump with edge labels and indentation passed through p.
func (t *SuffixTree) DumpWith(w io.Writer, p Painter) {
	if p == nil {
		p = plain{}
	}
	if !t.Built() {
		fmt.Fprintln(w, "EMPTY")
		return
	}
	stack := []depthFrame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.dump(w, p, f.n, f.depth)
		for i := len(f.n.child) - 1; i >= 0; i-- {
			if c := f.n.child[i]; c != nil {
				stack = append(stack, depthFrame{c, f.depth + 1})
			}
		}
	}
	fmt.Fprintln(w)
}

// dump writes a single node.
func (t *SuffixTree) dump(w io.Writer, p Painter, n *node, depth int) {
	pre := p.RenderBranch(dumpPre(depth))
	if n == t.root {
		fmt.Fprintf(w, "%s %s Pattern: %q Radix: %d\n", pre, t.kind(n), t.pattern, t.radix)
		return
	}
	label := p.RenderLabel(fmt.Sprintf("%q", t.label(n)))
	fmt.Fprintf(w, "%s %s Label: %s [%d:%d]\n", pre, t.kind(n), label, n.start, n.end())
}

//---------------------
// Node Kind Labels
//---------------------

func (t *SuffixTree) kind(n *node) string {
	switch {
	case n == t.root:
		return "ROOT"
	case !n.hasChildren():
		return "LEAF"
	case n.leaf:
		return "NODE*"
	default:
		return "NODE"
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
