// file:sfx/pkg/x_tree/stats.go
package x_tree

//---------------------
// Stats
//---------------------

// Stats summarises the shape of a built tree.
type Stats struct {
	Nodes     int // including the root
	Edges     int
	Leaves    int // nodes without children
	Internal  int // non-root nodes with children
	Terminals int // nodes where a suffix ends
	Depth     int // longest root-to-node edge count
}

type depthFrame struct {
	n     *node
	depth int
}

// Stats walks the tree and counts its nodes.
func (t *SuffixTree) Stats() Stats {
	var s Stats
	if !t.Built() {
		return s
	}
	s.Nodes = 1
	stack := []depthFrame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.n.iter(func(_ int, c *node) bool {
			s.Nodes++
			s.Edges++
			if c.hasChildren() {
				s.Internal++
			} else {
				s.Leaves++
			}
			if c.leaf {
				s.Terminals++
			}
			s.Depth = max(s.Depth, f.depth+1)
			stack = append(stack, depthFrame{c, f.depth + 1})
			return true
		})
	}
	return s
}

//---------------------
// Teardown
//---------------------

type releaseFrame struct {
	n    *node
	next int // next child slot to descend into
}

// Close releases every node in postorder, children before their parent,
// and returns how many were released. Later calls return 0.
func (t *SuffixTree) Close() int {
	if t == nil || t.root == nil {
		return 0
	}
	released := 0
	stack := []releaseFrame{{n: t.root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next < len(f.n.child) {
			c := f.n.child[f.next]
			f.n.child[f.next] = nil
			f.next++
			if c != nil {
				stack = append(stack, releaseFrame{n: c})
			}
			continue
		}
		f.n.child = nil
		released++
		stack = stack[:len(stack)-1]
	}

	t.log.Debug().Int("released", released).Int("allocated", t.nodes).Msg("suffix tree released")
	t.root = nil
	t.codes = nil
	t.nodes = 0
	t.state = stateClosed
	return released
}
