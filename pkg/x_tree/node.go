// file:sfx/pkg/x_tree/node.go
package x_tree

//---------------------
// Node
//---------------------

// node describes the edge entering it from its parent: the label is
// pattern[start : start+length]. child has exactly radix slots, indexed by
// the alphabet index of each child's first symbol.
type node struct {
	child  []*node
	start  int
	length int
	leaf   bool // a suffix ends at the end of this edge
}

// newNode allocates a node with radix empty child slots.
func newNode(radix, start, length int, leaf bool) *node {
	return &node{
		child:  make([]*node, radix),
		start:  start,
		length: length,
		leaf:   leaf,
	}
}

// reset rewrites the label and leaf flag in place.
func (n *node) reset(start, length int, leaf bool) {
	n.start = start
	n.length = length
	n.leaf = leaf
}

func (n *node) end() int { return n.start + n.length }

func (n *node) hasChildren() bool {
	for _, c := range n.child {
		if c != nil {
			return true
		}
	}
	return false
}

// iter calls f for each child in ascending slot order.
func (n *node) iter(f func(slot int, c *node) bool) {
	for i, c := range n.child {
		if c != nil {
			if !f(i, c) {
				return
			}
		}
	}
}

// pushChildren appends the children of n to stack in descending slot
// order so that popping visits them in ascending order.
func (n *node) pushChildren(stack []*node) []*node {
	for i := len(n.child) - 1; i >= 0; i-- {
		if c := n.child[i]; c != nil {
			stack = append(stack, c)
		}
	}
	return stack
}
