// file:sfx/pkg/x_tree/tree.go
package x_tree

import (
	"github.com/rs/zerolog"
	"github.com/rskv-p/sfx/pkg/x_alpha"
)

//---------------------
// SuffixTree
//---------------------

type state uint8

const (
	stateBuilding state = iota
	stateBuilt
	stateClosed
)

// SuffixTree is a compressed trie of every suffix of a pattern. It only
// stores offsets into the pattern, never copies of its bytes.
type SuffixTree struct {
	pattern string
	codes   []int // alphabet index of every pattern byte
	radix   int
	alpha   *x_alpha.Alphabet
	root    *node
	nodes   int
	state   state
	log     zerolog.Logger
}

// Option configures Build.
type Option func(*SuffixTree)

// WithAlphabet sets the symbol mapping. The default is x_alpha.DNA().
func WithAlphabet(a *x_alpha.Alphabet) Option {
	return func(t *SuffixTree) {
		if a != nil {
			t.alpha = a
		}
	}
}

// WithLogger sets the construction logger. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(t *SuffixTree) { t.log = l }
}

// Build validates pattern against the alphabet and radix, then inserts every
// suffix starting from the last position back to the first. No node is
// allocated when validation fails.
func Build(pattern string, radix int, opts ...Option) (*SuffixTree, error) {
	t, err := newTree(pattern, radix, opts)
	if err != nil {
		return nil, err
	}
	t.insertAll()
	return t, nil
}

// newTree validates the input and allocates the root.
func newTree(pattern string, radix int, opts []Option) (*SuffixTree, error) {
	t := &SuffixTree{
		pattern: pattern,
		radix:   radix,
		alpha:   x_alpha.DNA(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.alpha.Validate(pattern, radix); err != nil {
		t.log.Warn().Err(err).Int("radix", radix).Str("alphabet", t.alpha.String()).Msg("suffix tree validation failed")
		return nil, err
	}
	codes, err := t.alpha.Encode(pattern)
	if err != nil {
		return nil, err
	}
	t.codes = codes
	t.root = t.newNode(0, 0, false)
	return t, nil
}

// insertAll inserts the suffixes from the shortest to the longest. Each new
// suffix is longer than every suffix already stored, so it never ends inside
// an existing edge.
func (t *SuffixTree) insertAll() {
	n := len(t.pattern)
	t.log.Debug().Int("len", n).Int("radix", t.radix).Msg("building suffix tree")
	for i := n - 1; i >= 0; i-- {
		t.put(i, n-i)
	}
	t.state = stateBuilt
	t.log.Debug().Int("nodes", t.nodes).Msg("suffix tree built")
}

// ComputeEdges returns the edge labels of the suffix tree of a DNA text
// terminated by '$' (radix 5).
func ComputeEdges(text string) ([]string, error) {
	t, err := Build(text, len(x_alpha.DNASymbols))
	if err != nil {
		return nil, err
	}
	defer t.Close()
	return t.CollectEdges(), nil
}

//---------------------
// Accessors
//---------------------

func (t *SuffixTree) Pattern() string             { return t.pattern }
func (t *SuffixTree) Radix() int                  { return t.radix }
func (t *SuffixTree) Alphabet() *x_alpha.Alphabet { return t.alpha }
func (t *SuffixTree) Built() bool                 { return t != nil && t.state == stateBuilt }
func (t *SuffixTree) label(n *node) string        { return t.pattern[n.start:n.end()] }

func (t *SuffixTree) newNode(pos, l int, leaf bool) *node {
	t.nodes++
	return newNode(t.radix, pos, l, leaf)
}

//---------------------
// Construction
//---------------------

// LCP returns the length of the longest common prefix of pattern[aPos:aPos+aLen]
// and pattern[bPos:bPos+bLen]. Spans are clamped to the pattern.
func (t *SuffixTree) LCP(aPos, aLen, bPos, bLen int) int {
	n := len(t.pattern)
	aPos, aLen = clampSpan(n, aPos, aLen)
	bPos, bLen = clampSpan(n, bPos, bLen)
	return commonPrefixLen(t.pattern[aPos:aPos+aLen], t.pattern[bPos:bPos+bLen])
}

// put inserts the suffix (pos, length) below the root. The walk splits an
// edge where the suffix diverges inside it, reuses fully matched edges as
// branching points and attaches the unmatched remainder as a new leaf.
func (t *SuffixTree) put(pos, length int) {
	n := t.root
	for {
		k := t.LCP(pos, length, n.start, n.length)
		if k > 0 && k < n.length && n.length > 1 {
			t.split(n, k)
		}
		pos, length = pos+k, length-k
		if length == 0 {
			n.leaf = true
			return
		}

		c := t.codes[pos]
		next := n.child[c]
		if next == nil {
			n.child[c] = t.newNode(pos, length, true)
			return
		}
		n = next
	}
}

// split cuts the edge of n after k symbols. The tail moves to a new child
// that takes over all of n's children; n keeps the shared prefix. The tail
// inherits n's leaf flag instead of always being marked a leaf, so a suffix
// that ended on n still ends on the same path, and n itself is cleared until
// a suffix ends on the prefix.
func (t *SuffixTree) split(n *node, k int) {
	tail := &node{
		child:  n.child,
		start:  n.start + k,
		length: n.length - k,
		leaf:   n.leaf,
	}
	t.nodes++

	n.child = make([]*node, t.radix)
	n.reset(n.start, k, false)
	n.child[t.codes[tail.start]] = tail
}
