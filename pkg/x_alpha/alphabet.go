// file:sfx/pkg/x_alpha/alphabet.go

// Package x_alpha maps the symbols of a closed alphabet to dense indices.
package x_alpha

import (
	"errors"
	"fmt"
	"strings"
)

//---------------------
// Errors
//---------------------

var (
	ErrUnsupportedSymbol = errors.New("unsupported_symbol")
	ErrRadixMismatch     = errors.New("radix_mismatch")
	ErrInvalidAlphabet   = errors.New("invalid_alphabet")
)

//---------------------
// Constants
//---------------------

const (
	// MaxRadix is the size of the single-byte symbol space.
	MaxRadix = 256

	Terminator = '$'
	DNASymbols = "ACGT$"

	noIndex = -1
)

//---------------------
// Alphabet
//---------------------

// Alphabet is an ordered, closed symbol set. The symbol at position i has index i.
type Alphabet struct {
	symbols string
	index   [MaxRadix]int16
}

// New builds an alphabet over the given symbols.
func New(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty symbol set", ErrInvalidAlphabet)
	}
	if len(symbols) > MaxRadix {
		return nil, fmt.Errorf("%w: %d symbols exceed %d", ErrInvalidAlphabet, len(symbols), MaxRadix)
	}

	a := &Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = noIndex
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] != noIndex {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}
		a.index[c] = int16(i)
	}
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

var dna = MustNew(DNASymbols)

// DNA returns the nucleotide alphabet A,C,G,T plus the '$' terminator.
func DNA() *Alphabet { return dna }

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

func (a *Alphabet) String() string { return a.symbols }

// Contains reports whether symbol belongs to the alphabet.
func (a *Alphabet) Contains(symbol byte) bool { return a.index[symbol] != noIndex }

// IndexOf returns the dense index of symbol.
func (a *Alphabet) IndexOf(symbol byte) (int, error) {
	i := a.index[symbol]
	if i == noIndex {
		return noIndex, fmt.Errorf("%w: %q not in %q", ErrUnsupportedSymbol, symbol, a.symbols)
	}
	return int(i), nil
}

// Symbol returns the symbol stored at index.
func (a *Alphabet) Symbol(index int) (byte, bool) {
	if index < 0 || index >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[index], true
}

//---------------------
// Validation
//---------------------

// CheckRadix reports whether radix is inside [1, MaxRadix].
func CheckRadix(radix int) error {
	if radix < 1 || radix > MaxRadix {
		return fmt.Errorf("%w: radix %d must be in range [1, %d]", ErrRadixMismatch, radix, MaxRadix)
	}
	return nil
}

// Validate checks pattern against the alphabet and radix. It must pass before
// any index derived from pattern is used to address a radix-sized slot array.
// Every index being below radix also bounds the number of distinct symbols.
func (a *Alphabet) Validate(pattern string, radix int) error {
	if err := CheckRadix(radix); err != nil {
		return err
	}

	for i := 0; i < len(pattern); i++ {
		idx, err := a.IndexOf(pattern[i])
		if err != nil {
			return fmt.Errorf("offset %d: %w", i, err)
		}
		if idx >= radix {
			return fmt.Errorf("%w: radix %d is less than the number of unique letters in pattern (symbol %q has index %d)",
				ErrRadixMismatch, radix, pattern[i], idx)
		}
	}
	return nil
}

// Encode returns the index of every byte of pattern.
func (a *Alphabet) Encode(pattern string) ([]int, error) {
	out := make([]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		idx, err := a.IndexOf(pattern[i])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		out[i] = idx
	}
	return out, nil
}

// Decode is the inverse of Encode.
func (a *Alphabet) Decode(indices []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(indices))
	for i, idx := range indices {
		c, ok := a.Symbol(idx)
		if !ok {
			return "", fmt.Errorf("%w: index %d at offset %d", ErrUnsupportedSymbol, idx, i)
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}
