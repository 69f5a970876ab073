// file:sfx/pkg/x_alpha/alphabet_test.go
package x_alpha_test

import (
	"testing"

	"github.com/rskv-p/sfx/pkg/x_alpha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNA_IndexOf(t *testing.T) {
	a := x_alpha.DNA()
	for i, c := range []byte("ACGT$") {
		idx, err := a.IndexOf(c)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 5, a.Size())
	assert.Equal(t, "ACGT$", a.String())

	_, err := a.IndexOf('N')
	assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)
	_, err = a.IndexOf('a')
	assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)
}

func TestNew_Invalid(t *testing.T) {
	_, err := x_alpha.New("")
	assert.ErrorIs(t, err, x_alpha.ErrInvalidAlphabet)

	_, err = x_alpha.New("ACCA")
	assert.ErrorIs(t, err, x_alpha.ErrInvalidAlphabet)

	assert.Panics(t, func() { x_alpha.MustNew("") })
}

func TestNew_Generic(t *testing.T) {
	a, err := x_alpha.New("xyz#")
	require.NoError(t, err)

	idx, err := a.IndexOf('#')
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.True(t, a.Contains('y'))
	assert.False(t, a.Contains('A'))

	c, ok := a.Symbol(1)
	assert.True(t, ok)
	assert.Equal(t, byte('y'), c)
	_, ok = a.Symbol(4)
	assert.False(t, ok)
	_, ok = a.Symbol(-1)
	assert.False(t, ok)
}

func TestCheckRadix(t *testing.T) {
	assert.NoError(t, x_alpha.CheckRadix(1))
	assert.NoError(t, x_alpha.CheckRadix(x_alpha.MaxRadix))
	assert.ErrorIs(t, x_alpha.CheckRadix(0), x_alpha.ErrRadixMismatch)
	assert.ErrorIs(t, x_alpha.CheckRadix(-3), x_alpha.ErrRadixMismatch)
	assert.ErrorIs(t, x_alpha.CheckRadix(x_alpha.MaxRadix+1), x_alpha.ErrRadixMismatch)
}

func TestValidate(t *testing.T) {
	a := x_alpha.DNA()

	t.Run("Ok", func(t *testing.T) {
		assert.NoError(t, a.Validate("GATAGACA$", 5))
		assert.NoError(t, a.Validate("", 1))
		assert.NoError(t, a.Validate("ACAC", 2))
	})

	t.Run("FifthSymbolWithRadixFour", func(t *testing.T) {
		err := a.Validate("ACGT$", 4)
		assert.ErrorIs(t, err, x_alpha.ErrRadixMismatch)
	})

	t.Run("IndexNotCount", func(t *testing.T) {
		// one distinct symbol, but its index does not fit radix 3
		err := a.Validate("TTTT", 3)
		assert.ErrorIs(t, err, x_alpha.ErrRadixMismatch)
		assert.Contains(t, err.Error(), `symbol 'T' has index 3`)

		// as many distinct symbols as slots
		assert.NoError(t, a.Validate("GCAGCA", 3))
	})

	t.Run("RadixOutOfBounds", func(t *testing.T) {
		assert.ErrorIs(t, a.Validate("A", 0), x_alpha.ErrRadixMismatch)
		assert.ErrorIs(t, a.Validate("A", 257), x_alpha.ErrRadixMismatch)
	})

	t.Run("UnsupportedSymbol", func(t *testing.T) {
		err := a.Validate("GATTACAN", 5)
		assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)
		assert.Contains(t, err.Error(), "offset 7")
	})
}

func TestEncodeDecode(t *testing.T) {
	a := x_alpha.DNA()
	idx, err := a.Encode("GATC$")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1, 4}, idx)

	s, err := a.Decode(idx)
	require.NoError(t, err)
	assert.Equal(t, "GATC$", s)

	_, err = a.Encode("GAX")
	assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)
	_, err = a.Decode([]int{9})
	assert.ErrorIs(t, err, x_alpha.ErrUnsupportedSymbol)
}
