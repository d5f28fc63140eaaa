package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/rational"
)

func TestNew_Normalizes(t *testing.T) {
	f, err := rational.New(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Num())
	assert.Equal(t, int64(2), f.Den())

	f, err = rational.New(-3, -9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Num())
	assert.Equal(t, int64(3), f.Den())

	f, err = rational.New(3, -9)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), f.Num())
	assert.Equal(t, int64(3), f.Den())
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestAddMul(t *testing.T) {
	half, _ := rational.New(1, 2)
	third, _ := rational.New(1, 3)

	sum := half.Add(third)
	five, _ := rational.New(5, 6)
	assert.True(t, sum.Equal(five))

	prod := half.Mul(third)
	sixth, _ := rational.New(1, 6)
	assert.True(t, prod.Equal(sixth))
}

func TestLess(t *testing.T) {
	a, _ := rational.New(1, 3)
	b, _ := rational.New(1, 2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestInt(t *testing.T) {
	whole, _ := rational.New(6, 2)
	v, err := whole.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	frac, _ := rational.New(1, 2)
	_, err = frac.Int()
	assert.ErrorIs(t, err, rational.ErrNotIntegral)
}

func TestString(t *testing.T) {
	f, _ := rational.New(4, 2)
	assert.Equal(t, "2", f.String())

	g, _ := rational.New(1, 3)
	assert.Equal(t, "1/3", g.String())

	h, _ := rational.New(-1, 3)
	assert.Equal(t, "-1/3", h.String())
}
