package fraction_test

import (
	"math"
	"testing"

	"github.com/SnowyOwl000/3700.f22.public/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantNum  int64
		wantDen  int64
	}{
		{name: "already normalized", num: 2, den: 3, wantNum: 2, wantDen: 3},
		{name: "reduced", num: 4, den: 6, wantNum: 2, wantDen: 3},
		{name: "negative denominator", num: 1, den: -2, wantNum: -1, wantDen: 2},
		{name: "double negative", num: -3, den: -9, wantNum: 1, wantDen: 3},
		{name: "zero", num: 0, den: 5, wantNum: 0, wantDen: 1},
		{name: "integer", num: 8, den: 4, wantNum: 2, wantDen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := fraction.New(tt.num, tt.den)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, f.Num())
			assert.Equal(t, tt.wantDen, f.Den())
		})
	}
}

func TestNew_DivideByZero(t *testing.T) {
	_, err := fraction.New(1, 0)
	assert.ErrorIs(t, err, fraction.ErrDivideByZero)
}

func TestZeroValue(t *testing.T) {
	var f fraction.Fraction

	assert.Equal(t, int64(0), f.Num())
	assert.Equal(t, int64(1), f.Den())
	assert.Equal(t, "0", f.String())

	sum, err := f.Add(fraction.MustNew(2, 3))
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(2, 3), sum)
}

func TestArithmetic(t *testing.T) {
	half := fraction.MustNew(1, 2)
	third := fraction.MustNew(1, 3)

	sum, err := half.Add(third)
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(5, 6), sum)

	diff, err := half.Sub(third)
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(1, 6), diff)

	prod, err := half.Mul(third)
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(1, 6), prod)

	quot, err := half.Div(third)
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(3, 2), quot)

	neg, err := half.Neg()
	require.NoError(t, err)
	assert.Equal(t, fraction.MustNew(-1, 2), neg)
}

func TestDiv_ByZero(t *testing.T) {
	_, err := fraction.MustNew(1, 2).Div(fraction.FromInt(0))
	assert.ErrorIs(t, err, fraction.ErrDivideByZero)
}

func TestOverflow(t *testing.T) {
	huge := fraction.FromInt(math.MaxInt64)

	_, err := huge.Add(huge)
	assert.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = huge.Mul(huge)
	assert.ErrorIs(t, err, fraction.ErrOverflow)

	// Overflow in the common denominator, not the result's magnitude.
	a := fraction.MustNew(1, math.MaxInt64)
	b := fraction.MustNew(1, math.MaxInt64-1)
	_, err = a.Add(b)
	assert.ErrorIs(t, err, fraction.ErrOverflow)
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, fraction.MustNew(1, 3).Cmp(fraction.MustNew(1, 2)))
	assert.Equal(t, 1, fraction.MustNew(2, 3).Cmp(fraction.MustNew(1, 2)))
	assert.Equal(t, 0, fraction.MustNew(2, 4).Cmp(fraction.MustNew(1, 2)))
	assert.Equal(t, -1, fraction.MustNew(-1, 2).Cmp(fraction.MustNew(1, 2)))
}

func TestCmp_LargeValues(t *testing.T) {
	// Cross multiplication of these overflows int64; Cmp must stay exact.
	a := fraction.MustNew(math.MaxInt64-1, math.MaxInt64)
	b := fraction.MustNew(math.MaxInt64-2, math.MaxInt64-1)

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2/3", fraction.MustNew(2, 3).String())
	assert.Equal(t, "-1/2", fraction.MustNew(1, -2).String())
	assert.Equal(t, "5", fraction.MustNew(10, 2).String())
}

func TestFloat64(t *testing.T) {
	assert.InDelta(t, 0.5, fraction.MustNew(1, 2).Float64(), 1e-12)
}
