// Package fraction provides an exact rational number type with overflow
// detection on every operation.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrDivideByZero is returned when a denominator would be zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrOverflow is returned when an intermediate or final value does not
	// fit in int64.
	ErrOverflow = errors.New("fraction overflow")
)

// Fraction is an exact rational number. The zero value is 0/1.
//
// Fractions are always stored normalized: the denominator is positive and
// numerator and denominator share no common factor. Two equal values are
// therefore equal with ==, so Fraction can be used as a list element or
// map key.
type Fraction struct {
	num, den int64
}

// New creates the normalized fraction num/den.
// Returns ErrDivideByZero when den is zero.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivideByZero
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		// abs/negation of MinInt64 overflows
		return Fraction{}, ErrOverflow
	}

	if den < 0 {
		num, den = -num, -den
	}

	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	if num == 0 {
		den = 1
	}

	return Fraction{num: num, den: den}, nil
}

// MustNew is like New but panics on error. Intended for constants in tests
// and examples.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt creates the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Num returns the normalized numerator; it carries the sign.
func (f Fraction) Num() int64 {
	return f.num
}

// Den returns the normalized denominator; it is always positive.
func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1 // zero value is 0/1
	}
	return f.den
}

// Add returns f + o. Returns ErrOverflow when the result cannot be
// represented.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	// a/b + c/d = (ad + cb) / bd
	ad, ok1 := mul64(f.Num(), o.Den())
	cb, ok2 := mul64(o.Num(), f.Den())
	bd, ok3 := mul64(f.Den(), o.Den())
	if !ok1 || !ok2 || !ok3 {
		return Fraction{}, ErrOverflow
	}

	num, ok := add64(ad, cb)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	return New(num, bd)
}

// Sub returns f - o. Returns ErrOverflow when the result cannot be
// represented.
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	neg, err := o.Neg()
	if err != nil {
		return Fraction{}, err
	}
	return f.Add(neg)
}

// Mul returns f * o. Returns ErrOverflow when the result cannot be
// represented.
func (f Fraction) Mul(o Fraction) (Fraction, error) {
	num, ok1 := mul64(f.Num(), o.Num())
	den, ok2 := mul64(f.Den(), o.Den())
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}

	return New(num, den)
}

// Div returns f / o. Returns ErrDivideByZero when o is zero and ErrOverflow
// when the result cannot be represented.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.Num() == 0 {
		return Fraction{}, ErrDivideByZero
	}

	num, ok1 := mul64(f.Num(), o.Den())
	den, ok2 := mul64(f.Den(), o.Num())
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}

	return New(num, den)
}

// Neg returns -f.
func (f Fraction) Neg() (Fraction, error) {
	if f.Num() == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{num: -f.Num(), den: f.Den()}, nil
}

// Cmp compares f and o, returning -1, 0 or +1. Comparison is exact even when
// cross-multiplication would overflow.
func (f Fraction) Cmp(o Fraction) int {
	ad, ok1 := mul64(f.Num(), o.Den())
	cb, ok2 := mul64(o.Num(), f.Den())
	if ok1 && ok2 {
		switch {
		case ad < cb:
			return -1
		case ad > cb:
			return 1
		default:
			return 0
		}
	}

	// Cross products overflow int64; fall back to arbitrary precision.
	x := new(big.Rat).SetFrac64(f.Num(), f.Den())
	y := new(big.Rat).SetFrac64(o.Num(), o.Den())

	return x.Cmp(y)
}

// Float64 returns the nearest float64 value.
func (f Fraction) Float64() float64 {
	return float64(f.Num()) / float64(f.Den())
}

// String formats the fraction as "num/den", or just "num" when the
// denominator is 1.
func (f Fraction) String() string {
	if f.Den() == 1 {
		return fmt.Sprintf("%d", f.Num())
	}
	return fmt.Sprintf("%d/%d", f.Num(), f.Den())
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func add64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
