package rational

import (
	"errors"
	"strconv"
)

// ErrZeroDenominator is returned by New when the requested denominator is 0.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// ErrNotIntegral is returned by Int when the fraction does not reduce to a
// whole number. Every crossing-count product the oracle computes must pass
// this check; a failure here means the reduction that produced the fraction
// was malformed (see spec invariant: w_i * w_j * c(i,j) is always integer).
var ErrNotIntegral = errors.New("rational: value is not integral")

// Fraction is an exact rational number in lowest terms with Den > 0.
// The zero value is not meaningful; use New or One.
type Fraction struct {
	num, den int64
}

// One is the multiplicative identity, the default weight of an unmerged vertex.
var One = Fraction{num: 1, den: 1}

// Zero is the additive identity.
var Zero = Fraction{num: 0, den: 1}

// New builds a Fraction from num/den, normalizing sign and reducing by the
// gcd. Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		g = 1
	}

	return Fraction{num: num / g, den: den / g}, nil
}

// FromInt builds the Fraction n/1.
func FromInt(n int64) Fraction { return Fraction{num: n, den: 1} }

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Num returns the normalized numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the normalized denominator (always > 0).
func (f Fraction) Den() int64 { return f.den }

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	r, _ := New(f.num*g.den+g.num*f.den, f.den*g.den)

	return r
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	r, _ := New(f.num*g.num, f.den*g.den)

	return r
}

// Less reports whether f < g, via cross-multiplication (both denominators
// are positive so the comparison direction is preserved).
func (f Fraction) Less(g Fraction) bool {
	return f.num*g.den < g.num*f.den
}

// Equal reports whether f == g. Both operands are already in lowest terms,
// so this is a plain field comparison.
func (f Fraction) Equal(g Fraction) bool {
	return f.num == g.num && f.den == g.den
}

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Int returns the integer value of f, failing with ErrNotIntegral if
// f.den != 1.
func (f Fraction) Int() (int64, error) {
	if f.den != 1 {
		return 0, ErrNotIntegral
	}

	return f.num, nil
}

// MustInt is Int but panics on failure; reserved for call sites that have
// already asserted integrality via Int and only need the value.
func (f Fraction) MustInt() int64 {
	v, err := f.Int()
	if err != nil {
		panic(err)
	}

	return v
}

// String renders the fraction as "num/den", or bare "num" when den == 1.
func (f Fraction) String() string {
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}
