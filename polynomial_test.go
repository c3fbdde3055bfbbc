package polyroot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/polyroot"
)

// ============================================================
// Polynomial tests
// ============================================================

func cubic123() *polyroot.Polynomial {
	// x^3 - 6x^2 + 11x - 6 = (x-1)(x-2)(x-3)
	return polyroot.NewPolynomial().Set(3, 1).Set(2, -6).Set(1, 11).Set(0, -6)
}

func TestPolynomial_SetZeroIsOmitted(t *testing.T) {
	p := polyroot.NewPolynomial().Set(2, 0)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Degree())
	assert.True(t, p.IsZero())
}

func TestPolynomial_DegreeTracksMaximum(t *testing.T) {
	p := polyroot.NewPolynomial().Set(5, 1).Set(3, 2).Set(1, 4)
	require.Equal(t, 5, p.Degree())

	p.Set(5, 0)
	require.Equal(t, 3, p.Degree())

	p.Set(3, 0)
	require.Equal(t, 1, p.Degree())

	p.Set(1, 0)
	require.Equal(t, 0, p.Degree())
	require.True(t, p.IsZero())
}

func TestPolynomial_ZeroingLowerTermKeepsDegree(t *testing.T) {
	p := polyroot.NewPolynomial().Set(4, 1).Set(2, 3)
	p.Set(2, 0)
	assert.Equal(t, 4, p.Degree())
	assert.Equal(t, 0.0, p.Coeff(2))
}

func TestPolynomial_ZeroValueIsUsable(t *testing.T) {
	var p polyroot.Polynomial
	p.Set(2, 3)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 3.0, p.Leading())
}

func TestPolynomial_CoeffAbsentIsZero(t *testing.T) {
	p := cubic123()
	assert.Equal(t, 0.0, p.Coeff(7))
	assert.Equal(t, -6.0, p.Coeff(2))
	assert.Equal(t, 1.0, p.Leading())
}

func TestPolynomial_NegativeExponentPanics(t *testing.T) {
	assert.Panics(t, func() { polyroot.NewPolynomial().Set(-1, 2) })
}

func TestPolynomial_Exponents(t *testing.T) {
	p := polyroot.NewPolynomial().Set(7, 1).Set(0, 2).Set(3, -1)
	assert.Equal(t, []int{0, 3, 7}, p.Exponents())
}

func TestPolynomial_Evaluate(t *testing.T) {
	p := cubic123()
	assert.Equal(t, -6.0, p.Evaluate(0))
	assert.Equal(t, 0.0, p.Evaluate(1))
	assert.Equal(t, 0.0, p.Evaluate(2))
	assert.Equal(t, 6.0, p.Evaluate(4))
	assert.Equal(t, 0.0, polyroot.NewPolynomial().Evaluate(12))
}

func TestPolynomial_EvaluateSparse(t *testing.T) {
	// x^10 + 1 at 2
	p := polyroot.NewPolynomial().Set(10, 1).Set(0, 1)
	assert.Equal(t, 1025.0, p.Evaluate(2))
}

func TestPolynomial_Differentiate(t *testing.T) {
	d := cubic123().Differentiate()
	want := polyroot.FromCoefficients(map[int]float64{2: 3, 1: -12, 0: 11})
	assert.True(t, d.Equal(want), "got %s", d)
}

func TestPolynomial_DifferentiateConstant(t *testing.T) {
	d := polyroot.NewPolynomial().Set(0, 9).Differentiate()
	assert.True(t, d.IsZero())
	assert.Equal(t, 0, d.Degree())
}

func TestPolynomial_DifferentiateLeavesInputAlone(t *testing.T) {
	p := cubic123()
	before := p.Clone()
	_ = p.Differentiate()
	assert.True(t, p.Equal(before))
}

func TestPolynomial_DerivativeMatchesAnalytic(t *testing.T) {
	// p = 2x^4 - 3x^2 + x - 5, p' = 8x^3 - 6x + 1
	p := polyroot.NewPolynomial().Set(4, 2).Set(2, -3).Set(1, 1).Set(0, -5)
	d := p.Differentiate()
	for _, x := range []float64{-2, -0.5, 0, 1.25, 3} {
		want := 8*x*x*x - 6*x + 1
		assert.InDelta(t, want, d.Evaluate(x), 1e-10, "x=%v", x)
	}
}

func TestPolynomial_FromRoots(t *testing.T) {
	p := polyroot.FromRoots(1, 1, 2, 3)
	assert.True(t, p.Equal(cubic123()), "got %s", p)

	q := polyroot.FromRoots(-2, 0.5)
	assert.True(t, q.Equal(polyroot.NewPolynomial().Set(1, -2).Set(0, 1)), "got %s", q)
}

func TestPolynomial_FromCoefficientsSkipsZero(t *testing.T) {
	p := polyroot.FromCoefficients(map[int]float64{4: 0, 2: 1})
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 1, p.Len())
}

func TestPolynomial_CloneIsIndependent(t *testing.T) {
	p := cubic123()
	c := p.Clone()
	c.Set(3, 0)
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, 2, c.Degree())
}

func TestPolynomial_TermsIsCopy(t *testing.T) {
	p := cubic123()
	terms := p.Terms()
	terms[3] = 42
	assert.Equal(t, 1.0, p.Coeff(3))
}

// ============================================================
// Equal tests
// ============================================================

func TestEqual_SameTerms(t *testing.T) {
	assert.True(t, cubic123().Equal(polyroot.FromRoots(1, 1, 2, 3)))
}

func TestEqual_DifferentCoefficient(t *testing.T) {
	assert.False(t, cubic123().Equal(cubic123().Set(0, 6)))
}

func TestEqual_EmptyPolynomials(t *testing.T) {
	var zero polyroot.Polynomial
	assert.True(t, zero.Equal(polyroot.NewPolynomial()))
	assert.False(t, zero.Equal(nil))
}
