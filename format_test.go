package polyroot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/polyroot"
)

func TestString(t *testing.T) {
	cases := []struct {
		p    *polyroot.Polynomial
		want string
	}{
		{cubic123(), "f(x) = x^3 - 6x^2 + 11x - 6"},
		{polyroot.NewPolynomial().Set(4, -2).Set(1, 0.5), "f(x) = -2x^4 + 0.5x"},
		{polyroot.NewPolynomial().Set(1, -1), "f(x) = -x"},
		{polyroot.NewPolynomial().Set(0, 1), "f(x) = 1"},
		{polyroot.NewPolynomial(), "f(x) = 0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.String())
	}
}

func TestLaTeX(t *testing.T) {
	assert.Equal(t, "x^{3} - 6x^{2} + 11x - 6", cubic123().LaTeX())
	assert.Equal(t, "0", polyroot.NewPolynomial().LaTeX())
}
