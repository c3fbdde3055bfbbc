package polyroot

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ============================================================
// Polynomial: sparse exponent to coefficient map
// ============================================================

// Polynomial is a single-variable polynomial with real coefficients.
// Zero coefficients are never stored, so the degree is always the largest
// stored exponent (0 for the zero polynomial).
type Polynomial struct {
	coeffs map[int]float64
	degree int
}

func NewPolynomial() *Polynomial {
	return &Polynomial{coeffs: map[int]float64{}}
}

// FromCoefficients builds a polynomial from an exponent → coefficient map.
// Zero entries are skipped and the map is copied.
func FromCoefficients(coeffs map[int]float64) *Polynomial {
	p := NewPolynomial()
	for e, c := range coeffs {
		p.Set(e, c)
	}
	return p
}

// FromRoots builds lead·(x - r1)(x - r2)...(x - rn).
func FromRoots(lead float64, roots ...float64) *Polynomial {
	dense := []float64{lead}
	for _, r := range roots {
		next := make([]float64, len(dense)+1)
		for i, c := range dense {
			next[i+1] += c
			next[i] -= c * r
		}
		dense = next
	}
	p := NewPolynomial()
	for e, c := range dense {
		p.Set(e, c)
	}
	return p
}

// Set stores coeff at exponent exp and returns p for chaining.
// A zero coefficient removes the term.
func (p *Polynomial) Set(exp int, coeff float64) *Polynomial {
	if exp < 0 {
		panic(fmt.Sprintf("polyroot: negative exponent %d", exp))
	}
	if p.coeffs == nil {
		p.coeffs = map[int]float64{}
	}
	if coeff == 0 {
		if _, ok := p.coeffs[exp]; !ok {
			return p
		}
		delete(p.coeffs, exp)
		if exp == p.degree {
			p.degree = 0
			for e := range p.coeffs {
				if e > p.degree {
					p.degree = e
				}
			}
		}
		return p
	}
	p.coeffs[exp] = coeff
	if exp > p.degree {
		p.degree = exp
	}
	return p
}

func (p *Polynomial) Coeff(exp int) float64 { return p.coeffs[exp] }
func (p *Polynomial) Degree() int           { return p.degree }
func (p *Polynomial) Leading() float64      { return p.coeffs[p.degree] }
func (p *Polynomial) Len() int              { return len(p.coeffs) }
func (p *Polynomial) IsZero() bool          { return len(p.coeffs) == 0 }

// Exponents returns the stored exponents in ascending order.
func (p *Polynomial) Exponents() []int {
	exps := maps.Keys(p.coeffs)
	slices.Sort(exps)
	return exps
}

// Terms returns a copy of the exponent → coefficient map.
func (p *Polynomial) Terms() map[int]float64 {
	return maps.Clone(p.coeffs)
}

func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: maps.Clone(p.coeffs), degree: p.degree}
}

// Evaluate returns p(x) using Horner's scheme from the degree down to 0.
func (p *Polynomial) Evaluate(x float64) float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	y := p.coeffs[p.degree]
	for e := p.degree - 1; e >= 0; e-- {
		y = y*x + p.coeffs[e]
	}
	return y
}

// Differentiate returns p' as a new polynomial. p is left unchanged.
func (p *Polynomial) Differentiate() *Polynomial {
	d := NewPolynomial()
	for e, c := range p.coeffs {
		if e == 0 {
			continue
		}
		d.Set(e-1, c*float64(e))
	}
	return d
}

// Equal reports whether p and other store the same terms.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.degree == other.degree && cmp.Equal(p.coeffs, other.coeffs, cmpopts.EquateEmpty())
}
