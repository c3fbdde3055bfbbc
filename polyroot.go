// Package polyroot finds the real roots of single-variable polynomials.
//
// Design goals:
//   - Sparse exponent → coefficient storage, zero terms never stored
//   - Recursive derivative-guided bracketing for degree ≥ 3
//   - Fixed-budget Newton refinement with explicit rounding policy
//   - Deterministic output for a given set of Options
//   - Safe for concurrent use; no package-level mutable state
package polyroot

// FindRoots returns the real roots of p using DefaultOptions.
// Degree 2 goes through the quadratic formula, degree ≥ 3 through the
// recursive finder. Anything below degree 2 is rejected.
func FindRoots(p *Polynomial) ([]float64, error) {
	return NewFinder(DefaultOptions(), nil).Find(p)
}

// SolveQuadratic returns the two raw quadratic-formula values for p.
// Either value may be NaN when the discriminant is negative.
func SolveQuadratic(p *Polynomial) ([]float64, error) {
	return NewFinder(DefaultOptions(), nil).Quadratic(p)
}
