package polyroot

import "errors"

var (
	// ErrUnsupportedDegree is returned when a component receives a polynomial
	// of a degree it does not handle.
	ErrUnsupportedDegree = errors.New("polyroot: unsupported degree")

	// ErrNumericDegeneracy is returned in strict mode when a root candidate
	// turned out to be NaN.
	ErrNumericDegeneracy = errors.New("polyroot: numeric degeneracy")
)
