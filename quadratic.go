package polyroot

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Quadratic solves a·x² + b·x + c = 0 for a degree-2 polynomial and returns
// exactly two values, the + branch first. A negative discriminant yields two
// NaN values; they are not filtered here.
func (f *Finder) Quadratic(p *Polynomial) ([]float64, error) {
	if p.Degree() != 2 {
		return nil, fmt.Errorf("%w: quadratic solver needs degree 2, got %d", ErrUnsupportedDegree, p.Degree())
	}
	a, b, c := p.Coeff(2), p.Coeff(1), p.Coeff(0)
	if a == 0 {
		return nil, fmt.Errorf("%w: quadratic solver needs a non-zero leading coefficient", ErrUnsupportedDegree)
	}
	sq := math.Sqrt(b*b - 4*a*c)
	denom := 2 * a
	x1 := (-b + sq) / denom
	x2 := (-b - sq) / denom
	f.logger.Debug("quadratic solved",
		zap.Float64("a", a), zap.Float64("b", b), zap.Float64("c", c),
		zap.Float64("x1", x1), zap.Float64("x2", x2))
	return []float64{x1, x2}, nil
}
