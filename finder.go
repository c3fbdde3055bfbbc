package polyroot

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Finder locates real polynomial roots. A Finder only carries its options
// and logger, so one value can serve any number of goroutines.
type Finder struct {
	opts   Options
	logger *zap.Logger
}

// NewFinder returns a Finder using opts. A nil logger disables logging.
func NewFinder(opts Options, logger *zap.Logger) *Finder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{opts: opts.withDefaults(), logger: logger}
}

func (f *Finder) Options() Options { return f.opts }

// Find dispatches on degree: 2 goes to Quadratic, 3 and above to Roots.
// Quadratic results are rounded and NaN values removed the same way Roots
// treats its own candidates.
func (f *Finder) Find(p *Polynomial) ([]float64, error) {
	if err := f.checkDegree(p); err != nil {
		return nil, err
	}
	switch {
	case p.Degree() < 2:
		return nil, fmt.Errorf("%w: need degree >= 2, got %d", ErrUnsupportedDegree, p.Degree())
	case p.Degree() == 2:
		xs, err := f.Quadratic(p)
		if err != nil {
			return nil, err
		}
		set := f.newRootSet()
		for _, x := range xs {
			set.add(x)
		}
		return f.finish(p, set)
	default:
		return f.Roots(p)
	}
}

// Roots finds the real roots of p, degree 3 or above.
//
// The roots of p' are the only places p can turn around, so between two
// consecutive critical points p is monotonic and holds at most one root.
// Critical points come from Quadratic when p' is quadratic and from a
// recursive Roots call otherwise.
func (f *Finder) Roots(p *Polynomial) ([]float64, error) {
	n := p.Degree()
	if n < 3 {
		return nil, fmt.Errorf("%w: root finder needs degree >= 3, got %d", ErrUnsupportedDegree, n)
	}
	if err := f.checkDegree(p); err != nil {
		return nil, err
	}
	a := p.Leading()

	crit, err := f.criticalPoints(p.Differentiate())
	if err != nil {
		return nil, err
	}
	f.logger.Debug("critical points",
		zap.Int("degree", n), zap.Float64s("points", crit))

	set := f.newRootSet()
	odd := !IsEven(n)

	// Odd degree with fewer than two turning points crosses zero once.
	if odd && len(crit) < 2 {
		x := f.Newton(p, 1.0)
		if math.IsNaN(x) {
			f.logger.Debug("newton start failed, retrying", zap.Int("degree", n), zap.Float64("start", 2.0))
			x = f.Newton(p, 2.0)
		}
		set.add(x)
		return f.finish(p, set)
	}

	// Even degree with a single turning point that touches zero.
	if !odd && len(crit) == 1 && f.isZero(p.Evaluate(crit[0])) {
		set.add(crit[0])
		return f.finish(p, set)
	}

	if len(crit) == 0 {
		return f.finish(p, set)
	}

	slices.Sort(crit)
	first, last := crit[0], crit[len(crit)-1]

	yFirst := f.evalRound(p.Evaluate(first))
	var searchLeft bool
	if odd {
		searchLeft = a > 0 && yFirst > 0 || a < 0 && yFirst < 0
	} else {
		searchLeft = a > 0 && yFirst < 0 || a < 0 && yFirst > 0
	}
	if searchLeft {
		f.logger.Debug("searching left", zap.Int("degree", n), zap.Float64("start", first-1))
		set.add(f.Newton(p, first-1))
	}

	for i := 0; i < len(crit)-1; i++ {
		x1, x2 := crit[i], crit[i+1]
		y1 := f.evalRound(p.Evaluate(x1))
		y2 := f.evalRound(p.Evaluate(x2))
		switch {
		case i == 0 && y1 == 0:
			set.add(x1)
		case y2 == 0:
			set.add(x2)
		case SignChange(y1, y2):
			mid := (x1 + x2) / 2
			f.logger.Debug("searching interval",
				zap.Int("degree", n), zap.Float64("x1", x1), zap.Float64("x2", x2), zap.Float64("start", mid))
			set.add(f.Newton(p, mid))
		}
	}

	yLast := f.evalRound(p.Evaluate(last))
	if a > 0 && yLast < 0 || a < 0 && yLast > 0 {
		f.logger.Debug("searching right", zap.Int("degree", n), zap.Float64("start", last+1))
		set.add(f.Newton(p, last+1))
	}

	return f.finish(p, set)
}

func (f *Finder) checkDegree(p *Polynomial) error {
	if p.Degree() > f.opts.MaxDegree {
		return fmt.Errorf("%w: degree %d exceeds limit %d", ErrUnsupportedDegree, p.Degree(), f.opts.MaxDegree)
	}
	return nil
}

// criticalPoints returns the real roots of d with NaN values removed.
func (f *Finder) criticalPoints(d *Polynomial) ([]float64, error) {
	var (
		xs  []float64
		err error
	)
	if d.Degree() == 2 {
		xs, err = f.Quadratic(d)
	} else {
		xs, err = f.Roots(d)
	}
	if err != nil {
		return nil, err
	}
	crit := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			crit = append(crit, x)
		}
	}
	return crit, nil
}

func (f *Finder) evalRound(y float64) float64 {
	return Round(y, f.opts.EvalPrecision)
}

func (f *Finder) isZero(y float64) bool {
	return IsZero(y, f.opts.EvalPrecision)
}

func (f *Finder) finish(p *Polynomial, set *rootSet) ([]float64, error) {
	if set.discarded > 0 {
		if f.opts.Strict {
			return nil, fmt.Errorf("%w: %d non-numeric root candidates for degree %d",
				ErrNumericDegeneracy, set.discarded, p.Degree())
		}
		f.logger.Warn("dropped non-numeric root candidates",
			zap.Int("degree", p.Degree()), zap.Int("count", set.discarded))
	}
	f.logger.Debug("roots found", zap.Int("degree", p.Degree()), zap.Float64s("roots", set.roots))
	return set.roots, nil
}

// ============================================================
// rootSet: per-call accumulator
// ============================================================

type rootSet struct {
	places    int
	roots     []float64
	discarded int
}

func (f *Finder) newRootSet() *rootSet {
	return &rootSet{places: f.opts.DisplayPrecision, roots: []float64{}}
}

// add rounds x to display precision and appends it. NaN values are counted,
// not stored.
func (s *rootSet) add(x float64) {
	if math.IsNaN(x) {
		s.discarded++
		return
	}
	s.roots = append(s.roots, normalizeZero(Round(x, s.places)))
}
