package polyroot

// Newton runs exactly Options.Iterations steps of x ← x - p(x)/p'(x) from x0
// and returns the last iterate. There is no convergence or divergence check;
// a zero derivative turns the result into NaN or ±Inf and that is what the
// caller gets back.
func (f *Finder) Newton(p *Polynomial, x0 float64) float64 {
	d := p.Differentiate()
	x := x0
	for i := 0; i < f.opts.Iterations; i++ {
		x -= p.Evaluate(x) / d.Evaluate(x)
	}
	return x
}
