package polyroot

const (
	DefaultIterations       = 1000
	DefaultEvalPrecision    = 10
	DefaultDisplayPrecision = 3
	DefaultMaxDegree        = 64
)

// MaxExponent bounds exponents accepted from JSON and other external input.
const MaxExponent = 4096

// Options tunes the finder. Non-positive numeric fields fall back to their
// defaults.
type Options struct {
	// Iterations is the fixed Newton budget. Every refinement runs exactly
	// this many steps.
	Iterations int

	// EvalPrecision is the number of fractional digits kept before a
	// function value is compared against zero.
	EvalPrecision int

	// DisplayPrecision is the number of fractional digits kept in emitted
	// roots.
	DisplayPrecision int

	// MaxDegree is the highest degree Find, Roots and the tools accept.
	// Each degree above 2 costs one level of recursion.
	MaxDegree int

	// Strict turns a NaN root candidate into ErrNumericDegeneracy instead of
	// dropping it.
	Strict bool
}

func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		EvalPrecision:    DefaultEvalPrecision,
		DisplayPrecision: DefaultDisplayPrecision,
		MaxDegree:        DefaultMaxDegree,
	}
}

func (o Options) withDefaults() Options {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.EvalPrecision <= 0 {
		o.EvalPrecision = DefaultEvalPrecision
	}
	if o.DisplayPrecision <= 0 {
		o.DisplayPrecision = DefaultDisplayPrecision
	}
	if o.MaxDegree <= 0 {
		o.MaxDegree = DefaultMaxDegree
	}
	return o
}
