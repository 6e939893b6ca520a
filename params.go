package fractal

import "math"

// Defaults applied by the engine when the corresponding Params field is
// left zero.
const (
	// DefaultIterations is the default round cap.
	DefaultIterations = 256

	// DefaultHorizon is the default escape horizon, 2^36. It is far
	// beyond the classical escape radius of 2 so that escape counts
	// carry enough tail for smoothing.
	DefaultHorizon = float64(0x1000000000)
)

// Range is a closed interval [Min, Max] on one coordinate axis.
type Range struct {
	Min, Max float64
}

// Length returns Max - Min.
func (r Range) Length() float64 { return r.Max - r.Min }

// IsZero reports whether the range is the zero value, which Params treats
// as "use the variant's viewport".
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

func (r Range) valid() bool {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return false
	}
	return r.Min < r.Max
}

// Params configures one computation.
//
// Width and Height are required. Everything else has a working zero value:
// zero ranges resolve to the variant's viewport, a zero Iterations to
// DefaultIterations, and a zero Horizon to DefaultHorizon.
type Params struct {
	// Width and Height are the grid size in pixels.
	Width, Height int

	// Iterations caps the number of recurrence rounds per pixel.
	Iterations int

	// X and Y bound the sampled region of the complex plane. X is the
	// real axis, Y the imaginary axis.
	X, Y Range

	// Horizon is the escape magnitude. A pixel iterates only while
	// |z| < Horizon.
	Horizon float64
}

// withDefaults resolves zero fields against the variant's viewport and the
// package defaults. Validation still applies to the result.
func (p Params) withDefaults(f Fractal) Params {
	if p.Iterations == 0 {
		p.Iterations = DefaultIterations
	}
	if p.Horizon == 0 {
		p.Horizon = DefaultHorizon
	}
	if p.X.IsZero() || p.Y.IsZero() {
		x, y := f.Viewport()
		if p.X.IsZero() {
			p.X = x
		}
		if p.Y.IsZero() {
			p.Y = y
		}
	}
	return p
}

// Validate checks a fully resolved Params. The engine resolves defaults
// before validating, so callers only need Validate when they bypass the
// engine.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return ErrInvalidDimensions
	}
	if p.Iterations < 1 {
		return ErrInvalidIterations
	}
	if !p.X.valid() || !p.Y.valid() {
		return ErrInvalidRange
	}
	if math.IsNaN(p.Horizon) || math.IsInf(p.Horizon, 0) || p.Horizon <= 1 {
		return ErrInvalidHorizon
	}
	return nil
}
