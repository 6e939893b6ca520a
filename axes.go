package fractal

// Axes holds the sampled coordinate values of a grid. X[i] is the real
// part of every pixel in column i, Y[j] the imaginary part of every pixel
// in row j, so pixel (i, j) is seeded from complex(X[i], Y[j]).
type Axes struct {
	X, Y []float64
}

// SampleAxes samples the coordinate axes for p. Samples start at Min and
// are spaced Length/(n-1) apart, so the last sample lands on Max up to
// rounding. An axis with a single sample sits at Min.
//
// Only the dimensions and ranges of p are consulted.
func SampleAxes(p Params) (Axes, error) {
	if p.Width < 1 || p.Height < 1 {
		return Axes{}, ErrInvalidDimensions
	}
	if !p.X.valid() || !p.Y.valid() {
		return Axes{}, ErrInvalidRange
	}
	return Axes{
		X: sampleAxis(p.X, p.Width),
		Y: sampleAxis(p.Y, p.Height),
	}, nil
}

func sampleAxis(r Range, n int) []float64 {
	var step float64
	if n > 1 {
		step = r.Length() / float64(n-1)
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = r.Min + float64(i)*step
	}
	return v
}
