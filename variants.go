package fractal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func init() {
	Register("mandelbrot", func(string) (Fractal, error) { return Mandelbrot{}, nil })
	Register("julia", decodeJulia)
	Register("burning-ship", func(string) (Fractal, error) { return BurningShip{}, nil })
}

// Mandelbrot is the classical z^2 + c recurrence.
type Mandelbrot struct{}

// Name returns "mandelbrot".
func (Mandelbrot) Name() string { return "mandelbrot" }

// Viewport covers the whole set with its usual margin.
func (Mandelbrot) Viewport() (x, y Range) {
	return Range{Min: -2.25, Max: 0.75}, Range{Min: -1.25, Max: 1.25}
}

// Step returns z^2 + c.
func (Mandelbrot) Step(z, c complex128) complex128 { return z*z + c }

// Julia iterates z^2 + k for a constant k that does not depend on the
// pixel. The pixel's grid point only seeds z.
type Julia struct {
	// C is the recurrence constant k.
	C complex128
}

// Name returns "julia".
func (Julia) Name() string { return "julia" }

// Viewport is the unit-circle neighborhood Julia sets live in.
func (Julia) Viewport() (x, y Range) {
	return Range{Min: -1.5, Max: 1.5}, Range{Min: -1.5, Max: 1.5}
}

// Step returns z^2 + j.C, ignoring the pixel's own c.
func (j Julia) Step(z, _ complex128) complex128 { return z*z + j.C }

// Args encodes the constant as two hex floats, so a worker process
// rebuilds it bit for bit.
func (j Julia) Args() string {
	return strconv.FormatFloat(real(j.C), 'x', -1, 64) + "," +
		strconv.FormatFloat(imag(j.C), 'x', -1, 64)
}

// decodeJulia parses the "re,im" argument string. An empty string yields
// the classic dendrite constant -0.8+0.156i.
func decodeJulia(args string) (Fractal, error) {
	if args == "" {
		return Julia{C: complex(-0.8, 0.156)}, nil
	}
	res, ims, ok := strings.Cut(args, ",")
	if !ok {
		return nil, fmt.Errorf("fractal: julia arguments %q: want \"re,im\"", args)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(res), 64)
	if err != nil {
		return nil, fmt.Errorf("fractal: julia real part %q: %w", res, err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(ims), 64)
	if err != nil {
		return nil, fmt.Errorf("fractal: julia imaginary part %q: %w", ims, err)
	}
	return Julia{C: complex(re, im)}, nil
}

// BurningShip folds z into the closed first quadrant before squaring,
// which bends the escape boundary into the ship silhouette.
type BurningShip struct{}

// Name returns "burning-ship".
func (BurningShip) Name() string { return "burning-ship" }

// Viewport frames the main ship.
func (BurningShip) Viewport() (x, y Range) {
	return Range{Min: -2.5, Max: 1.5}, Range{Min: -2, Max: 1}
}

// Step returns (|Re z| + i|Im z|)^2 + c.
func (BurningShip) Step(z, c complex128) complex128 {
	z = complex(math.Abs(real(z)), math.Abs(imag(z)))
	return z*z + c
}
