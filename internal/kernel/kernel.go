// Package kernel implements the escape-time iteration over decoded rows.
package kernel

import (
	"math"
	"math/cmplx"
)

// StepFunc advances one pixel by one round of the recurrence. z is the
// pixel's current value and c the grid point it was seeded from.
type StepFunc func(z, c complex128) complex128

// Kernel holds the iteration configuration shared by every row of a job:
// the recurrence step, the round cap, and the escape horizon with its
// smoothing offset log2(log(horizon)), computed once.
type Kernel struct {
	step       StepFunc
	iterations int
	horizon    float64
	logHorizon float64
}

// New returns a kernel for the given recurrence, round cap and horizon.
func New(step StepFunc, iterations int, horizon float64) Kernel {
	return Kernel{
		step:       step,
		iterations: iterations,
		horizon:    horizon,
		logHorizon: math.Log2(math.Log(horizon)),
	}
}

// LogHorizon returns the smoothing offset log2(log(horizon)).
func (k Kernel) LogHorizon() float64 { return k.logHorizon }

// IterateRow advances every pixel of one row to its final state.
//
// All four slices must have the same length. c is read only; z and n carry
// the pixel state in and out; q receives the smoothed escape count.
//
// A pixel iterates only while |z| < horizon, so a pixel that has already
// crossed the horizon, or whose magnitude is not comparable, is frozen and
// keeps its incoming n. After the rounds, an n equal to the final round
// index is remapped to 0 so that pixels that never escape read as interior.
// The smoothed count is n + 1 - log2(log|z|) + log2(log(horizon)); when
// |z| <= 1 the inner logarithm has no real value and q falls back to 0.
func (k Kernel) IterateRow(c, z []complex128, n, q []float64) {
	for i := range c {
		ci := c[i]
		zi := z[i]
		ni := n[i]
		for r := 0; r < k.iterations; r++ {
			if !(cmplx.Abs(zi) < k.horizon) {
				break
			}
			zi = k.step(zi, ci)
			ni = float64(r)
		}
		if ni == float64(k.iterations-1) {
			ni = 0
		}
		az := cmplx.Abs(zi)
		qi := 0.0
		if az > 1 {
			qi = ni + 1 - math.Log2(math.Log(az)) + k.logHorizon
		}
		z[i] = zi
		n[i] = ni
		q[i] = qi
	}
}
