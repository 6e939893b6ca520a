// Package fractal computes escape-time fractals in parallel over shared
// binary buffers.
//
// # Overview
//
// fractal iterates a complex recurrence (Mandelbrot by default) over a
// pixel grid and produces a smoothed escape-count field suitable for
// coloring. The grid is split into contiguous row spans, each span becomes
// one task, and tasks run either on a pool of goroutines or, on Linux, in
// separate worker processes that see the same buffers through shared
// memory. Buffer contents are fixed-layout binary records, so results are
// identical bit for bit no matter how the work was split or where it ran.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	eng := fractal.New(fractal.Mandelbrot{})
//	field, err := eng.Compute(context.Background(), fractal.Params{
//	    Width:      1024,
//	    Height:     768,
//	    Iterations: 256,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = field.At(512, 384) // smoothed escape count of one pixel
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Params, Field, the Fractal interface and its
//     built-in variants
//   - Internal: rowcodec (binary row records), partition (row spans),
//     kernel (the iteration itself), track (at-most-once execution),
//     shm (heap and process-shared segments), parallel (worker pool)
//
// # Determinism
//
// For fixed parameters the output is a pure function of the input: every
// pixel is computed independently in double precision, tasks never share
// state beyond their own rows, and assembly reads back exactly the bytes
// the workers wrote. Worker count, task count and execution mode do not
// change a single bit of the result.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
