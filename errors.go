package fractal

import (
	"errors"

	"github.com/gogpu/fractal/internal/partition"
	"github.com/gogpu/fractal/internal/shm"
	"github.com/gogpu/fractal/internal/track"
)

// Configuration errors, reported before any buffer is allocated.
var (
	// ErrInvalidDimensions reports a grid with a non-positive width or
	// height.
	ErrInvalidDimensions = errors.New("fractal: width and height must be positive")

	// ErrInvalidIterations reports a non-positive iteration cap.
	ErrInvalidIterations = errors.New("fractal: iteration cap must be positive")

	// ErrInvalidRange reports a coordinate range that is not finite with
	// Min < Max.
	ErrInvalidRange = errors.New("fractal: coordinate range must be finite with min < max")

	// ErrInvalidHorizon reports an escape horizon outside (1, +Inf).
	ErrInvalidHorizon = errors.New("fractal: escape horizon must be finite and greater than 1")

	// ErrUnknownVariant reports a variant name with no registered decoder.
	ErrUnknownVariant = errors.New("fractal: unknown variant")
)

// Errors surfaced from the execution layers.
var (
	// ErrInvalidPartition reports a task count that cannot tile the grid
	// rows: it must be at least 1 and at most Height.
	ErrInvalidPartition = partition.ErrInvalidPartition

	// ErrDuplicateExecution reports a task that was dispatched more than
	// once. The duplicate never runs; the whole job fails.
	ErrDuplicateExecution = track.ErrDuplicateExecution

	// ErrUnsupported reports a capability missing on this platform, such
	// as process workers anywhere but Linux.
	ErrUnsupported = shm.ErrUnsupported
)
