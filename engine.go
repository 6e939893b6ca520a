package fractal

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gogpu/fractal/internal/kernel"
	"github.com/gogpu/fractal/internal/parallel"
	"github.com/gogpu/fractal/internal/partition"
	"github.com/gogpu/fractal/internal/rowcodec"
	"github.com/gogpu/fractal/internal/shm"
	"github.com/gogpu/fractal/internal/track"
)

// Engine computes fields for one fractal variant.
//
// The zero configuration runs one goroutine worker per CPU and one task
// per worker. WithWorkerProcesses switches to separate worker processes
// over shared memory segments; results are identical either way.
//
// An Engine holds no resources between computations and is safe for
// concurrent use: every Compute call builds its own job.
type Engine struct {
	fractal   Fractal
	workers   int
	tasks     int
	workerCmd []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of parallel workers. Zero or less means one
// worker per available CPU.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithTasks fixes the number of tasks a grid is split into, between 1 and
// the grid height. Zero means one task per worker, capped at the height.
func WithTasks(n int) Option {
	return func(e *Engine) { e.tasks = n }
}

// WithWorkerProcesses runs every task in its own worker process started
// from argv, with the buffers shared through memory files. argv is
// typically the running executable plus a flag that routes the child into
// WorkerMain. Only available on Linux.
func WithWorkerProcesses(argv ...string) Option {
	return func(e *Engine) { e.workerCmd = argv }
}

// New returns an engine for the given variant.
func New(f Fractal, opts ...Option) *Engine {
	e := &Engine{fractal: f}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) processMode() bool { return len(e.workerCmd) > 0 }

// =============================================================================
// Job lifecycle
// =============================================================================

// phase tracks a job through its one-way lifecycle.
type phase uint8

const (
	phaseConfigured phase = iota
	phaseBuffersAllocated
	phaseDispatched
	phaseWaiting
	phaseAssembled
)

func (p phase) String() string {
	switch p {
	case phaseConfigured:
		return "configured"
	case phaseBuffersAllocated:
		return "buffers-allocated"
	case phaseDispatched:
		return "dispatched"
	case phaseWaiting:
		return "waiting-for-completion"
	case phaseAssembled:
		return "assembled"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// task is one unit of dispatch: a row span bound to its completion flag id.
type task struct {
	id   int
	span partition.Span
}

// job is one computation in flight. Its segments are released when Compute
// returns, whichever phase it reached.
type job struct {
	params Params
	fract  Fractal
	phase  phase

	axes  Axes
	tasks []task

	bufC, bufZ, bufN, bufQ *shm.Segment
	flagSeg                *shm.Segment
	flags                  []uint32
	tracker                *track.Tracker
}

// advance moves the job from one phase to the next. Phases only ever move
// forward, one step at a time.
func (j *job) advance(from, to phase) error {
	if j.phase != from {
		return fmt.Errorf("fractal: job is %s, cannot advance %s to %s", j.phase, from, to)
	}
	j.phase = to
	Logger().Debug("job phase", "phase", to)
	return nil
}

func (j *job) release() {
	for _, seg := range []*shm.Segment{j.bufC, j.bufZ, j.bufN, j.bufQ, j.flagSeg} {
		if seg == nil {
			continue
		}
		if err := seg.Close(); err != nil {
			Logger().Warn("segment release", "err", err)
		}
	}
}

// =============================================================================
// Compute
// =============================================================================

// Compute runs one full computation and returns the assembled field.
//
// The job validates its configuration, allocates and seeds the shared
// buffers, dispatches one task per row span, waits until every task's
// completion flag is set, and decodes the smoothed counts into a Field.
// Configuration problems are reported before any buffer exists. A failure
// in any task, a duplicate dispatch, or a canceled ctx fails the whole
// computation; there are no partial results.
func (e *Engine) Compute(ctx context.Context, p Params) (*Field, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p = p.withDefaults(e.fractal)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := e.tasks
	if n == 0 {
		n = defaultTasks(e.workers, p.Height)
	}
	spans, err := partition.Spans(p.Height, n)
	if err != nil {
		return nil, err
	}

	j := &job{params: p, fract: e.fractal, phase: phaseConfigured}
	j.tasks = make([]task, len(spans))
	for i, span := range spans {
		j.tasks[i] = task{id: i, span: span}
	}
	defer j.release()

	Logger().Info("computing",
		"variant", e.fractal.Name(),
		"width", p.Width, "height", p.Height,
		"iterations", p.Iterations,
		"tasks", len(j.tasks),
		"processes", e.processMode())

	if err := e.allocate(j); err != nil {
		return nil, err
	}
	if e.processMode() {
		err = e.runProcesses(ctx, j)
	} else {
		err = e.runGoroutines(ctx, j)
	}
	if err != nil {
		return nil, err
	}
	field, err := e.assemble(j)
	if err != nil {
		return nil, err
	}
	Logger().Info("job done", "duration", time.Since(start))
	return field, nil
}

// defaultTasks is one task per worker, capped at the row count so that no
// span comes out empty.
func defaultTasks(workers, height int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > height {
		n = height
	}
	return n
}

// allocate creates the five shared segments and seeds them: C carries the
// grid points, Z starts as a byte copy of C, N and Q as zero rows, and
// every row ends in the codec sentinel. Flag words start clear.
func (e *Engine) allocate(j *job) error {
	axes, err := SampleAxes(j.params)
	if err != nil {
		return err
	}
	j.axes = axes

	width, height := j.params.Width, j.params.Height
	cLen := rowcodec.ComplexRowLen(width)
	rLen := rowcodec.RealRowLen(width)

	segment := func(name string, size int) (*shm.Segment, error) {
		if e.processMode() {
			return shm.NewShared(name, size)
		}
		return shm.New(size)
	}
	if j.bufC, err = segment("fractal-c", height*cLen); err != nil {
		return err
	}
	if j.bufZ, err = segment("fractal-z", height*cLen); err != nil {
		return err
	}
	if j.bufN, err = segment("fractal-n", height*rLen); err != nil {
		return err
	}
	if j.bufQ, err = segment("fractal-q", height*rLen); err != nil {
		return err
	}
	if e.processMode() {
		if j.flagSeg, err = segment("fractal-flags", 4*len(j.tasks)); err != nil {
			return err
		}
		if j.flags, err = j.flagSeg.Words(); err != nil {
			return err
		}
	} else {
		j.flags = make([]uint32, len(j.tasks))
	}
	j.tracker = track.New(j.flags)

	cb, zb := j.bufC.Bytes(), j.bufZ.Bytes()
	nb, qb := j.bufN.Bytes(), j.bufQ.Bytes()
	crow := make([]complex128, width)
	zeros := make([]float64, width)
	for y := 0; y < height; y++ {
		for x := range crow {
			crow[x] = complex(axes.X[x], axes.Y[y])
		}
		if err := rowcodec.EncodeComplexRow(cb[y*cLen:(y+1)*cLen], crow); err != nil {
			return err
		}
		copy(zb[y*cLen:(y+1)*cLen], cb[y*cLen:(y+1)*cLen])
		if err := rowcodec.EncodeRealRow(nb[y*rLen:(y+1)*rLen], zeros); err != nil {
			return err
		}
		if err := rowcodec.EncodeRealRow(qb[y*rLen:(y+1)*rLen], zeros); err != nil {
			return err
		}
	}

	Logger().Debug("buffers allocated",
		"complex_row_bytes", cLen,
		"real_row_bytes", rLen,
		"total_bytes", 2*height*cLen+2*height*rLen+4*len(j.tasks))
	return j.advance(phaseConfigured, phaseBuffersAllocated)
}

// runGoroutines executes the job's tasks on a pool of worker goroutines.
// The first failing task cancels the rest; they stop at their next row.
func (e *Engine) runGoroutines(ctx context.Context, j *job) error {
	if err := j.advance(phaseBuffersAllocated, phaseDispatched); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	k := kernel.New(j.fract.Step, j.params.Iterations, j.params.Horizon)
	cb, zb := j.bufC.Bytes(), j.bufZ.Bytes()
	nb, qb := j.bufN.Bytes(), j.bufQ.Bytes()
	width := j.params.Width

	pool := parallel.NewPool(e.workers)
	defer pool.Close()

	errs := make([]error, len(j.tasks))
	work := make([]func(), len(j.tasks))
	for i, t := range j.tasks {
		t := t
		work[i] = func() {
			err := j.tracker.Run(t.id, func() error {
				return runRows(runCtx, width, k, t.span, cb, zb, nb, qb)
			})
			if err != nil {
				errs[t.id] = err
				cancel()
			}
		}
	}
	pool.ExecuteAll(work)

	if err := j.advance(phaseDispatched, phaseWaiting); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
		if !errors.Is(err, context.Canceled) {
			firstErr = err
			break
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if !j.tracker.AllDone() {
		return errors.New("fractal: tasks returned without completing")
	}
	return nil
}

// runRows iterates rows [span.Start, span.End) of the shared buffers:
// decode, iterate, encode back in place. ctx is checked before every row.
func runRows(ctx context.Context, width int, k kernel.Kernel, span partition.Span, cb, zb, nb, qb []byte) error {
	cLen := rowcodec.ComplexRowLen(width)
	rLen := rowcodec.RealRowLen(width)
	crow := make([]complex128, width)
	zrow := make([]complex128, width)
	nrow := make([]float64, width)
	qrow := make([]float64, width)
	for y := span.Start; y < span.End; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rowcodec.DecodeComplexRow(crow, cb[y*cLen:(y+1)*cLen]); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		if err := rowcodec.DecodeComplexRow(zrow, zb[y*cLen:(y+1)*cLen]); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		if err := rowcodec.DecodeRealRow(nrow, nb[y*rLen:(y+1)*rLen]); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		if err := rowcodec.DecodeRealRow(qrow, qb[y*rLen:(y+1)*rLen]); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		k.IterateRow(crow, zrow, nrow, qrow)
		if err := rowcodec.EncodeComplexRow(zb[y*cLen:(y+1)*cLen], zrow); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		if err := rowcodec.EncodeRealRow(nb[y*rLen:(y+1)*rLen], nrow); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
		if err := rowcodec.EncodeRealRow(qb[y*rLen:(y+1)*rLen], qrow); err != nil {
			return fmt.Errorf("fractal: row %d: %w", y, err)
		}
	}
	return nil
}

// assemble decodes the Q buffer into the result field.
func (e *Engine) assemble(j *job) (*Field, error) {
	if err := j.advance(phaseWaiting, phaseAssembled); err != nil {
		return nil, err
	}
	width, height := j.params.Width, j.params.Height
	rLen := rowcodec.RealRowLen(width)
	qb := j.bufQ.Bytes()
	field := newField(width, height)
	for y := 0; y < height; y++ {
		if err := rowcodec.DecodeRealRow(field.Row(y), qb[y*rLen:(y+1)*rLen]); err != nil {
			return nil, fmt.Errorf("fractal: row %d: %w", y, err)
		}
	}
	return field, nil
}
