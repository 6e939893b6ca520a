package fractal

import (
	"fmt"
	"strconv"

	"github.com/gogpu/fractal/internal/partition"
)

// Worker processes receive their task assignment through the environment,
// and the five buffer segments as inherited file descriptors 3 through 7
// in the order C, Z, N, Q, flags.
const (
	envWidth       = "FRACTAL_WIDTH"
	envHeight      = "FRACTAL_HEIGHT"
	envIterations  = "FRACTAL_ITERATIONS"
	envHorizon     = "FRACTAL_HORIZON"
	envVariant     = "FRACTAL_VARIANT"
	envVariantArgs = "FRACTAL_VARIANT_ARGS"
	envTask        = "FRACTAL_TASK"
	envTasks       = "FRACTAL_TASKS"
	envRowStart    = "FRACTAL_ROW_START"
	envRowEnd      = "FRACTAL_ROW_END"
)

// assignment is one worker process's decoded task.
type assignment struct {
	width, height int
	iterations    int
	horizon       float64
	variant       string
	args          string
	task, tasks   int
	span          partition.Span
}

// workerEnv encodes the assignment of task t as environment entries. The
// horizon crosses as a hex float so the child reads back the exact bits.
func workerEnv(p Params, f Fractal, t task, tasks int) []string {
	return []string{
		envWidth + "=" + strconv.Itoa(p.Width),
		envHeight + "=" + strconv.Itoa(p.Height),
		envIterations + "=" + strconv.Itoa(p.Iterations),
		envHorizon + "=" + strconv.FormatFloat(p.Horizon, 'x', -1, 64),
		envVariant + "=" + f.Name(),
		envVariantArgs + "=" + encodeArgs(f),
		envTask + "=" + strconv.Itoa(t.id),
		envTasks + "=" + strconv.Itoa(tasks),
		envRowStart + "=" + strconv.Itoa(t.span.Start),
		envRowEnd + "=" + strconv.Itoa(t.span.End),
	}
}

// parseWorkerEnv decodes and validates an assignment using get, which is
// os.Getenv in a real worker.
func parseWorkerEnv(get func(string) string) (assignment, error) {
	var (
		a   assignment
		err error
	)
	geti := func(key string) int {
		if err != nil {
			return 0
		}
		v, convErr := strconv.Atoi(get(key))
		if convErr != nil {
			err = fmt.Errorf("fractal: worker environment %s=%q: %w", key, get(key), convErr)
		}
		return v
	}
	a.width = geti(envWidth)
	a.height = geti(envHeight)
	a.iterations = geti(envIterations)
	a.task = geti(envTask)
	a.tasks = geti(envTasks)
	a.span.Start = geti(envRowStart)
	a.span.End = geti(envRowEnd)
	if err != nil {
		return assignment{}, err
	}
	a.horizon, err = strconv.ParseFloat(get(envHorizon), 64)
	if err != nil {
		return assignment{}, fmt.Errorf("fractal: worker environment %s=%q: %w", envHorizon, get(envHorizon), err)
	}
	a.variant = get(envVariant)
	a.args = get(envVariantArgs)

	switch {
	case a.width < 1 || a.height < 1:
		return assignment{}, ErrInvalidDimensions
	case a.iterations < 1:
		return assignment{}, ErrInvalidIterations
	case a.horizon <= 1:
		return assignment{}, ErrInvalidHorizon
	case a.tasks < 1 || a.task < 0 || a.task >= a.tasks:
		return assignment{}, fmt.Errorf("fractal: worker environment: task %d of %d", a.task, a.tasks)
	case a.span.Start < 0 || a.span.Start >= a.span.End || a.span.End > a.height:
		return assignment{}, fmt.Errorf("fractal: worker environment: rows [%d, %d) outside grid height %d",
			a.span.Start, a.span.End, a.height)
	case a.variant == "":
		return assignment{}, fmt.Errorf("fractal: worker environment %s is empty", envVariant)
	}
	return a, nil
}
