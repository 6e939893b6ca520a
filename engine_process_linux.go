//go:build linux

package fractal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// runProcesses executes every task in its own worker process. Each child
// inherits the five segment files as descriptors 3 through 7 and its task
// assignment through the environment. A worker exiting non-zero, or a
// canceled ctx, kills the remaining workers and fails the job. After the
// last worker exits, the completion flags are verified.
func (e *Engine) runProcesses(ctx context.Context, j *job) error {
	if err := j.advance(phaseBuffersAllocated, phaseDispatched); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	files := []*os.File{
		j.bufC.File(), j.bufZ.File(), j.bufN.File(), j.bufQ.File(), j.flagSeg.File(),
	}
	cmds := make([]*exec.Cmd, len(j.tasks))
	for i, t := range j.tasks {
		cmd := exec.CommandContext(runCtx, e.workerCmd[0], e.workerCmd[1:]...)
		cmd.Env = append(os.Environ(), workerEnv(j.params, j.fract, t, len(j.tasks))...)
		cmd.ExtraFiles = files
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			cancel()
			for _, c := range cmds[:i] {
				c.Wait()
			}
			return fmt.Errorf("fractal: start worker %d: %w", t.id, err)
		}
		cmds[i] = cmd
		Logger().Debug("worker started",
			"task", t.id, "row_start", t.span.Start, "row_end", t.span.End,
			"pid", cmd.Process.Pid)
	}

	if err := j.advance(phaseDispatched, phaseWaiting); err != nil {
		return err
	}
	var firstErr error
	for i, cmd := range cmds {
		if err := cmd.Wait(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("fractal: worker %d: %w", j.tasks[i].id, err)
			}
			cancel()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if firstErr != nil {
		return firstErr
	}
	if !j.tracker.AllDone() {
		return errors.New("fractal: worker processes exited without completing all tasks")
	}
	return nil
}
