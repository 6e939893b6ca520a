//go:build linux

package fractal

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/fractal/internal/kernel"
	"github.com/gogpu/fractal/internal/rowcodec"
	"github.com/gogpu/fractal/internal/shm"
	"github.com/gogpu/fractal/internal/track"
)

// WorkerMain runs the body of a worker process spawned by an engine in
// process mode: it decodes its task assignment from the environment, maps
// the five buffer segments from the inherited descriptors, rebuilds the
// variant from the registry, and executes its row span under the
// completion tracker. Call it from a dedicated command entry and exit
// non-zero on error; the parent treats that exit as a failed job.
func WorkerMain(ctx context.Context) error {
	a, err := parseWorkerEnv(os.Getenv)
	if err != nil {
		return err
	}
	f, err := Lookup(a.variant, a.args)
	if err != nil {
		return err
	}

	cLen := rowcodec.ComplexRowLen(a.width)
	rLen := rowcodec.RealRowLen(a.width)
	segC, err := attachFD(3, "fractal-c", a.height*cLen)
	if err != nil {
		return err
	}
	defer segC.Close()
	segZ, err := attachFD(4, "fractal-z", a.height*cLen)
	if err != nil {
		return err
	}
	defer segZ.Close()
	segN, err := attachFD(5, "fractal-n", a.height*rLen)
	if err != nil {
		return err
	}
	defer segN.Close()
	segQ, err := attachFD(6, "fractal-q", a.height*rLen)
	if err != nil {
		return err
	}
	defer segQ.Close()
	segFlags, err := attachFD(7, "fractal-flags", 4*a.tasks)
	if err != nil {
		return err
	}
	defer segFlags.Close()

	flags, err := segFlags.Words()
	if err != nil {
		return err
	}

	k := kernel.New(f.Step, a.iterations, a.horizon)
	return track.New(flags).Run(a.task, func() error {
		return runRows(ctx, a.width, k, a.span,
			segC.Bytes(), segZ.Bytes(), segN.Bytes(), segQ.Bytes())
	})
}

// attachFD maps the inherited descriptor fd as a shared segment.
func attachFD(fd uintptr, name string, size int) (*shm.Segment, error) {
	seg, err := shm.Attach(os.NewFile(fd, name), size)
	if err != nil {
		return nil, fmt.Errorf("fractal: attach fd %d: %w", fd, err)
	}
	return seg, nil
}
