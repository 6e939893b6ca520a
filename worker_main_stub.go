//go:build !linux

package fractal

import "context"

// WorkerMain is the worker-process entry point; worker processes are only
// supported on Linux.
func WorkerMain(ctx context.Context) error {
	return ErrUnsupported
}
