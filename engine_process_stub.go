//go:build !linux

package fractal

import "context"

// runProcesses needs memfd-backed segments, which only Linux provides.
func (e *Engine) runProcesses(ctx context.Context, j *job) error {
	return ErrUnsupported
}
