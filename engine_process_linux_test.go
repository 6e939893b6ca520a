//go:build linux

package fractal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// TestMain doubles as the worker entry point: the process-mode tests
// launch this test binary as the worker command, and a child that finds
// a task assignment in its environment runs WorkerMain instead of the
// test suite.
func TestMain(m *testing.M) {
	if os.Getenv(envTask) != "" {
		if err := WorkerMain(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// unregisteredFractal carries a name no registry entry backs, so a worker
// process cannot rebuild it and dies at lookup.
type unregisteredFractal struct{ Mandelbrot }

func (unregisteredFractal) Name() string { return "unregistered" }

// TestEngineCompute_ProcessModeMatchesGoroutines renders the same grid
// with worker processes and with goroutines and wants identical bits.
func TestEngineCompute_ProcessModeMatchesGoroutines(t *testing.T) {
	p := Params{Width: 33, Height: 21, Iterations: 64}
	want, err := New(Mandelbrot{}, WithWorkers(2)).Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("Compute() = %v, want nil", err)
	}
	got, err := New(Mandelbrot{}, WithTasks(4), WithWorkerProcesses(os.Args[0])).
		Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("Compute() in process mode = %v, want nil", err)
	}
	sameBits(t, got.Values(), want.Values())
}

// TestEngineCompute_ProcessModeVariantArgs renders a Julia set whose
// constant reaches the workers through the argument environment.
func TestEngineCompute_ProcessModeVariantArgs(t *testing.T) {
	f := Julia{C: complex(0.285, 0.01)}
	p := Params{Width: 16, Height: 16, Iterations: 48}
	want, err := New(f, WithWorkers(2)).Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("Compute() = %v, want nil", err)
	}
	got, err := New(f, WithTasks(3), WithWorkerProcesses(os.Args[0])).
		Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("Compute() in process mode = %v, want nil", err)
	}
	sameBits(t, got.Values(), want.Values())
}

// TestEngineCompute_ProcessModeWorkerFailure wants a worker that exits
// non-zero to fail the whole job.
func TestEngineCompute_ProcessModeWorkerFailure(t *testing.T) {
	eng := New(unregisteredFractal{}, WithTasks(2), WithWorkerProcesses(os.Args[0]))
	field, err := eng.Compute(context.Background(), Params{Width: 8, Height: 8, Iterations: 30})
	if err == nil {
		t.Fatal("Compute() = nil error, want a worker failure")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("Compute() = %v, want a worker exit error", err)
	}
	if field != nil {
		t.Error("Compute() returned a field alongside the error")
	}
}
