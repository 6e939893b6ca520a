//go:build !linux

package shm

import "os"

// NewShared is only implemented on Linux.
func NewShared(name string, size int) (*Segment, error) { return nil, ErrUnsupported }

// Attach is only implemented on Linux.
func Attach(f *os.File, size int) (*Segment, error) { return nil, ErrUnsupported }

func unmap(b []byte) error { return ErrUnsupported }
