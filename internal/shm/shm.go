// Package shm provides byte segments that computation buffers live in.
//
// A Segment is a fixed-size block of zero-initialized memory. Heap-backed
// segments from New serve same-process workers. Process-shared segments
// from NewShared are backed by an anonymous memory file and can be mapped
// into worker processes with Attach; they are only available on Linux.
// Either kind exposes the same []byte view, so code that slices rows out
// of a segment never cares which backing it got.
package shm

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// ErrUnsupported reports that process-shared segments are not available on
// this platform.
var ErrUnsupported = errors.New("shm: process-shared segments require linux")

// Segment is a fixed-size block of memory, heap-backed or file-backed.
type Segment struct {
	b      []byte
	f      *os.File
	mapped bool
}

// New returns a zeroed heap-backed segment of the given size.
func New(size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: segment size %d must be positive", size)
	}
	return &Segment{b: make([]byte, size)}, nil
}

// Bytes returns the segment's memory. The slice stays valid until Close.
func (s *Segment) Bytes() []byte { return s.b }

// Size returns the segment's size in bytes.
func (s *Segment) Size() int { return len(s.b) }

// File returns the backing memory file, or nil for heap-backed segments.
// The file descriptor can be inherited by a worker process and mapped
// there with Attach.
func (s *Segment) File() *os.File { return s.f }

// Words reinterprets the segment as uint32 words for atomic flag access.
// The segment size must be a whole number of words.
func (s *Segment) Words() ([]uint32, error) {
	if len(s.b) == 0 || len(s.b)%4 != 0 {
		return nil, fmt.Errorf("shm: segment size %d is not a whole number of words", len(s.b))
	}
	p := unsafe.Pointer(unsafe.SliceData(s.b))
	if uintptr(p)%unsafe.Alignof(uint32(0)) != 0 {
		return nil, fmt.Errorf("shm: segment base %p is not word aligned", p)
	}
	return unsafe.Slice((*uint32)(p), len(s.b)/4), nil
}

// Close releases the segment's memory. Byte slices obtained from the
// segment must not be used afterwards.
func (s *Segment) Close() error {
	var first error
	if s.mapped && s.b != nil {
		if err := unmap(s.b); err != nil {
			first = err
		}
	}
	s.b = nil
	s.mapped = false
	if s.f != nil {
		if err := s.f.Close(); err != nil && first == nil {
			first = err
		}
		s.f = nil
	}
	return first
}
