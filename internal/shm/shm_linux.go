//go:build linux

package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// NewShared returns a zeroed segment backed by an anonymous memory file
// (memfd_create) mapped MAP_SHARED. The name only labels the file in
// /proc and need not be unique.
func NewShared(name string, size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: segment size %d must be positive", size)
	}
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("shm: memfd_create %q: %w", name, err)
	}
	f := os.NewFile(uintptr(fd), name)
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, fmt.Errorf("shm: size %q: %w", name, err)
	}
	b, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("shm: mmap %q: %w", name, err)
	}
	return &Segment{b: b, f: f, mapped: true}, nil
}

// Attach maps an existing segment file, typically a descriptor inherited
// from the parent process, as a shared segment of the given size. The
// returned segment owns f and closes it on Close.
func Attach(f *os.File, size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: segment size %d must be positive", size)
	}
	b, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %q: %w", f.Name(), err)
	}
	return &Segment{b: b, f: f, mapped: true}, nil
}

func unmap(b []byte) error { return unix.Munmap(b) }
