// Package track records task completion in shared flag words.
//
// Every task owns one uint32 word in a slice that may live in process-shared
// memory. A zero word means not executed, a non-zero word means completed.
// Words are only ever read and written atomically, so trackers in different
// processes can watch the same slice.
package track

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrDuplicateExecution reports an attempt to run a task whose completion
// flag is already set.
var ErrDuplicateExecution = errors.New("track: task already executed")

const done uint32 = 1

// Tracker guards a set of tasks against repeated execution.
type Tracker struct {
	flags []uint32
}

// New returns a tracker over the given flag words. The words are shared
// state: several trackers, possibly in several processes, may be built over
// the same slice.
func New(flags []uint32) *Tracker {
	return &Tracker{flags: flags}
}

// Tasks returns the number of tasks the tracker covers.
func (t *Tracker) Tasks() int { return len(t.flags) }

// Run executes fn as task id. If the task's flag is already set, fn is not
// called and Run fails with ErrDuplicateExecution. The flag is set only
// after fn returns nil; a failed fn leaves the flag clear.
func (t *Tracker) Run(id int, fn func() error) error {
	if id < 0 || id >= len(t.flags) {
		return fmt.Errorf("track: task id %d out of range [0, %d)", id, len(t.flags))
	}
	if atomic.LoadUint32(&t.flags[id]) != 0 {
		return fmt.Errorf("track: task %d: %w", id, ErrDuplicateExecution)
	}
	if err := fn(); err != nil {
		return err
	}
	atomic.StoreUint32(&t.flags[id], done)
	return nil
}

// Done reports whether task id has completed.
func (t *Tracker) Done(id int) bool {
	return id >= 0 && id < len(t.flags) && atomic.LoadUint32(&t.flags[id]) != 0
}

// AllDone reports whether every task has completed.
func (t *Tracker) AllDone() bool {
	for i := range t.flags {
		if atomic.LoadUint32(&t.flags[i]) == 0 {
			return false
		}
	}
	return true
}
