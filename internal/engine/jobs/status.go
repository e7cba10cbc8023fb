// Package jobs implements background jobs with observable progress,
// one-shot cooperative cancellation, and a polling registry.
package jobs

import (
	"sync"

	"github.com/objdelta/objdelta/internal/core/domain"
)

// Status is the progress record of one job. It is written only by the
// owning worker and may be read by any number of observers concurrently;
// reads never block the writer beyond the copy under the lock.
type Status struct {
	mu      sync.RWMutex
	step    int
	total   int
	message string
	err     error
}

// StatusSnapshot is a consistent point-in-time copy of a Status.
type StatusSnapshot struct {
	Step    int
	Total   int
	Message string
	Err     error
}

// Snapshot returns a consistent copy of the status.
func (s *Status) Snapshot() StatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatusSnapshot{
		Step:    s.step,
		Total:   s.total,
		Message: s.message,
		Err:     s.err,
	}
}

func (s *Status) set(message string, step, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.step = step
	s.total = total
}

func (s *Status) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// UpdateStatus overwrites the status record and then performs a non-blocking
// check of the cancellation channel. If a cancellation token has been
// received it returns domain.ErrCancelled and the caller must unwind
// immediately without further stage work.
//
// This is the only place cancellation is observed. It is called exclusively
// at stage boundaries, never inside a blocking external call, so
// cancellation latency equals the duration of the currently running stage.
func UpdateStatus(status *Status, message string, step, total int, cancel <-chan struct{}) error {
	status.set(message, step, total)
	select {
	case <-cancel:
		return domain.ErrCancelled
	default:
		return nil
	}
}
