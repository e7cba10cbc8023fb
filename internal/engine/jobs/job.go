package jobs

import "sync"

// Kind tags the type of work a job performs.
type Kind uint8

const (
	// KindBuild is a build-diff pipeline run. Other kinds are reserved.
	KindBuild Kind = iota
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Result is a worker's terminal outcome. Consumers type-switch on the
// concrete result; a nil Result with a nil error means the job produced
// nothing (for example, it was cancelled).
type Result any

// Work is the body of a job. It runs on its own goroutine, reports progress
// through status, and observes cancel only at its own checkpoints.
type Work func(status *Status, cancel <-chan struct{}) (Result, error)

// Job is one background unit of work. The registry retains ownership of the
// handle until the outcome has been consumed exactly once by PollFinished.
type Job struct {
	ID     uint64
	Kind   Kind
	Target string
	Status *Status

	cancel     chan struct{}
	cancelOnce sync.Once
	done       chan struct{}

	// result and err are written by the worker goroutine before done is
	// closed; reading them is safe only after observing done.
	result Result
	err    error

	// joined and removable are guarded by the registry mutex.
	joined    bool
	removable bool
}

// Finished reports whether the worker has completed. It never blocks.
func (j *Job) Finished() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Cancel delivers the one-shot cancellation token. It has no effect once
// the job has already completed, and is safe to call repeatedly.
func (j *Job) Cancel() {
	j.cancelOnce.Do(func() {
		close(j.cancel)
	})
}
