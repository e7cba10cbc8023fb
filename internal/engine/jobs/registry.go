package jobs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/objdelta/objdelta/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry owns the set of in-flight and completed-but-unreaped jobs.
// No method blocks, and no lock is held across a blocking call; all
// blocking work happens on the per-job worker goroutines.
type Registry struct {
	mu     sync.Mutex
	nextID uint64
	jobs   []*Job
}

// Outcome pairs a finished job with its terminal result, yielded exactly
// once per job by PollFinished.
type Outcome struct {
	Job    *Job
	Result Result
	Err    error
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Enqueue spawns work on a fresh goroutine with a fresh status record and a
// fresh cancellation channel, and returns the job handle immediately.
//
// A worker that panics is contained: the panic is converted into a
// registry-level job error instead of propagating.
func (r *Registry) Enqueue(kind Kind, target string, work Work) *Job {
	r.mu.Lock()
	r.nextID++
	job := &Job{
		ID:     r.nextID,
		Kind:   kind,
		Target: target,
		Status: &Status{},
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
	r.jobs = append(r.jobs, job)
	r.mu.Unlock()

	go func() {
		defer close(job.done)
		defer func() {
			if rec := recover(); rec != nil {
				job.result = nil
				job.err = zerr.With(zerr.Wrap(domain.ErrJobPanicked, "worker panicked"), "panic", fmt.Sprint(rec))
				job.Status.setError(job.err)
			}
		}()
		job.result, job.err = work(job.Status, job.cancel)
		if job.err != nil && !errors.Is(job.err, domain.ErrCancelled) {
			job.Status.setError(job.err)
		}
	}()

	return job
}

// PollFinished joins every job whose worker has completed since the last
// poll, yielding each outcome exactly once and marking the job removable.
// It never blocks.
func (r *Registry) PollFinished() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	var finished []Outcome
	for _, job := range r.jobs {
		if job.joined || !job.Finished() {
			continue
		}
		job.joined = true
		job.removable = true
		finished = append(finished, Outcome{Job: job, Result: job.result, Err: job.err})
	}
	return finished
}

// Cancel delivers the cancellation token to the job with the given id.
// It has no effect once the job has already completed.
func (r *Registry) Cancel(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.ID == id {
			job.Cancel()
			return
		}
	}
}

// Prune removes entries marked removable. An entry whose outcome has not
// been observed is never removed.
func (r *Registry) Prune() {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.jobs[:0]
	for _, job := range r.jobs {
		if job.removable && job.joined {
			continue
		}
		kept = append(kept, job)
	}
	// Drop references so pruned jobs can be collected.
	for i := len(kept); i < len(r.jobs); i++ {
		r.jobs[i] = nil
	}
	r.jobs = kept
}

// InFlight reports whether a job of the given kind and target has been
// enqueued and not yet joined. It is a plain scan, not a lock held across
// scheduling: a benign race can start a duplicate job, whose later result
// simply supersedes the earlier one.
func (r *Registry) InFlight(kind Kind, target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.Kind == kind && job.Target == target && !job.joined {
			return true
		}
	}
	return false
}

// Jobs returns a snapshot of the current job handles, for observers that
// render progress.
func (r *Registry) Jobs() []*Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

// Len returns the number of tracked jobs, including unreaped ones.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}
