// Package trigger collapses filesystem change events into a single shared
// dirty flag that the rebuild scheduler polls.
package trigger

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/objdelta/objdelta/internal/core/ports"
)

// watchExtensions is the fixed allow-list of build-relevant source and
// header extensions. Events for anything else never set the dirty flag.
var watchExtensions = map[string]struct{}{
	".c":   {},
	".cp":  {},
	".cpp": {},
	".h":   {},
	".hpp": {},
}

// Detector filters watch events and maintains the dirty flag.
//
// The flag has no memory of which files changed or how many times: any
// number of qualifying events between clears collapses to one pending
// rebuild. Setting it is idempotent, so the watcher's delivery goroutine
// needs no compound read-modify-write.
type Detector struct {
	dirty atomic.Bool
}

// NewDetector creates a detector with a clear dirty flag.
func NewDetector() *Detector {
	return &Detector{}
}

// HandleEvent inspects one watch event. Content modifications of files
// with an allow-listed extension set the dirty flag; everything else is
// ignored and produces no state change.
func (d *Detector) HandleEvent(ev ports.WatchEvent) {
	if ev.Operation != ports.OpWrite {
		return
	}
	if _, ok := watchExtensions[filepath.Ext(ev.Path)]; !ok {
		return
	}
	d.dirty.Store(true)
}

// Pump drains the watcher's event stream into the detector. It runs on its
// own goroutine and returns when the stream ends or ctx is done.
func (d *Detector) Pump(ctx context.Context, w ports.Watcher) {
	for ev := range w.Events() {
		if ctx.Err() != nil {
			return
		}
		d.HandleEvent(ev)
	}
}

// Mark sets the dirty flag directly. Used when a root change must force an
// initial rebuild.
func (d *Detector) Mark() {
	d.dirty.Store(true)
}

// IsDirty reports the flag without clearing it.
func (d *Detector) IsDirty() bool {
	return d.dirty.Load()
}

// Clear resets the flag. The scheduler clears before enqueueing so a
// change arriving in the window between clear and enqueue is not lost.
func (d *Detector) Clear() {
	d.dirty.Store(false)
}
