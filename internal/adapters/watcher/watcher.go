// Package watcher implements recursive file system watching using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/objdelta/objdelta/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher delivers file system events for one recursively-watched root.
// One Watcher owns one subscription lifetime: Stop tears it down and ends
// the event stream, after which no callback context touches shared state.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// New creates a new file system watcher.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.walkDirectories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources. The event stream
// ends shortly after; no events are delivered from this subscription once
// the stream has ended.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over the delivered events. The iterator ends
// when the watcher is stopped.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// walkDirectories walks the tree under root and yields every watchable
// directory.
func (w *Watcher) walkDirectories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories rather than failing the walk.
				return nil //nolint:nilerr
			}
			if !d.IsDir() {
				return nil
			}
			if shouldSkipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events into ports.WatchEvents on the
// delivery goroutine.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

			// A newly created directory needs to be watched as well.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !shouldSkipDirectories[info.Name()] {
					for dir := range w.walkDirectories(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent maps an fsnotify event onto a ports.WatchEvent, or nil for
// event types the engine does not care about.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}
	case event.Op.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}
	case event.Op.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}
	case event.Op.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}
	default:
		return nil
	}
}
