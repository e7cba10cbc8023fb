package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file's content was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher watches a directory tree for changes. Replacing the watched root
// means stopping the old watcher (after which it delivers nothing) and
// starting a new one.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources. No events are
	// delivered after Stop returns.
	Stop() error
	// Events returns an iterator of file system events. The iterator ends
	// when the watcher is stopped.
	Events() iter.Seq[WatchEvent]
}
