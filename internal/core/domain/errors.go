package domain

import "go.trai.ch/zerr"

var (
	// ErrCancelled is returned by a status checkpoint after a cancellation
	// token has been received. It is not a failure: the controller drops the
	// job silently.
	ErrCancelled = zerr.New("job cancelled")

	// ErrJobPanicked is reported by the registry for a worker that terminated
	// by panicking instead of returning.
	ErrJobPanicked = zerr.New("job worker panicked")

	// ErrMissingProjectRoot is returned when no project root is configured.
	ErrMissingProjectRoot = zerr.New("missing project root")

	// ErrMissingAsmBuildRoot is returned when no asm build root is configured.
	ErrMissingAsmBuildRoot = zerr.New("missing asm build root")

	// ErrMissingSrcBuildRoot is returned when no src build root is configured.
	ErrMissingSrcBuildRoot = zerr.New("missing src build root")

	// ErrMissingTargetObject is returned when a build is requested without a
	// target object path.
	ErrMissingTargetObject = zerr.New("missing target object path")

	// ErrPathOutsideProject is returned when a build root does not resolve to
	// a path under the project root.
	ErrPathOutsideProject = zerr.New("build path is outside project root")

	// ErrObjectLoad is returned when a built artifact cannot be parsed.
	// It is fatal for a side whose build reported success.
	ErrObjectLoad = zerr.New("failed to load object")

	// ErrDiffFailed is returned when the diff engine fails.
	ErrDiffFailed = zerr.New("failed to diff objects")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
