// Package domain defines the core value types shared across the engine.
package domain

// BuildStatus is the outcome of one external build tool invocation.
type BuildStatus struct {
	// Success is true only if the subprocess exited with code zero.
	Success bool
	// Log is the captured stdout and stderr of the subprocess, verbatim.
	// On a launch failure it carries the error text instead.
	Log string
}

// BuildResult is the terminal outcome of one build-diff pipeline run.
//
// An object field is populated only if the corresponding status reports
// success. If both objects are populated, the diff engine has already
// annotated them in place.
type BuildResult struct {
	// FirstStatus is the build outcome of the hand-authored asm side.
	FirstStatus BuildStatus
	// SecondStatus is the build outcome of the compiler-generated src side.
	SecondStatus BuildStatus
	// FirstObj is the parsed asm-side artifact, nil if its build failed.
	FirstObj *Object
	// SecondObj is the parsed src-side artifact, nil if its build failed.
	SecondObj *Object
}

// Matched reports whether both sides built and loaded, meaning the result
// carries an annotated object pair.
func (r *BuildResult) Matched() bool {
	return r.FirstObj != nil && r.SecondObj != nil
}
