package domain

import "slices"

// DefaultBuildCommand is used when the configuration does not name one.
var DefaultBuildCommand = []string{"make"}

// Config holds the build-relevant paths for one project.
//
// Config is a plain value. The read-many/write-one sharing discipline lives
// in the config store; pipeline workers only ever see a snapshot.
type Config struct {
	// ProjectRoot is the working directory for build tool invocations and
	// the root of the file watch.
	ProjectRoot string
	// AsmBuildRoot is the build output root of the hand-authored asm side.
	AsmBuildRoot string
	// SrcBuildRoot is the build output root of the compiler-generated side.
	SrcBuildRoot string
	// TargetObject is the logical object path resolved under both build
	// roots. Empty means nothing is scheduled for rebuilds.
	TargetObject string
	// BuildCommand is the external build tool argv prefix; the resolved
	// target path is appended as the single positional argument.
	BuildCommand []string
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	c.BuildCommand = slices.Clone(c.BuildCommand)
	return c
}
