// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the time the binary was built.
var Date = "unknown"
