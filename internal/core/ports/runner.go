package ports

import "github.com/objdelta/objdelta/internal/core/domain"

// BuildRunner invokes the external build tool for one target.
//
// The contract mirrors the tool's: working directory dir, exactly one
// positional target argument, no interactive input. A non-zero exit or a
// launch failure is not an error; it is a failed BuildStatus whose log
// carries whatever the tool (or the launch attempt) produced.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type BuildRunner interface {
	// Run executes the build tool in dir with target as its argument and
	// returns the captured outcome. Run blocks until the tool exits; it is
	// never interrupted preemptively.
	Run(dir, target string) domain.BuildStatus
}
