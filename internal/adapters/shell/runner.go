// Package shell invokes the external build tool as a subprocess.
package shell

import (
	"bytes"
	"errors"
	"os/exec"
	"slices"
	"unicode/utf8"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
)

var _ ports.BuildRunner = (*Runner)(nil)

// Runner runs the configured build command with a single positional target
// argument and the project root as its working directory.
type Runner struct {
	command []string
}

// NewRunner creates a runner for the given build command argv. An empty
// command falls back to the default build tool.
func NewRunner(command []string) *Runner {
	if len(command) == 0 {
		command = domain.DefaultBuildCommand
	}
	return &Runner{command: slices.Clone(command)}
}

// Run executes the build tool and captures its output. A non-zero exit or
// a launch failure is reported as a failed BuildStatus, never as an error:
// the sibling side's build must still run. Run blocks until the tool
// exits; cancellation is observed by the caller at stage boundaries only,
// so the subprocess is never interrupted preemptively.
func (r *Runner) Run(dir, target string) domain.BuildStatus {
	args := append(slices.Clone(r.command[1:]), target)
	cmd := exec.Command(r.command[0], args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if !utf8.Valid(stdout.Bytes()) || !utf8.Valid(stderr.Bytes()) {
		return domain.BuildStatus{Log: "build output is not valid UTF-8"}
	}
	log := stdout.String() + "\n" + stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran and failed; its log tells the story.
			return domain.BuildStatus{Log: log}
		}
		// The tool never launched.
		return domain.BuildStatus{Log: err.Error()}
	}
	return domain.BuildStatus{Success: true, Log: log}
}
