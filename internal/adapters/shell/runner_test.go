package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/objdelta/objdelta/internal/adapters/shell"
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRunner_SuccessfulBuildCapturesOutput(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", `echo "building $1"`)

	status := shell.NewRunner([]string{tool}).Run(dir, "build/asm/main.o")
	assert.True(t, status.Success)
	assert.Contains(t, status.Log, "building build/asm/main.o")
}

func TestRunner_TargetIsAppendedAfterConfiguredArgs(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", `echo "$@"`)

	status := shell.NewRunner([]string{tool, "-j4", "--quiet"}).Run(dir, "main.o")
	require.True(t, status.Success)
	assert.Contains(t, status.Log, "-j4 --quiet main.o")
}

func TestRunner_RunsInTheGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", "pwd")

	status := shell.NewRunner([]string{tool}).Run(dir, "main.o")
	require.True(t, status.Success)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, status.Log, resolved)
}

func TestRunner_NonZeroExitIsAFailedStatusNotAnError(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", `echo "error: undefined symbol" >&2; exit 2`)

	status := shell.NewRunner([]string{tool}).Run(dir, "main.o")
	assert.False(t, status.Success)
	assert.Contains(t, status.Log, "error: undefined symbol")
}

func TestRunner_CapturesBothStreams(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", `echo "to stdout"; echo "to stderr" >&2`)

	status := shell.NewRunner([]string{tool}).Run(dir, "main.o")
	require.True(t, status.Success)
	assert.Contains(t, status.Log, "to stdout")
	assert.Contains(t, status.Log, "to stderr")
}

func TestRunner_LaunchFailureIsAFailedStatus(t *testing.T) {
	dir := t.TempDir()

	status := shell.NewRunner([]string{filepath.Join(dir, "does-not-exist")}).Run(dir, "main.o")
	assert.False(t, status.Success)
	assert.NotEmpty(t, status.Log)
}

func TestRunner_NonUTF8OutputIsRejected(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "buildtool", `printf '\377\376 garbage'`)

	status := shell.NewRunner([]string{tool}).Run(dir, "main.o")
	assert.False(t, status.Success)
	assert.Equal(t, "build output is not valid UTF-8", status.Log)
}

func TestRunner_EmptyCommandUsesDefault(t *testing.T) {
	r := shell.NewRunner(nil)
	// The default tool is resolved at run time; only the fallback wiring
	// is checked here.
	assert.NotNil(t, r)
	assert.Equal(t, []string{"make"}, domain.DefaultBuildCommand)
}
