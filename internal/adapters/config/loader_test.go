package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/objdelta/objdelta/internal/adapters/config"
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `
project_root: .
asm_build_root: build/asm
src_build_root: build/src
target_object: main/main.o
build_command: ["ninja", "-k", "0"]
`)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(dir, "build", "asm"), cfg.AsmBuildRoot)
	assert.Equal(t, filepath.Join(dir, "build", "src"), cfg.SrcBuildRoot)
	assert.Equal(t, "main/main.o", cfg.TargetObject)
	assert.Equal(t, []string{"ninja", "-k", "0"}, cfg.BuildCommand)
}

func TestLoader_AbsoluteRootsAreKept(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	path := writeConfigFile(t, dir, `
project_root: `+other+`
asm_build_root: `+filepath.Join(other, "asm")+`
src_build_root: `+filepath.Join(other, "src")+`
`)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, other, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(other, "asm"), cfg.AsmBuildRoot)
}

func TestLoader_MissingBuildCommandFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "target_object: main.o\n")

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBuildCommand, cfg.BuildCommand)
}

func TestLoader_EmptyFieldsStayEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "build_command: [make]\n")

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.ProjectRoot)
	assert.Empty(t, cfg.TargetObject)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "project_root: [unclosed\n")

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}
