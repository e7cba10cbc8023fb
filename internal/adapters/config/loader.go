// Package config loads the project configuration and guards the shared,
// live-editable copy of it.
package config

import (
	"os"
	"path/filepath"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when no path is given.
const DefaultFileName = "objdelta.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema is the on-disk shape of the configuration.
type fileSchema struct {
	ProjectRoot  string   `yaml:"project_root"`
	AsmBuildRoot string   `yaml:"asm_build_root"`
	SrcBuildRoot string   `yaml:"src_build_root"`
	TargetObject string   `yaml:"target_object"`
	BuildCommand []string `yaml:"build_command"`
}

// Load reads the configuration file at path. Relative roots are resolved
// against the file's directory, so a checked-in config works from any
// working directory.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigReadFailed.Error()),
			"path", path,
		)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return domain.Config{}, zerr.With(
			zerr.Wrap(err, domain.ErrConfigParseFailed.Error()),
			"path", path,
		)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	cfg := domain.Config{
		ProjectRoot:  resolve(base, schema.ProjectRoot),
		AsmBuildRoot: resolve(base, schema.AsmBuildRoot),
		SrcBuildRoot: resolve(base, schema.SrcBuildRoot),
		TargetObject: schema.TargetObject,
		BuildCommand: schema.BuildCommand,
	}
	if len(cfg.BuildCommand) == 0 {
		cfg.BuildCommand = domain.DefaultBuildCommand
	}
	return cfg, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
