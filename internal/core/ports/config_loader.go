package ports

import "github.com/objdelta/objdelta/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. Relative roots are
	// resolved against the file's directory.
	Load(path string) (domain.Config, error)
}
