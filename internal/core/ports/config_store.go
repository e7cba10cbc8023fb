package ports

import "github.com/objdelta/objdelta/internal/core/domain"

// ConfigStore is the shared, lock-guarded configuration record.
//
// Readers take a consistent snapshot and must release any interest in the
// store before blocking; writers mutate only for the duration of the edit.
// Edits made mid-build never retroactively affect an in-flight build.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Snapshot returns a cloned copy of the current configuration.
	Snapshot() domain.Config
	// Update applies fn to the configuration under the write lock.
	Update(fn func(*domain.Config))
	// SetProjectRoot replaces the project root and flags the change for
	// the controller, which reacts by replacing the watcher.
	SetProjectRoot(root string)
	// ConsumeRootChange reports and clears the pending root change flag.
	// At most one caller observes each change.
	ConsumeRootChange() bool
}
