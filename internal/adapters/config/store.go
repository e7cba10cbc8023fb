package config

import (
	"sync"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
)

var _ ports.ConfigStore = (*Store)(nil)

// Store is the readers/writer-guarded shared configuration record.
//
// Pipeline workers snapshot it (read lock, clone, release) before any
// blocking call; the control surface and the controller mutate it under
// the write lock only for the duration of the edit. The root change flag
// is a one-flag debounce: set by whoever edits the root, observed and
// cleared by exactly one controller tick.
type Store struct {
	mu          sync.RWMutex
	cfg         domain.Config
	rootChanged bool
}

// NewStore creates a store seeded with cfg. A seeded project root counts
// as a pending root change so the controller installs the initial watcher
// (and triggers the initial rebuild) on its first tick.
func NewStore(cfg domain.Config) *Store {
	return &Store{
		cfg:         cfg.Clone(),
		rootChanged: cfg.ProjectRoot != "",
	}
}

// Snapshot returns a cloned copy of the current configuration.
func (s *Store) Snapshot() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Update applies fn under the write lock. A project root edit made through
// Update is flagged the same way SetProjectRoot flags it.
func (s *Store) Update(fn func(*domain.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.cfg.ProjectRoot
	fn(&s.cfg)
	if s.cfg.ProjectRoot != prev {
		s.rootChanged = true
	}
}

// SetProjectRoot replaces the project root and flags the change.
func (s *Store) SetProjectRoot(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if root == s.cfg.ProjectRoot {
		return
	}
	s.cfg.ProjectRoot = root
	s.rootChanged = true
}

// ConsumeRootChange reports and clears the pending root change flag.
func (s *Store) ConsumeRootChange() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.rootChanged
	s.rootChanged = false
	return changed
}
