package ports

import "github.com/objdelta/objdelta/internal/core/domain"

// ObjectLoader parses a built artifact into its in-memory representation.
//
//go:generate mockgen -source=object.go -destination=mocks/mock_object.go -package=mocks
type ObjectLoader interface {
	// Load parses the object file at path. It fails with a load error on
	// structurally invalid input.
	Load(path string) (*domain.Object, error)
}

// Differ compares two loaded objects and annotates both in place with
// match percentages. It is invoked at most once per pipeline run, and only
// when both sides loaded.
type Differ interface {
	Diff(first, second *domain.Object) error
}
