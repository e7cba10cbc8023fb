package object

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/objdelta/objdelta/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the object loader Graft node.
	LoaderNodeID graft.ID = "adapter.object_loader"
	// DifferNodeID is the unique identifier for the differ Graft node.
	DifferNodeID graft.ID = "adapter.differ"
)

func init() {
	graft.Register(graft.Node[ports.ObjectLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ObjectLoader, error) {
			return NewELFLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.Differ]{
		ID:        DifferNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Differ, error) {
			return NewDiffer(), nil
		},
	})
}
