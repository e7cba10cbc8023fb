package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/objdelta/objdelta/internal/core/ports"
)

// LoaderNodeID is the unique identifier for the config loader Graft node.
const LoaderNodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})
}
