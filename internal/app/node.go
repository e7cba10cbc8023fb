package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/objdelta/objdelta/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/objdelta/objdelta/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/objdelta/objdelta/internal/adapters/object"    //nolint:depguard // Wired in app layer
	"github.com/objdelta/objdelta/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/objdelta/objdelta/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LoaderNodeID,
			object.LoaderNodeID,
			object.DifferNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			objects, err := graft.Dep[ports.ObjectLoader](ctx)
			if err != nil {
				return nil, err
			}

			differ, err := graft.Dep[ports.Differ](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, objects, differ, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
