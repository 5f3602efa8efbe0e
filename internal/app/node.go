package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thumbs/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/adapters/codec"   //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/thumbs/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			codec.NodeID,
			fs.ResolverNodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ThumbnailStore](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[ports.ImageCodec](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, log, store, c, resolver, w), nil
		},
	})

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
