package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stylecache/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/codec"     //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// OptionsNodeID is the unique identifier for the base options Graft node.
	OptionsNodeID graft.ID = "app.options"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Options depend on the working directory, so neither they nor the
	// components built from them are cached across executions.
	graft.Register(graft.Node[domain.Options]{
		ID:        OptionsNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (domain.Options, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Options{}, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return domain.Options{}, zerr.Wrap(err, "failed to get current working directory")
			}

			return LoadOptions(loader, cwd)
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			OptionsNodeID,
			logger.NodeID,
			cas.NodeID,
			codec.NodeID,
			fs.HasherNodeID,
			fs.ResolverNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			treeCodec, err := graft.Dep[ports.TreeCodec](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ImportResolver](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				Logger:   log,
				Options:  opts,
				Store:    store,
				Codec:    treeCodec,
				Source:   source,
				Resolver: resolver,
				Tracer:   tracer,
			}, nil
		},
	})
}
