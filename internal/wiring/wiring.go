// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stylecache/internal/adapters/cas"
	_ "go.trai.ch/stylecache/internal/adapters/codec"
	_ "go.trai.ch/stylecache/internal/adapters/config"
	_ "go.trai.ch/stylecache/internal/adapters/fs"
	_ "go.trai.ch/stylecache/internal/adapters/logger"
	_ "go.trai.ch/stylecache/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/stylecache/internal/app"
)
