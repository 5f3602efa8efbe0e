// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/thumbs/internal/adapters/cas"
	_ "go.trai.ch/thumbs/internal/adapters/codec"
	_ "go.trai.ch/thumbs/internal/adapters/config"
	_ "go.trai.ch/thumbs/internal/adapters/fs"
	_ "go.trai.ch/thumbs/internal/adapters/logger"
	_ "go.trai.ch/thumbs/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/thumbs/internal/app"
)
