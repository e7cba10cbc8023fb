// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/objdelta/objdelta/internal/adapters/config"
	_ "github.com/objdelta/objdelta/internal/adapters/logger"
	_ "github.com/objdelta/objdelta/internal/adapters/object"
	_ "github.com/objdelta/objdelta/internal/adapters/telemetry"
	// Register the app node.
	_ "github.com/objdelta/objdelta/internal/app"
)
