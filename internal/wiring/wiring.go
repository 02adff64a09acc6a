// Package wiring registers all Graft nodes via blank imports. Importing this
// package from main is what makes the dependency graph complete.
package wiring

import (
	_ "go.trai.ch/pin/internal/adapters/cas"
	_ "go.trai.ch/pin/internal/adapters/config"
	_ "go.trai.ch/pin/internal/adapters/fs"
	_ "go.trai.ch/pin/internal/adapters/lockfile"
	_ "go.trai.ch/pin/internal/adapters/logger"
	_ "go.trai.ch/pin/internal/adapters/maven"
	_ "go.trai.ch/pin/internal/adapters/shell"
	_ "go.trai.ch/pin/internal/adapters/telemetry"
	_ "go.trai.ch/pin/internal/app"
)
