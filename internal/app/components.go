package app

import (
	"go.trai.ch/pin/internal/adapters/config"
	"go.trai.ch/pin/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader *config.Loader
	Telemetry    ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, loader *config.Loader, telemetry ports.Telemetry) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
		Telemetry:    telemetry,
	}
}
