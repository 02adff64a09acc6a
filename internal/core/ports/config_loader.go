package ports

import "go.trai.ch/pin/internal/core/domain"

// ConfigLoader loads the pass configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory, applying
	// defaults for anything absent.
	Load(cwd string) (*domain.Config, error)
}
