package ports

import "go.trai.ch/thumbs/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	// Missing configuration files yield the defaults.
	Load(cwd string) (domain.Config, error)
}
