package ports

import "go.trai.ch/stylecache/internal/core/domain"

// ConfigLoader defines the interface for loading configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the options configured for the given working directory.
	// Fields that are not configured are left unset.
	Load(cwd string) (domain.Options, error)
}
