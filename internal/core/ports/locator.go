// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/thumbs/internal/core/domain"

// Locator maps source paths to their cache locations.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate canonicalizes path and returns its cache location for tier.
	// Paths resolving to the same canonical URI share one location.
	Locate(path string, tier domain.SizeTier) domain.Location
}
