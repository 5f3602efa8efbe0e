// Package domain contains the core types of the thumbnail cache.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SizeTier selects the bounding box and the cache subdirectory of a thumbnail.
type SizeTier uint8

const (
	// TierNormal produces thumbnails that fit into 128x128 pixels.
	TierNormal SizeTier = iota
	// TierLarge produces thumbnails that fit into 256x256 pixels.
	TierLarge
)

const (
	normalMaxDim = 128
	largeMaxDim  = 256
)

// MaxDim returns the pixel bound of the tier's bounding box.
func (t SizeTier) MaxDim() int {
	if t == TierLarge {
		return largeMaxDim
	}
	return normalMaxDim
}

// Dir returns the name of the tier's subdirectory in the cache.
func (t SizeTier) Dir() string {
	if t == TierLarge {
		return LargeDirName
	}
	return NormalDirName
}

// String returns the tier name as used in configuration files.
func (t SizeTier) String() string {
	return t.Dir()
}

// ParseSizeTier converts a configuration value into a SizeTier.
// The empty string selects TierNormal.
func ParseSizeTier(s string) (SizeTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", NormalDirName:
		return TierNormal, nil
	case LargeDirName:
		return TierLarge, nil
	default:
		return TierNormal, zerr.With(ErrInvalidSizeTier, "size", s)
	}
}

// Tiers lists every size tier.
func Tiers() []SizeTier {
	return []SizeTier{TierNormal, TierLarge}
}
