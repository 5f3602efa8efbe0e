package domain

import (
	"os"
	"path/filepath"
)

const (
	// ThumbnailsDirName is the name of the thumbnail cache below the cache root.
	ThumbnailsDirName = "thumbnails"

	// NormalDirName is the subdirectory holding 128px thumbnails.
	NormalDirName = "normal"

	// LargeDirName is the subdirectory holding 256px thumbnails.
	LargeDirName = "large"

	// FailDirName is the subdirectory holding per-generator failure markers.
	FailDirName = "fail"

	// ThumbnailExt is the file extension of every cache file.
	ThumbnailExt = ".png"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "thumbs.yaml"

	// ConfigDirName is the directory below $XDG_CONFIG_HOME holding the user configuration.
	ConfigDirName = "thumbs"

	// URIScheme prefixes every canonical source URI.
	URIScheme = "file://"

	// DirPerm is the permission for cache directories (rwx------).
	DirPerm = 0o700

	// PrivateFilePerm is the permission for cache files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheRoot returns $XDG_CACHE_HOME, falling back to ~/.cache.
func DefaultCacheRoot() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".cache")
	}
	return filepath.Join(home, ".cache")
}

// DefaultConfigRoot returns $XDG_CONFIG_HOME, falling back to ~/.config.
func DefaultConfigRoot() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// ThumbnailsPath returns the thumbnail cache directory below cacheRoot.
func ThumbnailsPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, ThumbnailsDirName)
}

// TierPath returns the directory holding thumbnails of the given tier.
func TierPath(cacheRoot string, tier SizeTier) string {
	return filepath.Join(cacheRoot, ThumbnailsDirName, tier.Dir())
}

// FailPath returns the directory holding failure markers written by generator.
func FailPath(cacheRoot, generator string) string {
	return filepath.Join(cacheRoot, ThumbnailsDirName, FailDirName, generator)
}
