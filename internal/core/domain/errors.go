package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceUnreadable is returned when a source image cannot be accessed.
	ErrSourceUnreadable = zerr.New("source image is not readable")

	// ErrDecodeUnsupported is returned when a readable source is not a supported image.
	ErrDecodeUnsupported = zerr.New("unsupported or corrupt image")

	// ErrCacheMiss is returned when no usable cache file exists at a location.
	// Corrupt cache files are reported as misses.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrMetadataMissing is returned when a cache file lacks a mandatory text field.
	ErrMetadataMissing = zerr.New("thumbnail metadata missing")

	// ErrMetadataInvalid is returned when a cache file carries a malformed text field.
	ErrMetadataInvalid = zerr.New("thumbnail metadata invalid")

	// ErrStoreCreateFailed is returned when a cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create thumbnail cache directory")

	// ErrStoreReadFailed is returned when a cache file cannot be read for reasons other than absence.
	ErrStoreReadFailed = zerr.New("failed to read thumbnail")

	// ErrStoreWriteFailed is returned when a thumbnail cannot be persisted.
	ErrStoreWriteFailed = zerr.New("failed to write thumbnail")

	// ErrEncodeFailed is returned when a thumbnail cannot be encoded as PNG.
	ErrEncodeFailed = zerr.New("failed to encode thumbnail")

	// ErrInvalidSizeTier is returned for unknown size tier names.
	ErrInvalidSizeTier = zerr.New("invalid size, expected 'normal' or 'large'")

	// ErrInvalidDigest is returned for unknown digest names.
	ErrInvalidDigest = zerr.New("invalid digest, expected 'md5' or 'xxhash'")

	// ErrInvalidWorkers is returned when the worker count is negative.
	ErrInvalidWorkers = zerr.New("workers must not be negative")

	// ErrInvalidGenerator is returned when the generator tag cannot be used as a directory name.
	ErrInvalidGenerator = zerr.New("generator must be a single path element")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoInputs is returned when no image paths were given.
	ErrNoInputs = zerr.New("no images specified")

	// ErrInputNotFound is returned when an argument matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrGenerateFailed is returned in strict mode when at least one thumbnail failed.
	ErrGenerateFailed = zerr.New("thumbnail generation failed")

	// ErrPoolClosed is returned when submitting to a closed worker pool.
	ErrPoolClosed = zerr.New("worker pool is closed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch directory")
)
