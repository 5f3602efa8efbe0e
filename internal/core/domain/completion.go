package domain

import (
	"image"
	"strings"
)

// Status describes how a thumbnail request was served.
type Status string

const (
	// StatusCached indicates a fresh cache entry was returned without writing.
	StatusCached Status = "cached"
	// StatusGenerated indicates the thumbnail was built from the source.
	StatusGenerated Status = "generated"
	// StatusFailed indicates the source could not be decoded; Image is the failure icon.
	StatusFailed Status = "failed"
	// StatusUnreadable indicates the source could not be accessed; Image is the failure icon.
	StatusUnreadable Status = "unreadable"
)

// IsFailure reports whether the status carries a failure placeholder instead of a thumbnail.
func (s Status) IsFailure() bool {
	return s == StatusFailed || s == StatusUnreadable
}

// NormalizeStatus converts a string to a Status, defaulting to failed if unknown.
func NormalizeStatus(s string) Status {
	switch strings.ToLower(s) {
	case string(StatusCached):
		return StatusCached
	case string(StatusGenerated):
		return StatusGenerated
	case string(StatusUnreadable):
		return StatusUnreadable
	default:
		return StatusFailed
	}
}

// SourceInfo is what the thumbnailer observes about a source image.
type SourceInfo struct {
	Path  string
	MTime int64
	Size  int64
}

// Thumbnail is the result of serving a single path.
type Thumbnail struct {
	Status   Status
	Image    image.Image
	Location Location
	// Err explains failures and degraded results, e.g. a cache write that did not persist.
	Err error
}

// Batch identifies one submission to the pipeline.
type Batch struct {
	// Generation increases with every submission.
	Generation uint64
	// Size is the number of submitted paths.
	Size int
	// Tier is the size tier requested for every path of the batch.
	Tier SizeTier
	// Dropped is the number of pending tasks of earlier batches that were discarded.
	Dropped int
}

// Completion is emitted once per executed task, in no particular order.
type Completion struct {
	Generation uint64
	Index      int
	Path       string
	Tier       SizeTier
	Thumbnail
}
