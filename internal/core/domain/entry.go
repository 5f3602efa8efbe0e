package domain

import (
	"image"
	"strconv"

	"go.trai.ch/zerr"
)

// Text chunk keys embedded into every cached thumbnail.
const (
	KeyURI      = "Thumb::URI"
	KeyMTime    = "Thumb::MTime"
	KeySize     = "Thumb::Size"
	KeyWidth    = "Thumb::Image::Width"
	KeyHeight   = "Thumb::Image::Height"
	KeySoftware = "Software"
)

// TextField is a single key/value pair stored in a PNG text chunk.
type TextField struct {
	Key   string
	Value string
}

// Location is the cache identity of a source image for one size tier.
type Location struct {
	// URI is the canonical file:// URI of the source.
	URI string
	// Source is the canonical filesystem path the URI was built from.
	Source string
	// Key is the lowercase hex digest of URI.
	Key string
	// Tier is the size tier the location belongs to.
	Tier SizeTier
	// Path is the absolute path of the thumbnail file.
	Path string
	// FailPath is the absolute path of the failure marker for the configured generator.
	FailPath string
}

// CacheEntry is a thumbnail together with the provenance of its source.
type CacheEntry struct {
	URI         string
	SourceMTime int64
	SourceSize  int64
	// Width and Height are the dimensions of Image.
	Width  int
	Height int
	// SourceWidth and SourceHeight are the dimensions of the original image.
	SourceWidth  int
	SourceHeight int
	Generator    string
	Image        image.Image
}

// IsFreshFor reports whether the entry was generated from a source with the given mtime.
func (e *CacheEntry) IsFreshFor(mtime int64) bool {
	return e != nil && e.SourceMTime == mtime
}

// TextFields returns the provenance metadata in the order it is written to disk.
// Thumb::Image::Width/Height carry the original image dimensions.
func (e *CacheEntry) TextFields() []TextField {
	fields := []TextField{
		{Key: KeyURI, Value: e.URI},
		{Key: KeyMTime, Value: strconv.FormatInt(e.SourceMTime, 10)},
		{Key: KeySize, Value: strconv.FormatInt(e.SourceSize, 10)},
	}
	if e.SourceWidth > 0 && e.SourceHeight > 0 {
		fields = append(fields,
			TextField{Key: KeyWidth, Value: strconv.Itoa(e.SourceWidth)},
			TextField{Key: KeyHeight, Value: strconv.Itoa(e.SourceHeight)},
		)
	}
	return append(fields, TextField{Key: KeySoftware, Value: e.Generator})
}

// EntryFromFields rebuilds a CacheEntry from a decoded image and its text chunks.
// Thumb::URI and Thumb::MTime are mandatory, everything else is optional.
func EntryFromFields(img image.Image, fields map[string]string) (*CacheEntry, error) {
	uri, ok := fields[KeyURI]
	if !ok || uri == "" {
		return nil, zerr.With(ErrMetadataMissing, "key", KeyURI)
	}
	rawMTime, ok := fields[KeyMTime]
	if !ok {
		return nil, zerr.With(ErrMetadataMissing, "key", KeyMTime)
	}
	mtime, err := strconv.ParseInt(rawMTime, 10, 64)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrMetadataInvalid.Error()), "key", KeyMTime)
	}

	entry := &CacheEntry{
		URI:         uri,
		SourceMTime: mtime,
		Generator:   fields[KeySoftware],
		Image:       img,
	}
	entry.SourceSize, _ = strconv.ParseInt(fields[KeySize], 10, 64)
	entry.SourceWidth, _ = strconv.Atoi(fields[KeyWidth])
	entry.SourceHeight, _ = strconv.Atoi(fields[KeyHeight])
	if img != nil {
		b := img.Bounds()
		entry.Width, entry.Height = b.Dx(), b.Dy()
	}
	return entry, nil
}

// FailMarker records that a source could not be decoded by a generator.
type FailMarker struct {
	URI         string
	SourceMTime int64
	Generator   string
}

// IsFreshFor reports whether the marker still applies to a source with the given mtime.
func (m *FailMarker) IsFreshFor(mtime int64) bool {
	return m != nil && m.SourceMTime == mtime
}

// TextFields returns the metadata stored in a failure marker.
func (m *FailMarker) TextFields() []TextField {
	return []TextField{
		{Key: KeyURI, Value: m.URI},
		{Key: KeyMTime, Value: strconv.FormatInt(m.SourceMTime, 10)},
		{Key: KeySoftware, Value: m.Generator},
	}
}

// FailMarkerFromFields rebuilds a FailMarker from PNG text chunks.
func FailMarkerFromFields(fields map[string]string) (*FailMarker, error) {
	entry, err := EntryFromFields(nil, fields)
	if err != nil {
		return nil, err
	}
	return &FailMarker{
		URI:         entry.URI,
		SourceMTime: entry.SourceMTime,
		Generator:   entry.Generator,
	}, nil
}
