package ports

import (
	"image"
	"io"

	"go.trai.ch/thumbs/internal/core/domain"
)

// ImageCodec decodes, scales and encodes images.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type ImageCodec interface {
	// Decode reads the image at path.
	// It returns an error wrapping domain.ErrDecodeUnsupported for unknown or corrupt formats.
	Decode(path string) (image.Image, error)

	// Scale fits img into a maxDim x maxDim box, keeping the aspect ratio.
	Scale(img image.Image, maxDim int) image.Image

	// EncodePNG writes img as PNG with the given text chunks.
	EncodePNG(w io.Writer, img image.Image, fields []domain.TextField) error

	// DecodePNG reads a PNG and its text chunks.
	DecodePNG(r io.Reader) (image.Image, map[string]string, error)
}
