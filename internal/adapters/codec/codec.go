// Package codec decodes source images and encodes thumbnails as PNG.
package codec

import (
	"bufio"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	"image/png"
	"fmt"
	"io"
	"os"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/zerr"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

var _ ports.ImageCodec = (*Codec)(nil)

// DefaultMaxPixels is the largest source, in pixels, Decode accepts by default.
const DefaultMaxPixels = 256 << 20

// Codec implements ports.ImageCodec on the registered image decoders.
type Codec struct {
	encoder   png.Encoder
	maxPixels int64
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxPixels bounds the declared width*height of sources. Non-positive values disable the check.
func WithMaxPixels(n int64) Option {
	return func(c *Codec) {
		c.maxPixels = n
	}
}

// New creates a Codec writing PNGs with the default compression level.
func New(opts ...Option) *Codec {
	c := &Codec{
		encoder:   png.Encoder{CompressionLevel: png.DefaultCompression},
		maxPixels: DefaultMaxPixels,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode reads and decodes the image at path.
func (c *Codec) Decode(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceUnreadable, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	// The header is checked first so a tiny file declaring huge dimensions never allocates.
	if err := c.checkSize(f); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceUnreadable, err.Error()), "path", path)
	}

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDecodeUnsupported, err.Error()), "path", path)
	}
	if img.Bounds().Empty() {
		err := zerr.With(zerr.Wrap(domain.ErrDecodeUnsupported, "image has no pixels"), "path", path)
		return nil, zerr.With(err, "format", format)
	}
	return img, nil
}

func (c *Codec) checkSize(r io.Reader) error {
	cfg, format, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return zerr.Wrap(domain.ErrDecodeUnsupported, err.Error())
	}
	if c.maxPixels <= 0 {
		return nil
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > c.maxPixels {
		err := zerr.Wrap(domain.ErrDecodeUnsupported, fmt.Sprintf("image too large: %dx%d", cfg.Width, cfg.Height))
		return zerr.With(err, "format", format)
	}
	return nil
}

// Scale fits img into a maxDim x maxDim box using Catmull-Rom resampling.
// Images that already fit are returned unchanged.
func (c *Codec) Scale(img image.Image, maxDim int) image.Image {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	dw, dh := fit(w, h, maxDim)
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

// fit returns the dimensions of a w x h rectangle scaled to fit maxDim, keeping the aspect ratio.
func fit(w, h, maxDim int) (int, int) {
	if w >= h {
		return maxDim, max(1, (h*maxDim+w/2)/w)
	}
	return max(1, (w*maxDim+h/2)/h), maxDim
}

// EncodePNG writes img as PNG followed by one text chunk per field.
func (c *Codec) EncodePNG(w io.Writer, img image.Image, fields []domain.TextField) error {
	if err := writePNGWithText(w, &c.encoder, img, fields); err != nil {
		return zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	return nil
}

// DecodePNG reads a PNG together with its tEXt, zTXt and iTXt chunks.
func (c *Codec) DecodePNG(r io.Reader) (image.Image, map[string]string, error) {
	return readPNGWithText(r)
}
