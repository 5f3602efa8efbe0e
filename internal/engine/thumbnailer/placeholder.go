package thumbnailer

import (
	"image"
	"image/color"
	"sync"

	"go.trai.ch/thumbs/internal/core/domain"
	"golang.org/x/image/draw"
)

var (
	iconFrame = color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	iconFill  = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	iconCross = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
)

var failureIcons = map[domain.SizeTier]func() image.Image{
	domain.TierNormal: sync.OnceValue(func() image.Image { return drawFailureIcon(domain.TierNormal.MaxDim()) }),
	domain.TierLarge:  sync.OnceValue(func() image.Image { return drawFailureIcon(domain.TierLarge.MaxDim()) }),
}

// FailureIcon returns the placeholder shown for sources without a thumbnail.
// The image is shared and must not be modified.
func FailureIcon(tier domain.SizeTier) image.Image {
	if icon, ok := failureIcons[tier]; ok {
		return icon()
	}
	return failureIcons[domain.TierNormal]()
}

// drawFailureIcon renders a framed tile with a diagonal cross.
func drawFailureIcon(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	margin := size / 8
	stroke := max(1, size/32)

	tile := image.Rect(margin, margin, size-margin, size-margin)
	draw.Draw(img, tile, image.NewUniform(iconFrame), image.Point{}, draw.Src)
	draw.Draw(img, tile.Inset(stroke), image.NewUniform(iconFill), image.Point{}, draw.Src)

	inner := tile.Inset(size / 4)
	for i := range inner.Dx() {
		for d := -stroke / 2; d <= stroke/2; d++ {
			x := inner.Min.X + i
			img.SetNRGBA(x, inner.Min.Y+i+d, iconCross)
			img.SetNRGBA(x, inner.Max.Y-1-i+d, iconCross)
		}
	}
	return img
}
