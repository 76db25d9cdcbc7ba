package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScaleImageToWidth shrinks an image so its width does not exceed maxWidth,
// preserving the aspect ratio. Images already within the limit are returned
// unchanged, so the common case costs nothing.
//
// Sprite art comes from many sources and arrives in arbitrary sizes; gameplay
// code relies on this to normalize ships, bullets and enemies to their
// expected on-screen footprint.
//
// Returns nil if src is nil.
func ScaleImageToWidth(src *ebiten.Image, maxWidth int) *ebiten.Image {
	if src == nil {
		return nil
	}
	if maxWidth <= 0 {
		return src
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxWidth {
		return src
	}

	scale := float64(maxWidth) / float64(width)
	newHeight := int(float64(height) * scale)
	if newHeight < 1 {
		newHeight = 1
	}

	scaled := ebiten.NewImage(maxWidth, newHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	scaled.DrawImage(src, op)

	return scaled
}

// NewPlaceholderImage creates a solid colored rectangle used when an image
// asset is missing. The game keeps running with these stand-ins instead of
// failing, so every sprite load has a visible fallback.
func NewPlaceholderImage(width, height int, fill color.RGBA) *ebiten.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := ebiten.NewImage(width, height)
	img.Fill(fill)
	return img
}
