package compositor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// transform applies rotation and opacity to a scaled sticker. Rotation
// expands the canvas to fit and fills the new area with transparency;
// opacity scales the alpha channel.
func transform(img *image.NRGBA, rotation, opacity float64) *image.NRGBA {
	out := img
	if rotation != 0 {
		out = imaging.Rotate(out, rotation, color.NRGBA{})
	}
	if opacity < 1 {
		out = applyOpacity(out, opacity)
	}
	return out
}

// applyOpacity returns a copy with every alpha value scaled by opacity.
func applyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(float64(out.Pix[i]) * opacity)
	}
	return out
}
