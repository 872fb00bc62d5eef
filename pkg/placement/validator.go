package placement

import (
	"image"

	"github.com/menta2k/stickerframe/pkg/frame"
	"github.com/menta2k/stickerframe/pkg/geometry"
)

// Valid decides whether a candidate footprint may be placed.
//
// A footprint is rejected when it sits entirely beyond the allowed overlap
// outside the template on either axis, when it lies fully inside the
// keep-out rectangle (a sticker that only clips the keep-out zone while
// still touching the border band is fine), or, with overlap disallowed, when
// it intersects any earlier placement.
func Valid(footprint image.Rectangle, placed []frame.PlacedSticker, cfg frame.Config, inner image.Rectangle) bool {
	w, h := cfg.TemplateSize.Width, cfg.TemplateSize.Height
	overlap := cfg.BorderOverlap

	if footprint.Max.X < -overlap || footprint.Min.X > w+overlap {
		return false
	}
	if footprint.Max.Y < -overlap || footprint.Min.Y > h+overlap {
		return false
	}

	if geometry.Overlap(footprint, inner) && geometry.Contains(inner, footprint) {
		return false
	}

	if !cfg.OverlapAllowed {
		for _, s := range placed {
			if geometry.Overlap(footprint, s.Footprint()) {
				return false
			}
		}
	}

	return true
}
