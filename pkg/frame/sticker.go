package frame

import (
	"image"

	"github.com/menta2k/stickerframe/pkg/geometry"
)

// PlacedSticker records one accepted placement. The footprint is the scaled,
// pre-rotation size: that is what the validator compared against the
// keep-out zone and against earlier placements.
type PlacedSticker struct {
	Size     Size        `json:"size"`
	Position image.Point `json:"position"`
	Rotation float64     `json:"rotation"`
	Opacity  float64     `json:"opacity"`
}

// Footprint returns the sticker's axis-aligned bounding rectangle.
func (s PlacedSticker) Footprint() image.Rectangle {
	return geometry.Footprint(s.Position.X, s.Position.Y, s.Size.Width, s.Size.Height)
}
