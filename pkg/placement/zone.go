// Package placement computes the keep-out zone, generates candidate anchor
// positions along the active border sides, and validates sticker footprints
// against the configured constraints.
package placement

import (
	"image"

	"github.com/menta2k/stickerframe/pkg/frame"
)

// InnerRect derives the keep-out rectangle: the template inset by the border
// width on all sides. If the inset would collapse, the interior is rebuilt
// from a 10px minimum and the border recomputed to fit, so the result is
// never degenerate for a positive template size.
func InnerRect(template frame.Size, border int) image.Rectangle {
	innerW := template.Width - 2*border
	innerH := template.Height - 2*border

	if innerW <= 0 || innerH <= 0 {
		innerW = max(10, template.Width-20)
		innerH = max(10, template.Height-20)
		border = min(template.Width-innerW, template.Height-innerH) / 2
	}

	return image.Rect(border, border, border+innerW, border+innerH)
}
