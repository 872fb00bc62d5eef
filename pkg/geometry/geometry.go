// Package geometry provides the rectangle math shared by the placement
// validator and the position strategies.
package geometry

import "image"

// Overlap reports whether two rectangles intersect. Rectangles are half-open,
// so rectangles that only share an edge do not overlap.
func Overlap(a, b image.Rectangle) bool {
	return !(a.Max.X <= b.Min.X || a.Min.X >= b.Max.X ||
		a.Max.Y <= b.Min.Y || a.Min.Y >= b.Max.Y)
}

// Footprint returns the bounding rectangle of a w x h sticker anchored at
// (x, y). Anchors may be negative: a footprint is allowed to extend past the
// template edge.
func Footprint(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Contains reports whether inner lies fully inside outer, edges included.
func Contains(outer, inner image.Rectangle) bool {
	return inner.Min.X >= outer.Min.X && inner.Max.X <= outer.Max.X &&
		inner.Min.Y >= outer.Min.Y && inner.Max.Y <= outer.Max.Y
}
