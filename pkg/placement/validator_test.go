package placement

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menta2k/stickerframe/pkg/frame"
)

func validatorConfig() (frame.Config, image.Rectangle) {
	cfg := testConfig() // 400x300 template, border 50, overlap 0
	inner := InnerRect(cfg.TemplateSize, cfg.BorderWidth)
	return cfg, inner
}

func TestValidRejectsFullyInsideKeepOut(t *testing.T) {
	cfg, inner := validatorConfig()

	fp := image.Rect(100, 100, 140, 140)
	assert.False(t, Valid(fp, nil, cfg, inner))
}

func TestValidAcceptsStraddlingKeepOutBoundary(t *testing.T) {
	cfg, inner := validatorConfig()

	// Partially inside the keep-out zone, partially in the border band.
	fp := image.Rect(30, 30, 70, 70)
	assert.True(t, Valid(fp, nil, cfg, inner))
}

func TestValidAcceptsBorderBand(t *testing.T) {
	cfg, inner := validatorConfig()

	fp := image.Rect(5, 5, 45, 45)
	assert.True(t, Valid(fp, nil, cfg, inner))
}

func TestValidRejectsBeyondExcursion(t *testing.T) {
	cfg, inner := validatorConfig()
	cfg.BorderOverlap = 20

	// Entirely past the template plus overlap on the x axis.
	assert.False(t, Valid(image.Rect(1000, 10, 1040, 50), nil, cfg, inner))
	assert.False(t, Valid(image.Rect(-100, 10, -60, 50), nil, cfg, inner))
	// Entirely past on the y axis.
	assert.False(t, Valid(image.Rect(10, 500, 50, 540), nil, cfg, inner))

	// Hanging over the edge within the allowance is fine.
	assert.True(t, Valid(image.Rect(-15, 10, 25, 50), nil, cfg, inner))
}

func TestValidOverlapDisallowed(t *testing.T) {
	cfg, inner := validatorConfig()
	cfg.OverlapAllowed = false

	placed := []frame.PlacedSticker{{
		Size:     frame.Size{Width: 40, Height: 40},
		Position: image.Pt(10, 10),
		Opacity:  1,
	}}

	assert.False(t, Valid(image.Rect(30, 30, 70, 70), placed, cfg, inner),
		"intersecting an earlier placement must be rejected")
	assert.True(t, Valid(image.Rect(50, 10, 90, 45), placed, cfg, inner),
		"touching edges do not count as overlap")
}

func TestValidOverlapAllowed(t *testing.T) {
	cfg, inner := validatorConfig()
	cfg.OverlapAllowed = true

	placed := []frame.PlacedSticker{{
		Size:     frame.Size{Width: 40, Height: 40},
		Position: image.Pt(10, 10),
		Opacity:  1,
	}}

	assert.True(t, Valid(image.Rect(30, 30, 70, 70), placed, cfg, inner))
}
