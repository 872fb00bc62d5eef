package frame

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, Size{Width: 1200, Height: 800}, cfg.TemplateSize)
	assert.Equal(t, Size{Width: 1920, Height: 1080}, cfg.OutputSize)
	assert.Equal(t, VariantBase, cfg.Algorithm)
	assert.Equal(t, SideAll, cfg.BorderSides)
	assert.Equal(t, HaltOnMiss, cfg.MissPolicy)
	assert.True(t, cfg.OverlapAllowed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero template", func(c *Config) { c.TemplateSize = Size{} }, false},
		{"negative density", func(c *Config) { c.Density = -0.1 }, false},
		{"density above one", func(c *Config) { c.Density = 1.5 }, false},
		{"zero min size", func(c *Config) { c.MinStickerSize = 0 }, false},
		{"max below min", func(c *Config) { c.MaxStickerSize = 10 }, false},
		{"zero border", func(c *Config) { c.BorderWidth = 0 }, false},
		{"negative overlap", func(c *Config) { c.BorderOverlap = -5 }, false},
		{"inverted opacity range", func(c *Config) {
			c.RandomOpacity = true
			c.MinOpacity = 0.9
			c.MaxOpacity = 0.2
		}, false},
		{"opacity range ignored when disabled", func(c *Config) {
			c.RandomOpacity = false
			c.MinOpacity = 0.9
			c.MaxOpacity = 0.2
		}, true},
		{"bad format", func(c *Config) { c.OutputFormat = "bmp" }, false},
		{"bad sides", func(c *Config) { c.BorderSides = "diagonal" }, false},
		{"bad gradient", func(c *Config) { c.GradientType = "spiral" }, false},
		{"bad algorithm", func(c *Config) { c.Algorithm = "spiral" }, false},
		{"bad miss policy", func(c *Config) { c.MissPolicy = "retry" }, false},
		{"corners only", func(c *Config) { c.BorderSides = SideCornersOnly }, true},
		{"webp output", func(c *Config) { c.OutputFormat = FormatWebP }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPlacedStickerFootprint(t *testing.T) {
	s := PlacedSticker{
		Size:     Size{Width: 40, Height: 60},
		Position: image.Pt(-10, 5),
		Rotation: 45,
		Opacity:  0.8,
	}
	assert.Equal(t, image.Rect(-10, 5, 30, 65), s.Footprint())
}

func TestRGBAConversion(t *testing.T) {
	c := RGBA{R: 12, G: 34, B: 56, A: 78}
	n := c.NRGBA()
	assert.Equal(t, uint8(12), n.R)
	assert.Equal(t, uint8(34), n.G)
	assert.Equal(t, uint8(56), n.B)
	assert.Equal(t, uint8(78), n.A)
}
