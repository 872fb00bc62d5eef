// Package frame defines the configuration and record types for one sticker
// frame generation run.
package frame

import (
	"fmt"
	"image/color"
)

// Side selects which template sides or corners receive stickers.
type Side string

// Border side selections.
const (
	SideAll          Side = "all"
	SideTop          Side = "top"
	SideBottom       Side = "bottom"
	SideLeft         Side = "left"
	SideRight        Side = "right"
	SideTopBottom    Side = "top-bottom"
	SideLeftRight    Side = "left-right"
	SideCornersOnly  Side = "corners"
)

// Variant selects the position-generation strategy.
type Variant string

// Placement strategy variants.
const (
	VariantBase     Variant = "base"
	VariantUniform  Variant = "uniform"
	VariantGradient Variant = "gradient"
	VariantCorner   Variant = "corner"
)

// GradientType shapes the per-position density weight when gradient density
// is enabled.
type GradientType string

// Gradient density modes.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// Format is the output raster encoding.
type Format string

// Output encodings.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatWebP Format = "webp"
)

// MissPolicy decides what happens when a sticker draw finds no acceptable
// position within its search budget.
type MissPolicy string

// Miss policies.
const (
	// HaltOnMiss ends the whole run on the first failed placement search.
	HaltOnMiss MissPolicy = "halt-on-miss"
	// ContinueOnMiss skips to the next attempt and keeps going.
	ContinueOnMiss MissPolicy = "continue-on-miss"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// RGBA is a JSON-friendly color value.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// NRGBA converts the value to the standard color type.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Config holds every knob for one generation run. It is treated as immutable
// while Generate is running.
type Config struct {
	TemplateSize Size   `json:"template_size"`
	OutputSize   Size   `json:"output_size"`
	StickerDir   string `json:"sticker_dir"`

	// Density is the base probability that a drawn candidate position is
	// used, before the per-position gradient weight is applied.
	Density        float64 `json:"density"`
	MinStickerSize int     `json:"min_sticker_size"`
	MaxStickerSize int     `json:"max_sticker_size"`

	BorderWidth   int `json:"border_width"`
	BorderOverlap int `json:"border_overlap"`

	OverlapAllowed bool `json:"overlap_allowed"`

	RandomRotation bool    `json:"random_rotation"`
	RandomOpacity  bool    `json:"random_opacity"`
	MinOpacity     float64 `json:"min_opacity"`
	MaxOpacity     float64 `json:"max_opacity"`

	Background   RGBA         `json:"background"`
	OutputFormat Format       `json:"output_format"`
	BorderSides  Side         `json:"border_sides"`

	GradientDensity bool         `json:"gradient_density"`
	GradientType    GradientType `json:"gradient_type"`

	Algorithm  Variant    `json:"algorithm"`
	MissPolicy MissPolicy `json:"miss_policy"`
}

// Default returns a configuration with the stock values.
func Default() Config {
	return Config{
		TemplateSize:    Size{Width: 1200, Height: 800},
		OutputSize:      Size{Width: 1920, Height: 1080},
		Density:         0.6,
		MinStickerSize:  40,
		MaxStickerSize:  150,
		BorderWidth:     100,
		BorderOverlap:   20,
		OverlapAllowed:  true,
		RandomRotation:  true,
		RandomOpacity:   false,
		MinOpacity:      0.7,
		MaxOpacity:      1.0,
		Background:      RGBA{0, 0, 0, 0},
		OutputFormat:    FormatPNG,
		BorderSides:     SideAll,
		GradientDensity: false,
		GradientType:    GradientLinear,
		Algorithm:       VariantBase,
		MissPolicy:      HaltOnMiss,
	}
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if c.TemplateSize.Width <= 0 || c.TemplateSize.Height <= 0 {
		return fmt.Errorf("template_size must be positive, got %dx%d",
			c.TemplateSize.Width, c.TemplateSize.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %g", c.Density)
	}
	if c.MinStickerSize < 1 {
		return fmt.Errorf("min_sticker_size must be positive, got %d", c.MinStickerSize)
	}
	if c.MaxStickerSize < c.MinStickerSize {
		return fmt.Errorf("max_sticker_size (%d) must not be below min_sticker_size (%d)",
			c.MaxStickerSize, c.MinStickerSize)
	}
	if c.BorderWidth < 1 {
		return fmt.Errorf("border_width must be positive, got %d", c.BorderWidth)
	}
	if c.BorderOverlap < 0 {
		return fmt.Errorf("border_overlap must not be negative, got %d", c.BorderOverlap)
	}
	if c.RandomOpacity {
		if c.MinOpacity < 0 || c.MaxOpacity > 1 || c.MinOpacity > c.MaxOpacity {
			return fmt.Errorf("opacity range [%g, %g] must lie within [0, 1]",
				c.MinOpacity, c.MaxOpacity)
		}
	}
	switch c.OutputFormat {
	case FormatPNG, FormatJPEG, FormatWebP:
	default:
		return fmt.Errorf("unknown output_format %q", c.OutputFormat)
	}
	switch c.BorderSides {
	case SideAll, SideTop, SideBottom, SideLeft, SideRight,
		SideTopBottom, SideLeftRight, SideCornersOnly:
	default:
		return fmt.Errorf("unknown border_sides %q", c.BorderSides)
	}
	switch c.GradientType {
	case GradientLinear, GradientRadial:
	default:
		return fmt.Errorf("unknown gradient_type %q", c.GradientType)
	}
	switch c.Algorithm {
	case VariantBase, VariantUniform, VariantGradient, VariantCorner:
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	switch c.MissPolicy {
	case HaltOnMiss, ContinueOnMiss:
	default:
		return fmt.Errorf("unknown miss_policy %q", c.MissPolicy)
	}
	return nil
}
