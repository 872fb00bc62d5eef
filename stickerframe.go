// Package stickerframe composites randomized sticker images around the border
// of a template canvas.
//
// Stickers are loaded from a directory, scattered along the perimeter using
// one of several placement strategies, and drawn with optional random rotation
// and opacity onto a background canvas.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/menta2k/stickerframe"
//		"github.com/menta2k/stickerframe/pkg/frame"
//	)
//
//	func main() {
//		cfg := frame.Default()
//		cfg.StickerDir = "stickers"
//
//		gen := stickerframe.New(cfg)
//		if _, err := gen.LoadStickers(); err != nil {
//			log.Fatal(err)
//		}
//
//		result, err := gen.Generate(context.Background(), 0)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := gen.Save(result, "frame.png"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Frame (pkg/frame): Configuration types and placed sticker records
// 2. Placement (pkg/placement): Candidate generation, density weighting, and validation
// 3. Compositor (pkg/compositor): The generation loop that scales, rotates, and draws stickers
// 4. ImageIO (pkg/imageio): Loading sticker directories and encoding PNG/JPEG/WebP output
package stickerframe

import (
	"context"
	"fmt"
	"image"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/menta2k/stickerframe/pkg/compositor"
	"github.com/menta2k/stickerframe/pkg/frame"
	"github.com/menta2k/stickerframe/pkg/imageio"
)

// Version of the stickerframe library
const Version = "1.0.0"

// Generator provides a high-level interface for sticker frame generation.
type Generator struct {
	cfg     frame.Config
	loader  *imageio.Loader
	rng     *rand.Rand
	sources []*image.NRGBA
}

// New creates a Generator with a time-seeded random source.
func New(cfg frame.Config) *Generator {
	return NewWithRand(cfg, nil)
}

// NewWithRand creates a Generator driven by rng. A nil rng falls back to a
// time-seeded source, so two generators sharing a seed produce identical
// frames.
func NewWithRand(cfg frame.Config, rng *rand.Rand) *Generator {
	return &Generator{
		cfg:    cfg,
		loader: imageio.NewLoader(),
		rng:    rng,
	}
}

// SetLogger routes sticker loading diagnostics through logger.
func (g *Generator) SetLogger(logger *log.Logger) {
	g.loader = imageio.NewLoaderWithLogger(logger)
}

// SetSources replaces the sticker pool with already-decoded images, bypassing
// LoadStickers.
func (g *Generator) SetSources(sources []*image.NRGBA) {
	g.sources = sources
}

// LoadStickers loads every readable image from the configured sticker
// directory and returns how many were loaded. Unreadable files are skipped
// with a warning.
func (g *Generator) LoadStickers() (int, error) {
	sources, err := g.loader.LoadDirectory(g.cfg.StickerDir)
	if err != nil {
		return 0, fmt.Errorf("failed to load stickers: %w", err)
	}
	g.sources = sources
	return len(sources), nil
}

// Generate composites a frame from the loaded stickers. If LoadStickers has
// not been called, the sticker directory is loaded first. A maxAttempts of
// zero or less uses compositor.DefaultMaxAttempts.
func (g *Generator) Generate(ctx context.Context, maxAttempts int) (compositor.Result, error) {
	if len(g.sources) == 0 && g.cfg.StickerDir != "" {
		if _, err := g.LoadStickers(); err != nil {
			return compositor.Result{}, err
		}
	}
	return compositor.NewWithRand(g.cfg, g.sources, g.rng).Generate(ctx, maxAttempts)
}

// Save writes a generated frame to path using the configured output format
// and default encoding options.
func (g *Generator) Save(result compositor.Result, path string) error {
	return imageio.Save(result.Image, path, imageio.DefaultSaveOptions(g.cfg.OutputFormat))
}
