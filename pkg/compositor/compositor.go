// Package compositor runs the sticker placement loop: it samples sticker
// sizes, rotations, opacities and candidate positions, validates each trial
// against the configured constraints, and composites accepted placements
// onto the output canvas.
package compositor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math/rand"
	"time"

	"github.com/disintegration/imaging"

	"github.com/menta2k/stickerframe/pkg/frame"
	"github.com/menta2k/stickerframe/pkg/geometry"
	"github.com/menta2k/stickerframe/pkg/placement"
)

// DefaultMaxAttempts bounds the outer placement loop when the caller does
// not pick a budget.
const DefaultMaxAttempts = 500

// positionSample is how many candidate positions one sticker draw may try,
// sampled without replacement from the precomputed list.
const positionSample = 20

// Hard failures. Everything else degrades to a best-effort result.
var (
	ErrNoSources  = errors.New("no source stickers loaded")
	ErrNoTemplate = errors.New("template size not set")
)

// Result is the outcome of one generation run. Placed may be empty on a
// successful run; callers that require at least one decoration check it.
type Result struct {
	Image    *image.NRGBA
	Placed   []frame.PlacedSticker
	Attempts int
}

// Compositor owns the state of repeated generation runs over one loaded
// source set. It is not safe for concurrent use; give each goroutine its
// own instance.
type Compositor struct {
	cfg     frame.Config
	sources []*image.NRGBA
	rng     *rand.Rand
}

// New creates a compositor with time-seeded randomness.
func New(cfg frame.Config, sources []*image.NRGBA) *Compositor {
	return NewWithRand(cfg, sources, nil)
}

// NewWithRand creates a compositor drawing every stochastic decision from
// rng. Passing a seeded source makes Generate fully deterministic, which is
// what the regression tests rely on. A nil rng falls back to time seeding.
func NewWithRand(cfg frame.Config, sources []*image.NRGBA, rng *rand.Rand) *Compositor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Compositor{cfg: cfg, sources: sources, rng: rng}
}

// Generate runs the placement loop and returns the composited frame.
//
// The loop ends when maxAttempts is spent, when half the candidate count has
// been placed, or, under the halt-on-miss policy, when a sticker draw finds
// no acceptable position. The context is checked once per attempt so callers
// can cancel a long run cooperatively.
func (c *Compositor) Generate(ctx context.Context, maxAttempts int) (Result, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if len(c.sources) == 0 {
		return Result{}, ErrNoSources
	}
	if c.cfg.TemplateSize.Width <= 0 || c.cfg.TemplateSize.Height <= 0 {
		return Result{}, ErrNoTemplate
	}

	planner := placement.NewPlanner(c.cfg, c.rng)
	inner := placement.InnerRect(c.cfg.TemplateSize, c.cfg.BorderWidth)
	positions := planner.GeneratePositions()

	canvas := imaging.New(c.cfg.TemplateSize.Width, c.cfg.TemplateSize.Height, c.cfg.Background.NRGBA())

	var placed []frame.PlacedSticker
	attempts := 0
	target := len(positions) / 2

	for attempts < maxAttempts && len(placed) < target {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("generation canceled: %w", err)
		}
		attempts++

		source := c.sources[c.rng.Intn(len(c.sources))]
		w, h := c.drawSize(source)

		rotation := 0.0
		if c.cfg.RandomRotation {
			rotation = c.rng.Float64()*360 - 180
		}
		opacity := 1.0
		if c.cfg.RandomOpacity {
			opacity = c.cfg.MinOpacity + c.rng.Float64()*(c.cfg.MaxOpacity-c.cfg.MinOpacity)
		}

		pos, ok := c.findPosition(planner, positions, placed, inner, w, h)
		if !ok {
			if c.cfg.MissPolicy == frame.ContinueOnMiss {
				continue
			}
			break
		}

		scaled := imaging.Resize(source, w, h, imaging.Lanczos)
		sticker := transform(scaled, rotation, opacity)
		draw.Draw(canvas, sticker.Bounds().Add(pos), sticker, sticker.Bounds().Min, draw.Over)

		placed = append(placed, frame.PlacedSticker{
			Size:     frame.Size{Width: w, Height: h},
			Position: pos,
			Rotation: rotation,
			Opacity:  opacity,
		})
	}

	out := canvas
	if !c.cfg.OutputSize.IsZero() && c.cfg.OutputSize != c.cfg.TemplateSize {
		out = imaging.Resize(canvas, c.cfg.OutputSize.Width, c.cfg.OutputSize.Height, imaging.Lanczos)
	}

	return Result{Image: out, Placed: placed, Attempts: attempts}, nil
}

// drawSize picks a uniform long-edge size within the configured bounds, then
// a coin flip decides whether it constrains width or height; the other
// dimension follows the source aspect ratio.
func (c *Compositor) drawSize(source *image.NRGBA) (int, int) {
	lo, hi := c.cfg.MinStickerSize, c.cfg.MaxStickerSize
	size := lo
	if hi > lo {
		size = lo + c.rng.Intn(hi-lo+1)
	}

	b := source.Bounds()
	aspect := float64(b.Dx()) / float64(b.Dy())

	if c.rng.Intn(2) == 0 {
		return size, max(1, int(float64(size)/aspect))
	}
	return max(1, int(float64(size)*aspect)), size
}

// findPosition searches a without-replacement sample of the candidate list
// for the first anchor that survives the density gate and the validator.
func (c *Compositor) findPosition(planner *placement.Planner, positions []image.Point, placed []frame.PlacedSticker, inner image.Rectangle, w, h int) (image.Point, bool) {
	sample := min(positionSample, len(positions))

	for _, idx := range c.rng.Perm(len(positions))[:sample] {
		pos := positions[idx]

		effective := c.cfg.Density * planner.DensityWeight(pos)
		if c.rng.Float64() > effective {
			continue
		}

		footprint := geometry.Footprint(pos.X, pos.Y, w, h)
		if placement.Valid(footprint, placed, c.cfg, inner) {
			return pos, true
		}
	}

	return image.Point{}, false
}
