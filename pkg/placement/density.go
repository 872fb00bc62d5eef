package placement

import (
	"image"
	"math"

	"github.com/menta2k/stickerframe/pkg/frame"
)

// DensityWeight returns the per-position multiplier applied to the base
// density when deciding whether a candidate is used. It is 1 whenever
// gradient density is disabled, and always 1 for the base strategy, which
// carries no weighting of its own.
func (p *Planner) DensityWeight(pos image.Point) float64 {
	if !p.cfg.GradientDensity {
		return 1.0
	}

	switch p.cfg.Algorithm {
	case frame.VariantUniform:
		return p.uniformWeight(pos)
	case frame.VariantGradient:
		return p.gradientWeight(pos)
	case frame.VariantCorner:
		return p.cornerWeight(pos)
	default:
		return 1.0
	}
}

// uniformWeight rises with distance from the template center, so the border
// fills more heavily than positions drifting inward.
func (p *Planner) uniformWeight(pos image.Point) float64 {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height
	centerX, centerY := float64(w/2), float64(h/2)

	distance := math.Hypot(float64(pos.X)-centerX, float64(pos.Y)-centerY)
	maxDistance := math.Hypot(centerX, centerY)

	if p.cfg.GradientType == frame.GradientLinear {
		return clamp(distance/maxDistance, 0.3, 1.0)
	}
	return randFloat(p.rng, 0.3, 1.0)
}

// gradientWeight combines the normalized per-axis distances from the center;
// the radial mode averages them and adds uniform jitter.
func (p *Planner) gradientWeight(pos image.Point) float64 {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height

	distanceX := math.Abs(float64(pos.X)-float64(w/2)) / (float64(w) / 2)
	distanceY := math.Abs(float64(pos.Y)-float64(h/2)) / (float64(h) / 2)

	if p.cfg.GradientType == frame.GradientLinear {
		return clamp(math.Hypot(distanceX, distanceY), 0.1, 1.0)
	}

	base := (distanceX + distanceY) / 2
	return clamp(base+randFloat(p.rng, -0.2, 0.2), 0.1, 1.0)
}

// cornerWeight is highest near the nearest of the four template corners.
func (p *Planner) cornerWeight(pos image.Point) float64 {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height

	corners := [4]image.Point{
		image.Pt(0, 0),
		image.Pt(w, 0),
		image.Pt(0, h),
		image.Pt(w, h),
	}

	minDistance := math.Inf(1)
	for _, c := range corners {
		d := math.Hypot(float64(pos.X-c.X), float64(pos.Y-c.Y))
		minDistance = math.Min(minDistance, d)
	}

	maxCornerDistance := math.Hypot(float64(w)/2, float64(h)/2)

	if p.cfg.GradientType == frame.GradientLinear {
		return clamp(1-minDistance/maxCornerDistance, 0.2, 1.0)
	}

	base := 1 - minDistance/maxCornerDistance
	return clamp(base+randFloat(p.rng, -0.3, 0.3), 0.1, 1.0)
}
