package placement

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menta2k/stickerframe/pkg/frame"
)

func TestDensityWeightDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantGradient
	cfg.GradientDensity = false

	p := NewPlanner(cfg, seeded())
	assert.Equal(t, 1.0, p.DensityWeight(image.Pt(0, 0)))
	assert.Equal(t, 1.0, p.DensityWeight(image.Pt(200, 150)))
}

func TestDensityWeightBaseAlwaysOne(t *testing.T) {
	// The base strategy carries no weighting even with gradient density on.
	cfg := testConfig()
	cfg.Algorithm = frame.VariantBase
	cfg.GradientDensity = true

	p := NewPlanner(cfg, seeded())
	assert.Equal(t, 1.0, p.DensityWeight(image.Pt(0, 0)))
}

func TestGradientWeightLinear(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantGradient
	cfg.GradientDensity = true
	cfg.GradientType = frame.GradientLinear

	p := NewPlanner(cfg, seeded())

	// The template center is floored to the weight floor; a corner maxes out.
	assert.InDelta(t, 0.1, p.DensityWeight(image.Pt(200, 150)), 1e-9)
	assert.InDelta(t, 1.0, p.DensityWeight(image.Pt(0, 0)), 1e-9)
}

func TestGradientWeightRadialBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantGradient
	cfg.GradientDensity = true
	cfg.GradientType = frame.GradientRadial

	p := NewPlanner(cfg, seeded())
	for _, pos := range []image.Point{
		image.Pt(0, 0), image.Pt(400, 300), image.Pt(200, 150), image.Pt(-20, 10),
	} {
		for i := 0; i < 50; i++ {
			w := p.DensityWeight(pos)
			assert.GreaterOrEqual(t, w, 0.1)
			assert.LessOrEqual(t, w, 1.0)
		}
	}
}

func TestUniformWeightLinear(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantUniform
	cfg.GradientDensity = true
	cfg.GradientType = frame.GradientLinear

	p := NewPlanner(cfg, seeded())

	assert.InDelta(t, 0.3, p.DensityWeight(image.Pt(200, 150)), 1e-9)
	assert.InDelta(t, 1.0, p.DensityWeight(image.Pt(0, 0)), 1e-9)
}

func TestCornerWeightLinear(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantCorner
	cfg.GradientDensity = true
	cfg.GradientType = frame.GradientLinear

	p := NewPlanner(cfg, seeded())

	// Sitting exactly on a corner gives full weight; the center hits the
	// clamp floor.
	assert.InDelta(t, 1.0, p.DensityWeight(image.Pt(0, 0)), 1e-9)
	assert.InDelta(t, 1.0, p.DensityWeight(image.Pt(400, 300)), 1e-9)
	assert.InDelta(t, 0.2, p.DensityWeight(image.Pt(200, 150)), 1e-9)
}

func TestCornerWeightRadialBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = frame.VariantCorner
	cfg.GradientDensity = true
	cfg.GradientType = frame.GradientRadial

	p := NewPlanner(cfg, seeded())
	for i := 0; i < 100; i++ {
		w := p.DensityWeight(image.Pt(37, 211))
		assert.GreaterOrEqual(t, w, 0.1)
		assert.LessOrEqual(t, w, 1.0)
	}
}
