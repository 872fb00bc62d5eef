package placement

import (
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/menta2k/stickerframe/pkg/frame"
)

// Strategy constants. The uniform strategy emits a fixed count per active
// side; the gradient and corner strategies emit a fixed total and spread it
// over the active regions.
const (
	positionsPerSide  = 50
	gradientTotal     = 300
	cornerTotal       = 200
	cornerShare       = 0.7
	edgeEmitChance    = 0.25
)

// Planner generates candidate anchor positions and per-position density
// weights for one generation run. The variant set is closed: both
// GeneratePositions and DensityWeight switch on the configured algorithm.
type Planner struct {
	cfg frame.Config
	rng *rand.Rand
}

// NewPlanner creates a planner for the given configuration. A nil rng means
// time-seeded randomness; tests pass a seeded source for reproducibility.
func NewPlanner(cfg frame.Config, rng *rand.Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{cfg: cfg, rng: rng}
}

// GeneratePositions produces the candidate anchor list for the active border
// sides. Anchors are top-left corners of sticker footprints and may lie up
// to the configured overlap outside the template.
func (p *Planner) GeneratePositions() []image.Point {
	edges := activeEdges(p.cfg.BorderSides)

	switch p.cfg.Algorithm {
	case frame.VariantUniform:
		return p.uniformPositions(edges)
	case frame.VariantGradient:
		return p.gradientPositions(edges)
	case frame.VariantCorner:
		return p.cornerPositions(edges)
	default:
		return p.basePositions(edges)
	}
}

// basePositions scans each active edge's long axis with a border-derived
// step, randomizing the transverse coordinate within the half-border band.
// Corners get a nested scan over a (border+overlap) square mirrored to all
// four corners.
func (p *Planner) basePositions(edges []edge) []image.Point {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height
	border, overlap := p.cfg.BorderWidth, p.cfg.BorderOverlap
	step := max(5, border/10)

	var positions []image.Point

	if hasEdge(edges, edgeTop) {
		for x := -overlap; x < w+overlap; x += step {
			positions = append(positions, image.Pt(x, randInt(p.rng, -overlap, border/2)))
		}
	}
	if hasEdge(edges, edgeBottom) {
		for x := -overlap; x < w+overlap; x += step {
			positions = append(positions, image.Pt(x, h-randInt(p.rng, 1, border/2+overlap)))
		}
	}
	if hasEdge(edges, edgeLeft) {
		for y := border; y < h-border; y += step {
			positions = append(positions, image.Pt(randInt(p.rng, -overlap, border/2), y))
		}
	}
	if hasEdge(edges, edgeRight) {
		for y := border; y < h-border; y += step {
			positions = append(positions, image.Pt(w-randInt(p.rng, 1, border/2+overlap), y))
		}
	}
	if hasEdge(edges, edgeCorners) {
		cornerSize := border + overlap
		for x := -overlap; x < cornerSize; x += step {
			for y := -overlap; y < cornerSize; y += step {
				positions = append(positions,
					image.Pt(x, y),
					image.Pt(w-x-1, y),
					image.Pt(x, h-y-1),
					image.Pt(w-x-1, h-y-1))
			}
		}
	}

	return positions
}

// uniformPositions emits a fixed number of independently randomized anchors
// per active edge, irrespective of the border size.
func (p *Planner) uniformPositions(edges []edge) []image.Point {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height
	border, overlap := p.cfg.BorderWidth, p.cfg.BorderOverlap

	var positions []image.Point

	if hasEdge(edges, edgeTop) {
		for i := 0; i < positionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, w+overlap),
				randInt(p.rng, -overlap, border/2)))
		}
	}
	if hasEdge(edges, edgeBottom) {
		for i := 0; i < positionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, w+overlap),
				randInt(p.rng, h-border/2-overlap, h+overlap)))
		}
	}
	if hasEdge(edges, edgeLeft) {
		for i := 0; i < positionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, border/2),
				randInt(p.rng, border, h-border)))
		}
	}
	if hasEdge(edges, edgeRight) {
		for i := 0; i < positionsPerSide; i++ {
			positions = append(positions, image.Pt(
				randInt(p.rng, w-border/2-overlap, w+overlap),
				randInt(p.rng, border, h-border)))
		}
	}
	if hasEdge(edges, edgeCorners) {
		cornerSize := border + overlap
		for i := 0; i < positionsPerSide/4; i++ {
			positions = append(positions,
				image.Pt(randInt(p.rng, -overlap, cornerSize), randInt(p.rng, -overlap, cornerSize)),
				image.Pt(randInt(p.rng, w-cornerSize-overlap, w+overlap), randInt(p.rng, -overlap, cornerSize)),
				image.Pt(randInt(p.rng, -overlap, cornerSize), randInt(p.rng, h-cornerSize-overlap, h+overlap)),
				image.Pt(randInt(p.rng, w-cornerSize-overlap, w+overlap), randInt(p.rng, h-cornerSize-overlap, h+overlap)))
		}
	}

	return positions
}

// gradientPositions draws a fixed total of anchors, each on a random active
// edge. Along an edge, points near the edge midline may sit deeper into the
// border band than points near the ends.
func (p *Planner) gradientPositions(edges []edge) []image.Point {
	if len(edges) == 0 {
		return nil
	}

	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height
	border, overlap := p.cfg.BorderWidth, p.cfg.BorderOverlap

	positions := make([]image.Point, 0, gradientTotal)

	for i := 0; i < gradientTotal; i++ {
		switch edges[p.rng.Intn(len(edges))] {
		case edgeTop:
			x := randInt(p.rng, -overlap, w+overlap)
			yRange := transverseRange(x, w, border)
			positions = append(positions, image.Pt(x, randInt(p.rng, -overlap, max(1, yRange))))

		case edgeBottom:
			x := randInt(p.rng, -overlap, w+overlap)
			yRange := transverseRange(x, w, border)
			positions = append(positions, image.Pt(x, h-randInt(p.rng, 1, max(1, yRange+overlap))))

		case edgeLeft:
			y := randInt(p.rng, border, h-border)
			xRange := transverseRange(y, h, border)
			positions = append(positions, image.Pt(randInt(p.rng, -overlap, max(1, xRange)), y))

		case edgeRight:
			y := randInt(p.rng, border, h-border)
			xRange := transverseRange(y, h, border)
			positions = append(positions, image.Pt(w-randInt(p.rng, 1, max(1, xRange+overlap)), y))

		case edgeCorners:
			cornerSize := border + overlap
			offset := int(float64(cornerSize) * p.rng.Float64())
			positions = append(positions, cornerAnchor(p.rng, w, h, offset))
		}
	}

	return positions
}

// transverseRange shrinks the usable depth of the border band as the
// longitudinal coordinate moves from the edge midpoint toward the ends.
func transverseRange(pos, span, border int) int {
	centerFactor := math.Abs(float64(pos)-float64(span)/2) / (float64(span) / 2)
	return int(float64(border/2) * (1 - centerFactor*0.5))
}

// cornerPositions is 70% corner-biased, with the distance fraction squared
// to pull samples toward the corner itself, and 30% edge-biased with anchors
// confined to a quarter of the border width.
func (p *Planner) cornerPositions(edges []edge) []image.Point {
	w, h := p.cfg.TemplateSize.Width, p.cfg.TemplateSize.Height
	border, overlap := p.cfg.BorderWidth, p.cfg.BorderOverlap

	cornerCount := int(cornerTotal * cornerShare)
	sideCount := cornerTotal - cornerCount
	cornerSize := border + overlap

	var positions []image.Point

	for i := 0; i < cornerCount; i++ {
		distance := p.rng.Float64()
		offset := int(float64(cornerSize) * distance * distance)
		positions = append(positions, cornerAnchor(p.rng, w, h, offset))
	}

	for i := 0; i < sideCount; i++ {
		if hasEdge(edges, edgeTop) && p.rng.Float64() < edgeEmitChance {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, w+overlap),
				randInt(p.rng, -overlap, border/4)))
		}
		if hasEdge(edges, edgeBottom) && p.rng.Float64() < edgeEmitChance {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, w+overlap),
				h-randInt(p.rng, 1, border/4+overlap)))
		}
		if hasEdge(edges, edgeLeft) && p.rng.Float64() < edgeEmitChance {
			positions = append(positions, image.Pt(
				randInt(p.rng, -overlap, border/4),
				randInt(p.rng, border, h-border)))
		}
		if hasEdge(edges, edgeRight) && p.rng.Float64() < edgeEmitChance {
			positions = append(positions, image.Pt(
				w-randInt(p.rng, 1, border/4+overlap),
				randInt(p.rng, border, h-border)))
		}
	}

	return positions
}

// cornerAnchor offsets outward from one of the four template corners, chosen
// uniformly at random.
func cornerAnchor(rng *rand.Rand, w, h, offset int) image.Point {
	switch rng.Intn(4) {
	case 0:
		return image.Pt(-offset, -offset)
	case 1:
		return image.Pt(w+offset, -offset)
	case 2:
		return image.Pt(-offset, h+offset)
	default:
		return image.Pt(w+offset, h+offset)
	}
}
