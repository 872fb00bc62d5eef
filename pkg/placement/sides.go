package placement

import "github.com/menta2k/stickerframe/pkg/frame"

// edge is one active region of the border band. The corner marker is its own
// edge: it stands for all four corner squares at once.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
	edgeCorners
)

// activeEdges expands a border-side selection into an ordered edge list.
// The order is fixed so position generation is reproducible under a seeded
// random source.
func activeEdges(s frame.Side) []edge {
	switch s {
	case frame.SideAll:
		return []edge{edgeTop, edgeBottom, edgeLeft, edgeRight}
	case frame.SideTop:
		return []edge{edgeTop}
	case frame.SideBottom:
		return []edge{edgeBottom}
	case frame.SideLeft:
		return []edge{edgeLeft}
	case frame.SideRight:
		return []edge{edgeRight}
	case frame.SideTopBottom:
		return []edge{edgeTop, edgeBottom}
	case frame.SideLeftRight:
		return []edge{edgeLeft, edgeRight}
	case frame.SideCornersOnly:
		return []edge{edgeCorners}
	}
	return nil
}

func hasEdge(edges []edge, e edge) bool {
	for _, v := range edges {
		if v == e {
			return true
		}
	}
	return false
}
