package genislandvoronoi

import (
	"math"
	"sort"
)

// Point is a 2D map coordinate.
type Point struct {
	X, Y float64
}

// lerp2 interpolates between a and b (f=0 returns a, f=1 returns b).
func lerp2(a, b Point, f float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*f,
		Y: a.Y + (b.Y-a.Y)*f,
	}
}

// dist2 returns the squared distance between a and b.
func dist2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Center is one Voronoi polygon: a map region around its generator point,
// with the attributes the pipeline assigns to it.
type Center struct {
	Index int
	Point Point

	Water  bool // lake or ocean
	Ocean  bool // water connected to the map border
	Coast  bool // land polygon with at least one ocean neighbor
	Border bool // touches the edge of the map

	Elevation float64 // 0.0-1.0
	Moisture  float64 // 0.0-1.0
	Biome     Biome

	Neighbors []int // adjacent centers
	Borders   []int // edges around this center
	Corners   []int // corners of this polygon
}

// Corner is a Voronoi vertex, shared by up to three polygons. Most of the
// terrain shaping happens on corners; polygons average their attributes
// from them afterwards.
type Corner struct {
	Index  int
	Point  Point
	Border bool // lies exactly on the edge of the map

	Water bool
	Ocean bool
	Coast bool

	Elevation float64 // 0.0-1.0
	Moisture  float64 // 0.0-1.0

	River         int // river volume crossing this corner, 0 for none
	Downslope     int // adjacent corner this one drains to, itself in a pit
	Watershed     int // coastal outlet corner this one ultimately drains to
	WatershedSize int // number of corners draining through this outlet

	Touches   []int // centers touching this corner
	Protrudes []int // edges radiating from this corner
	Adjacent  []int // corners connected to this one by an edge
}

// Edge couples one Delaunay edge (between centers D0 and D1) with its dual
// Voronoi edge (between corners V0 and V1). Edges clipped by the map border
// can miss endpoints; a missing index is -1 and must be checked before use.
type Edge struct {
	Index    int
	D0, D1   int   // center indices, -1 if undefined
	V0, V1   int   // corner indices, -1 if undefined
	Midpoint Point // halfway between V0 and V1, when both are defined

	River int // river volume crossing this edge, 0 for none
}

// Graph holds all entities of one map. Entities refer to each other through
// indices into the three slices, never through pointers into other slices,
// so a Graph is self-contained and trivially serializable.
type Graph struct {
	Size    float64
	Centers []*Center
	Corners []*Corner
	Edges   []*Edge
}

// lookupEdgeFromCenter returns the edge separating centers p and r, or -1
// if they do not share one.
func (g *Graph) lookupEdgeFromCenter(p, r int) int {
	for _, ei := range g.Centers[p].Borders {
		e := g.Edges[ei]
		if e.D0 == r || e.D1 == r {
			return ei
		}
	}
	return -1
}

// lookupEdgeFromCorner returns the edge connecting corners q and s, or -1
// if they are not adjacent.
func (g *Graph) lookupEdgeFromCorner(q, s int) int {
	for _, ei := range g.Corners[q].Protrudes {
		e := g.Edges[ei]
		if (e.V0 == q && e.V1 == s) || (e.V0 == s && e.V1 == q) {
			return ei
		}
	}
	return -1
}

// landCorners returns the indices of all corners that are neither ocean nor
// coast. Lake corners count as land here: they take part in elevation and
// moisture redistribution.
func (g *Graph) landCorners() []int {
	var res []int
	for _, q := range g.Corners {
		if !q.Ocean && !q.Coast {
			res = append(res, q.Index)
		}
	}
	return res
}

// normalized maps a map coordinate into [-1, 1] on both axes, the domain
// island shape functions operate on.
func (g *Graph) normalized(p Point) Point {
	return Point{
		X: 2 * (p.X/g.Size - 0.5),
		Y: 2 * (p.Y/g.Size - 0.5),
	}
}

// cornerRing returns the corners of center p ordered by angle around its
// generator point, so they can be drawn as a closed polygon.
func (g *Graph) cornerRing(p int) []int {
	c := g.Centers[p]
	ring := append([]int(nil), c.Corners...)
	sort.Slice(ring, func(i, j int) bool {
		a := g.Corners[ring[i]].Point
		b := g.Corners[ring[j]].Point
		return math.Atan2(a.Y-c.Point.Y, a.X-c.Point.X) < math.Atan2(b.Y-c.Point.Y, b.X-c.Point.X)
	})
	return ring
}
