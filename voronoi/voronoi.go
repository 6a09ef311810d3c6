// Package voronoi computes a bounded Voronoi diagram for a set of 2D
// generator points. The diagram is derived from the Delaunay triangulation
// (github.com/fogleman/delaunay): every Voronoi vertex is a triangle
// circumcenter, every Voronoi segment is the dual of one Delaunay edge.
// Segments and hull rays are clipped to the bounding rectangle, and clipped
// endpoints are snapped exactly onto the boundary coordinates so callers
// can detect border vertices with a plain equality check.
package voronoi

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Edge pairs one Delaunay segment with its dual Voronoi segment.
//
// D0 and D1 index the generator points and are always defined here. V0 and
// V1 are the Voronoi segment endpoints and are only valid when the matching
// Has flag is set: clipping against the bounding rectangle can remove one or
// both of them.
type Edge struct {
	D0, D1 int
	V0, V1 Point
	HasV0  bool
	HasV1  bool
}

// Diagram is a clipped Voronoi diagram.
type Diagram struct {
	Points  []Point
	Edges   []Edge
	regions [][]Point
}

// Region returns the Voronoi cell vertices of generator point i, in no
// particular order. Cells of hull points are open polygons: they lose their
// unbounded part to clipping and keep only the vertices inside the box.
func (d *Diagram) Region(i int) []Point {
	return d.regions[i]
}

// Compute triangulates the given points and derives the Voronoi diagram,
// clipped to the rectangle (0,0)-(width,height).
func Compute(points []Point, width, height float64) (*Diagram, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("voronoi: need at least 3 points, got %d", len(points))
	}
	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("voronoi: triangulation failed: %w", err)
	}
	if len(tri.Triangles) == 0 {
		return nil, fmt.Errorf("voronoi: triangulation of %d points is empty", len(points))
	}

	d := &Diagram{
		Points:  points,
		regions: make([][]Point, len(points)),
	}

	// One Voronoi vertex candidate per triangle. Identical inputs produce
	// bit-identical circumcenters, so vertices shared between edges can be
	// deduplicated by exact comparison.
	numTriangles := len(tri.Triangles) / 3
	circumcenters := make([]Point, numTriangles)
	for t := 0; t < numTriangles; t++ {
		a := points[tri.Triangles[3*t]]
		b := points[tri.Triangles[3*t+1]]
		c := points[tri.Triangles[3*t+2]]
		circumcenters[t] = circumcenter(a, b, c)
	}

	seen := make([]map[Point]bool, len(points))

	// Each halfedge pair represents one Delaunay edge; visit each pair once.
	for e := 0; e < len(tri.Halfedges); e++ {
		twin := tri.Halfedges[e]
		if twin >= 0 && twin < e {
			continue
		}
		edge := Edge{
			D0: tri.Triangles[e],
			D1: tri.Triangles[nextHalfedge(e)],
		}
		cc := circumcenters[e/3]
		if twin >= 0 {
			// Interior edge: the segment between the two circumcenters.
			edge.V0, edge.V1, edge.HasV0, edge.HasV1 = clipSegment(cc, circumcenters[twin/3], width, height)
		} else {
			// Hull edge: a ray from the circumcenter, perpendicular to the
			// Delaunay segment and pointing away from the triangle.
			a := points[edge.D0]
			b := points[edge.D1]
			opposite := points[tri.Triangles[prevHalfedge(e)]]
			edge.V0, edge.V1, edge.HasV0, edge.HasV1 = clipRay(cc, outwardNormal(a, b, opposite), width, height)
		}
		d.Edges = append(d.Edges, edge)

		for _, site := range [2]int{edge.D0, edge.D1} {
			if seen[site] == nil {
				seen[site] = make(map[Point]bool)
			}
			if edge.HasV0 && !seen[site][edge.V0] {
				seen[site][edge.V0] = true
				d.regions[site] = append(d.regions[site], edge.V0)
			}
			if edge.HasV1 && !seen[site][edge.V1] {
				seen[site][edge.V1] = true
				d.regions[site] = append(d.regions[site], edge.V1)
			}
		}
	}
	return d, nil
}

// nextHalfedge returns the next halfedge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// prevHalfedge returns the previous halfedge within the same triangle. Its
// origin is the triangle vertex not on halfedge e.
func prevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

func circumcenter(a, b, c Point) Point {
	ad := a.X*a.X + a.Y*a.Y
	bd := b.X*b.X + b.Y*b.Y
	cd := c.X*c.X + c.Y*c.Y
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	return Point{
		X: (ad*(b.Y-c.Y) + bd*(c.Y-a.Y) + cd*(a.Y-b.Y)) / d,
		Y: (ad*(c.X-b.X) + bd*(a.X-c.X) + cd*(b.X-a.X)) / d,
	}
}

// outwardNormal returns a direction perpendicular to the segment a-b,
// pointing away from the opposite triangle vertex.
func outwardNormal(a, b, opposite Point) Point {
	dir := Point{X: b.Y - a.Y, Y: a.X - b.X}
	mx := (a.X + b.X) / 2
	my := (a.Y + b.Y) / 2
	if dir.X*(opposite.X-mx)+dir.Y*(opposite.Y-my) > 0 {
		dir.X, dir.Y = -dir.X, -dir.Y
	}
	return dir
}

// Box sides. The side that clips an endpoint determines which coordinate
// is snapped exactly onto the boundary.
const (
	sideNone   = -1
	sideLeft   = 0
	sideRight  = 1
	sideTop    = 2
	sideBottom = 3
)

// clipSegment clips the segment p0-p1 to the box (0,0)-(w,h). Endpoints
// that survive unclipped are returned as the original values, preserving
// bit-identical circumcenters across edges.
func clipSegment(p0, p1 Point, w, h float64) (v0, v1 Point, has0, has1 bool) {
	d := Point{X: p1.X - p0.X, Y: p1.Y - p0.Y}
	if d.X == 0 && d.Y == 0 {
		// Cocircular sites collapse both circumcenters into one vertex.
		if inBox(p0, w, h) {
			return p0, p0, true, true
		}
		return Point{}, Point{}, false, false
	}
	lo, hi, loSide, hiSide, ok := clipParams(p0, d, 1, w, h)
	if !ok {
		return Point{}, Point{}, false, false
	}
	v0, v1 = p0, p1
	if loSide != sideNone {
		v0 = snapped(p0, d, lo, loSide, w, h)
	}
	if hiSide != sideNone {
		v1 = snapped(p0, d, hi, hiSide, w, h)
	}
	return v0, v1, true, true
}

// clipRay clips the ray p0 + t*dir (t >= 0) to the box (0,0)-(w,h). The far
// endpoint always lands on a box side.
func clipRay(p0, dir Point, w, h float64) (v0, v1 Point, has0, has1 bool) {
	if dir.X == 0 && dir.Y == 0 {
		return Point{}, Point{}, false, false
	}
	lo, hi, loSide, hiSide, ok := clipParams(p0, dir, math.Inf(1), w, h)
	if !ok || hiSide == sideNone {
		return Point{}, Point{}, false, false
	}
	v0 = p0
	if loSide != sideNone {
		v0 = snapped(p0, dir, lo, loSide, w, h)
	}
	v1 = snapped(p0, dir, hi, hiSide, w, h)
	return v0, v1, true, true
}

// clipParams runs Liang-Barsky clipping on p + t*d for t in [0, tMax]
// against the box (0,0)-(w,h), reporting the clipped parameter interval and
// which box side produced each bound (sideNone if the original bound
// survived).
func clipParams(p, d Point, tMax, w, h float64) (lo, hi float64, loSide, hiSide int, ok bool) {
	lo, hi = 0, tMax
	loSide, hiSide = sideNone, sideNone
	tests := [4]struct {
		side int
		p, q float64
	}{
		{sideLeft, -d.X, p.X},
		{sideRight, d.X, w - p.X},
		{sideTop, -d.Y, p.Y},
		{sideBottom, d.Y, h - p.Y},
	}
	for _, s := range tests {
		if s.p == 0 {
			if s.q < 0 {
				return 0, 0, sideNone, sideNone, false
			}
			continue
		}
		t := s.q / s.p
		if s.p < 0 {
			if t > lo {
				lo, loSide = t, s.side
			}
		} else {
			if t < hi {
				hi, hiSide = t, s.side
			}
		}
	}
	return lo, hi, loSide, hiSide, lo <= hi
}

// snapped evaluates p + t*d and overwrites the coordinate belonging to the
// clipping side with the exact boundary value.
func snapped(p, d Point, t float64, side int, w, h float64) Point {
	pt := Point{X: p.X + t*d.X, Y: p.Y + t*d.Y}
	switch side {
	case sideLeft:
		pt.X = 0
	case sideRight:
		pt.X = w
	case sideTop:
		pt.Y = 0
	case sideBottom:
		pt.Y = h
	}
	return pt
}

func inBox(p Point, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
