package genislandvoronoi

import (
	"github.com/Flokey82/genislandvoronoi/voronoi"
)

// Corners closer than this (squared distance) collapse into one. The
// Voronoi provider emits shared vertices bit-identically, so the tolerance
// only has to absorb genuine near-duplicates from degenerate triangles.
const cornerMergeDistSq = 1e-6

// buildGraph turns the generator points and their clipped Voronoi diagram
// into the Center/Corner/Edge arena.
//
// The diagram reports each vertex once per incident edge, so vertices are
// canonicalized while building: candidates are bucketed by int(x) and merged
// with any corner within the tolerance in bucket x-1, x or x+1. Edges whose
// four endpoints are all undefined carry no information and are dropped.
func buildGraph(points []Point, d *voronoi.Diagram, size float64) *Graph {
	g := &Graph{Size: size}

	g.Centers = make([]*Center, len(points))
	for i, p := range points {
		g.Centers[i] = &Center{Index: i, Point: p}
	}

	buckets := make(map[int][]int)
	makeCorner := func(p voronoi.Point, ok bool) int {
		if !ok {
			return -1
		}
		pt := Point(p)
		for b := int(pt.X) - 1; b <= int(pt.X)+1; b++ {
			for _, qi := range buckets[b] {
				if dist2(pt, g.Corners[qi].Point) < cornerMergeDistSq {
					return qi
				}
			}
		}
		q := &Corner{
			Index:  len(g.Corners),
			Point:  pt,
			Border: pt.X == 0 || pt.X == size || pt.Y == 0 || pt.Y == size,
		}
		q.Downslope = q.Index
		q.Watershed = q.Index
		g.Corners = append(g.Corners, q)
		buckets[int(pt.X)] = append(buckets[int(pt.X)], q.Index)
		return q.Index
	}

	for _, ve := range d.Edges {
		if ve.D0 < 0 && ve.D1 < 0 && !ve.HasV0 && !ve.HasV1 {
			continue
		}
		e := &Edge{
			Index: len(g.Edges),
			D0:    ve.D0,
			D1:    ve.D1,
			V0:    makeCorner(ve.V0, ve.HasV0),
			V1:    makeCorner(ve.V1, ve.HasV1),
		}
		if e.V0 >= 0 && e.V1 >= 0 {
			e.Midpoint = lerp2(g.Corners[e.V0].Point, g.Corners[e.V1].Point, 0.5)
		}
		g.Edges = append(g.Edges, e)

		// Centers on both sides of the edge are neighbors.
		if e.D0 >= 0 {
			g.Centers[e.D0].Borders = append(g.Centers[e.D0].Borders, e.Index)
		}
		if e.D1 >= 0 {
			g.Centers[e.D1].Borders = append(g.Centers[e.D1].Borders, e.Index)
		}
		if e.D0 >= 0 && e.D1 >= 0 {
			g.Centers[e.D0].Neighbors = addUnique(g.Centers[e.D0].Neighbors, e.D1)
			g.Centers[e.D1].Neighbors = addUnique(g.Centers[e.D1].Neighbors, e.D0)
		}

		// Corners at both ends of the edge are adjacent. A degenerate edge
		// can collapse onto a single corner; it is not its own neighbor.
		if e.V0 >= 0 {
			g.Corners[e.V0].Protrudes = append(g.Corners[e.V0].Protrudes, e.Index)
		}
		if e.V1 >= 0 && e.V1 != e.V0 {
			g.Corners[e.V1].Protrudes = append(g.Corners[e.V1].Protrudes, e.Index)
		}
		if e.V0 >= 0 && e.V1 >= 0 && e.V0 != e.V1 {
			g.Corners[e.V0].Adjacent = addUnique(g.Corners[e.V0].Adjacent, e.V1)
			g.Corners[e.V1].Adjacent = addUnique(g.Corners[e.V1].Adjacent, e.V0)
		}

		// Corners know the centers they touch and vice versa.
		for _, ci := range [2]int{e.D0, e.D1} {
			if ci < 0 {
				continue
			}
			for _, qi := range [2]int{e.V0, e.V1} {
				if qi < 0 {
					continue
				}
				g.Centers[ci].Corners = addUnique(g.Centers[ci].Corners, qi)
				g.Corners[qi].Touches = addUnique(g.Corners[qi].Touches, ci)
			}
		}
	}
	return g
}

// addUnique appends v unless it is already present. Relation sets hold a
// handful of entries, so a linear scan wins over a map.
func addUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

// improveCorners moves every non-border corner to the average of the
// generator points of its touching centers. The spacing between corners
// gets more even, at the cost of exact Voronoi geometry; midpoints are
// recomputed afterwards. New positions are computed from the old ones
// first, so the pass does not feed on its own output.
func (g *Graph) improveCorners() {
	newPos := make([]Point, len(g.Corners))
	for i, q := range g.Corners {
		if q.Border || len(q.Touches) == 0 {
			newPos[i] = q.Point
			continue
		}
		var sum Point
		for _, ci := range q.Touches {
			p := g.Centers[ci].Point
			sum.X += p.X
			sum.Y += p.Y
		}
		newPos[i] = Point{
			X: sum.X / float64(len(q.Touches)),
			Y: sum.Y / float64(len(q.Touches)),
		}
	}
	for i, q := range g.Corners {
		q.Point = newPos[i]
	}
	for _, e := range g.Edges {
		if e.V0 >= 0 && e.V1 >= 0 {
			e.Midpoint = lerp2(g.Corners[e.V0].Point, g.Corners[e.V1].Point, 0.5)
		}
	}
}
