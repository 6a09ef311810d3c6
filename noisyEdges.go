package genislandvoronoi

// noisyLineTradeoff balances how far the jittered edges may stray: low
// values keep them near the straight Voronoi edge, high values push them
// toward the polygon centers.
const noisyLineTradeoff = 0.5

// NoisyEdges holds, per edge, two jittered polylines: Path0 runs from
// corner V0 to the edge midpoint, Path1 from V1 to the midpoint. Drawing
// one forward and the other backward yields the full wiggly edge. Edges
// missing any of their four endpoints get no paths (nil).
type NoisyEdges struct {
	Path0 [][]Point
	Path1 [][]Point
}

// buildNoisyEdges subdivides every complete edge inside the quadrilateral
// spanned by its two corners and two polygon centers. Subdivision stops at
// a minimum segment length that depends on what the edge separates: coarse
// in open ocean, finer across biome transitions, finest along coastlines,
// rivers and lava, where the jitter is actually visible.
func (m *Map) buildNoisyEdges() *NoisyEdges {
	ne := &NoisyEdges{
		Path0: make([][]Point, len(m.Edges)),
		Path1: make([][]Point, len(m.Edges)),
	}
	for _, p := range m.Centers {
		for _, ei := range p.Borders {
			edge := m.Edges[ei]
			if edge.D0 < 0 || edge.D1 < 0 || edge.V0 < 0 || edge.V1 < 0 || ne.Path0[ei] != nil {
				continue
			}
			d0 := m.Centers[edge.D0]
			d1 := m.Centers[edge.D1]
			v0 := m.Corners[edge.V0]
			v1 := m.Corners[edge.V1]

			f := noisyLineTradeoff
			t := lerp2(v0.Point, d0.Point, f)
			q := lerp2(v0.Point, d1.Point, f)
			r := lerp2(v1.Point, d0.Point, f)
			s := lerp2(v1.Point, d1.Point, f)

			minLength := 10.0
			if d0.Biome != d1.Biome {
				minLength = 3
			}
			if d0.Ocean && d1.Ocean {
				minLength = 100
			}
			if d0.Coast || d1.Coast {
				minLength = 1
			}
			if edge.River > 0 || (m.Lava != nil && m.Lava[ei]) {
				minLength = 1
			}

			ne.Path0[ei] = m.noisyLine(v0.Point, t, edge.Midpoint, q, minLength)
			ne.Path1[ei] = m.noisyLine(v1.Point, s, edge.Midpoint, r, minLength)
		}
	}
	return ne
}

// noisyLine builds a jittered path from a to c, constrained to the
// quadrilateral a-b-c-d. Each recursion step picks a random interior point
// of the quad, appends it, and subdivides the two halves until the quad
// sides drop below minLength.
func (m *Map) noisyLine(a, b, c, d Point, minLength float64) []Point {
	points := []Point{a}
	minSq := minLength * minLength

	var subdivide func(a, b, c, d Point)
	subdivide = func(a, b, c, d Point) {
		if dist2(a, c) < minSq || dist2(b, d) < minSq {
			return
		}

		// Subdivide the quadrilateral.
		p := m.Rand.NextDoubleRange(0.2, 0.8) // along the a-d and b-c sides
		q := m.Rand.NextDoubleRange(0.2, 0.8) // along the a-b and d-c sides

		// Midpoints of the sides and the interior point the path will pass
		// through.
		e := lerp2(a, d, p)
		f := lerp2(b, c, p)
		g := lerp2(a, b, q)
		i := lerp2(d, c, q)
		h := lerp2(e, f, q)

		// Wiggle the sub-quadrilateral corners around the side midpoints
		// so the two halves don't tile exactly. At s == t == 1 the halves
		// meet at g, e, f and i.
		s := 1.0 - m.Rand.NextDoubleRange(-0.4, 0.4)
		t := 1.0 - m.Rand.NextDoubleRange(-0.4, 0.4)

		subdivide(a, lerp2(b, g, s), h, lerp2(d, e, t))
		points = append(points, h)
		subdivide(h, lerp2(c, f, s), c, lerp2(d, i, t))
	}

	subdivide(a, b, c, d)
	points = append(points, c)
	return points
}
