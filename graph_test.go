package genislandvoronoi

import (
	"math"
	"slices"
	"testing"
)

func TestBuildGraphRelations(t *testing.T) {
	m := testMapThrough(t, 5, "building graph", func(cfg *Config) {
		cfg.ImproveCorners = false
	})

	for _, e := range m.Edges {
		if e.D0 < -1 || e.D0 >= len(m.Centers) || e.D1 < -1 || e.D1 >= len(m.Centers) {
			t.Fatalf("edge %d has center indices %d/%d out of range", e.Index, e.D0, e.D1)
		}
		if e.V0 < -1 || e.V0 >= len(m.Corners) || e.V1 < -1 || e.V1 >= len(m.Corners) {
			t.Fatalf("edge %d has corner indices %d/%d out of range", e.Index, e.V0, e.V1)
		}
		if e.D0 < 0 && e.D1 < 0 && e.V0 < 0 && e.V1 < 0 {
			t.Fatalf("edge %d has no endpoints at all", e.Index)
		}

		if e.D0 >= 0 && !hasInt(m.Centers[e.D0].Borders, e.Index) {
			t.Fatalf("edge %d missing from borders of center %d", e.Index, e.D0)
		}
		if e.D1 >= 0 && !hasInt(m.Centers[e.D1].Borders, e.Index) {
			t.Fatalf("edge %d missing from borders of center %d", e.Index, e.D1)
		}
		if e.D0 >= 0 && e.D1 >= 0 {
			if !hasInt(m.Centers[e.D0].Neighbors, e.D1) || !hasInt(m.Centers[e.D1].Neighbors, e.D0) {
				t.Fatalf("centers %d and %d of edge %d are not mutual neighbors", e.D0, e.D1, e.Index)
			}
		}

		if e.V0 >= 0 && !hasInt(m.Corners[e.V0].Protrudes, e.Index) {
			t.Fatalf("edge %d missing from protrudes of corner %d", e.Index, e.V0)
		}
		if e.V0 >= 0 && e.V1 >= 0 && e.V0 != e.V1 {
			if !hasInt(m.Corners[e.V0].Adjacent, e.V1) || !hasInt(m.Corners[e.V1].Adjacent, e.V0) {
				t.Fatalf("corners %d and %d of edge %d are not mutually adjacent", e.V0, e.V1, e.Index)
			}
		}
		if e.V0 >= 0 && e.V1 >= 0 {
			want := lerp2(m.Corners[e.V0].Point, m.Corners[e.V1].Point, 0.5)
			if e.Midpoint != want {
				t.Fatalf("edge %d midpoint %v, want %v", e.Index, e.Midpoint, want)
			}
		}
	}

	for _, p := range m.Centers {
		for _, ci := range p.Corners {
			if !hasInt(m.Corners[ci].Touches, p.Index) {
				t.Fatalf("corner %d does not know it touches center %d", ci, p.Index)
			}
		}
		assertNoDuplicates(t, "neighbors of center", p.Index, p.Neighbors)
		assertNoDuplicates(t, "corners of center", p.Index, p.Corners)
	}
	for _, q := range m.Corners {
		for _, pi := range q.Touches {
			if !hasInt(m.Centers[pi].Corners, q.Index) {
				t.Fatalf("center %d does not know about corner %d", pi, q.Index)
			}
		}
		assertNoDuplicates(t, "touches of corner", q.Index, q.Touches)
		assertNoDuplicates(t, "adjacent of corner", q.Index, q.Adjacent)
		if q.Downslope != q.Index || q.Watershed != q.Index {
			t.Fatalf("corner %d: downslope and watershed must start at the corner itself", q.Index)
		}
	}
}

func assertNoDuplicates(t *testing.T, what string, owner int, s []int) {
	t.Helper()
	seen := make(map[int]bool, len(s))
	for _, v := range s {
		if seen[v] {
			t.Fatalf("%s %d contains %d twice", what, owner, v)
		}
		seen[v] = true
	}
}

func TestBuildGraphCornerDedup(t *testing.T) {
	m := testMapThrough(t, 9, "building graph", func(cfg *Config) {
		cfg.ImproveCorners = false
	})

	for i, a := range m.Corners {
		for _, b := range m.Corners[i+1:] {
			if dist2(a.Point, b.Point) < cornerMergeDistSq {
				t.Fatalf("corners %d and %d are closer than the merge tolerance: %v vs %v",
					a.Index, b.Index, a.Point, b.Point)
			}
		}
	}

	for _, q := range m.Corners {
		onBorder := q.Point.X == 0 || q.Point.X == m.Size || q.Point.Y == 0 || q.Point.Y == m.Size
		if q.Border != onBorder {
			t.Fatalf("corner %d at %v: border flag %v, want %v", q.Index, q.Point, q.Border, onBorder)
		}
	}
}

func TestLookupEdges(t *testing.T) {
	m := testMapThrough(t, 21, "building graph", nil)

	for _, e := range m.Edges {
		if e.D0 >= 0 && e.D1 >= 0 {
			ei := m.lookupEdgeFromCenter(e.D0, e.D1)
			if ei < 0 {
				t.Fatalf("no edge found between centers %d and %d", e.D0, e.D1)
			}
			f := m.Edges[ei]
			if !(f.D0 == e.D0 && f.D1 == e.D1) && !(f.D0 == e.D1 && f.D1 == e.D0) {
				t.Fatalf("lookupEdgeFromCenter(%d, %d) returned unrelated edge %d", e.D0, e.D1, ei)
			}
		}
		if e.V0 >= 0 && e.V1 >= 0 && e.V0 != e.V1 {
			ei := m.lookupEdgeFromCorner(e.V0, e.V1)
			if ei < 0 {
				t.Fatalf("no edge found between corners %d and %d", e.V0, e.V1)
			}
			f := m.Edges[ei]
			if !(f.V0 == e.V0 && f.V1 == e.V1) && !(f.V0 == e.V1 && f.V1 == e.V0) {
				t.Fatalf("lookupEdgeFromCorner(%d, %d) returned unrelated edge %d", e.V0, e.V1, ei)
			}
		}
	}

	// Pairs that share no edge are not found.
	p0 := m.Centers[0]
	nonNeighbor := -1
	for _, r := range m.Centers {
		if r.Index != p0.Index && !hasInt(p0.Neighbors, r.Index) {
			nonNeighbor = r.Index
			break
		}
	}
	if nonNeighbor < 0 {
		t.Fatal("center 0 neighbors every other center, map too small")
	}
	if got := m.lookupEdgeFromCenter(p0.Index, nonNeighbor); got != -1 {
		t.Fatalf("lookupEdgeFromCenter(%d, %d) = %d for non-neighbors, want -1", p0.Index, nonNeighbor, got)
	}

	q0 := m.Corners[0]
	nonAdjacent := -1
	for _, s := range m.Corners {
		if s.Index != q0.Index && !hasInt(q0.Adjacent, s.Index) {
			nonAdjacent = s.Index
			break
		}
	}
	if nonAdjacent < 0 {
		t.Fatal("corner 0 is adjacent to every other corner, map too small")
	}
	if got := m.lookupEdgeFromCorner(q0.Index, nonAdjacent); got != -1 {
		t.Fatalf("lookupEdgeFromCorner(%d, %d) = %d for non-adjacent corners, want -1", q0.Index, nonAdjacent, got)
	}
}

func TestCornerRing(t *testing.T) {
	m := testMapThrough(t, 2, "building graph", nil)

	for _, p := range m.Centers {
		ring := m.cornerRing(p.Index)
		if len(ring) != len(p.Corners) {
			t.Fatalf("center %d: ring has %d corners, want %d", p.Index, len(ring), len(p.Corners))
		}
		sortedRing := append([]int(nil), ring...)
		slices.Sort(sortedRing)
		sortedCorners := append([]int(nil), p.Corners...)
		slices.Sort(sortedCorners)
		if !slices.Equal(sortedRing, sortedCorners) {
			t.Fatalf("center %d: ring is not a permutation of its corners", p.Index)
		}

		prev := math.Inf(-1)
		for _, ci := range ring {
			pt := m.Corners[ci].Point
			angle := math.Atan2(pt.Y-p.Point.Y, pt.X-p.Point.X)
			if angle < prev {
				t.Fatalf("center %d: ring angles not sorted", p.Index)
			}
			prev = angle
		}
	}
}

func TestAddUnique(t *testing.T) {
	s := addUnique(nil, 3)
	s = addUnique(s, 5)
	s = addUnique(s, 3)
	s = addUnique(s, 5)
	s = addUnique(s, 7)
	if !slices.Equal(s, []int{3, 5, 7}) {
		t.Fatalf("addUnique produced %v, want [3 5 7]", s)
	}
}

func TestImproveCorners(t *testing.T) {
	m := testMapThrough(t, 31, "building graph", func(cfg *Config) {
		cfg.ImproveCorners = false
	})

	before := make([]Point, len(m.Corners))
	for i, q := range m.Corners {
		before[i] = q.Point
	}

	m.improveCorners()

	for i, q := range m.Corners {
		if q.Border || len(q.Touches) == 0 {
			if q.Point != before[i] {
				t.Fatalf("border corner %d moved from %v to %v", q.Index, before[i], q.Point)
			}
			continue
		}
		var sum Point
		for _, ci := range q.Touches {
			p := m.Centers[ci].Point
			sum.X += p.X
			sum.Y += p.Y
		}
		want := Point{
			X: sum.X / float64(len(q.Touches)),
			Y: sum.Y / float64(len(q.Touches)),
		}
		if q.Point != want {
			t.Fatalf("corner %d at %v, want mean of touching centers %v", q.Index, q.Point, want)
		}
	}

	for _, e := range m.Edges {
		if e.V0 >= 0 && e.V1 >= 0 {
			want := lerp2(m.Corners[e.V0].Point, m.Corners[e.V1].Point, 0.5)
			if e.Midpoint != want {
				t.Fatalf("edge %d midpoint not recomputed: %v, want %v", e.Index, e.Midpoint, want)
			}
		}
	}
}
