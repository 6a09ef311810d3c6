package genislandvoronoi

import (
	"math"
	"sort"
)

// assignCornerElevations marks every corner as land or water using the
// island shape, then assigns corner elevations as BFS distance from the map
// border: crossing water costs almost nothing (0.01), crossing land a full
// step (1.01). Border corners start at 0, everything else at infinity, and
// a corner is only updated (and requeued) when a cheaper path reaches it.
//
// The result is a relaxed fixed point: no corner can be lowered by another
// pass, and elevation never decreases towards the border. Lakes come out
// flat because their interior steps are nearly free.
func (m *Map) assignCornerElevations() {
	m.assignShapeWater()

	queue := make([]int, 0, len(m.Corners))
	for _, q := range m.Corners {
		if q.Border {
			q.Elevation = 0
			queue = append(queue, q.Index)
		} else {
			q.Elevation = math.Inf(1)
		}
	}
	for head := 0; head < len(queue); head++ {
		q := m.Corners[queue[head]]
		for _, si := range q.Adjacent {
			s := m.Corners[si]
			newElevation := 0.01 + q.Elevation
			if !q.Water && !s.Water {
				newElevation += 1
				if m.gridJitter {
					// Lattice distributions have no positional randomness;
					// without jitter the elevations form perfectly straight
					// ramps.
					newElevation += m.Rand.NextDouble()
				}
			}
			if newElevation < s.Elevation {
				s.Elevation = newElevation
				queue = append(queue, si)
			}
		}
	}
}

// How much land sits below a given elevation: y = 2x - x^2 rearranged, so
// half the land is below 0.3 and peaks stay rare.
const elevationScaleFactor = 1.1

// redistributeElevations remaps land corner elevations (lakes included)
// onto the target height distribution: corners are sorted by raw elevation
// and each one gets the height its rank demands. Ocean and coast corners
// are forced to elevation 0 afterwards.
func (m *Map) redistributeElevations() {
	land := m.landCorners()
	sort.Slice(land, func(i, j int) bool {
		return m.Corners[land[i]].Elevation < m.Corners[land[j]].Elevation
	})
	n := len(land)
	for i, ci := range land {
		y := 0.0
		if n > 1 {
			y = float64(i) / float64(n-1)
		}
		x := math.Sqrt(elevationScaleFactor) - math.Sqrt(elevationScaleFactor*(1-y))
		if x > 1.0 {
			x = 1.0
		}
		m.Corners[ci].Elevation = x
	}

	for _, q := range m.Corners {
		if q.Ocean || q.Coast {
			q.Elevation = 0
		}
	}
}

// assignPolygonElevations sets every polygon's elevation to the average of
// its corners.
func (m *Map) assignPolygonElevations() {
	for _, p := range m.Centers {
		if len(p.Corners) == 0 {
			continue
		}
		var sum float64
		for _, ci := range p.Corners {
			sum += m.Corners[ci].Elevation
		}
		p.Elevation = sum / float64(len(p.Corners))
	}
}
