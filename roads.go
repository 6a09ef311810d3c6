package genislandvoronoi

import (
	"math"

	"github.com/Flokey82/go_gens/utils"
)

// Elevation ceilings of the contour zones roads follow. Zone 1 is the
// coast; a polygon belongs to the first zone whose ceiling its elevation
// does not exceed.
var roadElevationThresholds = []float64{0, 0.05, 0.37, 0.64}

// Roads are laid along the contour lines between elevation zones.
type Roads struct {
	Road            []int // edge index -> contour level, 0 for no road
	RoadConnections []int // center index -> number of road edges on its border
}

// createRoads grows contour zones inland from the coast with a BFS over
// polygons, gives every corner the lowest zone among its touching polygons,
// and puts a road on each edge whose two corners ended up in different
// zones. Water polygons never advance the zone, so a road reaching a lake
// follows its shoreline instead of crossing it.
func (m *Map) createRoads() *Roads {
	const unset = math.MaxInt32
	centerContour := make([]int, len(m.Centers))
	cornerContour := make([]int, len(m.Corners))
	for i := range centerContour {
		centerContour[i] = unset
	}
	for i := range cornerContour {
		cornerContour[i] = unset
	}

	queue := make([]int, 0, len(m.Centers))
	for _, p := range m.Centers {
		if p.Coast || p.Ocean {
			centerContour[p.Index] = 1
			queue = append(queue, p.Index)
		}
	}
	for head := 0; head < len(queue); head++ {
		p := m.Centers[queue[head]]
		for _, ri := range p.Neighbors {
			r := m.Centers[ri]
			newLevel := centerContour[p.Index]
			for newLevel < len(roadElevationThresholds) &&
				r.Elevation > roadElevationThresholds[newLevel] && !r.Water {
				// This polygon is above the neighboring zone's ceiling.
				newLevel++
			}
			if newLevel < centerContour[ri] {
				centerContour[ri] = newLevel
				queue = append(queue, ri)
			}
		}
	}

	for _, p := range m.Centers {
		for _, ci := range p.Corners {
			if centerContour[p.Index] < cornerContour[ci] {
				cornerContour[ci] = centerContour[p.Index]
			}
		}
	}

	roads := &Roads{
		Road:            make([]int, len(m.Edges)),
		RoadConnections: make([]int, len(m.Centers)),
	}
	for _, p := range m.Centers {
		for _, ei := range p.Borders {
			e := m.Edges[ei]
			if e.V0 < 0 || e.V1 < 0 || cornerContour[e.V0] == cornerContour[e.V1] {
				continue
			}
			// The edge crosses a zone boundary; it carries a road segment.
			if roads.Road[ei] == 0 {
				roads.Road[ei] = utils.Min(cornerContour[e.V0], cornerContour[e.V1])
			}
			roads.RoadConnections[p.Index]++
		}
	}
	return roads
}
