package genislandvoronoi

import (
	"math"
	"sort"
)

// assignCornerMoisture spreads moisture outward from fresh water. River and
// lake corners seed the queue (river moisture grows with volume, capped at
// 3.0), and every hop away keeps 90% of the best value seen so far. The
// sweep maximizes: a corner is only updated and requeued when a wetter path
// reaches it. Salt water is set to full moisture at the end but does not
// spread inland.
func (m *Map) assignCornerMoisture() {
	queue := make([]int, 0, len(m.Corners))
	for _, q := range m.Corners {
		if (q.Water || q.River > 0) && !q.Ocean {
			if q.River > 0 {
				q.Moisture = math.Min(3.0, 0.2*float64(q.River))
			} else {
				q.Moisture = 1.0
			}
			queue = append(queue, q.Index)
		} else {
			q.Moisture = 0.0
		}
	}
	for head := 0; head < len(queue); head++ {
		q := m.Corners[queue[head]]
		for _, si := range q.Adjacent {
			s := m.Corners[si]
			if newMoisture := q.Moisture * 0.9; newMoisture > s.Moisture {
				s.Moisture = newMoisture
				queue = append(queue, si)
			}
		}
	}

	for _, q := range m.Corners {
		if q.Ocean || q.Coast {
			q.Moisture = 1.0
		}
	}
}

// redistributeMoisture remaps land corner moisture onto an even 0..1 ramp
// by rank, so the moisture cutoffs in the biome table divide the land into
// predictable shares.
func (m *Map) redistributeMoisture() {
	land := m.landCorners()
	sort.Slice(land, func(i, j int) bool {
		return m.Corners[land[i]].Moisture < m.Corners[land[j]].Moisture
	})
	n := len(land)
	for i, ci := range land {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		m.Corners[ci].Moisture = v
	}
}

// assignPolygonMoisture sets every polygon's moisture to the average of its
// corners, clamping each corner at 1.0 (big river corners exceed it).
func (m *Map) assignPolygonMoisture() {
	for _, p := range m.Centers {
		if len(p.Corners) == 0 {
			continue
		}
		var sum float64
		for _, ci := range p.Corners {
			sum += math.Min(m.Corners[ci].Moisture, 1.0)
		}
		p.Moisture = sum / float64(len(p.Corners))
	}
}
