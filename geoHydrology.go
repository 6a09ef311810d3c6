package genislandvoronoi

// calculateDownslopes points every corner at its lowest adjacent corner.
// A corner with no strictly lower neighbor points at itself; that only
// happens in pits and on flat plateaus.
func (m *Map) calculateDownslopes() {
	for _, q := range m.Corners {
		lowest := q.Index
		for _, si := range q.Adjacent {
			if m.Corners[si].Elevation < m.Corners[lowest].Elevation {
				lowest = si
			}
		}
		q.Downslope = lowest
	}
}

// calculateWatersheds finds, for every land corner, the coastal corner its
// water ultimately drains through, by repeatedly forwarding each corner's
// watershed pointer to its downslope's watershed. Pointer chasing halves
// the remaining chain length per round; the round cap only matters on maps
// with pathological drainage and then leaves a usable intermediate target.
func (m *Map) calculateWatersheds() {
	for _, q := range m.Corners {
		q.Watershed = q.Index
		if !q.Ocean && !q.Coast {
			q.Watershed = q.Downslope
		}
		q.WatershedSize = 0
	}

	for i := 0; i < 100; i++ {
		changed := false
		for _, q := range m.Corners {
			if q.Ocean || q.Coast || m.Corners[q.Watershed].Coast {
				continue
			}
			r := m.Corners[q.Downslope].Watershed
			if !m.Corners[r].Ocean && r != q.Watershed {
				q.Watershed = r
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, q := range m.Corners {
		if !q.Ocean && !q.Coast {
			m.Corners[q.Watershed].WatershedSize++
		}
	}
}

// createRivers starts size/2 springs at random corners and walks each one
// downslope until it reaches the coast, adding one unit of volume to every
// edge and both its corners along the way. Springs outside the sweet spot
// (too low, too high, or in the ocean) are discarded, and a walk that hits
// a pit before the coast simply ends there.
func (m *Map) createRivers() {
	for i := 0; i < int(m.cfg.Size/2); i++ {
		q := m.Corners[m.Rand.NextIntRange(0, len(m.Corners)-1)]
		if q.Ocean || q.Elevation < 0.3 || q.Elevation > 0.9 {
			continue
		}
		for !q.Coast {
			if q.Index == q.Downslope {
				break
			}
			if ei := m.lookupEdgeFromCorner(q.Index, q.Downslope); ei >= 0 {
				m.Edges[ei].River++
			}
			q.River++
			// TODO: corner volume double-counts shared steps (each corner is
			// incremented as the head of one step and the tail of the next).
			m.Corners[q.Downslope].River++
			q = m.Corners[q.Downslope]
		}
	}
}
