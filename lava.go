package genislandvoronoi

// createLava marks a random subset of edges between high, dry, riverless
// polygons as lava fissures. Lava and rivers are mutually exclusive on an
// edge.
func (m *Map) createLava() []bool {
	lava := make([]bool, len(m.Edges))
	for _, e := range m.Edges {
		if e.River > 0 || e.D0 < 0 || e.D1 < 0 || e.V0 < 0 || e.V1 < 0 {
			continue
		}
		d0 := m.Centers[e.D0]
		d1 := m.Centers[e.D1]
		if !d0.Water && !d1.Water &&
			d0.Elevation > 0.8 && d1.Elevation > 0.8 &&
			d0.Moisture < 0.3 && d1.Moisture < 0.3 &&
			m.Rand.NextDouble() < m.cfg.LavaFraction {
			lava[e.Index] = true
		}
	}
	return lava
}
