package genislandvoronoi

import (
	"container/list"
)

// assignShapeWater marks every corner as land or water using the island
// shape. Border corners are always water so the ocean flood fill can start
// from the map edge.
func (m *Map) assignShapeWater() {
	inside := m.Shape.Inside
	for _, q := range m.Corners {
		q.Water = q.Border || !inside(m.normalized(q.Point))
	}
}

// assignOceanCoastAndLand sorts every polygon and corner into ocean, coast,
// lake or land.
//
// Polygons touching the map border seed a flood fill that spreads ocean
// across connected water polygons. Water that the fill never reaches is
// enclosed by land and stays a lake. A polygon already counts as water when
// enough of its corners are water (LakeThreshold), which lets lakes form in
// bumpy regions without an explicit lake pass.
func (m *Map) assignOceanCoastAndLand() {
	// The corner water flags are rewritten below from the polygon
	// classification, so a rerun of this stage has to restore the
	// shape-based flags before counting them.
	m.assignShapeWater()

	queue := list.New()
	for _, p := range m.Centers {
		numWater := 0
		for _, ci := range p.Corners {
			q := m.Corners[ci]
			if q.Border {
				p.Border = true
				p.Ocean = true
				q.Water = true
				queue.PushBack(p.Index)
			}
			if q.Water {
				numWater++
			}
		}
		p.Water = p.Ocean || float64(numWater) >= float64(len(p.Corners))*m.cfg.LakeThreshold
	}
	for queue.Len() > 0 {
		e := queue.Front()
		queue.Remove(e)
		p := m.Centers[e.Value.(int)]
		for _, ri := range p.Neighbors {
			r := m.Centers[ri]
			if r.Water && !r.Ocean {
				r.Ocean = true
				queue.PushBack(ri)
			}
		}
	}

	// A coast polygon is land with at least one ocean neighbor.
	for _, p := range m.Centers {
		numOcean := 0
		numLand := 0
		for _, ri := range p.Neighbors {
			r := m.Centers[ri]
			if r.Ocean {
				numOcean++
			}
			if !r.Water {
				numLand++
			}
		}
		p.Coast = numOcean > 0 && numLand > 0
	}

	// Corner flags follow from the polygons the corner touches: ocean if
	// all of them are ocean, coast if both ocean and land meet here, and
	// water if it is neither pure land nor coast.
	for _, q := range m.Corners {
		numOcean := 0
		numLand := 0
		for _, pi := range q.Touches {
			p := m.Centers[pi]
			if p.Ocean {
				numOcean++
			}
			if !p.Water {
				numLand++
			}
		}
		q.Ocean = numOcean == len(q.Touches)
		q.Coast = numOcean > 0 && numLand > 0
		q.Water = q.Border || (numLand != len(q.Touches) && !q.Coast)
	}
}
