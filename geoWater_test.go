package genislandvoronoi

import (
	"testing"
)

func TestOceanCoastAndLandFlags(t *testing.T) {
	m := testMapThrough(t, 8, "ocean, coast and land", nil)

	// Ocean spreads exactly as far as water polygons connected to the map
	// border. Recreate the flood fill and compare.
	visited := make([]bool, len(m.Centers))
	var queue []int
	for _, p := range m.Centers {
		if p.Border {
			visited[p.Index] = true
			queue = append(queue, p.Index)
		}
	}
	if len(queue) == 0 {
		t.Fatal("no border polygons found")
	}
	for head := 0; head < len(queue); head++ {
		for _, ri := range m.Centers[queue[head]].Neighbors {
			if m.Centers[ri].Water && !visited[ri] {
				visited[ri] = true
				queue = append(queue, ri)
			}
		}
	}
	for _, p := range m.Centers {
		if p.Ocean != visited[p.Index] {
			t.Fatalf("center %d: ocean %v, but border flood fill says %v", p.Index, p.Ocean, visited[p.Index])
		}
		if p.Ocean && !p.Water {
			t.Fatalf("center %d is ocean but not water", p.Index)
		}
	}

	// A polygon is water when it is ocean or when enough of its corners were
	// water at classification time (border corners count as water).
	for _, p := range m.Centers {
		numWater := 0
		for _, ci := range p.Corners {
			q := m.Corners[ci]
			if q.Border || !m.Shape.Inside(m.normalized(q.Point)) {
				numWater++
			}
		}
		want := p.Ocean || float64(numWater) >= float64(len(p.Corners))*m.cfg.LakeThreshold
		if p.Water != want {
			t.Fatalf("center %d: water %v, want %v (%d of %d corners water)",
				p.Index, p.Water, want, numWater, len(p.Corners))
		}
	}

	// Coast is land meeting ocean.
	for _, p := range m.Centers {
		numOcean, numLand := 0, 0
		for _, ri := range p.Neighbors {
			r := m.Centers[ri]
			if r.Ocean {
				numOcean++
			}
			if !r.Water {
				numLand++
			}
		}
		if want := numOcean > 0 && numLand > 0; p.Coast != want {
			t.Fatalf("center %d: coast %v, want %v", p.Index, p.Coast, want)
		}
	}

	// Corner flags follow from the polygons they touch.
	for _, q := range m.Corners {
		numOcean, numLand := 0, 0
		for _, pi := range q.Touches {
			p := m.Centers[pi]
			if p.Ocean {
				numOcean++
			}
			if !p.Water {
				numLand++
			}
		}
		if want := numOcean == len(q.Touches); q.Ocean != want {
			t.Fatalf("corner %d: ocean %v, want %v", q.Index, q.Ocean, want)
		}
		if want := numOcean > 0 && numLand > 0; q.Coast != want {
			t.Fatalf("corner %d: coast %v, want %v", q.Index, q.Coast, want)
		}
		if want := q.Border || (numLand != len(q.Touches) && !q.Coast); q.Water != want {
			t.Fatalf("corner %d: water %v, want %v", q.Index, q.Water, want)
		}
	}
}

func TestOceanCoastAndLandRerun(t *testing.T) {
	m := testMapThrough(t, 8, "ocean, coast and land", nil)

	type centerFlags struct{ border, ocean, water, coast bool }
	type cornerFlags struct{ ocean, water, coast bool }
	centers := make([]centerFlags, len(m.Centers))
	for i, p := range m.Centers {
		centers[i] = centerFlags{p.Border, p.Ocean, p.Water, p.Coast}
	}
	corners := make([]cornerFlags, len(m.Corners))
	for i, q := range m.Corners {
		corners[i] = cornerFlags{q.Ocean, q.Water, q.Coast}
	}

	// The stage ends by rewriting the corner water flags it classifies
	// polygons with, so running it again must not move the coastline.
	idx := stageIndex(t, m, "ocean, coast and land")
	if err := m.Generate(idx, idx+1); err != nil {
		t.Fatalf("rerun ocean, coast and land: %v", err)
	}

	for i, p := range m.Centers {
		if got := (centerFlags{p.Border, p.Ocean, p.Water, p.Coast}); got != centers[i] {
			t.Fatalf("center %d flags changed on rerun: %+v, want %+v", i, got, centers[i])
		}
	}
	for i, q := range m.Corners {
		if got := (cornerFlags{q.Ocean, q.Water, q.Coast}); got != corners[i] {
			t.Fatalf("corner %d flags changed on rerun: %+v, want %+v", i, got, corners[i])
		}
	}
}

func TestLakeThresholdZero(t *testing.T) {
	// With the threshold at zero every polygon counts as water, so the flood
	// fill turns the whole map into ocean.
	m := testMap(t, 8, func(cfg *Config) {
		cfg.LakeThreshold = 0
	})
	st := m.Stats()
	if st.Ocean != len(m.Centers) {
		t.Fatalf("expected the whole map to be ocean, got %d of %d", st.Ocean, len(m.Centers))
	}
	if st.Land != 0 || st.Coast != 0 || st.Lake != 0 {
		t.Fatalf("expected no land, coast or lakes, got %d/%d/%d", st.Land, st.Coast, st.Lake)
	}
	for _, p := range m.Centers {
		if p.Biome != BiomeOcean {
			t.Fatalf("center %d got biome %s, want OCEAN", p.Index, p.Biome)
		}
	}
}
