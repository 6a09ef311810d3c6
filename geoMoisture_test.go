package genislandvoronoi

import (
	"sort"
	"testing"
)

func TestCornerMoisture(t *testing.T) {
	m := testMapThrough(t, 1234, "corner moisture", func(cfg *Config) {
		cfg.NumPoints = 300
	})

	for _, q := range m.Corners {
		if q.Moisture < 0 || q.Moisture > 3.0 {
			t.Fatalf("corner %d moisture %v out of range", q.Index, q.Moisture)
		}
		if (q.Ocean || q.Coast) && q.Moisture != 1.0 {
			t.Fatalf("salt water corner %d has moisture %v, want 1.0", q.Index, q.Moisture)
		}
		if q.River > 0 && !q.Ocean && q.Moisture == 0 {
			t.Fatalf("river corner %d is dry", q.Index)
		}
	}

	// At the fixed point every corner has at least 90% of the moisture of
	// each inland neighbor; otherwise the sweep would have raised it. Ocean
	// and coast corners are overwritten to 1.0 afterwards, which next to a
	// big river corner is lower than what the sweep gave them, so only
	// inland pairs are checked.
	for _, q := range m.Corners {
		if q.Ocean || q.Coast {
			continue
		}
		for _, si := range q.Adjacent {
			s := m.Corners[si]
			if s.Ocean || s.Coast {
				continue
			}
			if s.Moisture < q.Moisture*0.9-1e-9 {
				t.Fatalf("corner %d at %v should have been moistened by corner %d at %v",
					si, s.Moisture, q.Index, q.Moisture)
			}
		}
	}
}

func TestRedistributeMoisture(t *testing.T) {
	m := testMapThrough(t, 1234, "redistributing moisture", func(cfg *Config) {
		cfg.NumPoints = 300
	})

	land := m.landCorners()
	if len(land) < 2 {
		t.Fatalf("test island has %d land corners, too small to check the ramp", len(land))
	}
	got := make([]float64, 0, len(land))
	for _, ci := range land {
		got = append(got, m.Corners[ci].Moisture)
	}
	sort.Float64s(got)

	n := len(land)
	for i, v := range got {
		if want := float64(i) / float64(n-1); v != want {
			t.Fatalf("land moisture rank %d/%d is %v, want %v", i, n, v, want)
		}
	}

	for _, q := range m.Corners {
		if (q.Ocean || q.Coast) && q.Moisture != 1.0 {
			t.Fatalf("salt water corner %d has moisture %v after redistribution", q.Index, q.Moisture)
		}
	}
}

func TestAssignPolygonMoisture(t *testing.T) {
	g := &Graph{
		Size: 100,
		Corners: []*Corner{
			{Index: 0, Moisture: 0.5},
			{Index: 1, Moisture: 2.5}, // river corner above the clamp
		},
		Centers: []*Center{
			{Index: 0, Corners: []int{0, 1}},
			{Index: 1}, // no corners, must be skipped
		},
	}
	m := &Map{Graph: g}
	m.assignPolygonMoisture()

	// The river corner clamps to 1.0 before averaging.
	if want := (0.5 + 1.0) / 2; g.Centers[0].Moisture != want {
		t.Fatalf("center 0 moisture %v, want %v", g.Centers[0].Moisture, want)
	}
	if g.Centers[1].Moisture != 0 {
		t.Fatalf("cornerless center got moisture %v", g.Centers[1].Moisture)
	}
}
