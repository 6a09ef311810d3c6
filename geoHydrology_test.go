package genislandvoronoi

import (
	"testing"
)

func TestDownslopes(t *testing.T) {
	m := testMapThrough(t, 6, "downslopes", nil)

	for _, q := range m.Corners {
		ds := q.Downslope
		if ds != q.Index && !hasInt(q.Adjacent, ds) {
			t.Fatalf("corner %d drains to %d, which is not adjacent", q.Index, ds)
		}
		low := m.Corners[ds].Elevation
		if low > q.Elevation {
			t.Fatalf("corner %d at %v drains uphill to %d at %v", q.Index, q.Elevation, ds, low)
		}
		for _, si := range q.Adjacent {
			if m.Corners[si].Elevation < low {
				t.Fatalf("corner %d drains to %d at %v, but neighbor %d is lower at %v",
					q.Index, ds, low, si, m.Corners[si].Elevation)
			}
		}
		if ds == q.Index {
			for _, si := range q.Adjacent {
				if m.Corners[si].Elevation < q.Elevation {
					t.Fatalf("corner %d is a pit but neighbor %d is strictly lower", q.Index, si)
				}
			}
		}
	}
}

func TestWatersheds(t *testing.T) {
	m := testMapThrough(t, 6, "watersheds", nil)

	inland := 0
	sized := 0
	for _, q := range m.Corners {
		if q.Watershed < 0 || q.Watershed >= len(m.Corners) {
			t.Fatalf("corner %d has watershed %d out of range", q.Index, q.Watershed)
		}
		if (q.Ocean || q.Coast) && q.Watershed != q.Index {
			t.Fatalf("ocean or coast corner %d has watershed %d, want itself", q.Index, q.Watershed)
		}
		if !q.Ocean && !q.Coast {
			inland++
		}
		sized += q.WatershedSize
	}
	// Every inland corner is counted in exactly one watershed.
	if sized != inland {
		t.Fatalf("watershed sizes add up to %d, want %d inland corners", sized, inland)
	}
}

func TestRivers(t *testing.T) {
	m := testMap(t, 1234, func(cfg *Config) {
		cfg.NumPoints = 300
	})

	var cornerSum, edgeSum int
	for _, q := range m.Corners {
		if q.River < 0 {
			t.Fatalf("corner %d has negative river volume", q.Index)
		}
		cornerSum += q.River
	}
	for _, e := range m.Edges {
		if e.River < 0 {
			t.Fatalf("edge %d has negative river volume", e.Index)
		}
		if e.River > 0 {
			if e.V0 < 0 || e.V1 < 0 {
				t.Fatalf("river edge %d is missing a corner", e.Index)
			}
			if m.Corners[e.V0].River == 0 || m.Corners[e.V1].River == 0 {
				t.Fatalf("river edge %d has a dry corner", e.Index)
			}
			// Rivers only flow along downslope links.
			if m.Corners[e.V0].Downslope != e.V1 && m.Corners[e.V1].Downslope != e.V0 {
				t.Fatalf("river edge %d does not follow a downslope link", e.Index)
			}
		}
		edgeSum += e.River
	}
	if edgeSum == 0 {
		t.Fatal("no rivers at all on this island")
	}
	// Every river step adds one unit to the edge and one to each endpoint.
	if cornerSum != 2*edgeSum {
		t.Fatalf("corner river volume %d, want twice the edge volume %d", cornerSum, edgeSum)
	}
}
