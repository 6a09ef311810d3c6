package genislandvoronoi

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	geojson "github.com/paulmach/go.geojson"
)

// WriteSVG writes the map as an SVG document: one polygon per center in
// its biome color, rivers and roads as lines on top. Corner rings keep the
// straight Voronoi borders; SVG output is meant for inspecting the graph,
// not for the painterly look of the PNG renderer.
func (m *Map) WriteSVG(w io.Writer) error {
	if m.Graph == nil {
		return fmt.Errorf("map has no graph yet")
	}
	canvas := svg.New(w)
	size := int(m.Size)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, svgFill(displayColors[BiomeOcean]))

	for _, p := range m.Centers {
		ring := m.cornerRing(p.Index)
		if len(ring) < 3 {
			continue
		}
		xs := make([]int, len(ring))
		ys := make([]int, len(ring))
		for i, ci := range ring {
			pt := m.Corners[ci].Point
			xs[i] = int(pt.X)
			ys[i] = int(pt.Y)
		}
		canvas.Polygon(xs, ys, svgFill(displayColors[p.Biome]))
	}

	for _, e := range m.Edges {
		if e.River == 0 || e.V0 < 0 || e.V1 < 0 {
			continue
		}
		v0 := m.Corners[e.V0].Point
		v1 := m.Corners[e.V1].Point
		width := 1 + int(math.Sqrt(float64(e.River)))
		canvas.Line(int(v0.X), int(v0.Y), int(v1.X), int(v1.Y),
			fmt.Sprintf("stroke:#225588;stroke-width:%d;fill:none", width))
	}

	if m.Roads != nil {
		for _, p := range m.Centers {
			if m.Roads.RoadConnections[p.Index] == 0 {
				continue
			}
			for _, ei := range p.Borders {
				if m.Roads.Road[ei] == 0 {
					continue
				}
				e := m.Edges[ei]
				if e.V0 < 0 || e.V1 < 0 {
					continue
				}
				canvas.Line(int(p.Point.X), int(p.Point.Y), int(e.Midpoint.X), int(e.Midpoint.Y),
					"stroke:#442211;stroke-width:1;fill:none")
			}
		}
	}

	canvas.End()
	return nil
}

// ExportSVG writes the SVG rendering to a file.
func (m *Map) ExportSVG(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := m.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func svgFill(c color.NRGBA) string {
	return fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
}

// ExportGeoJSON returns the map as a GeoJSON feature collection: polygon
// features carrying biome, elevation, moisture and the water flags, river
// edges as linestrings with their volume. Coordinates are raw map
// coordinates, not geographic ones.
func (m *Map) ExportGeoJSON() ([]byte, error) {
	if m.Graph == nil {
		return nil, fmt.Errorf("map has no graph yet")
	}
	geoJSON := geojson.NewFeatureCollection()

	for _, p := range m.Centers {
		ring := m.cornerRing(p.Index)
		if len(ring) < 3 {
			continue
		}
		coords := make([][]float64, 0, len(ring)+1)
		for _, ci := range ring {
			pt := m.Corners[ci].Point
			coords = append(coords, []float64{pt.X, pt.Y})
		}
		coords = append(coords, coords[0]) // close the ring
		f := geojson.NewPolygonFeature([][][]float64{coords})
		f.SetProperty("index", p.Index)
		f.SetProperty("biome", p.Biome.String())
		f.SetProperty("elevation", p.Elevation)
		f.SetProperty("moisture", p.Moisture)
		f.SetProperty("ocean", p.Ocean)
		f.SetProperty("water", p.Water)
		f.SetProperty("coast", p.Coast)
		geoJSON.AddFeature(f)
	}

	for _, e := range m.Edges {
		if e.River == 0 || e.V0 < 0 || e.V1 < 0 {
			continue
		}
		v0 := m.Corners[e.V0].Point
		v1 := m.Corners[e.V1].Point
		f := geojson.NewLineStringFeature([][]float64{
			{v0.X, v0.Y},
			{v1.X, v1.Y},
		})
		f.SetProperty("river", e.River)
		geoJSON.AddFeature(f)
	}

	return geoJSON.MarshalJSON()
}
