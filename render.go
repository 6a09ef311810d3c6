package genislandvoronoi

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/Flokey82/genbiome"
	"github.com/Flokey82/genislandvoronoi/various"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// Display modes for RenderImage.
const (
	ModeBiome     = iota // biome palette with rivers, roads and lava
	ModeElevation        // blue to red gradient
	ModeMoisture         // sand to blue gradient
	ModeWhittaker        // Whittaker diagram colors from pseudo-climate
)

// ModeByName maps CLI and query names to display modes.
var ModeByName = map[string]int{
	"biome":     ModeBiome,
	"elevation": ModeElevation,
	"moisture":  ModeMoisture,
	"whittaker": ModeWhittaker,
}

// displayColors is the island generator's classic biome palette.
var displayColors = map[Biome]color.NRGBA{
	BiomeOcean:                    {0x44, 0x44, 0x7a, 0xff},
	BiomeMarsh:                    {0x2f, 0x66, 0x66, 0xff},
	BiomeIce:                      {0x99, 0xff, 0xff, 0xff},
	BiomeLake:                     {0x33, 0x66, 0x99, 0xff},
	BiomeBeach:                    {0xa0, 0x90, 0x77, 0xff},
	BiomeSnow:                     {0xff, 0xff, 0xff, 0xff},
	BiomeTundra:                   {0xbb, 0xbb, 0xaa, 0xff},
	BiomeBare:                     {0x88, 0x88, 0x88, 0xff},
	BiomeScorched:                 {0x55, 0x55, 0x55, 0xff},
	BiomeTaiga:                    {0x99, 0xaa, 0x77, 0xff},
	BiomeShrubland:                {0x88, 0x99, 0x77, 0xff},
	BiomeTemperateDesert:          {0xc9, 0xd2, 0x9b, 0xff},
	BiomeTemperateRainForest:      {0x44, 0x88, 0x55, 0xff},
	BiomeTemperateDeciduousForest: {0x67, 0x94, 0x59, 0xff},
	BiomeGrassland:                {0x88, 0xaa, 0x55, 0xff},
	BiomeTropicalRainForest:       {0x33, 0x77, 0x55, 0xff},
	BiomeTropicalSeasonalForest:   {0x55, 0x99, 0x44, 0xff},
	BiomeSubtropicalDesert:        {0xd2, 0xb9, 0x8b, 0xff},
}

// Overlay colors.
var (
	colorRiver = color.NRGBA{0x22, 0x55, 0x88, 0xff}
	colorLava  = color.NRGBA{0xcc, 0x33, 0x33, 0xff}
	colorRoad  = [3]color.NRGBA{
		{0x44, 0x22, 0x11, 0xff},
		{0x55, 0x33, 0x22, 0xff},
		{0x66, 0x44, 0x33, 0xff},
	}
)

// Pseudo-climate behind the Whittaker display mode. The island has no
// latitude, so temperature falls with elevation alone and precipitation
// follows moisture.
const (
	minTemp          = genbiome.MinTemperatureC
	maxTemp          = genbiome.MaxTemperatureC
	rangeTemp        = maxTemp - minTemp
	maxPrecipitation = genbiome.MaxPrecipitationDM // 450cm
)

func pseudoClimate(p *Center) (tempC, precipDM int) {
	return int(float64(maxTemp) - p.Elevation*float64(rangeTemp)), int(p.Moisture * float64(maxPrecipitation))
}

// WhittakerBiome returns the Whittaker-diagram biome name of a polygon
// under the pseudo-climate used by the Whittaker display mode.
func WhittakerBiome(p *Center) string {
	tempC, precipDM := pseudoClimate(p)
	return genbiome.WhittakerModBiomeToString(genbiome.GetWhittakerModBiome(tempC, precipDM))
}

// RenderImage draws the map into a square image of the given pixel width.
// The biome and Whittaker modes include the river, road and lava overlays;
// the gradient modes show the raw values only.
func (m *Map) RenderImage(mode, width int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, width))
	gc := draw2dimg.NewGraphicContext(img)
	scale := float64(width) / m.Size
	colorFunc := m.centerColorFunc(mode)

	// First pass: every polygon as its plain corner ring. Edges that lost a
	// corner to the map border have no noisy paths, so this pass is what
	// keeps the border polygons closed.
	gc.SetLineWidth(1)
	for _, p := range m.Centers {
		ring := m.cornerRing(p.Index)
		if len(ring) < 3 {
			continue
		}
		col := colorFunc(p)
		gc.SetFillColor(col)
		gc.SetStrokeColor(col)
		gc.BeginPath()
		first := m.Corners[ring[0]].Point
		gc.MoveTo(first.X*scale, first.Y*scale)
		for _, ci := range ring[1:] {
			pt := m.Corners[ci].Point
			gc.LineTo(pt.X*scale, pt.Y*scale)
		}
		gc.Close()
		gc.FillStroke()
	}

	// Second pass: redraw the edge zones as noisy wedges. Each wedge runs
	// from the polygon center out to one edge's jittered path and back, so
	// straight Voronoi borders disappear under the jitter.
	if m.NoisyEdges != nil {
		for _, p := range m.Centers {
			col := colorFunc(p)
			gc.SetFillColor(col)
			gc.SetStrokeColor(col)
			for _, ei := range p.Borders {
				path0 := m.NoisyEdges.Path0[ei]
				if path0 == nil {
					continue
				}
				path1 := m.NoisyEdges.Path1[ei]
				gc.BeginPath()
				gc.MoveTo(p.Point.X*scale, p.Point.Y*scale)
				for _, pt := range path0 {
					gc.LineTo(pt.X*scale, pt.Y*scale)
				}
				for i := len(path1) - 1; i >= 0; i-- {
					gc.LineTo(path1[i].X*scale, path1[i].Y*scale)
				}
				gc.Close()
				gc.FillStroke()
			}
		}
	}

	if mode == ModeBiome || mode == ModeWhittaker {
		m.drawRivers(gc, scale)
		m.drawRoads(gc, scale)
		m.drawLava(gc, scale)
	}
	return img
}

// centerColorFunc returns the polygon coloring for a display mode.
func (m *Map) centerColorFunc(mode int) func(*Center) color.Color {
	switch mode {
	case ModeElevation:
		// Normalize against the highest polygon; peaks clamp at 1.0 so the
		// top of the gradient is always reached.
		elevations := make([]float64, len(m.Centers))
		for i, p := range m.Centers {
			elevations[i] = p.Elevation
		}
		_, max := minMax(elevations)
		if max == 0 {
			max = 1
		}
		colorGrad := colorgrad.NewGradient()
		colorGrad.Colors(
			color.RGBA{0, 0, 255, 255},
			color.RGBA{0, 255, 255, 255},
			color.RGBA{0, 255, 0, 255},
			color.RGBA{255, 255, 0, 255},
			color.RGBA{255, 0, 0, 255},
		)
		cb, err := colorGrad.Build()
		if err != nil {
			log.Fatal(err)
		}
		return func(p *Center) color.Color {
			if p.Ocean {
				return displayColors[BiomeOcean]
			}
			return genColor(cb.At(p.Elevation / max))
		}
	case ModeMoisture:
		colorGrad := colorgrad.NewGradient()
		colorGrad.Colors(
			color.RGBA{0xd2, 0xb9, 0x8b, 255},
			color.RGBA{0x88, 0xaa, 0x55, 255},
			color.RGBA{0x33, 0x66, 0x99, 255},
		)
		cb, err := colorGrad.Build()
		if err != nil {
			log.Fatal(err)
		}
		return func(p *Center) color.Color {
			if p.Ocean {
				return displayColors[BiomeOcean]
			}
			return genColor(cb.At(p.Moisture))
		}
	case ModeWhittaker:
		return func(p *Center) color.Color {
			if p.Ocean {
				return displayColors[BiomeOcean]
			}
			if p.Water {
				return displayColors[BiomeLake]
			}
			tempC, precipDM := pseudoClimate(p)
			return genbiome.GetWhittakerModBiomeColor(tempC, precipDM, 1.0)
		}
	default: // ModeBiome
		return func(p *Center) color.Color {
			return displayColors[p.Biome]
		}
	}
}

// drawRivers strokes every river edge, wider for higher volume.
func (m *Map) drawRivers(gc *draw2dimg.GraphicContext, scale float64) {
	gc.SetStrokeColor(colorRiver)
	for _, e := range m.Edges {
		if e.River == 0 || e.V0 < 0 || e.V1 < 0 {
			continue
		}
		gc.SetLineWidth(math.Sqrt(float64(e.River)) * scale)
		m.strokeEdge(gc, e, scale)
	}
}

// drawRoads draws road segments from each polygon center to the midpoints
// of its road edges, shaded by contour level.
func (m *Map) drawRoads(gc *draw2dimg.GraphicContext, scale float64) {
	if m.Roads == nil {
		return
	}
	gc.SetLineWidth(1.1 * scale)
	for _, p := range m.Centers {
		if m.Roads.RoadConnections[p.Index] == 0 {
			continue
		}
		for _, ei := range p.Borders {
			level := m.Roads.Road[ei]
			if level == 0 {
				continue
			}
			e := m.Edges[ei]
			if e.V0 < 0 || e.V1 < 0 {
				continue
			}
			if level > len(colorRoad) {
				level = len(colorRoad)
			}
			gc.SetStrokeColor(colorRoad[level-1])
			gc.BeginPath()
			gc.MoveTo(p.Point.X*scale, p.Point.Y*scale)
			gc.LineTo(e.Midpoint.X*scale, e.Midpoint.Y*scale)
			gc.Stroke()
		}
	}
}

// drawLava strokes lava fissure edges.
func (m *Map) drawLava(gc *draw2dimg.GraphicContext, scale float64) {
	if m.Lava == nil {
		return
	}
	gc.SetStrokeColor(colorLava)
	gc.SetLineWidth(1 * scale)
	for _, e := range m.Edges {
		if !m.Lava[e.Index] || e.V0 < 0 || e.V1 < 0 {
			continue
		}
		m.strokeEdge(gc, e, scale)
	}
}

// strokeEdge strokes one edge along its noisy path if present, straight
// otherwise.
func (m *Map) strokeEdge(gc *draw2dimg.GraphicContext, e *Edge, scale float64) {
	gc.BeginPath()
	if m.NoisyEdges != nil && m.NoisyEdges.Path0[e.Index] != nil {
		path0 := m.NoisyEdges.Path0[e.Index]
		path1 := m.NoisyEdges.Path1[e.Index]
		gc.MoveTo(path0[0].X*scale, path0[0].Y*scale)
		for _, pt := range path0[1:] {
			gc.LineTo(pt.X*scale, pt.Y*scale)
		}
		for i := len(path1) - 1; i >= 0; i-- {
			gc.LineTo(path1[i].X*scale, path1[i].Y*scale)
		}
	} else {
		v0 := m.Corners[e.V0].Point
		v1 := m.Corners[e.V1].Point
		gc.MoveTo(v0.X*scale, v0.Y*scale)
		gc.LineTo(v1.X*scale, v1.Y*scale)
	}
	gc.Stroke()
}

// RenderHeightmap rasterizes polygon elevations into a grayscale square
// image. Every pixel samples its nearest polygon, so the result is
// cell-accurate and blocky rather than interpolated. Rows are processed in
// parallel chunks; writes never overlap.
func (m *Map) RenderHeightmap(width int) image.Image {
	img := image.NewGray16(image.Rect(0, 0, width, width))
	step := m.Size / float64(width)
	various.KickOffChunkWorkers(width, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				ci := m.CenterAt((float64(x)+0.5)*step, (float64(y)+0.5)*step)
				if ci < 0 {
					continue
				}
				v := m.Centers[ci].Elevation
				img.SetGray16(x, y, color.Gray16{Y: uint16(v * 65535)})
			}
		}
	})
	return img
}

// ExportPng renders the map in the given mode and writes it as PNG.
func (m *Map) ExportPng(name string, mode, width int) error {
	img := m.RenderImage(mode, width)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportHeightmapPng writes the heightmap as a 16 bit grayscale PNG.
func (m *Map) ExportHeightmapPng(name string, width int) error {
	img := m.RenderHeightmap(width)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
