package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genislandvoronoi"
)

var (
	seed       = flag.Int64("seed", 1234, "map seed")
	numPoints  = flag.Int("points", 2000, "number of voronoi polygons")
	size       = flag.Float64("size", 600, "width and height of the map")
	shape      = flag.String("shape", "radial", "island shape (radial, perlin, simplex, square, blob)")
	dist       = flag.String("distribution", "relaxed", "point distribution (random, relaxed, square, hexagon)")
	mode       = flag.String("mode", "biome", "render mode (biome, elevation, moisture, whittaker)")
	pngOut     = flag.String("png", "map.png", "PNG output path (empty to skip)")
	pngWidth   = flag.Int("pngwidth", 1024, "PNG width in pixels")
	svgOut     = flag.String("svg", "", "SVG output path (empty to skip)")
	jsonOut    = flag.String("geojson", "", "GeoJSON output path (empty to skip)")
	heightOut  = flag.String("heightmap", "", "heightmap PNG output path (empty to skip)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genislandvoronoi.NewConfig()
	cfg.NumPoints = *numPoints
	cfg.Size = *size
	var ok bool
	if cfg.IslandShape, ok = genislandvoronoi.ShapeByName[*shape]; !ok {
		log.Fatalf("unknown island shape %q", *shape)
	}
	if cfg.PointDistribution, ok = genislandvoronoi.DistByName[*dist]; !ok {
		log.Fatalf("unknown point distribution %q", *dist)
	}
	renderMode, ok := genislandvoronoi.ModeByName[*mode]
	if !ok {
		log.Fatalf("unknown render mode %q", *mode)
	}

	m, err := genislandvoronoi.NewMapFromConfig(*seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	st := m.Stats()
	log.Printf("%d polygons: %d land, %d coast, %d lake, %d ocean", st.NumCenters, st.Land, st.Coast, st.Lake, st.Ocean)
	log.Printf("%d river edges, %d road edges, %d lava edges", st.RiverEdges, st.RoadEdges, st.LavaEdges)

	if *pngOut != "" {
		if err := m.ExportPng(*pngOut, renderMode, *pngWidth); err != nil {
			log.Fatal(err)
		}
	}
	if *svgOut != "" {
		if err := m.ExportSVG(*svgOut); err != nil {
			log.Fatal(err)
		}
	}
	if *jsonOut != "" {
		buf, err := m.ExportGeoJSON()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*jsonOut, buf, 0644); err != nil {
			log.Fatal(err)
		}
	}
	if *heightOut != "" {
		if err := m.ExportHeightmapPng(*heightOut, *pngWidth); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
