package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/Flokey82/genislandvoronoi"
	"github.com/gorilla/mux"
	"github.com/pelletier/go-toml"
)

var configPath = flag.String("config", "config.toml", "path to the server config file")

// serverConfig is the on-disk configuration of the map server.
type serverConfig struct {
	Addr          string  `toml:"addr"`
	Seed          int64   `toml:"seed"`
	Points        int     `toml:"points"`
	Size          float64 `toml:"size"`
	Shape         string  `toml:"shape"`
	Distribution  string  `toml:"distribution"`
	LakeThreshold float64 `toml:"lake_threshold"`
	LavaFraction  float64 `toml:"lava_fraction"`
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr:          ":3333",
		Seed:          12345,
		Points:        2000,
		Size:          600,
		Shape:         "radial",
		Distribution:  "relaxed",
		LakeThreshold: 0.3,
		LavaFraction:  0.2,
	}
}

// readConfig loads the server configuration from path. A missing file is
// written out with the defaults so it can be edited for the next run.
func readConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			encoded, err := toml.Marshal(cfg)
			if err != nil {
				return cfg, fmt.Errorf("encode default config: %w", err)
			}
			if err := os.WriteFile(path, encoded, 0644); err != nil {
				return cfg, fmt.Errorf("write default config: %w", err)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// mapConfig translates the file values into a generator config.
func (cfg serverConfig) mapConfig() (*genislandvoronoi.Config, error) {
	shape, ok := genislandvoronoi.ShapeByName[cfg.Shape]
	if !ok {
		return nil, fmt.Errorf("unknown island shape %q", cfg.Shape)
	}
	dist, ok := genislandvoronoi.DistByName[cfg.Distribution]
	if !ok {
		return nil, fmt.Errorf("unknown point distribution %q", cfg.Distribution)
	}
	mc := genislandvoronoi.NewConfig()
	mc.NumPoints = cfg.Points
	mc.Size = cfg.Size
	mc.LakeThreshold = cfg.LakeThreshold
	mc.LavaFraction = cfg.LavaFraction
	mc.IslandShape = shape
	mc.PointDistribution = dist
	return mc, nil
}

func main() {
	flag.Parse()

	cfg, err := readConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	mapCfg, err := cfg.mapConfig()
	if err != nil {
		log.Fatal(err)
	}
	m, err := genislandvoronoi.NewMapFromConfig(cfg.Seed, mapCfg)
	if err != nil {
		log.Fatal(err)
	}
	srv := &mapServer{cfg: mapCfg, m: m}

	router := mux.NewRouter()
	router.HandleFunc("/", srv.indexHandler)
	router.HandleFunc("/map.png", srv.mapPNGHandler)
	router.HandleFunc("/map.svg", srv.mapSVGHandler)
	router.HandleFunc("/map.geojson", srv.mapGeoJSONHandler)
	router.HandleFunc("/heightmap.png", srv.heightmapHandler)
	router.HandleFunc("/region", srv.regionHandler)
	router.HandleFunc("/stats", srv.statsHandler)
	router.HandleFunc("/generate", srv.generateHandler)
	log.Println("Serving on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, router))
}

// mapServer serves one island map. Regeneration builds the new map outside
// the lock and swaps it in under the write lock, so the render handlers keep
// serving the old map until the new one is ready.
type mapServer struct {
	mu  sync.RWMutex
	cfg *genislandvoronoi.Config
	m   *genislandvoronoi.Map
}

func (s *mapServer) indexHandler(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.Write([]byte(indexHTML))
}

func (s *mapServer) mapPNGHandler(res http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get("mode")
	if name == "" {
		name = "biome"
	}
	mode, ok := genislandvoronoi.ModeByName[name]
	if !ok {
		http.Error(res, fmt.Sprintf("unknown display mode %q", name), http.StatusBadRequest)
		return
	}
	width, err := queryInt(req, "width", 1024)
	if err != nil || width < 16 || width > 4096 {
		http.Error(res, "width must be an integer between 16 and 4096", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	writeImage(res, s.m.RenderImage(mode, width))
}

func (s *mapServer) mapSVGHandler(res http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf bytes.Buffer
	if err := s.m.WriteSVG(&buf); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/svg+xml")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

func (s *mapServer) mapGeoJSONHandler(res http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.m.ExportGeoJSON()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

func (s *mapServer) heightmapHandler(res http.ResponseWriter, req *http.Request) {
	width, err := queryInt(req, "width", 1024)
	if err != nil || width < 16 || width > 4096 {
		http.Error(res, "width must be an integer between 16 and 4096", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	writeImage(res, s.m.RenderHeightmap(width))
}

// regionInfo describes the polygon under a map coordinate.
type regionInfo struct {
	Index     int     `json:"index"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Elevation float64 `json:"elevation"`
	Moisture  float64 `json:"moisture"`
	Ocean     bool    `json:"ocean"`
	Water     bool    `json:"water"`
	Coast     bool    `json:"coast"`
	Border    bool    `json:"border"`
	Biome     string  `json:"biome"`
	Whittaker string  `json:"whittaker"`
}

func (s *mapServer) regionHandler(res http.ResponseWriter, req *http.Request) {
	x, err := strconv.ParseFloat(req.URL.Query().Get("x"), 64)
	if err != nil {
		http.Error(res, "x must be a map coordinate", http.StatusBadRequest)
		return
	}
	y, err := strconv.ParseFloat(req.URL.Query().Get("y"), 64)
	if err != nil {
		http.Error(res, "y must be a map coordinate", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.m.CenterAt(x, y)
	if idx < 0 {
		http.Error(res, "no region found", http.StatusNotFound)
		return
	}
	p := s.m.Centers[idx]
	writeJSON(res, regionInfo{
		Index:     p.Index,
		X:         p.Point.X,
		Y:         p.Point.Y,
		Elevation: p.Elevation,
		Moisture:  p.Moisture,
		Ocean:     p.Ocean,
		Water:     p.Water,
		Coast:     p.Coast,
		Border:    p.Border,
		Biome:     p.Biome.String(),
		Whittaker: genislandvoronoi.WhittakerBiome(p),
	})
}

func (s *mapServer) statsHandler(res http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(res, s.statsLocked())
}

func (s *mapServer) statsLocked() any {
	st := s.m.Stats()
	biomes := make(map[string]int, len(st.Biomes))
	for b, n := range st.Biomes {
		biomes[b.String()] = n
	}
	return struct {
		Seed       int64          `json:"seed"`
		Centers    int            `json:"centers"`
		Corners    int            `json:"corners"`
		Edges      int            `json:"edges"`
		Land       int            `json:"land"`
		Coast      int            `json:"coast"`
		Lake       int            `json:"lake"`
		Ocean      int            `json:"ocean"`
		RiverEdges int            `json:"river_edges"`
		RoadEdges  int            `json:"road_edges"`
		LavaEdges  int            `json:"lava_edges"`
		Biomes     map[string]int `json:"biomes"`
	}{
		Seed:       s.m.Seed,
		Centers:    st.NumCenters,
		Corners:    st.NumCorners,
		Edges:      st.NumEdges,
		Land:       st.Land,
		Coast:      st.Coast,
		Lake:       st.Lake,
		Ocean:      st.Ocean,
		RiverEdges: st.RiverEdges,
		RoadEdges:  st.RoadEdges,
		LavaEdges:  st.LavaEdges,
		Biomes:     biomes,
	}
}

func (s *mapServer) generateHandler(res http.ResponseWriter, req *http.Request) {
	seed, err := strconv.ParseInt(req.URL.Query().Get("seed"), 10, 64)
	if err != nil {
		http.Error(res, "seed must be an integer", http.StatusBadRequest)
		return
	}
	m, err := genislandvoronoi.NewMapFromConfig(seed, s.cfg)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	s.statsHandler(res, req)
}

// queryInt returns the named query parameter as an int, or the fallback if
// it is absent.
func queryInt(req *http.Request, name string, fallback int) (int, error) {
	s := req.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

// writeImage writes the image to the response writer.
func writeImage(res http.ResponseWriter, img image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		http.Error(res, "unable to encode image", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	res.Write(buffer.Bytes())
}

func writeJSON(res http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>genislandvoronoi</title></head>
<body style="margin:0;background:#333;color:#eee;font-family:sans-serif">
<div style="padding:8px">
<a style="color:#9cf" href="/map.png?mode=biome">biome</a>
<a style="color:#9cf" href="/map.png?mode=elevation">elevation</a>
<a style="color:#9cf" href="/map.png?mode=moisture">moisture</a>
<a style="color:#9cf" href="/map.png?mode=whittaker">whittaker</a>
<a style="color:#9cf" href="/map.svg">svg</a>
<a style="color:#9cf" href="/map.geojson">geojson</a>
<a style="color:#9cf" href="/heightmap.png">heightmap</a>
<a style="color:#9cf" href="/stats">stats</a>
</div>
<img src="/map.png?mode=biome&width=800" alt="island map">
</body>
</html>`
