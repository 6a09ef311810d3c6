// Package genislandvoronoi generates island maps as attributed Voronoi
// graphs: polygon centers, their corners, and the dual edges between them,
// annotated with elevation, moisture, rivers, watersheds and biomes.
// See: https://www.redblobgames.com/maps/mapgen2/
// And: http://www-cs-students.stanford.edu/~amitp/game-programming/polygon-map-generation/
package genislandvoronoi

import (
	"fmt"
	"log"
	"time"

	"github.com/Flokey82/genislandvoronoi/prng"
	"github.com/Flokey82/genislandvoronoi/voronoi"
	"github.com/Flokey82/geoquad"
)

// Map is one generated island: the graph plus everything the pipeline
// derived from it. The same seed and config always produce the same map.
type Map struct {
	*Graph

	Seed  int64
	Rand  *prng.Rand    // single stream driving all random stages
	Shape *IslandShape  // land/water decision function

	NoisyEdges *NoisyEdges // jittered edge paths, built by the decorate stage
	Roads      *Roads      // contour roads, built by the decorate stage
	Lava       []bool      // lava fissures by edge index, built by the decorate stage

	cfg         *Config
	gridJitter  bool // lattice distributions need extra elevation randomness
	points      []Point
	regQuadTree *geoquad.QuadTree
}

// New returns a validated but not yet generated map. Run Generate on it to
// build the terrain; NewMap and NewMapFromConfig do both in one call.
func New(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Map{
		Seed: seed,
		cfg:  cfg,
	}, nil
}

// NewMap generates a map for the given seed with the default configuration.
func NewMap(seed int64) (*Map, error) {
	return NewMapFromConfig(seed, NewConfig())
}

// NewMapFromConfig generates a full map for the given seed and config.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	m, err := New(seed, cfg)
	if err != nil {
		return nil, err
	}
	if err := m.Generate(0, m.NumStages()); err != nil {
		return nil, err
	}
	return m, nil
}

type stage struct {
	name string
	run  func() error
}

func noFail(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}

func (m *Map) stageList() []stage {
	return []stage{
		{"placing points", m.placePoints},
		{"building graph", m.buildGraphStage},
		{"corner elevations", noFail(m.assignCornerElevations)},
		{"ocean, coast and land", noFail(m.assignOceanCoastAndLand)},
		{"redistributing elevations", noFail(m.redistributeElevations)},
		{"polygon elevations", noFail(m.assignPolygonElevations)},
		{"downslopes", noFail(m.calculateDownslopes)},
		{"watersheds", noFail(m.calculateWatersheds)},
		{"rivers", noFail(m.createRivers)},
		{"corner moisture", noFail(m.assignCornerMoisture)},
		{"redistributing moisture", noFail(m.redistributeMoisture)},
		{"polygon moisture", noFail(m.assignPolygonMoisture)},
		{"biomes", noFail(m.assignBiomes)},
		{"decorations", noFail(m.decorate)},
	}
}

// NumStages returns the number of pipeline stages.
func (m *Map) NumStages() int {
	return len(m.stageList())
}

// Generate runs the pipeline stages in the half-open range [first, last).
// Stage 0 resets the map (fresh random stream, island shape and graph), so
// Generate(0, NumStages()) reproduces the identical map for the same seed
// and config every time. Partial ranges continue from the current state;
// they require the earlier stages to have run.
func (m *Map) Generate(first, last int) error {
	stages := m.stageList()
	if first < 0 || last > len(stages) || first > last {
		return fmt.Errorf("stage range [%d, %d) out of bounds, have %d stages", first, last, len(stages))
	}
	if first == 1 && m.points == nil {
		return fmt.Errorf("stage %q needs points, run stage 0 first", stages[1].name)
	}
	if first > 1 && m.Graph == nil {
		return fmt.Errorf("stage %q needs a graph, run stages 0 and 1 first", stages[first].name)
	}
	for _, s := range stages[first:last] {
		start := time.Now()
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		log.Println("Done", s.name, "in ", time.Since(start).String())
	}
	return nil
}

// placePoints resets the map and lays out the generator points.
func (m *Map) placePoints() error {
	m.reset()
	points, err := m.generatePoints()
	if err != nil {
		return err
	}
	m.points = points
	return nil
}

// reset restores the pre-generation state for the configured seed.
func (m *Map) reset() {
	m.Rand = prng.New(m.Seed)
	m.Shape = newIslandShape(m.cfg.IslandShape, m.Seed)
	m.Graph = nil
	m.points = nil
	m.NoisyEdges = nil
	m.Roads = nil
	m.Lava = nil
	m.regQuadTree = nil
	m.gridJitter = m.cfg.PointDistribution == DistSquare || m.cfg.PointDistribution == DistHexagon
}

// buildGraphStage computes the Voronoi diagram of the placed points and
// assembles the Center/Corner/Edge arena from it.
func (m *Map) buildGraphStage() error {
	if len(m.points) < 4 {
		return fmt.Errorf("have %d generator points, need at least 4", len(m.points))
	}
	d, err := voronoi.Compute(toVoronoiPoints(m.points), m.cfg.Size, m.cfg.Size)
	if err != nil {
		return err
	}
	m.Graph = buildGraph(m.points, d, m.cfg.Size)
	if m.cfg.ImproveCorners {
		m.improveCorners()
	}
	m.regQuadTree = newCenterQuadTree(m.Graph)
	m.points = nil
	return nil
}

// decorate adds the cosmetic layers on top of the finished terrain: roads
// along elevation contours, lava fissures on dry peaks, and the noisy edge
// paths used by the renderers.
func (m *Map) decorate() {
	m.Roads = m.createRoads()
	m.Lava = m.createLava()
	m.NoisyEdges = m.buildNoisyEdges()
}

// newCenterQuadTree indexes the polygon centers for nearest-neighbor
// lookups. The quadtree works in lat/lon; both map axes are scaled into
// the latitude range so distances stay isotropic.
func newCenterQuadTree(g *Graph) *geoquad.QuadTree {
	points := make([]geoquad.Point, 0, len(g.Centers))
	for _, p := range g.Centers {
		points = append(points, geoquad.Point{
			Lat:  p.Point.Y/g.Size*180 - 90,
			Lon:  p.Point.X/g.Size*180 - 90,
			Data: p.Index,
		})
	}
	return geoquad.NewQuadTree(points)
}

// CenterAt returns the index of the polygon whose generator point is
// closest to the map coordinate (x, y), or -1 before the graph is built.
func (m *Map) CenterAt(x, y float64) int {
	if m.Graph == nil || m.regQuadTree == nil {
		return -1
	}
	res, ok := m.regQuadTree.FindNearestNeighbor(geoquad.Point{
		Lat: y/m.Size*180 - 90,
		Lon: x/m.Size*180 - 90,
	})
	if !ok {
		return -1
	}
	return res.Data.(int)
}

// Stats summarizes a generated map.
type Stats struct {
	NumCenters int
	NumCorners int
	NumEdges   int

	Land  int // land polygons (coast excluded)
	Coast int
	Lake  int
	Ocean int

	RiverEdges int
	RoadEdges  int
	LavaEdges  int

	Biomes map[Biome]int
}

// Stats counts polygons by class and edges by decoration.
func (m *Map) Stats() *Stats {
	s := &Stats{Biomes: make(map[Biome]int)}
	if m.Graph == nil {
		return s
	}
	s.NumCenters = len(m.Centers)
	s.NumCorners = len(m.Corners)
	s.NumEdges = len(m.Edges)
	for _, p := range m.Centers {
		switch {
		case p.Ocean:
			s.Ocean++
		case p.Water:
			s.Lake++
		case p.Coast:
			s.Coast++
		default:
			s.Land++
		}
		s.Biomes[p.Biome]++
	}
	for _, e := range m.Edges {
		if e.River > 0 {
			s.RiverEdges++
		}
		if m.Roads != nil && m.Roads.Road[e.Index] > 0 {
			s.RoadEdges++
		}
		if m.Lava != nil && m.Lava[e.Index] {
			s.LavaEdges++
		}
	}
	return s
}
