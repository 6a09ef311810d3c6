package genislandvoronoi

import (
	"math"

	"github.com/Flokey82/genislandvoronoi/noise"
	"github.com/Flokey82/genislandvoronoi/prng"
	"github.com/aquilax/go-perlin"
)

// Island shapes.
const (
	ShapeRadial  = iota // overlapping sine waves around the center
	ShapePerlin         // perlin noise threshold
	ShapeSimplex        // fractal opensimplex noise threshold
	ShapeSquare         // all land, for debugging and tests
	ShapeBlob           // fixed blob with two holes
)

// ShapeByName maps configuration and CLI names to island shapes.
var ShapeByName = map[string]int{
	"radial":  ShapeRadial,
	"perlin":  ShapePerlin,
	"simplex": ShapeSimplex,
	"square":  ShapeSquare,
	"blob":    ShapeBlob,
}

// islandFactor controls how much area beyond the main radius can still be
// land: 1.0 allows none, 2.0 plenty of small satellite islands.
const islandFactor = 1.07

// Noise shapes sample the [-1,1] square mapped onto [0,4] in noise space,
// a few broad features across the map.
const noiseShapeScale = 2.0

// IslandShape decides which parts of the map are land. The parameters are
// drawn from a dedicated stream for the map seed, so the shape is fixed by
// the seed alone and survives regeneration.
type IslandShape struct {
	Variant int

	// radial
	bumps      int
	startAngle float64
	dipAngle   float64
	dipWidth   float64

	perlin  *perlin.Perlin
	simplex *noise.Noise
}

// newIslandShape returns the shape function of the given variant for this
// seed.
func newIslandShape(variant int, seed int64) *IslandShape {
	s := &IslandShape{Variant: variant}
	r := prng.New(seed)
	switch variant {
	case ShapePerlin:
		s.perlin = perlin.NewPerlin(2, 2, 3, seed)
	case ShapeSimplex:
		s.simplex = noise.New(6, 2.0/3.0, seed)
	case ShapeRadial:
		s.bumps = r.NextIntRange(1, 6)
		s.startAngle = r.NextDoubleRange(0, 2*math.Pi)
		s.dipAngle = r.NextDoubleRange(0, 2*math.Pi)
		s.dipWidth = r.NextDoubleRange(0.2, 0.7)
	}
	return s
}

// Inside reports whether the normalized point q (both axes in [-1, 1], map
// center at the origin) is land.
func (s *IslandShape) Inside(q Point) bool {
	switch s.Variant {
	case ShapePerlin:
		// Noise2D is roughly in [-1, 1]; shift into [0, 1] before applying
		// the radius-dependent threshold.
		v := (s.perlin.Noise2D((q.X+1)*noiseShapeScale, (q.Y+1)*noiseShapeScale) + 1) / 2
		return v > 0.3+0.3*lengthSq(q)
	case ShapeSimplex:
		v := s.simplex.Eval2((q.X+1)*noiseShapeScale, (q.Y+1)*noiseShapeScale)
		return v > 0.3+0.3*lengthSq(q)
	case ShapeSquare:
		return true
	case ShapeBlob:
		body := math.Hypot(q.X, q.Y) < 0.8-0.18*math.Sin(5*math.Atan2(q.Y, q.X))
		eye1 := math.Hypot(q.X-0.2, q.Y/2+0.2) < 0.05
		eye2 := math.Hypot(q.X+0.2, q.Y/2+0.2) < 0.05
		return body && !eye1 && !eye2
	default: // ShapeRadial
		return s.insideRadial(q)
	}
}

// insideRadial tests the point against two sine-modulated radii: inside the
// first is the main island, between the two (scaled by islandFactor) is a
// ring where satellite islands appear. A wedge of dipWidth around dipAngle
// is pushed down to carve a bay or inlet.
func (s *IslandShape) insideRadial(q Point) bool {
	angle := math.Atan2(q.Y, q.X)
	length := 0.5 * (math.Max(math.Abs(q.X), math.Abs(q.Y)) + math.Hypot(q.X, q.Y))
	bumps := float64(s.bumps)

	r1 := 0.5 + 0.40*math.Sin(s.startAngle+bumps*angle+math.Cos((bumps+3)*angle))
	r2 := 0.7 - 0.20*math.Sin(s.startAngle+bumps*angle-math.Sin((bumps+2)*angle))
	if math.Abs(angle-s.dipAngle) < s.dipWidth ||
		math.Abs(angle-s.dipAngle+2*math.Pi) < s.dipWidth ||
		math.Abs(angle-s.dipAngle-2*math.Pi) < s.dipWidth {
		r1, r2 = 0.2, 0.2
	}
	return length < r1 || (length > r1*islandFactor && length < r2)
}

func lengthSq(p Point) float64 {
	return p.X*p.X + p.Y*p.Y
}
