package genislandvoronoi

import (
	"fmt"
	"math"

	"github.com/Flokey82/genislandvoronoi/voronoi"
	"github.com/Flokey82/go_gens/vectors"
)

// Point distributions.
const (
	DistRandom  = iota // uniform random, margin of 10 units to the border
	DistRelaxed        // random, then evened out by Lloyd relaxation
	DistSquare         // square lattice
	DistHexagon        // offset lattice
)

// DistByName maps configuration and CLI names to point distributions.
var DistByName = map[string]int{
	"random":  DistRandom,
	"relaxed": DistRelaxed,
	"square":  DistSquare,
	"hexagon": DistHexagon,
}

// generatePoints lays out the generator points for the configured
// distribution.
func (m *Map) generatePoints() ([]Point, error) {
	switch m.cfg.PointDistribution {
	case DistRandom:
		return m.randomPoints(), nil
	case DistSquare:
		return m.gridPoints(false), nil
	case DistHexagon:
		return m.gridPoints(true), nil
	default: // DistRelaxed
		return m.relaxPoints(m.randomPoints(), m.cfg.NumLloydIterations)
	}
}

func (m *Map) randomPoints() []Point {
	points := make([]Point, m.cfg.NumPoints)
	for i := range points {
		points[i] = Point{
			X: m.Rand.NextDoubleRange(10, m.cfg.Size-10),
			Y: m.Rand.NextDoubleRange(10, m.cfg.Size-10),
		}
	}
	return points
}

// gridPoints lays out roughly NumPoints points on a lattice. With offset
// set, every other column is shifted by half a cell, producing hexagonal
// polygons instead of squares.
func (m *Map) gridPoints(offset bool) []Point {
	n := int(math.Sqrt(float64(m.cfg.NumPoints)))
	points := make([]Point, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var y float64
			if offset {
				y = (0.25 + 0.5*float64(i%2) + float64(j)) / float64(n) * m.cfg.Size
			} else {
				y = (0.5 + float64(j)) / float64(n) * m.cfg.Size
			}
			points = append(points, Point{
				X: (0.5 + float64(i)) / float64(n) * m.cfg.Size,
				Y: y,
			})
		}
	}
	return points
}

// relaxPoints runs Lloyd relaxation: each round rebuilds the Voronoi
// diagram and moves every point to the mean of its cell's vertices. A
// couple of rounds evens out polygon sizes; border cells are open polygons
// and drift a little toward the interior, which is harmless.
func (m *Map) relaxPoints(points []Point, iterations int) ([]Point, error) {
	for it := 0; it < iterations; it++ {
		d, err := voronoi.Compute(toVoronoiPoints(points), m.cfg.Size, m.cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("relaxation round %d: %w", it, err)
		}
		for i := range points {
			region := d.Region(i)
			if len(region) == 0 {
				continue
			}
			var sum vectors.Vec2
			for _, v := range region {
				sum = sum.Add(vectors.Vec2{X: v.X, Y: v.Y})
			}
			centroid := sum.Mul(1 / float64(len(region)))
			points[i] = Point{X: centroid.X, Y: centroid.Y}
		}
	}
	return points, nil
}

func toVoronoiPoints(points []Point) []voronoi.Point {
	pts := make([]voronoi.Point, len(points))
	for i, p := range points {
		pts[i] = voronoi.Point(p)
	}
	return pts
}
