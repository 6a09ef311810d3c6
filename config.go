package genislandvoronoi

import "fmt"

// Config is a struct that holds all configuration options for the island
// generation.
type Config struct {
	NumPoints          int     // Number of generated points / polygons
	Size               float64 // Width and height of the map rectangle
	LakeThreshold      float64 // Fraction of water corners that turns a polygon into a lake (0..1)
	NumLloydIterations int     // Relaxation rounds for the relaxed point distribution
	ImproveCorners     bool    // Move corners to the average of their touching polygons
	PointDistribution  int     // DistRandom, DistRelaxed, DistSquare or DistHexagon
	IslandShape        int     // ShapeRadial, ShapePerlin, ShapeSimplex, ShapeSquare or ShapeBlob
	LavaFraction       float64 // Chance of a lava fissure on an eligible edge (0..1)
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		NumPoints:          2000,
		Size:               600,
		LakeThreshold:      0.3,
		NumLloydIterations: 2,
		ImproveCorners:     true,
		PointDistribution:  DistRelaxed,
		IslandShape:        ShapeRadial,
		LavaFraction:       0.2,
	}
}

// Validate returns an error if the configuration cannot produce a map.
func (cfg *Config) Validate() error {
	if cfg.NumPoints < 4 {
		return fmt.Errorf("NumPoints must be at least 4, got %d", cfg.NumPoints)
	}
	if cfg.Size <= 0 {
		return fmt.Errorf("Size must be positive, got %v", cfg.Size)
	}
	if cfg.LakeThreshold < 0 || cfg.LakeThreshold > 1 {
		return fmt.Errorf("LakeThreshold must be in [0, 1], got %v", cfg.LakeThreshold)
	}
	if cfg.NumLloydIterations < 0 {
		return fmt.Errorf("NumLloydIterations must not be negative, got %d", cfg.NumLloydIterations)
	}
	if cfg.LavaFraction < 0 || cfg.LavaFraction > 1 {
		return fmt.Errorf("LavaFraction must be in [0, 1], got %v", cfg.LavaFraction)
	}
	switch cfg.PointDistribution {
	case DistRandom, DistRelaxed, DistSquare, DistHexagon:
	default:
		return fmt.Errorf("unknown point distribution %d", cfg.PointDistribution)
	}
	switch cfg.IslandShape {
	case ShapeRadial, ShapePerlin, ShapeSimplex, ShapeSquare, ShapeBlob:
	default:
		return fmt.Errorf("unknown island shape %d", cfg.IslandShape)
	}
	return nil
}
