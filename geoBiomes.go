package genislandvoronoi

// Biome classifies one polygon of the map.
type Biome int

// Biomes, in Whittaker-diagram order: water and coast first, then the land
// biomes from high and dry down to low and wet.
const (
	BiomeOcean Biome = iota
	BiomeMarsh
	BiomeIce
	BiomeLake
	BiomeBeach
	BiomeSnow
	BiomeTundra
	BiomeBare
	BiomeScorched
	BiomeTaiga
	BiomeShrubland
	BiomeTemperateDesert
	BiomeTemperateRainForest
	BiomeTemperateDeciduousForest
	BiomeGrassland
	BiomeTropicalRainForest
	BiomeTropicalSeasonalForest
	BiomeSubtropicalDesert
)

func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "OCEAN"
	case BiomeMarsh:
		return "MARSH"
	case BiomeIce:
		return "ICE"
	case BiomeLake:
		return "LAKE"
	case BiomeBeach:
		return "BEACH"
	case BiomeSnow:
		return "SNOW"
	case BiomeTundra:
		return "TUNDRA"
	case BiomeBare:
		return "BARE"
	case BiomeScorched:
		return "SCORCHED"
	case BiomeTaiga:
		return "TAIGA"
	case BiomeShrubland:
		return "SHRUBLAND"
	case BiomeTemperateDesert:
		return "TEMPERATE_DESERT"
	case BiomeTemperateRainForest:
		return "TEMPERATE_RAIN_FOREST"
	case BiomeTemperateDeciduousForest:
		return "TEMPERATE_DECIDUOUS_FOREST"
	case BiomeGrassland:
		return "GRASSLAND"
	case BiomeTropicalRainForest:
		return "TROPICAL_RAIN_FOREST"
	case BiomeTropicalSeasonalForest:
		return "TROPICAL_SEASONAL_FOREST"
	case BiomeSubtropicalDesert:
		return "SUBTROPICAL_DESERT"
	}
	return "UNKNOWN"
}

// getBiome maps a polygon's flags, elevation and moisture to its biome.
// Water polygons split by elevation (marsh low, ice high, lake between);
// land polygons fall into four elevation bands, each divided by its own
// moisture cutoffs. All comparisons are strict; polygons sitting exactly on
// a boundary belong to the drier (or lower) side.
func getBiome(p *Center) Biome {
	switch {
	case p.Ocean:
		return BiomeOcean
	case p.Water:
		if p.Elevation < 0.1 {
			return BiomeMarsh
		}
		if p.Elevation > 0.8 {
			return BiomeIce
		}
		return BiomeLake
	case p.Coast:
		return BiomeBeach
	case p.Elevation > 0.8:
		switch {
		case p.Moisture > 0.50:
			return BiomeSnow
		case p.Moisture > 0.33:
			return BiomeTundra
		case p.Moisture > 0.16:
			return BiomeBare
		default:
			return BiomeScorched
		}
	case p.Elevation > 0.6:
		switch {
		case p.Moisture > 0.66:
			return BiomeTaiga
		case p.Moisture > 0.33:
			return BiomeShrubland
		default:
			return BiomeTemperateDesert
		}
	case p.Elevation > 0.3:
		switch {
		case p.Moisture > 0.83:
			return BiomeTemperateRainForest
		case p.Moisture > 0.50:
			return BiomeTemperateDeciduousForest
		case p.Moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeTemperateDesert
		}
	default:
		switch {
		case p.Moisture > 0.66:
			return BiomeTropicalRainForest
		case p.Moisture > 0.33:
			return BiomeTropicalSeasonalForest
		case p.Moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeSubtropicalDesert
		}
	}
}

// assignBiomes classifies every polygon.
func (m *Map) assignBiomes() {
	for _, p := range m.Centers {
		p.Biome = getBiome(p)
	}
}
