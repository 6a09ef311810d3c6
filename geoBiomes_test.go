package genislandvoronoi

import (
	"testing"
)

func TestGetBiome(t *testing.T) {
	tests := []struct {
		name   string
		center Center
		want   Biome
	}{
		{"ocean", Center{Ocean: true, Water: true}, BiomeOcean},
		{"marsh", Center{Water: true, Elevation: 0.05}, BiomeMarsh},
		{"lake at marsh boundary", Center{Water: true, Elevation: 0.1}, BiomeLake},
		{"lake", Center{Water: true, Elevation: 0.5}, BiomeLake},
		{"lake at ice boundary", Center{Water: true, Elevation: 0.8}, BiomeLake},
		{"ice", Center{Water: true, Elevation: 0.81}, BiomeIce},
		{"beach", Center{Coast: true, Elevation: 0.01}, BiomeBeach},

		// High elevations.
		{"snow", Center{Elevation: 0.81, Moisture: 0.51}, BiomeSnow},
		{"tundra at snow boundary", Center{Elevation: 0.81, Moisture: 0.50}, BiomeTundra},
		{"tundra", Center{Elevation: 0.81, Moisture: 0.34}, BiomeTundra},
		{"bare at tundra boundary", Center{Elevation: 0.81, Moisture: 0.33}, BiomeBare},
		{"scorched at bare boundary", Center{Elevation: 0.81, Moisture: 0.16}, BiomeScorched},
		{"scorched", Center{Elevation: 0.81, Moisture: 0.0}, BiomeScorched},

		// Elevation exactly 0.8 falls into the next band down.
		{"taiga at band boundary", Center{Elevation: 0.8, Moisture: 0.67}, BiomeTaiga},
		{"shrubland", Center{Elevation: 0.61, Moisture: 0.34}, BiomeShrubland},
		{"high temperate desert", Center{Elevation: 0.61, Moisture: 0.33}, BiomeTemperateDesert},

		// Middle elevations.
		{"temperate rain forest", Center{Elevation: 0.6, Moisture: 0.84}, BiomeTemperateRainForest},
		{"deciduous at rain forest boundary", Center{Elevation: 0.31, Moisture: 0.83}, BiomeTemperateDeciduousForest},
		{"deciduous", Center{Elevation: 0.31, Moisture: 0.51}, BiomeTemperateDeciduousForest},
		{"grassland at deciduous boundary", Center{Elevation: 0.31, Moisture: 0.50}, BiomeGrassland},
		{"mid temperate desert", Center{Elevation: 0.31, Moisture: 0.16}, BiomeTemperateDesert},

		// Low elevations, including exactly 0.3.
		{"tropical rain forest", Center{Elevation: 0.3, Moisture: 0.67}, BiomeTropicalRainForest},
		{"tropical seasonal at boundary", Center{Elevation: 0.3, Moisture: 0.66}, BiomeTropicalSeasonalForest},
		{"tropical seasonal", Center{Elevation: 0.1, Moisture: 0.34}, BiomeTropicalSeasonalForest},
		{"low grassland", Center{Elevation: 0.1, Moisture: 0.17}, BiomeGrassland},
		{"subtropical desert at boundary", Center{Elevation: 0.1, Moisture: 0.16}, BiomeSubtropicalDesert},
		{"subtropical desert", Center{Elevation: 0.0, Moisture: 0.0}, BiomeSubtropicalDesert},
	}
	for _, tc := range tests {
		if got := getBiome(&tc.center); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestBiomeStrings(t *testing.T) {
	seen := make(map[string]Biome)
	for b := BiomeOcean; b <= BiomeSubtropicalDesert; b++ {
		s := b.String()
		if s == "" || s == "UNKNOWN" {
			t.Fatalf("biome %d has no name", b)
		}
		if other, ok := seen[s]; ok {
			t.Fatalf("biomes %d and %d share the name %s", other, b, s)
		}
		seen[s] = b
	}
	if got := Biome(99).String(); got != "UNKNOWN" {
		t.Fatalf("out of range biome named %q", got)
	}
}

func TestAssignBiomes(t *testing.T) {
	m := testMap(t, 8, nil)
	for _, p := range m.Centers {
		if want := getBiome(p); p.Biome != want {
			t.Fatalf("center %d has biome %s, want %s", p.Index, p.Biome, want)
		}
		if p.Ocean && p.Biome != BiomeOcean {
			t.Fatalf("ocean center %d has biome %s", p.Index, p.Biome)
		}
	}
}
