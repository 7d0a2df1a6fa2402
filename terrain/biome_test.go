package terrain

import "testing"

func TestClassifyWater(t *testing.T) {
	for _, climate := range []Climate{ClimateNorth, ClimateCentral, ClimateSouth} {
		if b := Classify(0.05, climate); b != BiomeDeepOcean {
			t.Fatalf("elevation 0.05 in %v: got %v, want deep ocean", climate, b)
		}
		if b := Classify(0.15, climate); b != BiomeShallowSea {
			t.Fatalf("elevation 0.15 in %v: got %v, want shallow sea", climate, b)
		}
		if !Classify(0.15, climate).IsWater() {
			t.Fatalf("shallow sea should be water")
		}
	}
}

func TestClassifyMountainsOverrideLatitude(t *testing.T) {
	for _, climate := range []Climate{ClimateNorth, ClimateCentral, ClimateSouth} {
		if b := Classify(0.80, climate); b != BiomeHills {
			t.Fatalf("elevation 0.80 in %v: got %v, want hills", climate, b)
		}
		if b := Classify(0.90, climate); b != BiomeMountains {
			t.Fatalf("elevation 0.90 in %v: got %v, want mountains", climate, b)
		}
	}
}

func TestClassifyLatitudeBands(t *testing.T) {
	if b := Classify(0.30, ClimateNorth); b != BiomeTundra {
		t.Fatalf("low northern land: got %v, want tundra", b)
	}
	if b := Classify(0.30, ClimateCentral); b != BiomePlains {
		t.Fatalf("low central land: got %v, want plains", b)
	}
	if b := Classify(0.30, ClimateSouth); b != BiomeSavanna {
		t.Fatalf("low southern land: got %v, want savanna", b)
	}
}

func TestClimateAt(t *testing.T) {
	if c := ClimateAt(0.1); c != ClimateNorth {
		t.Fatalf("y=0.1: got %v, want north", c)
	}
	if c := ClimateAt(0.5); c != ClimateCentral {
		t.Fatalf("y=0.5: got %v, want central", c)
	}
	if c := ClimateAt(0.9); c != ClimateSouth {
		t.Fatalf("y=0.9: got %v, want south", c)
	}
}

func TestTerrainDeterminism(t *testing.T) {
	cfg := NewConfig()
	cfg.NumPoints = 500
	a, err := New(42, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(42, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := range a.Elevation {
		if a.Elevation[i] != b.Elevation[i] {
			t.Fatalf("elevation %d differs", i)
		}
		if a.Biomes[i] != b.Biomes[i] {
			t.Fatalf("biome %d differs", i)
		}
	}
}

func TestTerrainHasLandAndWater(t *testing.T) {
	cfg := NewConfig()
	cfg.NumPoints = 1000
	terr, err := New(7, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	land := len(terr.LandCells())
	if land == 0 {
		t.Fatal("no land cells generated")
	}
	if land == terr.NumCells {
		t.Fatal("no water cells generated")
	}
}
