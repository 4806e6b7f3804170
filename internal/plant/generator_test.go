package plant

import (
	"reflect"
	"testing"

	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/seed"
)

func TestGenerateIsDeterministic(t *testing.T) {
	planetSeed := seed.Derive("andromeda-prime", "0:3:0").Child("planet", 1)

	first := Generate(planetSeed, catalog.PlanetTypeJungle)
	second := Generate(planetSeed, catalog.PlanetTypeJungle)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different flora:\n%v\n%v", first, second)
	}
}

func TestGasGiantsHaveNoFlora(t *testing.T) {
	for i := 0; i < 100; i++ {
		planetSeed := seed.Derive("flora").Child("planet", i)
		if plants := Generate(planetSeed, catalog.PlanetTypeGasGiant); len(plants) != 0 {
			t.Fatalf("gas giant grew plants: %v", plants)
		}
	}
}

func TestFloraBoundsAndMembership(t *testing.T) {
	for _, planetType := range catalog.PlanetTypes {
		pool := catalog.PlantPools[planetType]
		inPool := make(map[string]bool, len(pool))
		for _, name := range pool {
			inPool[name] = true
		}

		for i := 0; i < 50; i++ {
			planetSeed := seed.Derive("membership").Child(string(planetType), i)
			plants := Generate(planetSeed, planetType)

			if len(plants) > 5 {
				t.Fatalf("%s: expected at most 5 plants, got %d", planetType, len(plants))
			}
			if len(plants) > len(pool) {
				t.Fatalf("%s: drew %d plants from a pool of %d", planetType, len(plants), len(pool))
			}

			seen := make(map[string]bool, len(plants))
			for _, name := range plants {
				if !inPool[name] {
					t.Errorf("%s: plant %q is not in the type pool", planetType, name)
				}
				if seen[name] {
					t.Errorf("%s: plant %q repeated on one planet", planetType, name)
				}
				seen[name] = true
			}
		}
	}
}
