package mineral

import (
	"reflect"
	"testing"

	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/seed"
)

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewGenerator(catalog.Default())
	planetSeed := seed.Derive("andromeda-prime", "3:0:0").Child("planet", 0)

	first := g.Generate(planetSeed, catalog.PlanetTypeVolcanic)
	second := g.Generate(planetSeed, catalog.PlanetTypeVolcanic)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different deposits:\n%v\n%v", first, second)
	}
}

func TestGenerateDepositBounds(t *testing.T) {
	g := NewGenerator(catalog.Default())
	cat := catalog.Default()

	for _, planetType := range catalog.PlanetTypes {
		for i := 0; i < 50; i++ {
			planetSeed := seed.Derive("bounds").Child(string(planetType), i)
			deposits := g.Generate(planetSeed, planetType)

			if len(deposits) < 1 || len(deposits) > 10 {
				t.Fatalf("%s: expected 1-10 deposits, got %d", planetType, len(deposits))
			}

			for _, d := range deposits {
				if d.Quantity < 100 || d.Quantity > 200_000 {
					t.Errorf("%s: quantity %d outside [100, 200000]", planetType, d.Quantity)
				}
				if d.Purity < 0.0 || d.Purity > 1.0 {
					t.Errorf("%s: purity %f outside [0, 1]", planetType, d.Purity)
				}
				if _, ok := cat.Get(d.Mineral); !ok {
					t.Errorf("%s: deposit references unknown mineral %q", planetType, d.Mineral)
				}

				validDepth := false
				for _, depth := range Depths {
					if d.Depth == depth {
						validDepth = true
						break
					}
				}
				if !validDepth {
					t.Errorf("%s: unknown depth %q", planetType, d.Depth)
				}
			}
		}
	}
}

func TestVolcanicRichnessExceedsGasGiant(t *testing.T) {
	g := NewGenerator(catalog.Default())

	var volcanicTotal, gasGiantTotal int64
	for i := 0; i < 200; i++ {
		planetSeed := seed.Derive("richness").Child("planet", i)
		for _, d := range g.Generate(planetSeed, catalog.PlanetTypeVolcanic) {
			volcanicTotal += d.Quantity
		}
		for _, d := range g.Generate(planetSeed, catalog.PlanetTypeGasGiant) {
			gasGiantTotal += d.Quantity
		}
	}

	if volcanicTotal <= gasGiantTotal {
		t.Fatalf("volcanic worlds should out-produce gas giants: %d <= %d", volcanicTotal, gasGiantTotal)
	}
}

func TestExoticDrawRate(t *testing.T) {
	cat := catalog.Default()
	g := NewGenerator(cat)

	exoticKeys := make(map[string]bool)
	for _, key := range cat.ExoticMinerals() {
		exoticKeys[key] = true
	}

	var total, exotic int
	for i := 0; total < 5000; i++ {
		planetSeed := seed.Derive("exotic-rate").Child("planet", i)
		for _, d := range g.Generate(planetSeed, catalog.PlanetTypeTerrestrial) {
			total++
			if exoticKeys[d.Mineral] {
				exotic++
			}
		}
	}

	rate := float64(exotic) / float64(total)
	if rate > 0.05 {
		t.Fatalf("exotic draw rate %f exceeds 5%% over %d deposits", rate, total)
	}
}
