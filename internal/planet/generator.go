// Package planet generates a single planet from a system seed and planet
// index, composing the mineral and plant generators.
package planet

import (
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/mineral"
	"spacetrade-server/internal/plant"
	"spacetrade-server/internal/seed"
)

// Weighted planet type roll. Terrestrial worlds are the most common.
var (
	planetTypes = []catalog.PlanetType{
		catalog.PlanetTypeTerrestrial,
		catalog.PlanetTypeGasGiant,
		catalog.PlanetTypeBarren,
		catalog.PlanetTypeDesert,
		catalog.PlanetTypeIce,
		catalog.PlanetTypeJungle,
		catalog.PlanetTypeOceanic,
		catalog.PlanetTypeVolcanic,
	}
	planetTypeWeights = []int{25, 15, 10, 10, 10, 10, 10, 10}
)

type Generator struct {
	minerals *mineral.Generator
}

func NewGenerator(catalogue *catalog.Catalogue) *Generator {
	return &Generator{minerals: mineral.NewGenerator(catalogue)}
}

// Generate produces the planet at planetIndex. The planet gets its own seed
// derived from (systemSeed, planetIndex), so sibling planets draw from
// independent streams.
func (g *Generator) Generate(systemSeed seed.Seed, planetIndex int) Planet {
	planetSeed := systemSeed.Child("planet", planetIndex)
	rng := planetSeed.Child("body", 0).Stream()

	planetType := rollPlanetType(rng.IntN(totalTypeWeight()))
	size := 50 + rng.IntN(151)
	name := synthesizeName(planetSeed, planetIndex)

	return Planet{
		Name:     name,
		Type:     planetType,
		Size:     size,
		Minerals: g.minerals.Generate(planetSeed, planetType),
		Plants:   plant.Generate(planetSeed, planetType),
	}
}

func totalTypeWeight() int {
	total := 0
	for _, w := range planetTypeWeights {
		total += w
	}
	return total
}

func rollPlanetType(roll int) catalog.PlanetType {
	currentWeight := 0
	for i, weight := range planetTypeWeights {
		currentWeight += weight
		if roll < currentWeight {
			return planetTypes[i]
		}
	}

	return catalog.PlanetTypeTerrestrial // fallback
}
