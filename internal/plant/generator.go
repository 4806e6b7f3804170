// Package plant generates the flora list for one planet from the fixed
// per-type pools. Gas giants always yield nothing.
package plant

import (
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/seed"
)

// Generate returns 0-5 distinct plant names for a planet. Names are sampled
// without replacement from the type's pool, so a single planet never repeats
// a plant.
func Generate(planetSeed seed.Seed, planetType catalog.PlanetType) []string {
	pool := catalog.PlantPools[planetType]
	if len(pool) == 0 {
		return nil
	}

	rng := planetSeed.Child("plants", 0).Stream()

	count := rng.IntN(6)
	if count > len(pool) {
		count = len(pool)
	}
	if count == 0 {
		return nil
	}

	order := rng.Perm(len(pool))
	plants := make([]string, 0, count)
	for _, idx := range order[:count] {
		plants = append(plants, pool[idx])
	}
	return plants
}
