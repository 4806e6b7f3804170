// Package mineral generates the deposit list for one planet. Generation is a
// pure function of the planet seed and planet type.
package mineral

import (
	"math/rand/v2"

	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/seed"
)

// exoticRate is the probability that a single deposit draws from the exotic
// pool instead of the real pool.
const exoticRate = 0.02

const (
	minQuantity = 100
	maxQuantity = 200_000
)

// profile bounds the quantity and purity draws for one planet type.
type profile struct {
	qtyMin, qtyMax       int64
	purityMin, purityMax float64
}

// Volcanic worlds concentrate ore; gas giants barely hold any.
var profiles = map[catalog.PlanetType]profile{
	catalog.PlanetTypeVolcanic:    {20_000, 200_000, 0.30, 1.00},
	catalog.PlanetTypeBarren:      {10_000, 120_000, 0.20, 0.90},
	catalog.PlanetTypeDesert:      {8_000, 100_000, 0.15, 0.85},
	catalog.PlanetTypeTerrestrial: {5_000, 80_000, 0.15, 0.90},
	catalog.PlanetTypeIce:         {2_000, 60_000, 0.10, 0.85},
	catalog.PlanetTypeJungle:      {2_000, 50_000, 0.10, 0.80},
	catalog.PlanetTypeOceanic:     {1_000, 30_000, 0.10, 0.75},
	catalog.PlanetTypeGasGiant:    {100, 20_000, 0.10, 0.50},
}

var defaultProfile = profile{1_000, 50_000, 0.10, 0.90}

// Generator draws mineral deposits from the catalogue pools.
type Generator struct {
	catalogue *catalog.Catalogue
}

// NewGenerator creates a mineral generator over a catalogue.
func NewGenerator(catalogue *catalog.Catalogue) *Generator {
	return &Generator{catalogue: catalogue}
}

// Generate returns 1-10 deposits for a planet. The same (planetSeed,
// planetType) pair always yields the same list.
func (g *Generator) Generate(planetSeed seed.Seed, planetType catalog.PlanetType) []Deposit {
	rng := planetSeed.Child("minerals", 0).Stream()

	p, ok := profiles[planetType]
	if !ok {
		p = defaultProfile
	}

	count := 1 + rng.IntN(10)
	deposits := make([]Deposit, 0, count)
	for i := 0; i < count; i++ {
		deposits = append(deposits, g.drawDeposit(rng, p))
	}
	return deposits
}

func (g *Generator) drawDeposit(rng *rand.Rand, p profile) Deposit {
	var pool []string
	if rng.Float64() < exoticRate {
		pool = g.catalogue.ExoticMinerals()
	} else {
		pool = g.catalogue.RealMinerals()
	}

	quantity := p.qtyMin + rng.Int64N(p.qtyMax-p.qtyMin+1)
	if quantity < minQuantity {
		quantity = minQuantity
	}
	if quantity > maxQuantity {
		quantity = maxQuantity
	}

	purity := p.purityMin + rng.Float64()*(p.purityMax-p.purityMin)

	return Deposit{
		Mineral:  pool[rng.IntN(len(pool))],
		Quantity: quantity,
		Purity:   purity,
		Depth:    Depths[rng.IntN(len(Depths))],
	}
}
