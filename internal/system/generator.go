// Package system generates star systems from world coordinates. Generation
// is pure: no I/O, no clock, no shared state.
package system

import (
	"fmt"
	"math"
	"math/rand/v2"

	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/planet"
	"spacetrade-server/internal/seed"
	sharederrors "spacetrade-server/internal/shared/errors"
)

// Coordinate domain contract: legal system coordinates are integers divisible
// by CoordinateStep with every axis within [-MaxCoordinate, MaxCoordinate].
const (
	CoordinateStep = 3
	MaxCoordinate  = 9
)

const maxPlanetsPerSystem = 12

// Abundance tiers summarize total deposit quantity per mineral across the
// system's planet slots.
const (
	abundanceHighThreshold   = 100_000
	abundanceMediumThreshold = 20_000
)

var (
	starTypes = []StarType{
		StarTypeRedDwarf,
		StarTypeOrangeDwarf,
		StarTypeYellowDwarf,
		StarTypeWhiteStar,
		StarTypeBlueGiant,
		StarTypeNeutronStar,
		StarTypeBlackHole,
	}
	// Red dwarfs dominate, exotic remnants are rare.
	starTypeWeights = []int{40, 25, 17, 10, 5, 2, 1}
)

var starNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}

// ValidateCoordinates rejects coordinates outside the legal lattice before
// any generation work runs.
func ValidateCoordinates(x, y, z int) error {
	for _, axis := range [3]int{x, y, z} {
		if axis%CoordinateStep != 0 {
			return sharederrors.Validationf("coordinate %d is not divisible by %d", axis, CoordinateStep)
		}
		if axis < -MaxCoordinate || axis > MaxCoordinate {
			return sharederrors.Validationf("coordinate %d is outside the legal range [%d, %d]", axis, -MaxCoordinate, MaxCoordinate)
		}
	}
	return nil
}

type Generator struct {
	catalogue *catalog.Catalogue
	planets   *planet.Generator
}

func NewGenerator(catalogue *catalog.Catalogue) *Generator {
	return &Generator{
		catalogue: catalogue,
		planets:   planet.NewGenerator(catalogue),
	}
}

// Generate produces the system at (x, y, z) under the given galaxy seed.
// The origin (0,0,0) is the hard-coded tutorial hub and bypasses the
// procedural path entirely.
func (g *Generator) Generate(galaxySeed string, x, y, z int) (*System, error) {
	if err := ValidateCoordinates(x, y, z); err != nil {
		return nil, err
	}

	if x == 0 && y == 0 && z == 0 {
		return g.originHub(), nil
	}

	systemSeed := seed.FromCoordinates(galaxySeed, x, y, z)
	rng := systemSeed.Child("system", 0).Stream()

	name := fmt.Sprintf("%s %03d", starNames[rng.IntN(len(starNames))], rng.IntN(1000))
	starType := rollStarType(rng)
	hazardLevel := rng.IntN(11)
	planetCount := rng.IntN(maxPlanetsPerSystem + 1)

	planets := make([]planet.Planet, 0, planetCount)
	for i := 0; i < planetCount; i++ {
		planets = append(planets, g.planets.Generate(systemSeed, i))
	}

	return &System{
		Coordinates:         Coordinates{X: x, Y: y, Z: z},
		Name:                name,
		StarType:            starType,
		HazardLevel:         hazardLevel,
		PlanetCount:         planetCount,
		Planets:             planets,
		MineralDistribution: summarizeMinerals(planets),
		BasePrices:          g.deriveBasePrices(systemSeed),
	}, nil
}

// originHub is the fixed safe zone at (0,0,0). Its mineral distribution is
// hard-coded so the tutorial-critical mineral is always present, and its base
// prices match the catalogue exactly.
func (g *Generator) originHub() *System {
	hubSeed := seed.Derive("origin-hub")

	planets := []planet.Planet{
		g.planets.Generate(hubSeed, 0),
		g.planets.Generate(hubSeed, 1),
		g.planets.Generate(hubSeed, 2),
	}

	basePrices := make(map[string]int64, g.catalogue.Len())
	for _, c := range g.catalogue.All() {
		basePrices[c.Key] = c.BasePriceCents
	}

	return &System{
		Coordinates: Coordinates{X: 0, Y: 0, Z: 0},
		Name:        "Origin Hub",
		StarType:    StarTypeYellowDwarf,
		HazardLevel: 0,
		SafeZone:    true,
		Tutorial:    true,
		PlanetCount: len(planets),
		Planets:     planets,
		MineralDistribution: map[string]catalog.Abundance{
			catalog.TutorialMineral: catalog.AbundanceHigh,
			"quartzite":             catalog.AbundanceMedium,
			"bauxite":               catalog.AbundanceMedium,
			"halite":                catalog.AbundanceLow,
		},
		BasePrices: basePrices,
	}
}

func rollStarType(rng *rand.Rand) StarType {
	total := 0
	for _, w := range starTypeWeights {
		total += w
	}

	roll := rng.IntN(total)
	currentWeight := 0
	for i, weight := range starTypeWeights {
		currentWeight += weight
		if roll < currentWeight {
			return starTypes[i]
		}
	}

	return StarTypeRedDwarf // fallback
}

// summarizeMinerals folds every planet's deposits into a per-mineral
// abundance tier.
func summarizeMinerals(planets []planet.Planet) map[string]catalog.Abundance {
	totals := make(map[string]int64)
	for _, p := range planets {
		for _, d := range p.Minerals {
			totals[d.Mineral] += d.Quantity
		}
	}

	distribution := make(map[string]catalog.Abundance, len(totals))
	for mineralKey, total := range totals {
		switch {
		case total >= abundanceHighThreshold:
			distribution[mineralKey] = catalog.AbundanceHigh
		case total >= abundanceMediumThreshold:
			distribution[mineralKey] = catalog.AbundanceMedium
		default:
			distribution[mineralKey] = catalog.AbundanceLow
		}
	}
	return distribution
}

// deriveBasePrices fixes a price for every catalogue commodity. Common
// commodities sell at the canonical catalogue price exactly; everything else
// drifts up to ±10% on a seeded roll. Derived once per system, never
// regenerated.
func (g *Generator) deriveBasePrices(systemSeed seed.Seed) map[string]int64 {
	rng := systemSeed.Child("prices", 0).Stream()

	prices := make(map[string]int64, g.catalogue.Len())
	for _, c := range g.catalogue.All() {
		if c.Rarity == catalog.RarityCommon {
			prices[c.Key] = c.BasePriceCents
			continue
		}

		factor := 0.9 + 0.2*rng.Float64()
		price := int64(math.Round(float64(c.BasePriceCents) * factor))
		if price < 1 {
			price = 1
		}
		prices[c.Key] = price
	}
	return prices
}
