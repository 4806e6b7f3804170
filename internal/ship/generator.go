// Package ship produces the ship archetype catalogue: the full cross-product
// of race, hull size, and tier. Each archetype is computed independently, so
// the same arguments always return an identical result.
package ship

import (
	"fmt"
	"math"

	"spacetrade-server/internal/archetype"
	sharederrors "spacetrade-server/internal/shared/errors"
)

// Baseline hull strength and speed per hull size. Hull strength also scales
// with tier; speed is a property of the frame.
var (
	hullStrengthBase = map[string]int64{
		HullShuttle:     80,
		HullCorvette:    150,
		HullFreighter:   200,
		HullCruiser:     450,
		HullDreadnought: 900,
	}
	speedBase = map[string]int64{
		HullShuttle:     9,
		HullCorvette:    8,
		HullFreighter:   5,
		HullCruiser:     6,
		HullDreadnought: 4,
	}
)

type Generator struct {
	tables *archetype.Tables
}

func NewGenerator() *Generator {
	return &Generator{tables: archetype.DefaultTables()}
}

// Generate returns the archetype for one (race, hull size, tier) cell.
func (g *Generator) Generate(race archetype.Race, hullSize string, tier int) (*Archetype, error) {
	mods, ok := archetype.ModifiersFor(race)
	if !ok {
		return nil, sharederrors.Validationf("unknown race %q", race)
	}

	table, ok := g.tables.Ship(hullSize)
	if !ok {
		return nil, sharederrors.Validationf("unknown hull size %q", hullSize)
	}

	row, ok := table.Row(tier)
	if !ok {
		return nil, sharederrors.Validationf("tier %d is outside [%d, %d]", tier, archetype.MinTier, archetype.MaxTier)
	}

	return &Archetype{
		Race:          race,
		HullSize:      hullSize,
		Tier:          tier,
		Name:          fmt.Sprintf("%s %s Mk %s", archetype.DisplayName(race), table.Name, archetype.TierNumeral(tier)),
		CostCents:     scale(row.Cost, mods.Cost),
		CargoCapacity: scale(row.Effect, mods.Cargo),
		HullStrength:  scale(hullStrengthBase[hullSize]*int64(tier), mods.Hull),
		Speed:         scale(speedBase[hullSize], mods.Speed),
	}, nil
}

// GenerateAllTypes returns every (race, hull size, tier) archetype exactly
// once, in stable order.
func (g *Generator) GenerateAllTypes() []Archetype {
	hulls := g.tables.ShipKeys()
	all := make([]Archetype, 0, len(archetype.Races)*len(hulls)*archetype.MaxTier)

	for _, race := range archetype.Races {
		for _, hull := range hulls {
			for tier := archetype.MinTier; tier <= archetype.MaxTier; tier++ {
				a, err := g.Generate(race, hull, tier)
				if err != nil {
					// Races, hulls, and tiers all come from the fixed tables.
					panic(fmt.Sprintf("ship cross-product generation failed: %v", err))
				}
				all = append(all, *a)
			}
		}
	}
	return all
}

func scale(base int64, modifier float64) int64 {
	return int64(math.Round(float64(base) * modifier))
}
