// Package building produces the building archetype catalogue and tracks
// placed structures per system. Archetypes are the full cross-product of
// race, function, and tier; structures are persisted instances whose price
// effects feed the market pipeline.
package building

import (
	"fmt"
	"math"

	"spacetrade-server/internal/archetype"
	sharederrors "spacetrade-server/internal/shared/errors"
)

type Generator struct {
	tables *archetype.Tables
}

func NewGenerator() *Generator {
	return &Generator{tables: archetype.DefaultTables()}
}

// Generate returns the archetype for one (race, function, tier) cell.
func (g *Generator) Generate(race archetype.Race, function string, tier int) (*Archetype, error) {
	mods, ok := archetype.ModifiersFor(race)
	if !ok {
		return nil, sharederrors.Validationf("unknown race %q", race)
	}

	table, ok := g.tables.Building(function)
	if !ok {
		return nil, sharederrors.Validationf("unknown building function %q", function)
	}

	row, ok := table.Row(tier)
	if !ok {
		return nil, sharederrors.Validationf("tier %d is outside [%d, %d]", tier, archetype.MinTier, archetype.MaxTier)
	}

	var effects []archetype.PriceEffect
	if len(table.Effects) > 0 {
		effects = make([]archetype.PriceEffect, len(table.Effects))
		copy(effects, table.Effects)
	}

	return &Archetype{
		Race:      race,
		Function:  function,
		Tier:      tier,
		Name:      fmt.Sprintf("%s %s Mk %s", archetype.DisplayName(race), table.Name, archetype.TierNumeral(tier)),
		CostCents: int64(math.Round(float64(row.Cost) * mods.Cost)),
		Output:    int64(math.Round(float64(row.Effect) * mods.Output)),
		Effects:   effects,
	}, nil
}

// GenerateAllTypes returns every (race, function, tier) archetype exactly
// once, in stable order.
func (g *Generator) GenerateAllTypes() []Archetype {
	functions := g.tables.BuildingKeys()
	all := make([]Archetype, 0, len(archetype.Races)*len(functions)*archetype.MaxTier)

	for _, race := range archetype.Races {
		for _, function := range functions {
			for tier := archetype.MinTier; tier <= archetype.MaxTier; tier++ {
				a, err := g.Generate(race, function, tier)
				if err != nil {
					// Races, functions, and tiers all come from the fixed tables.
					panic(fmt.Sprintf("building cross-product generation failed: %v", err))
				}
				all = append(all, *a)
			}
		}
	}
	return all
}

// EffectsFor returns the price effect descriptors a building function
// declares. Functions without market effects return nil.
func (g *Generator) EffectsFor(function string) []archetype.PriceEffect {
	table, ok := g.tables.Building(function)
	if !ok {
		return nil
	}
	return table.Effects
}
