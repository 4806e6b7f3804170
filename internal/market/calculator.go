// Package market computes commodity prices for materialized systems. Every
// price is the same layered pipeline: per-system base price, abundance
// factor, active structure modifiers in build order, a single rounding step,
// then the persistent player-driven delta.
package market

import (
	"math"
	"slices"

	"spacetrade-server/internal/archetype"
	"spacetrade-server/internal/building"
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/system"
)

// Abundance supply factors. High supply is cheap, scarce supply is dear.
var abundanceFactors = map[catalog.Abundance]float64{
	catalog.AbundanceHigh:   0.8,
	catalog.AbundanceMedium: 1.0,
	catalog.AbundanceLow:    1.2,
}

// Calculator is the single price computation path. CurrentPrice and
// PriceBreakdown both run through Compute; there is no shortcut that could
// let the two disagree.
type Calculator struct {
	buildings *building.Generator
}

func NewCalculator(buildings *building.Generator) *Calculator {
	return &Calculator{buildings: buildings}
}

// Compute prices one commodity in one system. It returns nil when the system
// has no base price for the commodity. The multiplicative chain runs in
// float64 and is rounded exactly once, half-up, before the delta is added;
// the final price never drops below one cent.
func (c *Calculator) Compute(sys *system.System, commodity string, structures []building.Structure, deltaCents int64) *Breakdown {
	base, ok := sys.BasePrices[commodity]
	if !ok {
		return nil
	}

	abundance := sys.Abundance(commodity)
	factor := abundanceFactors[abundance]

	b := &Breakdown{
		Commodity:       commodity,
		BaseCents:       base,
		Abundance:       abundance,
		AbundanceFactor: factor,
		DeltaCents:      deltaCents,
	}

	price := float64(base) * factor

	ordered := make([]building.Structure, len(structures))
	copy(ordered, structures)
	slices.SortFunc(ordered, func(a, b building.Structure) int {
		return a.Position - b.Position
	})

	for i := range ordered {
		s := &ordered[i]
		if !s.Active() {
			continue
		}

		f := c.structureFactor(s, commodity)
		if f == 1.0 {
			continue
		}

		price *= f
		b.Structures = append(b.Structures, StructureStep{
			Name:         s.Name,
			Function:     s.Function,
			Tier:         s.Tier,
			Factor:       f,
			RunningPrice: price,
		})
	}

	b.RoundedCents = int64(math.Floor(price + 0.5))

	final := b.RoundedCents + deltaCents
	if final < 1 {
		final = 1
	}
	b.FinalCents = final

	return b
}

// structureFactor evaluates every price effect the structure's function
// declares against one commodity. Effects target the structure's own
// commodity lists; a structure with no matching list entry is neutral.
func (c *Calculator) structureFactor(s *building.Structure, commodity string) float64 {
	factor := 1.0
	for _, effect := range c.buildings.EffectsFor(s.Function) {
		if c.effectApplies(effect.Kind, s, commodity) {
			factor *= effect.Factor(s.Tier)
		}
	}
	return factor
}

func (c *Calculator) effectApplies(kind archetype.EffectKind, s *building.Structure, commodity string) bool {
	switch kind {
	case archetype.EffectPriceDiscount:
		return s.Specialization == commodity
	case archetype.EffectInputSurcharge:
		return slices.Contains(s.Inputs, commodity)
	case archetype.EffectOutputDiscount:
		return slices.Contains(s.Outputs, commodity)
	default:
		return false
	}
}
