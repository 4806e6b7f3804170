package archetype

// EffectKind tags how a structure's price effect applies to a commodity.
type EffectKind string

const (
	// EffectPriceDiscount lowers the price of an extraction structure's
	// specialized output.
	EffectPriceDiscount EffectKind = "price_discount"
	// EffectInputSurcharge raises the price of a refining structure's
	// declared inputs.
	EffectInputSurcharge EffectKind = "input_surcharge"
	// EffectOutputDiscount lowers the price of a refining structure's
	// declared outputs.
	EffectOutputDiscount EffectKind = "output_discount"
)

// PriceEffect is a tagged-variant descriptor. The pricing pipeline evaluates
// descriptors generically; no per-function branching lives outside this
// table.
type PriceEffect struct {
	Kind        EffectKind `yaml:"kind"`
	RatePerTier float64    `yaml:"rate_per_tier"`
}

// Factor returns the multiplicative price factor this effect contributes at
// a given tier. Discounts steepen and surcharges grow with tier.
func (e PriceEffect) Factor(tier int) float64 {
	switch e.Kind {
	case EffectPriceDiscount, EffectOutputDiscount:
		return 1.0 - e.RatePerTier*float64(tier)
	case EffectInputSurcharge:
		return 1.0 + e.RatePerTier*float64(tier)
	default:
		return 1.0
	}
}
