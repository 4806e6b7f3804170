package market

import (
	"spacetrade-server/internal/catalog"
)

// StructureStep records one active structure's contribution to a price, in
// the order it was applied.
type StructureStep struct {
	Name         string  `json:"name"`
	Function     string  `json:"function"`
	Tier         int     `json:"tier"`
	Factor       float64 `json:"factor"`
	RunningPrice float64 `json:"running_price"`
}

// Breakdown is the full audit trail of one price computation. FinalCents is
// always what CurrentPrice would return for the same inputs.
type Breakdown struct {
	Commodity       string            `json:"commodity"`
	BaseCents       int64             `json:"base_cents"`
	Abundance       catalog.Abundance `json:"abundance"`
	AbundanceFactor float64           `json:"abundance_factor"`
	Structures      []StructureStep   `json:"structures"`
	RoundedCents    int64             `json:"rounded_cents"`
	DeltaCents      int64             `json:"delta_cents"`
	FinalCents      int64             `json:"final_cents"`
}
