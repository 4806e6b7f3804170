package ship

import "spacetrade-server/internal/archetype"

// Hull sizes. Keys match the tier table.
const (
	HullShuttle     = "shuttle"
	HullCorvette    = "corvette"
	HullFreighter   = "freighter"
	HullCruiser     = "cruiser"
	HullDreadnought = "dreadnought"
)

// Archetype is one fully-specified ship template, keyed by
// (race, hull size, tier). Produced once, reused for every instance.
type Archetype struct {
	Race          archetype.Race `json:"race"`
	HullSize      string         `json:"hull_size"`
	Tier          int            `json:"tier"`
	Name          string         `json:"name"`
	CostCents     int64          `json:"cost"`
	CargoCapacity int64          `json:"cargo_capacity"`
	HullStrength  int64          `json:"hull_strength"`
	Speed         int64          `json:"speed"`
}
