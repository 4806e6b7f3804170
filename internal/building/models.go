package building

import (
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/archetype"
)

// Building functions. Keys match the tier table.
const (
	FunctionExtractor   = "extractor"
	FunctionRefinery    = "refinery"
	FunctionHabitat     = "habitat"
	FunctionShipyard    = "shipyard"
	FunctionDefenseGrid = "defense_grid"
)

// Archetype is one fully-specified building template, keyed by
// (race, function, tier).
type Archetype struct {
	Race      archetype.Race          `json:"race"`
	Function  string                  `json:"function"`
	Tier      int                     `json:"tier"`
	Name      string                  `json:"name"`
	CostCents int64                   `json:"cost"`
	Output    int64                   `json:"output"`
	Effects   []archetype.PriceEffect `json:"effects,omitempty"`
}

// StructureStatus is the lifecycle state of a placed structure. Only active
// structures contribute price modifiers.
type StructureStatus string

const (
	StatusActive            StructureStatus = "active"
	StatusDisabled          StructureStatus = "disabled"
	StatusUnderConstruction StructureStatus = "under_construction"
	StatusDestroyed         StructureStatus = "destroyed"
)

// Structure is one placed building inside a system. Position is the build
// order; the pricing pipeline applies structure modifiers earliest-first.
type Structure struct {
	ID             uuid.UUID       `json:"id"`
	SystemID       uuid.UUID       `json:"system_id"`
	Name           string          `json:"name"`
	Function       string          `json:"function"`
	Tier           int             `json:"tier"`
	Status         StructureStatus `json:"status"`
	Specialization string          `json:"specialization,omitempty"`
	Inputs         []string        `json:"inputs,omitempty"`
	Outputs        []string        `json:"outputs,omitempty"`
	Position       int             `json:"position"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Active reports whether the structure currently contributes its effects.
func (s *Structure) Active() bool {
	return s.Status == StatusActive
}
