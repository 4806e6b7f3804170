package archetype

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var tiersYAML []byte

// Tier bounds. Tier 1 is the entry level, tier 5 the ceiling.
const (
	MinTier = 1
	MaxTier = 5
)

var tierNumerals = [...]string{"I", "II", "III", "IV", "V"}

// TierNumeral returns the mark numeral used in archetype names.
func TierNumeral(tier int) string {
	if tier < MinTier || tier > MaxTier {
		return ""
	}
	return tierNumerals[tier-1]
}

// TierRow is one tier's cost and primary effect magnitude.
type TierRow struct {
	Cost   int64 `yaml:"cost"`
	Effect int64 `yaml:"effect"`
}

// CategoryTable is the verbatim tier table for one ship hull size or
// building function, plus any price effects the category declares.
type CategoryTable struct {
	Key     string        `yaml:"key"`
	Name    string        `yaml:"name"`
	Effects []PriceEffect `yaml:"effects"`
	Tiers   []TierRow     `yaml:"tiers"`
}

// Row returns the table row for a tier in [MinTier, MaxTier].
func (t *CategoryTable) Row(tier int) (TierRow, bool) {
	if tier < MinTier || tier > MaxTier {
		return TierRow{}, false
	}
	return t.Tiers[tier-1], true
}

// Tables holds the loaded ship and building tier tables.
type Tables struct {
	shipOrder     []string
	buildingOrder []string
	ships         map[string]*CategoryTable
	buildings     map[string]*CategoryTable
}

var (
	tablesOnce sync.Once
	tables     *Tables
	tablesErr  error
)

// DefaultTables returns the embedded tier tables, loading them once. A load
// failure means the shipped data is broken, so it panics.
func DefaultTables() *Tables {
	tablesOnce.Do(func() {
		tables, tablesErr = loadTables(tiersYAML)
	})
	if tablesErr != nil {
		panic(fmt.Sprintf("embedded tier tables are invalid: %v", tablesErr))
	}
	return tables
}

func loadTables(data []byte) (*Tables, error) {
	var doc struct {
		Ships     []CategoryTable `yaml:"ships"`
		Buildings []CategoryTable `yaml:"buildings"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tier tables: %w", err)
	}

	t := &Tables{
		ships:     make(map[string]*CategoryTable, len(doc.Ships)),
		buildings: make(map[string]*CategoryTable, len(doc.Buildings)),
	}

	for i := range doc.Ships {
		table := &doc.Ships[i]
		if err := validateTable(table); err != nil {
			return nil, fmt.Errorf("ship table %q: %w", table.Key, err)
		}
		if _, exists := t.ships[table.Key]; exists {
			return nil, fmt.Errorf("duplicate ship hull %q", table.Key)
		}
		t.ships[table.Key] = table
		t.shipOrder = append(t.shipOrder, table.Key)
	}

	for i := range doc.Buildings {
		table := &doc.Buildings[i]
		if err := validateTable(table); err != nil {
			return nil, fmt.Errorf("building table %q: %w", table.Key, err)
		}
		if _, exists := t.buildings[table.Key]; exists {
			return nil, fmt.Errorf("duplicate building function %q", table.Key)
		}
		t.buildings[table.Key] = table
		t.buildingOrder = append(t.buildingOrder, table.Key)
	}

	if len(t.ships) == 0 || len(t.buildings) == 0 {
		return nil, fmt.Errorf("tier tables must define both ships and buildings")
	}

	return t, nil
}

func validateTable(table *CategoryTable) error {
	if table.Key == "" || table.Name == "" {
		return fmt.Errorf("empty key or name")
	}
	if len(table.Tiers) != MaxTier {
		return fmt.Errorf("expected %d tier rows, got %d", MaxTier, len(table.Tiers))
	}
	for i, row := range table.Tiers {
		if row.Cost <= 0 || row.Effect <= 0 {
			return fmt.Errorf("tier %d has non-positive cost or effect", i+1)
		}
		if i > 0 && row.Cost <= table.Tiers[i-1].Cost {
			return fmt.Errorf("tier %d cost does not increase", i+1)
		}
	}
	return nil
}

// Ship returns the tier table for a hull size.
func (t *Tables) Ship(key string) (*CategoryTable, bool) {
	table, ok := t.ships[key]
	return table, ok
}

// Building returns the tier table for a building function.
func (t *Tables) Building(key string) (*CategoryTable, bool) {
	table, ok := t.buildings[key]
	return table, ok
}

// ShipKeys lists hull sizes in table order.
func (t *Tables) ShipKeys() []string {
	out := make([]string, len(t.shipOrder))
	copy(out, t.shipOrder)
	return out
}

// BuildingKeys lists building functions in table order.
func (t *Tables) BuildingKeys() []string {
	out := make([]string, len(t.buildingOrder))
	copy(out, t.buildingOrder)
	return out
}
