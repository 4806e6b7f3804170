package building

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"spacetrade-server/internal/archetype"
	sharederrors "spacetrade-server/internal/shared/errors"
)

func TestGenerateAllTypesCrossProduct(t *testing.T) {
	g := NewGenerator()
	all := g.GenerateAllTypes()

	if len(all) != 100 {
		t.Fatalf("expected 100 building archetypes (4 races x 5 functions x 5 tiers), got %d", len(all))
	}

	type cell struct {
		race     archetype.Race
		function string
		tier     int
	}
	seen := make(map[cell]bool, len(all))
	for _, a := range all {
		c := cell{a.Race, a.Function, a.Tier}
		if seen[c] {
			t.Fatalf("duplicate archetype for %+v", c)
		}
		seen[c] = true
	}
}

func TestGenerateAppliesOutputModifier(t *testing.T) {
	g := NewGenerator()

	terran, err := g.Generate(archetype.RaceTerran, FunctionExtractor, 2)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	morvan, err := g.Generate(archetype.RaceMorvan, FunctionExtractor, 2)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if morvan.Output <= terran.Output {
		t.Fatalf("morvan facilities must out-produce terran: %d <= %d", morvan.Output, terran.Output)
	}
}

func TestGenerateCarriesEffects(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		function string
		effects  int
	}{
		{FunctionExtractor, 1},
		{FunctionRefinery, 2},
		{FunctionHabitat, 0},
		{FunctionShipyard, 0},
		{FunctionDefenseGrid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.function, func(t *testing.T) {
			a, err := g.Generate(archetype.RaceTerran, tt.function, 3)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if len(a.Effects) != tt.effects {
				t.Fatalf("expected %d effects, got %+v", tt.effects, a.Effects)
			}
			if got := g.EffectsFor(tt.function); len(got) != tt.effects {
				t.Fatalf("EffectsFor disagrees with the archetype: %+v", got)
			}
		})
	}
}

func TestGenerateRejectsInvalidCells(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Generate("synthetic", FunctionHabitat, 1); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown race, got %v", err)
	}
	if _, err := g.Generate(archetype.RaceTerran, "casino", 1); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown function, got %v", err)
	}
	if _, err := g.Generate(archetype.RaceTerran, FunctionHabitat, 9); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for bad tier, got %v", err)
	}
}

func TestStructureActive(t *testing.T) {
	tests := []struct {
		status StructureStatus
		active bool
	}{
		{StatusActive, true},
		{StatusDisabled, false},
		{StatusUnderConstruction, false},
		{StatusDestroyed, false},
	}

	for _, tt := range tests {
		s := Structure{Status: tt.status}
		if s.Active() != tt.active {
			t.Errorf("status %q: expected active=%v", tt.status, tt.active)
		}
	}
}

func TestMemoryStoreOrdersByPlacement(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	systemID := uuid.New()

	first := &Structure{SystemID: systemID, Name: "Alpha Extractor", Function: FunctionExtractor, Tier: 1, Status: StatusActive}
	second := &Structure{SystemID: systemID, Name: "Beta Refinery", Function: FunctionRefinery, Tier: 2, Status: StatusActive}

	if err := store.PlaceStructure(ctx, first); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if err := store.PlaceStructure(ctx, second); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if first.Position != 1 || second.Position != 2 {
		t.Fatalf("expected positions 1 and 2, got %d and %d", first.Position, second.Position)
	}

	listed, err := store.ListBySystem(ctx, systemID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "Alpha Extractor" || listed[1].Name != "Beta Refinery" {
		t.Fatalf("unexpected listing order: %+v", listed)
	}
}

func TestMemoryStoreUpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := &Structure{SystemID: uuid.New(), Name: "Gamma Habitat", Function: FunctionHabitat, Tier: 1}
	if err := store.PlaceStructure(ctx, s); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if s.Status != StatusUnderConstruction {
		t.Fatalf("expected default status under_construction, got %q", s.Status)
	}

	if err := store.UpdateStatus(ctx, s.ID, StatusActive); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	listed, err := store.ListBySystem(ctx, s.SystemID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if listed[0].Status != StatusActive {
		t.Fatalf("expected active, got %q", listed[0].Status)
	}

	if err := store.UpdateStatus(ctx, uuid.New(), StatusActive); !sharederrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
