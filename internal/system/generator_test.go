package system

import (
	"encoding/json"
	"testing"

	"spacetrade-server/internal/catalog"
	sharederrors "spacetrade-server/internal/shared/errors"
)

const testGalaxySeed = "andromeda-prime"

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z int
		wantErr bool
	}{
		{"origin", 0, 0, 0, false},
		{"lattice point", 3, -6, 9, false},
		{"negative extreme", -9, -9, -9, false},
		{"not divisible by step", 1, 0, 0, true},
		{"out of range", 12, 0, 0, true},
		{"negative out of range", 0, -12, 0, true},
		{"one bad axis", 3, 3, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.x, tt.y, tt.z)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !sharederrors.IsValidation(err) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestGenerateIsByteIdentical(t *testing.T) {
	g := NewGenerator(catalog.Default())

	first, err := g.Generate(testGalaxySeed, 3, -6, 9)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, err := g.Generate(testGalaxySeed, 3, -6, 9)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if string(a) != string(b) {
		t.Fatalf("same coordinates generated different systems:\n%s\n%s", a, b)
	}
}

func TestGenerateRejectsBadCoordinates(t *testing.T) {
	g := NewGenerator(catalog.Default())

	if _, err := g.Generate(testGalaxySeed, 1, 0, 0); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for (1,0,0), got %v", err)
	}
	if _, err := g.Generate(testGalaxySeed, 12, 0, 0); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for (12,0,0), got %v", err)
	}
}

func TestGenerateBounds(t *testing.T) {
	g := NewGenerator(catalog.Default())
	cat := catalog.Default()

	for x := -9; x <= 9; x += 3 {
		for y := -9; y <= 9; y += 3 {
			sys, err := g.Generate(testGalaxySeed, x, y, 6)
			if err != nil {
				t.Fatalf("generate (%d,%d,6) failed: %v", x, y, err)
			}

			if sys.HazardLevel < 0 || sys.HazardLevel > 10 {
				t.Errorf("(%d,%d,6): hazard level %d outside [0, 10]", x, y, sys.HazardLevel)
			}
			if sys.PlanetCount != len(sys.Planets) {
				t.Errorf("(%d,%d,6): planet count %d disagrees with %d planets", x, y, sys.PlanetCount, len(sys.Planets))
			}
			if sys.PlanetCount > 12 {
				t.Errorf("(%d,%d,6): %d planets exceeds the cap", x, y, sys.PlanetCount)
			}
			if len(sys.BasePrices) != cat.Len() {
				t.Errorf("(%d,%d,6): expected a base price for all %d commodities, got %d", x, y, cat.Len(), len(sys.BasePrices))
			}
		}
	}
}

func TestBasePriceDerivation(t *testing.T) {
	g := NewGenerator(catalog.Default())
	cat := catalog.Default()

	sys, err := g.Generate(testGalaxySeed, -3, 6, -9)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for _, c := range cat.All() {
		price, ok := sys.BasePrices[c.Key]
		if !ok {
			t.Fatalf("no base price for %q", c.Key)
		}
		if price < 1 {
			t.Errorf("%q: base price %d below floor", c.Key, price)
		}

		if c.Rarity == catalog.RarityCommon {
			if price != c.BasePriceCents {
				t.Errorf("%q is common: expected canonical price %d, got %d", c.Key, c.BasePriceCents, price)
			}
			continue
		}

		lo := float64(c.BasePriceCents) * 0.9
		hi := float64(c.BasePriceCents) * 1.1
		if float64(price) < lo-1 || float64(price) > hi+1 {
			t.Errorf("%q: price %d outside ±10%% of canonical %d", c.Key, price, c.BasePriceCents)
		}
	}
}

func TestOriginHub(t *testing.T) {
	g := NewGenerator(catalog.Default())
	cat := catalog.Default()

	sys, err := g.Generate(testGalaxySeed, 0, 0, 0)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if sys.Name != "Origin Hub" {
		t.Errorf("expected name %q, got %q", "Origin Hub", sys.Name)
	}
	if sys.StarType != StarTypeYellowDwarf {
		t.Errorf("expected yellow dwarf, got %q", sys.StarType)
	}
	if sys.HazardLevel != 0 {
		t.Errorf("expected hazard level 0, got %d", sys.HazardLevel)
	}
	if !sys.SafeZone || !sys.Tutorial {
		t.Error("origin hub must be a tutorial safe zone")
	}
	if sys.PlanetCount != 3 {
		t.Errorf("expected 3 planets, got %d", sys.PlanetCount)
	}

	if sys.MineralDistribution[catalog.TutorialMineral] != catalog.AbundanceHigh {
		t.Errorf("tutorial mineral must be highly abundant, got %q", sys.MineralDistribution[catalog.TutorialMineral])
	}

	for _, c := range cat.All() {
		if sys.BasePrices[c.Key] != c.BasePriceCents {
			t.Errorf("%q: origin hub price %d differs from canonical %d", c.Key, sys.BasePrices[c.Key], c.BasePriceCents)
		}
	}
}

func TestOriginHubIgnoresGalaxySeed(t *testing.T) {
	g := NewGenerator(catalog.Default())

	a, err := g.Generate("andromeda-prime", 0, 0, 0)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := g.Generate("pegasus-beta", 0, 0, 0)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	if string(aJSON) != string(bJSON) {
		t.Fatal("origin hub must be identical under every galaxy seed")
	}
}

func TestAbundanceDefaultsToMedium(t *testing.T) {
	sys := &System{MineralDistribution: map[string]catalog.Abundance{"ferrite": catalog.AbundanceHigh}}

	if got := sys.Abundance("ferrite"); got != catalog.AbundanceHigh {
		t.Fatalf("expected high, got %q", got)
	}
	if got := sys.Abundance("unlisted"); got != catalog.AbundanceMedium {
		t.Fatalf("expected medium default, got %q", got)
	}
}
