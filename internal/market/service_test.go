package market

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/building"
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/galaxy"
	sharederrors "spacetrade-server/internal/shared/errors"
	"spacetrade-server/internal/system"
)

type marketFixture struct {
	galaxies   *galaxy.Service
	structures *building.MemoryStore
	markets    *Service
}

func newMarketFixture(t *testing.T) *marketFixture {
	t.Helper()

	cat := catalog.Default()
	galaxies := galaxy.NewService(
		galaxy.NewMemoryStore(),
		nil,
		system.NewGenerator(cat),
		"andromeda-prime",
		time.Minute,
		slog.Default(),
	)
	structures := building.NewMemoryStore()
	markets := NewService(
		galaxies,
		structures,
		NewMemoryLedger(),
		NewCalculator(building.NewGenerator()),
		cat,
		slog.Default(),
	)

	return &marketFixture{galaxies: galaxies, structures: structures, markets: markets}
}

func (f *marketFixture) materializeHub(t *testing.T) *galaxy.StoredSystem {
	t.Helper()

	hub, err := f.galaxies.Materialize(context.Background(), 0, 0, 0)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	return hub
}

func TestCurrentPriceAtOriginHub(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)

	// Ferrite: canonical 100, high abundance -> 80.
	price, ok, err := f.markets.CurrentPrice(context.Background(), hub.ID, catalog.TutorialMineral)
	if err != nil {
		t.Fatalf("price failed: %v", err)
	}
	if !ok {
		t.Fatal("expected the hub to trade the tutorial mineral")
	}
	if price != 80 {
		t.Fatalf("expected 80, got %d", price)
	}
}

func TestCurrentPriceUnknownCommodity(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)

	_, ok, err := f.markets.CurrentPrice(context.Background(), hub.ID, "unobtainium")
	if err != nil {
		t.Fatalf("price failed: %v", err)
	}
	if ok {
		t.Fatal("expected no market for an unknown commodity")
	}
}

func TestCurrentPriceUnknownSystem(t *testing.T) {
	f := newMarketFixture(t)

	_, _, err := f.markets.CurrentPrice(context.Background(), uuid.New(), catalog.TutorialMineral)
	if !sharederrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPriceBreakdownAgreesWithCurrentPrice(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	s := &building.Structure{
		SystemID:       hub.ID,
		Name:           "Hub Extractor",
		Function:       building.FunctionExtractor,
		Tier:           3,
		Status:         building.StatusActive,
		Specialization: catalog.TutorialMineral,
	}
	if err := f.structures.PlaceStructure(ctx, s); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if _, err := f.markets.ApplyDelta(ctx, hub.ID, catalog.TutorialMineral, 5); err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}

	for _, c := range catalog.Default().All() {
		price, ok, err := f.markets.CurrentPrice(ctx, hub.ID, c.Key)
		if err != nil {
			t.Fatalf("%s: price failed: %v", c.Key, err)
		}
		breakdown, err := f.markets.PriceBreakdown(ctx, hub.ID, c.Key)
		if err != nil {
			t.Fatalf("%s: breakdown failed: %v", c.Key, err)
		}

		if !ok {
			if breakdown != nil {
				t.Fatalf("%s: price says no market but breakdown exists", c.Key)
			}
			continue
		}
		if breakdown.FinalCents != price {
			t.Fatalf("%s: breakdown total %d disagrees with price %d", c.Key, breakdown.FinalCents, price)
		}
	}
}

func TestFullPipelineExample(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	s := &building.Structure{
		SystemID:       hub.ID,
		Name:           "Hub Extractor",
		Function:       building.FunctionExtractor,
		Tier:           3,
		Status:         building.StatusActive,
		Specialization: catalog.TutorialMineral,
	}
	if err := f.structures.PlaceStructure(ctx, s); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if _, err := f.markets.ApplyDelta(ctx, hub.ID, catalog.TutorialMineral, 5); err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}

	// 100 -> 80 (high abundance) -> 68 (tier-3 extractor) -> 73 (+5 delta).
	price, ok, err := f.markets.CurrentPrice(ctx, hub.ID, catalog.TutorialMineral)
	if err != nil || !ok {
		t.Fatalf("price failed: ok=%v err=%v", ok, err)
	}
	if price != 73 {
		t.Fatalf("expected 73, got %d", price)
	}
}

func TestApplyDeltaAccumulatesOrderIndependently(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	if _, err := f.markets.ApplyDelta(ctx, hub.ID, catalog.TutorialMineral, 100); err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}
	total, err := f.markets.ApplyDelta(ctx, hub.ID, catalog.TutorialMineral, -30)
	if err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}
	if total != 70 {
		t.Fatalf("expected accumulated delta 70, got %d", total)
	}

	// The reversed order lands on the same total.
	g := newMarketFixture(t)
	hub2 := g.materializeHub(t)
	if _, err := g.markets.ApplyDelta(ctx, hub2.ID, catalog.TutorialMineral, -30); err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}
	total2, err := g.markets.ApplyDelta(ctx, hub2.ID, catalog.TutorialMineral, 100)
	if err != nil {
		t.Fatalf("apply delta failed: %v", err)
	}
	if total2 != 70 {
		t.Fatalf("expected accumulated delta 70, got %d", total2)
	}
}

func TestApplyDeltaConcurrentWritersAllLand(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			if _, err := f.markets.ApplyDelta(ctx, hub.ID, catalog.TutorialMineral, 2); err != nil {
				t.Errorf("apply delta failed: %v", err)
			}
		}()
	}
	wg.Wait()

	breakdown, err := f.markets.PriceBreakdown(ctx, hub.ID, catalog.TutorialMineral)
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if breakdown.DeltaCents != writers*2 {
		t.Fatalf("expected delta %d, got %d", writers*2, breakdown.DeltaCents)
	}
}

func TestApplyDeltaValidation(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	if _, err := f.markets.ApplyDelta(ctx, hub.ID, "unobtainium", 10); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for an unknown commodity, got %v", err)
	}
	if _, err := f.markets.ApplyDelta(ctx, uuid.New(), catalog.TutorialMineral, 10); !sharederrors.IsNotFound(err) {
		t.Fatalf("expected not-found error for an unknown system, got %v", err)
	}
}

func TestRecordTrade(t *testing.T) {
	f := newMarketFixture(t)
	hub := f.materializeHub(t)
	ctx := context.Background()

	total, err := f.markets.RecordTrade(ctx, hub.ID, catalog.TutorialMineral, TradeBuy, 40)
	if err != nil {
		t.Fatalf("record trade failed: %v", err)
	}
	if total != 40 {
		t.Fatalf("expected buy pressure +40, got %d", total)
	}

	total, err = f.markets.RecordTrade(ctx, hub.ID, catalog.TutorialMineral, TradeSell, 15)
	if err != nil {
		t.Fatalf("record trade failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected net pressure +25, got %d", total)
	}

	if _, err := f.markets.RecordTrade(ctx, hub.ID, catalog.TutorialMineral, TradeBuy, 0); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
	if _, err := f.markets.RecordTrade(ctx, hub.ID, catalog.TutorialMineral, "short", 5); !sharederrors.IsValidation(err) {
		t.Fatalf("expected validation error for an unknown side, got %v", err)
	}
}
