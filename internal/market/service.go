package market

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/building"
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/galaxy"
	sharederrors "spacetrade-server/internal/shared/errors"
	"spacetrade-server/internal/shared/metrics"
)

// TradeSide is the direction of a recorded trade.
type TradeSide string

const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

// tradeImpactCents is how far one traded unit moves the ledger. Buying
// pressure raises the price, selling pressure lowers it.
const tradeImpactCents int64 = 1

type Service struct {
	galaxies   *galaxy.Service
	structures building.StructureStore
	ledger     LedgerStore
	calculator *Calculator
	catalogue  *catalog.Catalogue
	logger     *slog.Logger
}

func NewService(galaxies *galaxy.Service, structures building.StructureStore, ledger LedgerStore, calculator *Calculator, catalogue *catalog.Catalogue, logger *slog.Logger) *Service {
	logger.Debug("Initializing market service")

	return &Service{
		galaxies:   galaxies,
		structures: structures,
		ledger:     ledger,
		calculator: calculator,
		catalogue:  catalogue,
		logger:     logger,
	}
}

// CurrentPrice returns the price of a commodity in a system in cents. The
// boolean is false when the system has no market for the commodity.
func (s *Service) CurrentPrice(ctx context.Context, systemID uuid.UUID, commodity string) (int64, bool, error) {
	breakdown, err := s.PriceBreakdown(ctx, systemID, commodity)
	if err != nil {
		return 0, false, err
	}
	if breakdown == nil {
		return 0, false, nil
	}
	return breakdown.FinalCents, true, nil
}

// PriceBreakdown returns the full audit trail for one price. It returns
// (nil, nil) when the system has no market for the commodity, and an error
// when the system itself is unknown.
func (s *Service) PriceBreakdown(ctx context.Context, systemID uuid.UUID, commodity string) (*Breakdown, error) {
	start := time.Now()

	stored, err := s.galaxies.GetSystem(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, sharederrors.NotFoundf("system %s not found", systemID)
	}

	structures, err := s.structures.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, err
	}

	delta, err := s.ledger.GetDelta(ctx, systemID, commodity)
	if err != nil {
		return nil, err
	}

	breakdown := s.calculator.Compute(&stored.Record, commodity, structures, delta)
	metrics.PriceComputations.Observe(time.Since(start).Seconds())
	return breakdown, nil
}

// ApplyDelta records a persistent price adjustment for a commodity in a
// system and returns the accumulated delta. The commodity must exist in the
// catalogue; the system must be materialized.
func (s *Service) ApplyDelta(ctx context.Context, systemID uuid.UUID, commodity string, deltaCents int64) (int64, error) {
	logger := s.logger.With("component", "market_service", "operation", "apply_delta", "system_id", systemID, "commodity", commodity)

	if _, ok := s.catalogue.Get(commodity); !ok {
		return 0, sharederrors.Validationf("unknown commodity %q", commodity)
	}

	stored, err := s.galaxies.GetSystem(ctx, systemID)
	if err != nil {
		return 0, err
	}
	if stored == nil {
		return 0, sharederrors.NotFoundf("system %s not found", systemID)
	}

	total, err := s.ledger.ApplyDelta(ctx, systemID, commodity, deltaCents)
	if err != nil {
		return 0, err
	}

	metrics.LedgerWrites.Inc()
	logger.Info("Price delta applied", "delta_cents", deltaCents, "total_cents", total)
	return total, nil
}

// RecordTrade turns trade volume into ledger pressure: buys raise the
// accumulated delta, sells lower it. Returns the new accumulated delta.
func (s *Service) RecordTrade(ctx context.Context, systemID uuid.UUID, commodity string, side TradeSide, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, sharederrors.Validationf("trade quantity must be positive, got %d", quantity)
	}

	var delta int64
	switch side {
	case TradeBuy:
		delta = quantity * tradeImpactCents
	case TradeSell:
		delta = -quantity * tradeImpactCents
	default:
		return 0, sharederrors.Validationf("unknown trade side %q", side)
	}

	return s.ApplyDelta(ctx, systemID, commodity, delta)
}
