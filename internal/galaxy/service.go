// Package galaxy is the discovery gateway: it resolves coordinates to star
// systems, either ephemerally (peek) or durably (materialize). Materialized
// systems are frozen snapshots; peeking never writes anything.
package galaxy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/shared/metrics"
	sharedredis "spacetrade-server/internal/shared/redis"
	"spacetrade-server/internal/system"
)

type Service struct {
	store       SystemStore
	cache       *sharedredis.Client
	generator   *system.Generator
	galaxySeed  string
	snapshotTTL time.Duration
	logger      *slog.Logger
}

func NewService(store SystemStore, cache *sharedredis.Client, generator *system.Generator, galaxySeed string, snapshotTTL time.Duration, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service", "galaxy_seed", galaxySeed)

	return &Service{
		store:       store,
		cache:       cache,
		generator:   generator,
		galaxySeed:  galaxySeed,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// Peek generates the system at (x, y, z) without persisting it. Repeated
// peeks at the same coordinates return identical records, and a later
// materialize stores exactly what peek showed.
func (s *Service) Peek(x, y, z int) (*system.System, error) {
	generated, err := s.generator.Generate(s.galaxySeed, x, y, z)
	if err != nil {
		metrics.SystemsGenerated.WithLabelValues("invalid").Inc()
		return nil, err
	}

	metrics.SystemsGenerated.WithLabelValues("ok").Inc()
	return generated, nil
}

// Materialize persists the system at (x, y, z), returning the existing
// record when the coordinates were already discovered. The stored snapshot
// never changes after this call.
func (s *Service) Materialize(ctx context.Context, x, y, z int) (*StoredSystem, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "materialize", "x", x, "y", y, "z", z)

	if err := system.ValidateCoordinates(x, y, z); err != nil {
		metrics.SystemsGenerated.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if cached := s.cacheGet(ctx, coordsKey(x, y, z)); cached != nil {
		metrics.SystemsMaterialized.WithLabelValues("cached").Inc()
		return cached, nil
	}

	existing, err := s.store.GetByCoordinates(ctx, x, y, z)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.SystemsMaterialized.WithLabelValues("existing").Inc()
		s.cachePut(ctx, existing)
		return existing, nil
	}

	generated, err := s.Peek(x, y, z)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Create(ctx, &StoredSystem{
		Coordinates: system.Coordinates{X: x, Y: y, Z: z},
		Record:      *generated,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("System discovered", "system_id", stored.ID, "name", stored.Record.Name)
	metrics.SystemsMaterialized.WithLabelValues("created").Inc()
	s.cachePut(ctx, stored)
	return stored, nil
}

// GetSystem returns a materialized system by ID, or nil when no system with
// that ID has been discovered.
func (s *Service) GetSystem(ctx context.Context, id uuid.UUID) (*StoredSystem, error) {
	if cached := s.cacheGet(ctx, idKey(id)); cached != nil {
		return cached, nil
	}

	stored, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		s.cachePut(ctx, stored)
	}
	return stored, nil
}

func coordsKey(x, y, z int) string {
	return fmt.Sprintf("system:coords:%d:%d:%d", x, y, z)
}

func idKey(id uuid.UUID) string {
	return fmt.Sprintf("system:id:%s", id)
}

// cacheGet returns the cached snapshot for a key, or nil on miss, cache
// disabled, or any cache error. Cache failures never fail the request.
func (s *Service) cacheGet(ctx context.Context, key string) *StoredSystem {
	if s.cache == nil {
		return nil
	}

	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}

	var stored StoredSystem
	if err := json.Unmarshal(payload, &stored); err != nil {
		s.logger.Warn("Discarding corrupt cached snapshot", "key", key, "error", err)
		return nil
	}
	return &stored
}

func (s *Service) cachePut(ctx context.Context, stored *StoredSystem) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return
	}

	c := stored.Coordinates
	if err := s.cache.Set(ctx, coordsKey(c.X, c.Y, c.Z), payload, s.snapshotTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache system snapshot", "system_id", stored.ID, "error", err)
		return
	}
	if err := s.cache.Set(ctx, idKey(stored.ID), payload, s.snapshotTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache system snapshot", "system_id", stored.ID, "error", err)
	}
}
