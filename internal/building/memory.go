package building

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	sharederrors "spacetrade-server/internal/shared/errors"
)

// MemoryStore is an in-memory StructureStore used by tests and by
// deployments without Postgres.
type MemoryStore struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*Structure
	order     map[uuid.UUID][]uuid.UUID
	positions map[uuid.UUID]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:      make(map[uuid.UUID]*Structure),
		order:     make(map[uuid.UUID][]uuid.UUID),
		positions: make(map[uuid.UUID]int),
	}
}

func (m *MemoryStore) PlaceStructure(_ context.Context, structure *Structure) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	structure.ID = uuid.New()
	if structure.Status == "" {
		structure.Status = StatusUnderConstruction
	}
	m.positions[structure.SystemID]++
	structure.Position = m.positions[structure.SystemID]
	structure.CreatedAt = time.Now().UTC()

	stored := *structure
	m.byID[structure.ID] = &stored
	m.order[structure.SystemID] = append(m.order[structure.SystemID], structure.ID)
	return nil
}

func (m *MemoryStore) ListBySystem(_ context.Context, systemID uuid.UUID) ([]Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.order[systemID]
	out := make([]Structure, 0, len(ids))
	for _, id := range ids {
		out = append(out, *m.byID[id])
	}
	return out, nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id uuid.UUID, status StructureStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byID[id]
	if !ok {
		return sharederrors.NotFoundf("structure %s not found", id)
	}
	stored.Status = status
	return nil
}

var _ StructureStore = (*MemoryStore)(nil)
