package galaxy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/system"
)

// MemoryStore is an in-memory SystemStore used by tests and by deployments
// without Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	byCoords map[system.Coordinates]*StoredSystem
	byID     map[uuid.UUID]*StoredSystem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCoords: make(map[system.Coordinates]*StoredSystem),
		byID:     make(map[uuid.UUID]*StoredSystem),
	}
}

func (m *MemoryStore) Create(_ context.Context, stored *StoredSystem) (*StoredSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byCoords[stored.Coordinates]; ok {
		copied := *existing
		return &copied, nil
	}

	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	kept := *stored
	m.byCoords[stored.Coordinates] = &kept
	m.byID[stored.ID] = &kept

	copied := kept
	return &copied, nil
}

func (m *MemoryStore) GetByCoordinates(_ context.Context, x, y, z int) (*StoredSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byCoords[system.Coordinates{X: x, Y: y, Z: z}]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*StoredSystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

var _ SystemStore = (*MemoryStore)(nil)
