package market

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ledgerKey struct {
	systemID  uuid.UUID
	commodity string
}

// MemoryLedger is an in-memory LedgerStore used by tests and by deployments
// without Postgres.
type MemoryLedger struct {
	mu     sync.Mutex
	deltas map[ledgerKey]int64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{deltas: make(map[ledgerKey]int64)}
}

func (m *MemoryLedger) ApplyDelta(_ context.Context, systemID uuid.UUID, commodity string, deltaCents int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ledgerKey{systemID: systemID, commodity: commodity}
	m.deltas[key] += deltaCents
	return m.deltas[key], nil
}

func (m *MemoryLedger) GetDelta(_ context.Context, systemID uuid.UUID, commodity string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deltas[ledgerKey{systemID: systemID, commodity: commodity}], nil
}

var _ LedgerStore = (*MemoryLedger)(nil)
