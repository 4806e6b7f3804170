package market

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"spacetrade-server/internal/shared/database"
)

// LedgerStore is the persistent per-(system, commodity) price delta ledger.
// ApplyDelta increments are atomic: concurrent writers never lose updates,
// and the stored value is always the sum of every delta ever applied.
type LedgerStore interface {
	ApplyDelta(ctx context.Context, systemID uuid.UUID, commodity string, deltaCents int64) (int64, error)
	GetDelta(ctx context.Context, systemID uuid.UUID, commodity string) (int64, error)
}

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing market repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// ApplyDelta adds deltaCents to the ledger entry, creating it if needed, and
// returns the new accumulated value. The increment happens inside the upsert
// so two concurrent writers both land.
func (r *Repository) ApplyDelta(ctx context.Context, systemID uuid.UUID, commodity string, deltaCents int64) (int64, error) {
	logger := r.logger.With(
		"component", "market_repository",
		"operation", "apply_delta",
		"system_id", systemID,
		"commodity", commodity,
		"delta_cents", deltaCents,
	)
	logger.Debug("Applying price delta")

	query := `
		INSERT INTO price_deltas (system_id, commodity, delta_cents)
		VALUES ($1, $2, $3)
		ON CONFLICT (system_id, commodity)
		DO UPDATE SET delta_cents = price_deltas.delta_cents + EXCLUDED.delta_cents,
		              updated_at = NOW()
		RETURNING delta_cents
	`

	var total int64
	if err := r.db.QueryRowContext(ctx, query, systemID, commodity, deltaCents).Scan(&total); err != nil {
		logger.Error("Failed to apply price delta", "error", err)
		return 0, fmt.Errorf("failed to apply price delta: %w", err)
	}

	logger.Debug("Price delta applied", "total_cents", total)
	return total, nil
}

// GetDelta returns the accumulated delta for a (system, commodity) pair.
// Pairs never written return zero.
func (r *Repository) GetDelta(ctx context.Context, systemID uuid.UUID, commodity string) (int64, error) {
	logger := r.logger.With("component", "market_repository", "operation", "get_delta", "system_id", systemID, "commodity", commodity)

	query := `
		SELECT delta_cents
		FROM price_deltas
		WHERE system_id = $1 AND commodity = $2
	`

	var total int64
	err := r.db.QueryRowContext(ctx, query, systemID, commodity).Scan(&total)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		logger.Error("Failed to read price delta", "error", err)
		return 0, fmt.Errorf("failed to read price delta: %w", err)
	}

	return total, nil
}

var _ LedgerStore = (*Repository)(nil)
