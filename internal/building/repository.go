package building

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"spacetrade-server/internal/shared/database"
	sharederrors "spacetrade-server/internal/shared/errors"
)

// StructureStore persists placed structures. The Postgres repository is the
// production implementation; tests use the in-memory store.
type StructureStore interface {
	PlaceStructure(ctx context.Context, structure *Structure) error
	ListBySystem(ctx context.Context, systemID uuid.UUID) ([]Structure, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status StructureStatus) error
}

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing structure repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// PlaceStructure inserts a structure at the next build position for its
// system and fills in the generated ID, position, and timestamp.
func (r *Repository) PlaceStructure(ctx context.Context, structure *Structure) error {
	logger := r.logger.With(
		"component", "structure_repository",
		"operation", "place_structure",
		"system_id", structure.SystemID,
		"function", structure.Function,
		"tier", structure.Tier,
	)
	logger.Debug("Placing structure")

	query := `
		INSERT INTO structures (id, system_id, name, function, tier, status, specialization, inputs, outputs, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM structures WHERE system_id = $2))
		RETURNING position, created_at
	`

	structure.ID = uuid.New()
	if structure.Status == "" {
		structure.Status = StatusUnderConstruction
	}

	err := r.db.QueryRowContext(ctx, query,
		structure.ID,
		structure.SystemID,
		structure.Name,
		structure.Function,
		structure.Tier,
		structure.Status,
		structure.Specialization,
		pq.Array(structure.Inputs),
		pq.Array(structure.Outputs),
	).Scan(&structure.Position, &structure.CreatedAt)

	if err != nil {
		logger.Error("Failed to place structure", "error", err)
		return fmt.Errorf("failed to place structure: %w", err)
	}

	logger.Debug("Structure placed", "structure_id", structure.ID, "position", structure.Position)
	return nil
}

// ListBySystem returns every structure in a system in build order.
func (r *Repository) ListBySystem(ctx context.Context, systemID uuid.UUID) ([]Structure, error) {
	logger := r.logger.With("component", "structure_repository", "operation", "list_by_system", "system_id", systemID)
	logger.Debug("Listing structures")

	query := `
		SELECT id, system_id, name, function, tier, status, specialization, inputs, outputs, position, created_at
		FROM structures
		WHERE system_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, systemID)
	if err != nil {
		logger.Error("Failed to query structures", "error", err)
		return nil, fmt.Errorf("failed to query structures: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var structures []Structure
	for rows.Next() {
		var s Structure
		err := rows.Scan(
			&s.ID,
			&s.SystemID,
			&s.Name,
			&s.Function,
			&s.Tier,
			&s.Status,
			&s.Specialization,
			pq.Array(&s.Inputs),
			pq.Array(&s.Outputs),
			&s.Position,
			&s.CreatedAt,
		)
		if err != nil {
			logger.Error("Failed to scan structure row", "error", err)
			return nil, fmt.Errorf("failed to scan structure: %w", err)
		}
		structures = append(structures, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating structures: %w", err)
	}

	logger.Debug("Structures retrieved", "count", len(structures))
	return structures, nil
}

// UpdateStatus moves a structure through its lifecycle.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status StructureStatus) error {
	logger := r.logger.With("component", "structure_repository", "operation", "update_status", "structure_id", id, "status", status)
	logger.Debug("Updating structure status")

	result, err := r.db.ExecContext(ctx, `UPDATE structures SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		logger.Error("Failed to update structure status", "error", err)
		return fmt.Errorf("failed to update structure status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sharederrors.NotFoundf("structure %s not found", id)
	}

	return nil
}

var _ StructureStore = (*Repository)(nil)
