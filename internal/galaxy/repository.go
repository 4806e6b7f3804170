package galaxy

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"spacetrade-server/internal/shared/database"
)

// SystemStore persists materialized systems. Create is idempotent per
// coordinate triple: the first caller wins, later callers get the original
// record back unchanged.
type SystemStore interface {
	Create(ctx context.Context, stored *StoredSystem) (*StoredSystem, error)
	GetByCoordinates(ctx context.Context, x, y, z int) (*StoredSystem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*StoredSystem, error)
}

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing galaxy repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a materialized system, yielding to any concurrent first
// discoverer. The snapshot column stores the full generated record.
func (r *Repository) Create(ctx context.Context, stored *StoredSystem) (*StoredSystem, error) {
	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "create_system",
		"x", stored.Coordinates.X,
		"y", stored.Coordinates.Y,
		"z", stored.Coordinates.Z,
	)
	logger.Debug("Materializing system")

	snapshot, err := json.Marshal(stored.Record)
	if err != nil {
		logger.Error("Failed to marshal system snapshot", "error", err)
		return nil, fmt.Errorf("failed to marshal system snapshot: %w", err)
	}

	query := `
		INSERT INTO systems (id, x, y, z, name, snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (x, y, z) DO NOTHING
		RETURNING id, created_at
	`

	stored.ID = uuid.New()
	err = r.db.QueryRowContext(ctx, query,
		stored.ID,
		stored.Coordinates.X,
		stored.Coordinates.Y,
		stored.Coordinates.Z,
		stored.Record.Name,
		snapshot,
	).Scan(&stored.ID, &stored.CreatedAt)

	if err == sql.ErrNoRows {
		// Someone materialized these coordinates first; return their record.
		logger.Debug("System already materialized, fetching existing record")
		return r.GetByCoordinates(ctx, stored.Coordinates.X, stored.Coordinates.Y, stored.Coordinates.Z)
	}
	if err != nil {
		logger.Error("Failed to materialize system", "error", err)
		return nil, fmt.Errorf("failed to materialize system: %w", err)
	}

	logger.Info("System materialized", "system_id", stored.ID, "name", stored.Record.Name)
	return stored, nil
}

// GetByCoordinates returns the materialized system at (x, y, z), or nil when
// none has been discovered there.
func (r *Repository) GetByCoordinates(ctx context.Context, x, y, z int) (*StoredSystem, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_by_coordinates", "x", x, "y", y, "z", z)
	logger.Debug("Getting system by coordinates")

	query := `
		SELECT id, x, y, z, snapshot, created_at
		FROM systems
		WHERE x = $1 AND y = $2 AND z = $3
	`

	return r.scanSystem(logger, r.db.QueryRowContext(ctx, query, x, y, z))
}

// GetByID returns a materialized system by identifier, or nil when unknown.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*StoredSystem, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_by_id", "system_id", id)
	logger.Debug("Getting system by ID")

	query := `
		SELECT id, x, y, z, snapshot, created_at
		FROM systems
		WHERE id = $1
	`

	return r.scanSystem(logger, r.db.QueryRowContext(ctx, query, id))
}

func (r *Repository) scanSystem(logger *slog.Logger, row *sql.Row) (*StoredSystem, error) {
	var stored StoredSystem
	var snapshot []byte

	err := row.Scan(
		&stored.ID,
		&stored.Coordinates.X,
		&stored.Coordinates.Y,
		&stored.Coordinates.Z,
		&snapshot,
		&stored.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("System not found")
			return nil, nil
		}
		logger.Error("Database error getting system", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := json.Unmarshal(snapshot, &stored.Record); err != nil {
		logger.Error("Failed to unmarshal system snapshot", "error", err)
		return nil, fmt.Errorf("failed to unmarshal system snapshot: %w", err)
	}

	logger.Debug("System retrieved", "system_id", stored.ID, "name", stored.Record.Name)
	return &stored, nil
}

var _ SystemStore = (*Repository)(nil)
