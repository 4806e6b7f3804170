package galaxy

import (
	"time"

	"github.com/google/uuid"

	"spacetrade-server/internal/system"
)

// StoredSystem is a materialized star system: the generated record frozen at
// discovery time plus its persistent identity. The snapshot is never
// regenerated; generator changes only affect systems discovered afterwards.
type StoredSystem struct {
	ID          uuid.UUID          `json:"id"`
	Coordinates system.Coordinates `json:"coordinates"`
	Record      system.System      `json:"record"`
	CreatedAt   time.Time          `json:"created_at"`
}
