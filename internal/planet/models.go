package planet

import (
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/mineral"
)

// Planet is one generated planet. It only has meaning inside its system and
// is identified by (system seed, planet index).
type Planet struct {
	Name     string             `json:"name"`
	Type     catalog.PlanetType `json:"type"`
	Size     int                `json:"size"`
	Minerals []mineral.Deposit  `json:"minerals"`
	Plants   []string           `json:"plants"`
}
