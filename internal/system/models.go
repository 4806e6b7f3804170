package system

import (
	"spacetrade-server/internal/catalog"
	"spacetrade-server/internal/planet"
)

type StarType string

const (
	StarTypeRedDwarf    StarType = "red_dwarf"
	StarTypeOrangeDwarf StarType = "orange_dwarf"
	StarTypeYellowDwarf StarType = "yellow_dwarf"
	StarTypeWhiteStar   StarType = "white_star"
	StarTypeBlueGiant   StarType = "blue_giant"
	StarTypeNeutronStar StarType = "neutron_star"
	StarTypeBlackHole   StarType = "black_hole"
)

// Coordinates locate a system on the galactic lattice.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// System is one generated star system. Once materialized it is a historical
// snapshot: generator changes never rewrite an existing record.
type System struct {
	Coordinates         Coordinates                  `json:"coordinates"`
	Name                string                       `json:"name"`
	StarType            StarType                     `json:"star_type"`
	HazardLevel         int                          `json:"hazard_level"`
	SafeZone            bool                         `json:"safe_zone"`
	Tutorial            bool                         `json:"tutorial"`
	PlanetCount         int                          `json:"planet_count"`
	Planets             []planet.Planet              `json:"planets"`
	MineralDistribution map[string]catalog.Abundance `json:"mineral_distribution"`
	BasePrices          map[string]int64             `json:"base_prices"`
}

// Abundance returns the supply signal for a commodity, defaulting to medium
// when the distribution does not mention it.
func (s *System) Abundance(commodity string) catalog.Abundance {
	if a, ok := s.MineralDistribution[commodity]; ok {
		return a
	}
	return catalog.AbundanceMedium
}
