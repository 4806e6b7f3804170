// Package archetype holds the cross-cutting race and tier tables shared by
// the ship and building generators. Every race/tier combination is data, not
// behavior.
package archetype

type Race string

const (
	RaceTerran Race = "terran"
	RaceKryll  Race = "kryll"
	RaceVedari Race = "vedari"
	RaceMorvan Race = "morvan"
)

// Races lists every race in stable order.
var Races = []Race{RaceTerran, RaceKryll, RaceVedari, RaceMorvan}

var raceDisplayNames = map[Race]string{
	RaceTerran: "Terran",
	RaceKryll:  "Kryll",
	RaceVedari: "Vedari",
	RaceMorvan: "Morvan",
}

// Modifiers are the fixed multiplicative bonuses and penalties one race
// applies on top of tier scaling. They compose multiplicatively, never
// additively.
type Modifiers struct {
	Cost   float64
	Cargo  float64
	Hull   float64
	Speed  float64
	Output float64
}

var raceModifiers = map[Race]Modifiers{
	// Terran shipwrights undercut everyone on price.
	RaceTerran: {Cost: 0.95, Cargo: 1.0, Hull: 1.0, Speed: 1.0, Output: 1.0},
	// Kryll hulls are heavier and pricier.
	RaceKryll: {Cost: 1.05, Cargo: 1.0, Hull: 1.2, Speed: 0.95, Output: 1.0},
	// Vedari design around freight volume.
	RaceVedari: {Cost: 1.0, Cargo: 1.25, Hull: 0.95, Speed: 1.1, Output: 1.0},
	// Morvan industry squeezes more out of every facility.
	RaceMorvan: {Cost: 1.0, Cargo: 1.0, Hull: 0.9, Speed: 1.0, Output: 1.15},
}

// ModifiersFor returns the race's stat modifiers.
func ModifiersFor(race Race) (Modifiers, bool) {
	m, ok := raceModifiers[race]
	return m, ok
}

// DisplayName returns the human-readable race name.
func DisplayName(race Race) string {
	return raceDisplayNames[race]
}

// ValidRace reports whether the race exists.
func ValidRace(race Race) bool {
	_, ok := raceModifiers[race]
	return ok
}
