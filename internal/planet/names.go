package planet

import (
	"strings"

	"spacetrade-server/internal/seed"
)

var nameSyllables = []string{
	"al", "an", "ar", "bel", "cal", "cor", "dra", "el", "fen", "gal",
	"hel", "ith", "jor", "kel", "lan", "mar", "nor", "oph", "per", "quor",
	"ral", "sel", "tar", "umb", "vel", "wes", "xan", "yor", "zeph", "thal",
}

var planetNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

// synthesizeName builds a planet name from seeded syllables plus an
// index-keyed numeral. The numeral makes sibling planets distinct even on a
// syllable collision; output matches ^[\w\s\-]+$ and is never empty.
func synthesizeName(planetSeed seed.Seed, planetIndex int) string {
	rng := planetSeed.Child("name", 0).Stream()

	var b strings.Builder
	syllableCount := 2 + rng.IntN(2)
	for i := 0; i < syllableCount; i++ {
		syllable := nameSyllables[rng.IntN(len(nameSyllables))]
		if i == 0 {
			b.WriteString(strings.ToUpper(syllable[:1]))
			b.WriteString(syllable[1:])
		} else {
			b.WriteString(syllable)
		}
	}

	// Roughly one in six worlds carries a hyphenated designation.
	if rng.IntN(6) == 0 {
		b.WriteString("-")
		b.WriteString(strings.ToUpper(nameSyllables[rng.IntN(len(nameSyllables))]))
	}

	b.WriteString(" ")
	if planetIndex < len(planetNumerals) {
		b.WriteString(planetNumerals[planetIndex])
	} else {
		b.WriteString(string(rune('A' + planetIndex - len(planetNumerals))))
	}

	return b.String()
}
