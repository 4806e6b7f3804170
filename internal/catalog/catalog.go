// Package catalog loads the fixed commodity catalogue. The catalogue is a
// versioned data contract: every tradable mineral, its canonical base price,
// and which sampling pool it belongs to.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed commodities.yaml
var commoditiesYAML []byte

// TutorialMineral is guaranteed to appear in the origin hub's mineral
// distribution so the onboarding flow always has something to mine.
const TutorialMineral = "ferrite"

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityExotic   Rarity = "exotic"
)

type Pool string

const (
	PoolReal   Pool = "real"
	PoolExotic Pool = "exotic"
)

// Abundance is the system-level supply signal for one commodity.
type Abundance string

const (
	AbundanceHigh   Abundance = "high"
	AbundanceMedium Abundance = "medium"
	AbundanceLow    Abundance = "low"
)

type Commodity struct {
	Key            string `yaml:"key"`
	Name           string `yaml:"name"`
	Rarity         Rarity `yaml:"rarity"`
	Pool           Pool   `yaml:"pool"`
	BasePriceCents int64  `yaml:"base_price"`
}

// Catalogue is the immutable, loaded commodity table.
type Catalogue struct {
	ordered []Commodity
	byKey   map[string]Commodity
	real    []string
	exotic  []string
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
	defaultErr  error
)

// Default returns the embedded catalogue, loading it once. The embedded data
// ships with the binary, so a load failure is a build defect and panics.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = load(commoditiesYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded commodity catalogue is invalid: %v", defaultErr))
	}
	return defaultCat
}

func load(data []byte) (*Catalogue, error) {
	var doc struct {
		Commodities []Commodity `yaml:"commodities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse commodity catalogue: %w", err)
	}
	if len(doc.Commodities) == 0 {
		return nil, fmt.Errorf("commodity catalogue is empty")
	}

	cat := &Catalogue{
		ordered: doc.Commodities,
		byKey:   make(map[string]Commodity, len(doc.Commodities)),
	}

	for _, c := range doc.Commodities {
		if c.Key == "" || c.Name == "" {
			return nil, fmt.Errorf("commodity with empty key or name")
		}
		if c.BasePriceCents <= 0 {
			return nil, fmt.Errorf("commodity %q has non-positive base price", c.Key)
		}
		if _, exists := cat.byKey[c.Key]; exists {
			return nil, fmt.Errorf("duplicate commodity key %q", c.Key)
		}
		cat.byKey[c.Key] = c

		switch c.Pool {
		case PoolReal:
			cat.real = append(cat.real, c.Key)
		case PoolExotic:
			cat.exotic = append(cat.exotic, c.Key)
		default:
			return nil, fmt.Errorf("commodity %q has unknown pool %q", c.Key, c.Pool)
		}
	}

	if _, ok := cat.byKey[TutorialMineral]; !ok {
		return nil, fmt.Errorf("catalogue is missing the tutorial mineral %q", TutorialMineral)
	}

	return cat, nil
}

// Get returns the commodity for a key.
func (c *Catalogue) Get(key string) (Commodity, bool) {
	commodity, ok := c.byKey[key]
	return commodity, ok
}

// All returns every commodity in catalogue order.
func (c *Catalogue) All() []Commodity {
	out := make([]Commodity, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// RealMinerals returns the keys of the real sampling pool, in catalogue order.
func (c *Catalogue) RealMinerals() []string {
	out := make([]string, len(c.real))
	copy(out, c.real)
	return out
}

// ExoticMinerals returns the keys of the exotic sampling pool, in catalogue order.
func (c *Catalogue) ExoticMinerals() []string {
	out := make([]string, len(c.exotic))
	copy(out, c.exotic)
	return out
}

// Len returns the catalogue size.
func (c *Catalogue) Len() int {
	return len(c.ordered)
}
