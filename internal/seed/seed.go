// Package seed derives deterministic generation seeds from coordinates and
// categorical keys. A seed is recomputed on demand and never stored; the same
// key always derives the same seed, on any host, in any process.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Seed is a compact deterministic generation seed.
type Seed uint64

// Derive hashes the key parts into a seed. Parts are joined with a separator
// before hashing so that ("ab","c") and ("a","bc") derive different seeds.
func Derive(parts ...string) Seed {
	digest := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return Seed(binary.BigEndian.Uint64(digest[0:8]))
}

// FromCoordinates derives a system seed from a galaxy seed and world
// coordinates.
func FromCoordinates(galaxySeed string, x, y, z int) Seed {
	return Derive(galaxySeed, fmt.Sprintf("%d:%d:%d", x, y, z))
}

// Child derives a dependent seed, used when an entity needs its own stream
// (e.g. one planet of a system). The salt keeps sibling streams independent.
func (s Seed) Child(salt string, index int) Seed {
	return Derive(fmt.Sprintf("%d", uint64(s)), salt, fmt.Sprintf("%d", index))
}

// Stream returns a PCG random stream for this seed. The stream is a local
// value: concurrent generation calls never share state.
func (s Seed) Stream() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(s), uint64(s)>>16|7))
}
