package salondata

import (
	"hash/fnv"
	"math/rand"

	"github.com/jaswdr/faker/v2"
)

// NameSource fabricates plausible human names. Implementations must be
// deterministic under a fixed seed.
type NameSource interface {
	FirstName(g Gender) string
	LastName() string
}

// fakerNames adapts jaswdr/faker to the NameSource contract.
type fakerNames struct {
	person faker.Person
}

// NewFakerNames returns the default name fabricator. Two fabricators built
// with the same seed yield the same name sequence.
func NewFakerNames(seed int64) NameSource {
	f := faker.NewWithSeed(rand.NewSource(seed))
	return &fakerNames{person: f.Person()}
}

func (n *fakerNames) FirstName(g Gender) string {
	switch g {
	case GenderMale:
		return n.person.FirstNameMale()
	case GenderFemale:
		return n.person.FirstNameFemale()
	default:
		// The fabricator has no nonbinary name list; draw from the full pool.
		return n.person.FirstName()
	}
}

func (n *fakerNames) LastName() string {
	return n.person.LastName()
}

// SeedFromString folds an arbitrary text seed into an int64 via FNV-1a.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
