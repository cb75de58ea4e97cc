package salondata

import (
	"math/rand"
	"sort"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("salondata")

// BuildCustomers generates the deduplicated customer pool, sorted by name.
//
// A draw whose full name already exists in the pool is skipped, not retried,
// so the returned pool may be smaller than spec.Count. The per-customer draw
// order is fixed (gender, age, first name, last name, corruption) and skipped
// draws consume no corruption value; reproducing a reference dataset from a
// shared seed depends on both.
func BuildCustomers(spec CustomerSpec, names NameSource, rng *rand.Rand) ([]Customer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, spec.Count)
	pool := make([]Customer, 0, spec.Count)

	for i := 0; i < spec.Count; i++ {
		gender := Genders[rng.Intn(len(Genders))]
		age := spec.MinAge + rng.Intn(spec.MaxAge-spec.MinAge+1)
		full := names.FirstName(gender) + " " + names.LastName()

		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}

		// One draw gates both corruption modes, so a name is never padded on
		// both ends.
		switch r := rng.Float64(); {
		case r < spec.WhitespaceProb:
			full += " "
		case r < 2*spec.WhitespaceProb:
			full = " " + full
		}

		pool = append(pool, Customer{Name: full, Age: age, Gender: gender})
	}

	deduped := dedupCustomers(pool)
	if len(deduped) != len(pool) {
		log.Warningf("duplicate names survived generation, dropped %d", len(pool)-len(deduped))
	}

	sort.Slice(deduped, func(i, j int) bool { return deduped[i].Name < deduped[j].Name })

	log.Debugf("generated %d customers (%d requested)", len(deduped), spec.Count)
	return deduped, nil
}

// dedupCustomers keeps the first occurrence of each exact name string. The
// generation loop already guards against duplicates; this is the safety net.
func dedupCustomers(pool []Customer) []Customer {
	seen := make(map[string]struct{}, len(pool))
	out := pool[:0]
	for _, c := range pool {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return out
}
