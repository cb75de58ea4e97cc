package salondata

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// BuildOrders generates spec.OrdersPerDay orders for every date from Start to
// End inclusive, never repeating a customer within one day. The result is
// sorted by (date, name).
//
// Per order the hairstyle is drawn before the customer; like the customer
// builder, the draw order is part of the reproducibility contract.
func BuildOrders(spec OrderSpec, names []string, rng *rand.Rand) ([]Order, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(names) < spec.OrdersPerDay {
		return nil, fmt.Errorf("%w: need at least %d, got %d",
			ErrTooFewCustomers, spec.OrdersPerDay, len(names))
	}

	catalog := spec.catalog()
	orders := make([]Order, 0, spec.OrdersPerDay)

	for day := spec.Start; !day.After(spec.End); day = day.AddDate(0, 0, 1) {
		// Shrinking candidate pool guarantees no repeat customer per day.
		candidates := append([]string(nil), names...)
		for i := 0; i < spec.OrdersPerDay; i++ {
			style := catalog[rng.Intn(len(catalog))]
			pick := rng.Intn(len(candidates))
			name := candidates[pick]
			candidates = append(candidates[:pick], candidates[pick+1:]...)

			orders = append(orders, Order{
				Name:      name,
				Date:      day,
				Hairstyle: style.Name,
				Price:     style.Price,
			})
		}
	}

	deduped := dedupOrders(orders)
	if len(deduped) != len(orders) {
		log.Warningf("duplicate (customer, date) orders survived generation, dropped %d",
			len(orders)-len(deduped))
	}

	sort.Slice(deduped, func(i, j int) bool {
		if !deduped[i].Date.Equal(deduped[j].Date) {
			return deduped[i].Date.Before(deduped[j].Date)
		}
		return deduped[i].Name < deduped[j].Name
	})

	return deduped, nil
}

// dedupOrders keeps the first order per (name, date) pair. Structurally
// unreachable given the per-day candidate removal, but guarded anyway.
func dedupOrders(orders []Order) []Order {
	type key struct {
		name string
		date time.Time
	}
	seen := make(map[key]struct{}, len(orders))
	out := orders[:0]
	for _, o := range orders {
		k := key{o.Name, o.Date}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, o)
	}
	return out
}
