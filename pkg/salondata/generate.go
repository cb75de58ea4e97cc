package salondata

import "math/rand"

// Build generates the customer pool and order sequence for one run. One seed
// drives every draw, so identical seed and specs reproduce the same dataset.
func Build(cspec CustomerSpec, ospec OrderSpec, seed int64) ([]Customer, []Order, error) {
	if err := cspec.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ospec.Validate(); err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	names := NewFakerNames(seed)

	customers, err := BuildCustomers(cspec, names, rng)
	if err != nil {
		return nil, nil, err
	}

	orders, err := BuildOrders(ospec, CustomerNames(customers), rng)
	if err != nil {
		return nil, nil, err
	}
	return customers, orders, nil
}

// Generate runs the full pipeline and returns the flat data string.
func Generate(cspec CustomerSpec, ospec OrderSpec, seed int64) (string, error) {
	customers, orders, err := Build(cspec, ospec, seed)
	if err != nil {
		return "", err
	}
	return Serialize(orders, customers)
}

// CustomerNames extracts the pool names in pool order.
func CustomerNames(customers []Customer) []string {
	names := make([]string, len(customers))
	for i, c := range customers {
		names[i] = c.Name
	}
	return names
}
