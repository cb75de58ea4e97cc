package salondata

import (
	"fmt"
	"time"
)

// CustomerSpec configures the customer pool builder.
type CustomerSpec struct {
	Count  int
	MinAge int
	MaxAge int
	// WhitespaceProb is the chance that a generated name gets a trailing
	// space, and equally the chance it gets a leading space instead. The two
	// are mutually exclusive per customer.
	WhitespaceProb float64
}

// DefaultCustomerSpec returns a spec with the stock age bounds and corruption
// probability; only the count varies between runs.
func DefaultCustomerSpec(count int) CustomerSpec {
	return CustomerSpec{
		Count:          count,
		MinAge:         12,
		MaxAge:         80,
		WhitespaceProb: 0.05,
	}
}

// Validate reports the first configuration problem, if any.
func (s CustomerSpec) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("%w: got %d", ErrCustomerCount, s.Count)
	}
	if s.MinAge > s.MaxAge {
		return fmt.Errorf("%w: %d > %d", ErrAgeBounds, s.MinAge, s.MaxAge)
	}
	if s.WhitespaceProb < 0 || s.WhitespaceProb > 1 {
		return fmt.Errorf("%w: got %g", ErrWhitespaceProb, s.WhitespaceProb)
	}
	return nil
}

// OrderSpec configures the order sequence builder.
type OrderSpec struct {
	OrdersPerDay int
	Start        time.Time
	End          time.Time
	// Catalog defaults to Hairstyles when nil.
	Catalog []Hairstyle
}

// DefaultOrderSpec covers the first quarter of 2024 at five orders a day.
func DefaultOrderSpec() OrderSpec {
	return OrderSpec{
		OrdersPerDay: 5,
		Start:        Date(2024, time.January, 1),
		End:          Date(2024, time.March, 31),
	}
}

// Validate reports the first configuration problem, if any.
func (s OrderSpec) Validate() error {
	if s.OrdersPerDay <= 0 {
		return fmt.Errorf("%w: got %d", ErrOrdersPerDay, s.OrdersPerDay)
	}
	if s.Start.After(s.End) {
		return fmt.Errorf("%w: %s > %s",
			ErrDateBounds, s.Start.Format(time.DateOnly), s.End.Format(time.DateOnly))
	}
	if s.Catalog != nil && len(s.Catalog) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

func (s OrderSpec) catalog() []Hairstyle {
	if s.Catalog == nil {
		return Hairstyles
	}
	return s.Catalog
}
