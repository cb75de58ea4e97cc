package salondata

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
	"time"
)

func testPoolNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Customer%03d", i)
	}
	return names
}

func TestBuildOrdersValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("InvertedDates", func(t *testing.T) {
		spec := DefaultOrderSpec()
		spec.Start, spec.End = spec.End, spec.Start
		if _, err := BuildOrders(spec, testPoolNames(10), rng); !errors.Is(err, ErrDateBounds) {
			t.Errorf("err = %v, want ErrDateBounds", err)
		}
	})

	t.Run("ZeroOrdersPerDay", func(t *testing.T) {
		spec := DefaultOrderSpec()
		spec.OrdersPerDay = 0
		if _, err := BuildOrders(spec, testPoolNames(10), rng); !errors.Is(err, ErrOrdersPerDay) {
			t.Errorf("err = %v, want ErrOrdersPerDay", err)
		}
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		spec := DefaultOrderSpec()
		spec.Catalog = []Hairstyle{}
		if _, err := BuildOrders(spec, testPoolNames(10), rng); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("err = %v, want ErrEmptyCatalog", err)
		}
	})

	t.Run("TooFewCustomers", func(t *testing.T) {
		spec := DefaultOrderSpec()
		spec.OrdersPerDay = 5
		if _, err := BuildOrders(spec, testPoolNames(3), rng); !errors.Is(err, ErrTooFewCustomers) {
			t.Errorf("err = %v, want ErrTooFewCustomers", err)
		}
	})
}

func TestBuildOrdersDailyVolume(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	spec := OrderSpec{
		OrdersPerDay: 3,
		Start:        Date(2024, time.January, 1),
		End:          Date(2024, time.January, 5),
	}

	orders, err := BuildOrders(spec, testPoolNames(10), rng)
	if err != nil {
		t.Fatalf("BuildOrders failed: %v", err)
	}

	if len(orders) != 15 {
		t.Fatalf("got %d orders, want 15", len(orders))
	}

	perDay := make(map[time.Time]int)
	for _, o := range orders {
		perDay[o.Date]++
	}
	if len(perDay) != 5 {
		t.Errorf("orders span %d dates, want 5", len(perDay))
	}
	for date, n := range perDay {
		if n != 3 {
			t.Errorf("date %s has %d orders, want 3", date.Format(time.DateOnly), n)
		}
	}
}

func TestBuildOrdersNoRepeatCustomerPerDay(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	spec := OrderSpec{
		OrdersPerDay: 8,
		Start:        Date(2024, time.January, 1),
		End:          Date(2024, time.February, 15),
	}

	orders, err := BuildOrders(spec, testPoolNames(9), rng)
	if err != nil {
		t.Fatalf("BuildOrders failed: %v", err)
	}

	type key struct {
		name string
		date time.Time
	}
	seen := make(map[key]bool)
	for _, o := range orders {
		k := key{o.Name, o.Date}
		if seen[k] {
			t.Errorf("customer %q ordered twice on %s", o.Name, o.Date.Format(time.DateOnly))
		}
		seen[k] = true
	}
}

func TestBuildOrdersSingleDay(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	day := Date(2024, time.June, 15)
	spec := OrderSpec{OrdersPerDay: 4, Start: day, End: day}

	orders, err := BuildOrders(spec, testPoolNames(6), rng)
	if err != nil {
		t.Fatalf("BuildOrders failed: %v", err)
	}

	if len(orders) != 4 {
		t.Fatalf("got %d orders, want 4", len(orders))
	}
	for _, o := range orders {
		if !o.Date.Equal(day) {
			t.Errorf("order dated %s, want %s", o.Date.Format(time.DateOnly), day.Format(time.DateOnly))
		}
	}
}

func TestBuildOrdersSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	orders, err := BuildOrders(DefaultOrderSpec(), testPoolNames(20), rng)
	if err != nil {
		t.Fatalf("BuildOrders failed: %v", err)
	}

	sorted := sort.SliceIsSorted(orders, func(i, j int) bool {
		if !orders[i].Date.Equal(orders[j].Date) {
			return orders[i].Date.Before(orders[j].Date)
		}
		return orders[i].Name < orders[j].Name
	})
	if !sorted {
		t.Error("orders are not sorted by (date, name)")
	}
}

func TestBuildOrdersPricesMatchCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	orders, err := BuildOrders(DefaultOrderSpec(), testPoolNames(10), rng)
	if err != nil {
		t.Fatalf("BuildOrders failed: %v", err)
	}

	prices := make(map[string]int, len(Hairstyles))
	for _, h := range Hairstyles {
		prices[h.Name] = h.Price
	}
	for _, o := range orders {
		want, ok := prices[o.Hairstyle]
		if !ok {
			t.Errorf("order has unknown hairstyle %q", o.Hairstyle)
			continue
		}
		if o.Price != want {
			t.Errorf("hairstyle %q priced %d, want %d", o.Hairstyle, o.Price, want)
		}
	}
}

func TestBuildOrdersDeterministic(t *testing.T) {
	names := testPoolNames(25)

	first, err := BuildOrders(DefaultOrderSpec(), names, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := BuildOrders(DefaultOrderSpec(), names, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different order sequences")
	}
}
