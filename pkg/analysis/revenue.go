package analysis

import (
	"sort"
	"time"

	"pkg.jsn.cam/salondata/pkg/salondata"
)

// Age band cutoffs for the pricing simulations: juniors are under 18,
// seniors over 65, everyone between is working class.
const (
	juniorBelowAge = 18
	seniorAboveAge = 65
)

// TotalRevenue sums every order price.
func TotalRevenue(records []salondata.Record) int {
	total := 0
	for _, r := range records {
		total += r.Price
	}
	return total
}

// MonthRevenue sums prices of orders within one calendar month.
func MonthRevenue(records []salondata.Record, month time.Month, year int) int {
	total := 0
	for _, r := range records {
		if r.Date.Month() == month && r.Date.Year() == year {
			total += r.Price
		}
	}
	return total
}

// WeekdayRevenue buckets revenue by day of week.
func WeekdayRevenue(records []salondata.Record) map[time.Weekday]int {
	buckets := make(map[time.Weekday]int)
	for _, r := range records {
		buckets[r.Date.Weekday()] += r.Price
	}
	return buckets
}

// GenderStats accumulates revenue and order count for one gender.
type GenderStats struct {
	Revenue int
	Orders  int
}

// Average is the mean order price for the gender, zero when no orders.
func (s GenderStats) Average() float64 {
	if s.Orders == 0 {
		return 0
	}
	return float64(s.Revenue) / float64(s.Orders)
}

// GenderBreakdown accumulates per-gender revenue and counts in one pass.
func GenderBreakdown(records []salondata.Record) map[salondata.Gender]GenderStats {
	stats := make(map[salondata.Gender]GenderStats)
	for _, r := range records {
		s := stats[r.Gender]
		s.Revenue += r.Price
		s.Orders++
		stats[r.Gender] = s
	}
	return stats
}

// UniqueCustomers returns the distinct customer names, sorted.
func UniqueCustomers(records []salondata.Record) []string {
	seen := make(map[string]struct{}, len(records))
	var names []string
	for _, r := range records {
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// CatalogAveragePrice is the mean price across the hairstyle catalog.
func CatalogAveragePrice(catalog []salondata.Hairstyle) float64 {
	if len(catalog) == 0 {
		return 0
	}
	total := 0
	for _, h := range catalog {
		total += h.Price
	}
	return float64(total) / float64(len(catalog))
}

// ScaledRevenue applies one scaling factor to every order and returns the
// new total. A factor of 1.05 models a 5% price increase across the board.
func ScaledRevenue(records []salondata.Record, factor float64) float64 {
	var total float64
	for _, r := range records {
		total += float64(r.Price) * factor
	}
	return total
}

// PricingPolicy describes an age-banded repricing: an inflation uplift on the
// working class and optional discounts for juniors and seniors. Hairstyles in
// JuniorExempt are excluded from the junior discount; exempt juniors pay the
// inflated price like the working class.
type PricingPolicy struct {
	Inflation      float64
	JuniorDiscount float64
	SeniorDiscount float64
	JuniorExempt   map[string]bool
}

// SimulatedRevenue reprices every order under the policy and returns the new
// total. Input records are not modified.
func SimulatedRevenue(records []salondata.Record, p PricingPolicy) float64 {
	var total float64
	for _, r := range records {
		price := float64(r.Price)
		switch {
		case r.Age < juniorBelowAge && !p.JuniorExempt[r.Hairstyle]:
			price *= 1 - p.JuniorDiscount
		case r.Age > seniorAboveAge:
			price *= 1 - p.SeniorDiscount
		default:
			price *= 1 + p.Inflation
		}
		total += price
	}
	return total
}

// FirstToReach walks the orders in sequence and returns the customer whose
// order pushes cumulative revenue to the target.
func FirstToReach(records []salondata.Record, target float64) (string, bool) {
	var total float64
	for _, r := range records {
		total += float64(r.Price)
		if total >= target {
			return r.Name, true
		}
	}
	return "", false
}
