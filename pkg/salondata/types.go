// Package salondata fabricates a deterministic dataset of hairdresser
// customer visits: a deduplicated customer pool, a daily order sequence, and
// a flat string encoding of the two joined together.
package salondata

import "time"

// Gender is the single-letter gender marker carried by every customer.
type Gender string

const (
	GenderMale      Gender = "M"
	GenderFemale    Gender = "F"
	GenderNonBinary Gender = "X"
)

// Genders lists the markers a customer can be assigned, in draw order.
var Genders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

// Customer is one entry in the generated pool. Name may carry a leading or
// trailing space on purpose, see CustomerSpec.WhitespaceProb.
type Customer struct {
	Name   string
	Age    int
	Gender Gender
}

// Hairstyle pairs a style with its fixed price in euros.
type Hairstyle struct {
	Name  string
	Price int
}

// Hairstyles is the catalog used when OrderSpec.Catalog is left nil.
var Hairstyles = []Hairstyle{
	{"Afro", 47},
	{"Bald", 20},
	{"Braided", 42},
	{"Buzz", 50},
	{"Crew", 37},
	{"DipDyed", 35},
	{"Mohawk", 40},
	{"Pompadour", 38},
	{"Undercut", 45},
	{"Wavy", 33},
}

// Order is a single visit: a customer got a hairstyle on a date.
type Order struct {
	Name      string
	Date      time.Time
	Hairstyle string
	Price     int
}

// Record is the serialization unit, an order joined to its customer.
type Record struct {
	Name      string
	Age       int
	Gender    Gender
	Date      time.Time
	Hairstyle string
	Price     int
}

// DateLayout is how the flat format renders order dates,
// e.g. "Monday 01 January 2024".
const DateLayout = "Monday 02 January 2006"

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
