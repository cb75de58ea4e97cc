package salondata

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Join resolves every order against the customer pool by exact name match.
// An order whose name is absent from the pool is a consistency error.
func Join(orders []Order, customers []Customer) ([]Record, error) {
	byName := make(map[string]Customer, len(customers))
	for _, c := range customers {
		byName[c.Name] = c
	}

	records := make([]Record, 0, len(orders))
	for _, o := range orders {
		c, ok := byName[o.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q on %s",
				ErrUnknownCustomer, o.Name, o.Date.Format(time.DateOnly))
		}
		records = append(records, Record{
			Name:      o.Name,
			Age:       c.Age,
			Gender:    c.Gender,
			Date:      o.Date,
			Hairstyle: o.Hairstyle,
			Price:     o.Price,
		})
	}
	return records, nil
}

// Serialize joins orders to customers and flattens the result into one
// string: fields separated by ',', records by ';', no trailing separator.
// Names are embedded verbatim, intentional whitespace included; the format
// has no escaping.
func Serialize(orders []Order, customers []Customer) (string, error) {
	records, err := Join(orders, customers)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(r.Name)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(r.Age))
		sb.WriteByte(',')
		sb.WriteString(string(r.Gender))
		sb.WriteByte(',')
		sb.WriteString(r.Date.Format(DateLayout))
		sb.WriteByte(',')
		sb.WriteString(r.Hairstyle)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(r.Price))
	}
	return sb.String(), nil
}
