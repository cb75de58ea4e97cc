// Package analysis parses the flat salon dataset back into records and
// computes the revenue aggregates the dataset exists to answer.
package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pkg.jsn.cam/salondata/pkg/salondata"
)

// Sentinel errors for malformed dataset strings
var (
	ErrFieldCount = errors.New("record does not have six fields")
	ErrBadAge     = errors.New("age is not an integer")
	ErrBadGender  = errors.New("unknown gender marker")
	ErrBadDate    = errors.New("unparseable order date")
	ErrBadPrice   = errors.New("price is not an integer")
)

// Parse decodes a flat data string produced by the generator. Names are
// trimmed here: the generator corrupts them with whitespace on purpose, and
// the analysis layer is where that gets cleaned up. An empty input yields no
// records.
func Parse(data string) ([]salondata.Record, error) {
	if data == "" {
		return nil, nil
	}

	rows := strings.Split(data, ";")
	records := make([]salondata.Record, 0, len(rows))

	for i, row := range rows {
		fields := strings.Split(row, ",")
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: record %d has %d", ErrFieldCount, i, len(fields))
		}

		age, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %q", ErrBadAge, i, fields[1])
		}

		gender := salondata.Gender(fields[2])
		switch gender {
		case salondata.GenderMale, salondata.GenderFemale, salondata.GenderNonBinary:
		default:
			return nil, fmt.Errorf("%w: record %d: %q", ErrBadGender, i, fields[2])
		}

		date, err := time.Parse(salondata.DateLayout, fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %q", ErrBadDate, i, fields[3])
		}

		price, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %q", ErrBadPrice, i, fields[5])
		}

		records = append(records, salondata.Record{
			Name:      strings.TrimSpace(fields[0]),
			Age:       age,
			Gender:    gender,
			Date:      date,
			Hairstyle: fields[4],
			Price:     price,
		})
	}
	return records, nil
}
