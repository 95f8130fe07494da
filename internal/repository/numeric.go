package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Numeric columns are selected as ::text and written as strings so no
// precision is lost on the way through float64.

func ParseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return d, nil
}

func ParseNullDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}

	d, err := ParseDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func DecimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
