// Package money represents monetary values as integer centavos. Prices
// arrive from the catalog and from stored carts as locale-formatted
// strings ("R$ 299,90"); parsing and formatting happen only at the
// boundary, all arithmetic runs on Amount.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Amount is a value in centavos (hundredths of a real).
type Amount int64

// FromReais converts a decimal value in reais to centavos, rounding
// half away from zero.
func FromReais(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// Reais returns the amount as a decimal value in reais.
func (a Amount) Reais() float64 {
	return float64(a) / 100
}

// Mul returns the amount multiplied by a quantity.
func (a Amount) Mul(qty int64) Amount {
	return a * Amount(qty)
}

// ParseBRL parses a Brazilian-formatted price string such as
// "R$ 299,90", "R$ 1.234,56" or "150". The "R$" prefix is optional,
// "." is accepted as a thousands separator and "," as the decimal
// separator.
func ParseBRL(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	neg := false
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if i := strings.LastIndex(raw, ","); i >= 0 {
		intPart, fracPart = raw[:i], raw[i+1:]
	}
	intPart = strings.ReplaceAll(intPart, ".", "")

	if intPart == "" {
		intPart = "0"
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var cents int64
	switch len(fracPart) {
	case 0:
		// no decimal part
	case 1:
		d, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		cents = d * 10
	case 2:
		d, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		cents = d
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	total := whole*100 + cents
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// FormatBRL renders the amount as "R$ 123,45".
func (a Amount) FormatBRL() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, v/100, v%100)
}

func (a Amount) String() string {
	return a.FormatBRL()
}
