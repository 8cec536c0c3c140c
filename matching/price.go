package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// PriceScale is the fixed denominator of the fractional part of a Price,
	// so prices carry priceComma decimal places.
	PriceScale uint64 = 100_000

	// priceComma is the amount of zeros in PriceScale.
	priceComma = 5
)

// Price is a deterministic fixed point key of a price level.
// Splitting a decimal price into integral and fractional parts under one fixed
// scale guarantees that equal economic prices always produce the same key
// despite binary floating point rounding, so Price is usable as a hash map key.
// The scale is constant process-wide; comparing keys built with different
// scales is not defined.
type Price struct {
	integral   uint64
	fractional uint64
	scale      uint64
}

// NewPrice creates a price key from a decimal value. The fractional remainder
// is scaled to PriceScale and rounded to the nearest step, so any value exactly
// representable at the scale produces the same key as its decimal string form.
// The value must be non-negative, which is a caller contract and is not
// validated here.
func NewPrice(value float64) Price {
	integral := uint64(value)
	fractional := uint64(math.Round((value - float64(integral)) * float64(PriceScale)))
	if fractional >= PriceScale {
		integral++
		fractional -= PriceScale
	}
	return Price{
		integral:   integral,
		fractional: fractional,
		scale:      PriceScale,
	}
}

// NewPriceFromString creates a price key from its exact decimal form,
// avoiding any float rounding on the way in.
// Digits beyond the price scale are truncated.
func NewPriceFromString(s string) (Price, error) {
	if strings.Count(s, ".") > 1 {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidOrderPrice, s)
	}

	integerPart, decimalPart := takePartsFromFloat(s)

	integral, err := strconv.ParseUint(integerPart, 10, 64)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidOrderPrice, s)
	}

	if len(decimalPart) > priceComma {
		decimalPart = decimalPart[:priceComma]
	}

	var fractional uint64
	if decimalPart != "" {
		fractional, err = strconv.ParseUint(decimalPart, 10, 64)
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidOrderPrice, s)
		}
		for i := len(decimalPart); i < priceComma; i++ {
			fractional *= 10
		}
	}

	return Price{
		integral:   integral,
		fractional: fractional,
		scale:      PriceScale,
	}, nil
}

// Cmp compares two price keys, integral part first.
func (p Price) Cmp(other Price) int {
	switch {
	case p.integral < other.integral:
		return -1
	case p.integral > other.integral:
		return 1
	case p.fractional < other.fractional:
		return -1
	case p.fractional > other.fractional:
		return 1
	default:
		return 0
	}
}

// Equals returns true if both keys carry the same integral part,
// fractional part and scale.
func (p Price) Equals(other Price) bool {
	return p == other
}

func (p Price) LessThan(other Price) bool {
	return p.Cmp(other) < 0
}

func (p Price) GreaterThan(other Price) bool {
	return p.Cmp(other) > 0
}

// Float64 returns the approximate decimal value of the price key.
func (p Price) Float64() float64 {
	return float64(p.integral) + float64(p.fractional)/float64(p.scale)
}

func (p Price) String() string {
	if p.fractional == 0 {
		return strconv.FormatUint(p.integral, 10)
	}

	fractionalStr := strconv.FormatUint(p.fractional, 10)
	for len(fractionalStr) < priceComma {
		fractionalStr = "0" + fractionalStr
	}
	fractionalStr = strings.TrimRight(fractionalStr, "0")

	return fmt.Sprintf("%d.%s", p.integral, fractionalStr)
}
