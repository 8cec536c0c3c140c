package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceDeterminism(t *testing.T) {
	// Same decimal value must always map to the same key so it can be used
	// as a hash map key.
	values := []float64{0, 0.00001, 0.29, 4.4, 100, 123.456, 99999.99999}
	for _, v := range values {
		require.True(t, NewPrice(v).Equals(NewPrice(v)), "value %v", v)
	}

	index := map[Price]int{}
	index[NewPrice(4.4)] = 1
	index[NewPrice(4.4)]++
	require.Equal(t, 1, len(index))
	require.Equal(t, 2, index[NewPrice(4.4)])
}

func TestPriceOrdering(t *testing.T) {
	testCases := []struct {
		lower  float64
		higher float64
	}{
		{0, 0.5},
		{4.4, 4.5},
		{4.5, 5.4},
		{99, 100},
		{100.5, 200.25},
	}

	for _, tc := range testCases {
		lower, higher := NewPrice(tc.lower), NewPrice(tc.higher)
		require.True(t, lower.LessThan(higher), "%v < %v", tc.lower, tc.higher)
		require.True(t, higher.GreaterThan(lower), "%v > %v", tc.higher, tc.lower)
		require.Equal(t, -1, lower.Cmp(higher))
		require.Equal(t, 1, higher.Cmp(lower))
		require.Equal(t, 0, lower.Cmp(lower))
	}
}

func TestNewPriceFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := []struct {
			input      string
			integral   uint64
			fractional uint64
		}{
			{"0", 0, 0},
			{"4", 4, 0},
			{"4.4", 4, 40000},
			{"4.40000", 4, 40000},
			{"0.29", 0, 29000},
			{"123.456789", 123, 45678}, // digits beyond the scale are truncated
			{"100.00001", 100, 1},
		}

		for _, tc := range testCases {
			price, err := NewPriceFromString(tc.input)
			require.NoError(t, err, tc.input)
			require.Equal(t, tc.integral, price.integral, tc.input)
			require.Equal(t, tc.fractional, price.fractional, tc.input)
			require.Equal(t, PriceScale, price.scale, tc.input)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "-4.4", "4.-4", "abc", "4.4.4"} {
			_, err := NewPriceFromString(input)
			require.ErrorIs(t, err, ErrInvalidOrderPrice, input)
		}
	})

	t.Run("string and float forms agree", func(t *testing.T) {
		// Prices representable at the scale must land in the same bucket
		// whichever constructor built them.
		testCases := []struct {
			input string
			value float64
		}{
			{"0.29", 0.29},
			{"4.4", 4.4},
			{"0.00001", 0.00001},
			{"100.00001", 100.00001},
			{"200.25", 200.25},
			{"99999.99999", 99999.99999},
		}

		for _, tc := range testCases {
			fromString, err := NewPriceFromString(tc.input)
			require.NoError(t, err, tc.input)
			require.True(t, fromString.Equals(NewPrice(tc.value)), tc.input)
		}
	})
}

func TestPriceString(t *testing.T) {
	testCases := []struct {
		input  string
		expect string
	}{
		{"4", "4"},
		{"4.4", "4.4"},
		{"4.40", "4.4"},
		{"0.00001", "0.00001"},
		{"200.25", "200.25"},
	}

	for _, tc := range testCases {
		price, err := NewPriceFromString(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expect, price.String())
	}
}

func TestPriceFloat64(t *testing.T) {
	price, err := NewPriceFromString("200.25")
	require.NoError(t, err)
	require.InDelta(t, 200.25, price.Float64(), 1e-9)
}
