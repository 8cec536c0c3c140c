package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUintFromFloatString(t *testing.T) {
	testCases := []struct {
		input  string
		expect Uint
	}{
		{"0", NewZeroUint()},
		{"1", NewUint(UintPrecision)},
		{"5.5", NewUint(UintPrecision).Mul64(5).Add(NewUint(UintPrecision / 2))},
		{"0.000000000001", NewUint(1)},
		{"2.4500", NewUint(UintPrecision / 100).Mul64(245)},
	}

	for _, tc := range testCases {
		u, err := NewUintFromFloatString(tc.input)
		require.NoError(t, err, tc.input)
		require.True(t, tc.expect.Equals(u), "input %s, want %s, have %s", tc.input, tc.expect, u)
	}

	_, err := NewUintFromFloatString("abc")
	require.Error(t, err)
}

func TestUintToFloatString(t *testing.T) {
	testCases := []struct {
		input  string
		expect string
	}{
		{"0", "0"},
		{"1", "1"},
		{"5.5", "5.5"},
		{"2.4500", "2.45"},
		{"0.000000000001", "0.000000000001"},
	}

	for _, tc := range testCases {
		u, err := NewUintFromFloatString(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expect, u.ToFloatString())
	}
}

func TestUintArithmetic(t *testing.T) {
	a, b := NewUint(100), NewUint(30)

	require.True(t, a.Add(b).Equals(NewUint(130)))
	require.True(t, a.Sub(b).Equals(NewUint(70)))
	require.True(t, b.Mul64(3).Equals(NewUint(90)))

	quo, rem := a.QuoRem(b)
	require.True(t, quo.Equals(NewUint(3)))
	require.True(t, rem.Equals(NewUint(10)))
}

func TestUintComparison(t *testing.T) {
	a, b := NewUint(1), NewUint(2)

	require.True(t, a.LessThan(b))
	require.True(t, b.GreaterThan(a))
	require.True(t, b.GreaterThanOrEqualTo(b))
	require.False(t, a.Equals(b))
	require.Equal(t, -1, a.Cmp(b))

	require.True(t, NewZeroUint().IsZero())
	require.False(t, a.IsZero())

	require.True(t, Min(a, b).Equals(a))
	require.True(t, Min(b, a).Equals(a))
}
