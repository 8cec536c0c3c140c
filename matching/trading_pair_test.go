package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTradingPair(t *testing.T) {
	pair := NewTradingPair("BTC", "USD")

	require.Equal(t, "BTC", pair.Base())
	require.Equal(t, "USD", pair.Quote())
	require.Equal(t, "BTC/USD", pair.String())
	require.True(t, pair.Valid())

	// Pairs compare by equality of both symbols
	require.Equal(t, pair, NewTradingPair("BTC", "USD"))
	require.NotEqual(t, pair, NewTradingPair("USD", "BTC"))
}

func TestTradingPairValid(t *testing.T) {
	require.False(t, NewTradingPair("", "USD").Valid())
	require.False(t, NewTradingPair("BTC", "").Valid())
	require.False(t, TradingPair{}.Valid())

	// The separator inside a symbol would make distinct pairs share one
	// market name ("A/B"+"C" vs "A"+"B/C")
	require.False(t, NewTradingPair("A/B", "C").Valid())
	require.False(t, NewTradingPair("A", "B/C").Valid())
	require.True(t, NewTradingPair("A", "C").Valid())
}
