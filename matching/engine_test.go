package matching_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	matching "github.com/quantex-io/matchbook/matching"
	mockmatching "github.com/quantex-io/matchbook/matching/mocks"
)

func TestEngineAddMarket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("register market", func(t *testing.T) {
		handler := mockmatching.NewMockHandler(ctrl)
		handler.EXPECT().OnAddOrderBook(gomock.Any())

		engine := matching.NewEngine(handler)

		orderBook, err := engine.AddMarket(btcusd())
		require.NoError(t, err)
		require.NotNil(t, orderBook)
		require.Equal(t, 1, engine.OrderBooks())
		require.Same(t, orderBook, engine.OrderBook(btcusd()))
	})

	t.Run("invalid pair", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(matching.NewTradingPair("BTC", ""))
		require.ErrorIs(t, err, matching.ErrInvalidTradingPair)
		require.Equal(t, 0, engine.OrderBooks())
	})

	t.Run("reregistration discards resting orders", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(100),
			matching.NewOrder(matching.OrderSideSell, matching.NewUint(10)))
		require.NoError(t, err)

		// Registration is create-or-replace: the second call silently
		// installs a fresh book and the resting order is gone.
		fresh, err := engine.AddMarket(btcusd())
		require.NoError(t, err)
		require.Equal(t, 1, engine.OrderBooks())
		require.Same(t, fresh, engine.OrderBook(btcusd()))
		require.Equal(t, 0, fresh.Asks())

		incoming := matching.NewOrder(matching.OrderSideBuy, matching.NewUint(10))
		require.NoError(t, engine.PlaceMarketOrder(btcusd(), incoming))
		require.False(t, incoming.IsFilled())
	})
}

func TestEnginePlaceLimitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("routes to registered book", func(t *testing.T) {
		handler := mockmatching.NewMockHandler(ctrl)
		handler.EXPECT().OnAddOrderBook(gomock.Any())
		handler.EXPECT().OnAddPriceLevel(gomock.Any(), gomock.Any())
		handler.EXPECT().OnAddOrder(gomock.Any(), gomock.Any())

		engine := matching.NewEngine(handler)

		orderBook, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(10),
			matching.NewOrder(matching.OrderSideBuy, matching.NewUint(100)))
		require.NoError(t, err)

		require.Equal(t, 1, orderBook.Bids())
	})

	t.Run("unregistered market", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		ethPair := matching.NewTradingPair("ETH", "USD")
		err = engine.PlaceLimitOrder(ethPair, matching.NewPrice(10),
			matching.NewOrder(matching.OrderSideBuy, matching.NewUint(100)))

		// The failure names the unresolved pair and nothing is created
		require.ErrorIs(t, err, matching.ErrOrderBookNotFound)
		require.Contains(t, err.Error(), "ETH/USD")
		require.Equal(t, 1, engine.OrderBooks())
		require.Nil(t, engine.OrderBook(ethPair))
		require.Equal(t, 0, engine.OrderBook(btcusd()).Bids())
		require.Equal(t, 0, engine.OrderBook(btcusd()).Asks())
	})

	t.Run("invalid order", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(10),
			matching.NewOrder(matching.OrderSide(42), matching.NewUint(100)))
		require.ErrorIs(t, err, matching.ErrInvalidOrderSide)

		err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(10),
			matching.NewOrder(matching.OrderSideBuy, matching.NewZeroUint()))
		require.ErrorIs(t, err, matching.ErrInvalidOrderQuantity)
	})

	t.Run("nil order", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		// A nil order is rejected at the boundary, not dereferenced
		err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(10), nil)
		require.ErrorIs(t, err, matching.ErrInvalidOrder)

		err = engine.PlaceMarketOrder(btcusd(), nil)
		require.ErrorIs(t, err, matching.ErrInvalidOrder)
	})
}

func TestEnginePlaceMarketOrder(t *testing.T) {
	t.Run("executes against resting liquidity", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		_, err := engine.AddMarket(btcusd())
		require.NoError(t, err)

		for _, price := range []float64{100, 200, 300, 500} {
			err = engine.PlaceLimitOrder(btcusd(), matching.NewPrice(price),
				matching.NewOrder(matching.OrderSideSell, matching.NewUint(10)))
			require.NoError(t, err)
		}

		incoming := matching.NewOrder(matching.OrderSideBuy, matching.NewUint(25))
		require.NoError(t, engine.PlaceMarketOrder(btcusd(), incoming))
		require.True(t, incoming.IsFilled())
	})

	t.Run("unregistered market", func(t *testing.T) {
		engine := matching.NewEngine(nil)

		incoming := matching.NewOrder(matching.OrderSideBuy, matching.NewUint(25))
		err := engine.PlaceMarketOrder(btcusd(), incoming)
		require.ErrorIs(t, err, matching.ErrOrderBookNotFound)
		require.Contains(t, err.Error(), "BTC/USD")
		require.True(t, incoming.RestQuantity().Equals(matching.NewUint(25)))
	})
}
