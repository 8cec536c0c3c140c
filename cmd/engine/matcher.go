package main

import (
	"github.com/rs/zerolog"

	"github.com/quantex-io/matchbook/matching"
)

var _ matching.Handler = &Matcher{}

// Matcher logs order book events and keeps execution statistics.
type Matcher struct {
	log zerolog.Logger

	executions     int
	executedVolume matching.Uint
}

func NewMatcher(log zerolog.Logger) *Matcher {
	return &Matcher{log: log}
}

func (m *Matcher) OnAddOrderBook(orderBook *matching.OrderBook) {
	m.log.Info().
		Stringer("pair", orderBook.Pair()).
		Msg("added new market")
}

func (m *Matcher) OnAddPriceLevel(orderBook *matching.OrderBook, level *matching.PriceLevel) {
	m.log.Debug().
		Stringer("pair", orderBook.Pair()).
		Stringer("price", level.Price()).
		Msg("added price level")
}

func (m *Matcher) OnAddOrder(orderBook *matching.OrderBook, order *matching.Order) {
	m.log.Debug().
		Stringer("pair", orderBook.Pair()).
		Stringer("side", order.Side()).
		Str("quantity", order.Quantity().ToFloatString()).
		Msg("added limit order")
}

func (m *Matcher) OnExecuteOrder(orderBook *matching.OrderBook, price matching.Price, order *matching.Order, quantity matching.Uint) {
	m.executions++
	m.executedVolume = m.executedVolume.Add(quantity)

	m.log.Info().
		Stringer("pair", orderBook.Pair()).
		Stringer("price", price).
		Stringer("side", order.Side()).
		Str("quantity", quantity.ToFloatString()).
		Str("rest", order.RestQuantity().ToFloatString()).
		Msg("executed order")
}

// LogStatistics reports totals collected over the session.
func (m *Matcher) LogStatistics() {
	m.log.Info().
		Int("executions", m.executions).
		Str("executed_volume", m.executedVolume.ToFloatString()).
		Msg("session statistics")
}
