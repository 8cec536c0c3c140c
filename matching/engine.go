package matching

import (
	"fmt"

	"github.com/tidwall/hashmap"
)

// Engine is used to manage markets and route order placement requests to the
// order book registered for a trading pair.
// NOTE: Not thread-safe: every operation runs to completion on the caller's
// goroutine and mutation must be serialized by the caller. Books of distinct
// engines are fully independent.
type Engine struct {
	handler Handler

	// Order books indexed by trading pair
	orderBooks *hashmap.Map[string, *OrderBook]
}

// NewEngine creates and returns new Engine instance.
// A nil handler disables event reporting.
func NewEngine(handler Handler) *Engine {
	if handler == nil {
		handler = NopHandler{}
	}
	return &Engine{
		handler:    handler,
		orderBooks: hashmap.New[string, *OrderBook](defaultReservedOrderBookSlots),
	}
}

// AddMarket creates new empty order book for the pair and registers it with
// the engine. Registration is create-or-replace: a repeated registration
// silently replaces the existing book together with all its resting orders.
func (e *Engine) AddMarket(pair TradingPair) (*OrderBook, error) {
	if !pair.Valid() {
		return nil, ErrInvalidTradingPair
	}

	orderBook := NewOrderBookWithHandler(pair, e.handler)
	e.orderBooks.Set(pair.String(), orderBook)

	e.handler.OnAddOrderBook(orderBook)

	return orderBook, nil
}

// OrderBook returns the order book registered for the pair or nil.
func (e *Engine) OrderBook(pair TradingPair) *OrderBook {
	orderBook, _ := e.orderBooks.Get(pair.String())
	return orderBook
}

// OrderBooks returns total amount of currently registered order books.
func (e *Engine) OrderBooks() int {
	return e.orderBooks.Len()
}

// PlaceLimitOrder rests the order at the given price in the order book
// registered for the pair. Placing against an unregistered pair fails with
// ErrOrderBookNotFound naming the pair and mutates nothing.
func (e *Engine) PlaceLimitOrder(pair TradingPair, price Price, order *Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	orderBook := e.OrderBook(pair)
	if orderBook == nil {
		return fmt.Errorf("%w: %s", ErrOrderBookNotFound, pair)
	}

	orderBook.AddLimitOrder(price, order)
	return nil
}

// PlaceMarketOrder executes the order against resting liquidity of the order
// book registered for the pair. The order may come back partially filled or
// unfilled; callers needing to detect the remainder check order.IsFilled().
func (e *Engine) PlaceMarketOrder(pair TradingPair, order *Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	orderBook := e.OrderBook(pair)
	if orderBook == nil {
		return fmt.Errorf("%w: %s", ErrOrderBookNotFound, pair)
	}

	orderBook.FillMarketOrder(order)
	return nil
}
