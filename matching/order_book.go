package matching

import (
	"github.com/tidwall/hashmap"

	"github.com/quantex-io/matchbook/types/avl"
)

// OrderBook stores resting buy and sell orders of a single market grouped
// into price levels.
//
// Each side owns its own unordered index from price key to price level. The
// two sides are matched independently and never iterate each other except
// through a market order fill, so they stay separate collections and the
// "opposite side" selection stays an explicit branch. Ordering for matching
// is recomputed on demand: insertion is far more frequent than book-wide
// enumeration here, so the book trades a repeated sort for an O(1) insert
// path. Price levels are never deleted, an empty level simply yields nothing.
// NOTE: Not thread-safe.
type OrderBook struct {
	pair    TradingPair
	handler Handler

	// Bid/Ask price levels
	bids *hashmap.Map[Price, *PriceLevel]
	asks *hashmap.Map[Price, *PriceLevel]
}

// NewOrderBook creates and returns new OrderBook instance without event reporting.
func NewOrderBook(pair TradingPair) *OrderBook {
	return NewOrderBookWithHandler(pair, nil)
}

// NewOrderBookWithHandler creates and returns new OrderBook instance
// reporting order book events to the given handler.
func NewOrderBookWithHandler(pair TradingPair, handler Handler) *OrderBook {
	if handler == nil {
		handler = NopHandler{}
	}
	return &OrderBook{
		pair:    pair,
		handler: handler,
		bids:    hashmap.New[Price, *PriceLevel](defaultReservedPriceLevelSlots),
		asks:    hashmap.New[Price, *PriceLevel](defaultReservedPriceLevelSlots),
	}
}

// Pair returns the trading pair of the order book.
func (ob *OrderBook) Pair() TradingPair {
	return ob.pair
}

// Bids returns amount of bid price levels, empty ones included.
func (ob *OrderBook) Bids() int {
	return ob.bids.Len()
}

// Asks returns amount of ask price levels, empty ones included.
func (ob *OrderBook) Asks() int {
	return ob.asks.Len()
}

// AddLimitOrder rests the order at the given price on the side index matching
// the order's side, creating the price level on first use. O(1) amortized.
// The order's side must be valid, which is the caller's contract.
func (ob *OrderBook) AddLimitOrder(price Price, order *Order) {
	index := ob.sideIndex(order.side)

	level, ok := index.Get(price)
	if !ok {
		level = NewPriceLevel(price)
		index.Set(price, level)
		ob.handler.OnAddPriceLevel(ob, level)
	}

	level.AddOrder(order)
	ob.handler.OnAddOrder(ob, order)
}

// AskLimits returns all ask price levels sorted by price ascending,
// best (lowest) ask first. The sort is recomputed on every call.
func (ob *OrderBook) AskLimits() []*PriceLevel {
	return sortLevels(ob.asks, comparePrices)
}

// BidLimits returns all bid price levels sorted by price descending,
// best (highest) bid first. The sort is recomputed on every call.
func (ob *OrderBook) BidLimits() []*PriceLevel {
	return sortLevels(ob.bids, comparePricesReversed)
}

// BestAsk returns the lowest ask price level or nil.
func (ob *OrderBook) BestAsk() *PriceLevel {
	return bestLevel(ob.asks, comparePrices)
}

// BestBid returns the highest bid price level or nil.
func (ob *OrderBook) BestBid() *PriceLevel {
	return bestLevel(ob.bids, comparePricesReversed)
}

// FillMarketOrder consumes resting liquidity on the side opposite to the
// incoming order, walking price levels best price first and draining each
// level's queue until the order is filled or all levels are exhausted.
// A remainder left after the last level is a normal terminal state: the order
// simply reports IsFilled() == false and nothing is rested or rejected.
func (ob *OrderBook) FillMarketOrder(order *Order) {
	var levels []*PriceLevel
	switch order.side {
	case OrderSideBuy:
		levels = ob.AskLimits()
	case OrderSideSell:
		levels = ob.BidLimits()
	default:
		return
	}

	for _, level := range levels {
		before := order.restQuantity
		level.FillOrder(order)

		if executed := before.Sub(order.restQuantity); !executed.IsZero() {
			ob.handler.OnExecuteOrder(ob, level.Price(), order, executed)
		}

		if order.IsFilled() {
			break
		}
	}
}

func (ob *OrderBook) sideIndex(side OrderSide) *hashmap.Map[Price, *PriceLevel] {
	if side == OrderSideBuy {
		return ob.bids
	}
	return ob.asks
}

func comparePrices(a, b Price) int {
	return a.Cmp(b)
}

func comparePricesReversed(a, b Price) int {
	return -a.Cmp(b)
}

// sortLevels produces the price-ordered view of an unordered side index by
// feeding every level through an AVL tree keyed with the side's comparator
// and walking it in order.
func sortLevels(index *hashmap.Map[Price, *PriceLevel], compare func(a, b Price) int) []*PriceLevel {
	tree := sortTree(index, compare)

	levels := make([]*PriceLevel, 0, tree.Size())
	tree.IterateInOrder(func(level *PriceLevel) bool {
		levels = append(levels, level)
		return false
	})
	return levels
}

// bestLevel returns the level whose price sorts first under the comparator.
// A single linear scan of the index suffices, no sorted view is built.
func bestLevel(index *hashmap.Map[Price, *PriceLevel], compare func(a, b Price) int) *PriceLevel {
	var (
		best      *PriceLevel
		bestPrice Price
	)
	index.Scan(func(price Price, level *PriceLevel) bool {
		if best == nil || compare(price, bestPrice) < 0 {
			best, bestPrice = level, price
		}
		return true
	})
	return best
}

func sortTree(index *hashmap.Map[Price, *PriceLevel], compare func(a, b Price) int) avl.Tree[Price, *PriceLevel] {
	tree := avl.NewTree[Price, *PriceLevel](compare)
	index.Scan(func(price Price, level *PriceLevel) bool {
		// Index keys are unique so the insert cannot fail
		_, _ = tree.Add(price, level)
		return true
	})
	return tree
}
