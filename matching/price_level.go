package matching

import (
	"github.com/quantex-io/matchbook/types/list"
)

// PriceLevel encapsulates the FIFO queue of all orders resting at one price
// key on one side of an order book. Orders queue in insertion order and are
// consumed in that order, which gives time priority within the level.
//
// Completely filled orders are intentionally kept in the queue: they carry
// zero rest quantity, so they contribute nothing to the volume and are walked
// over by the fill loop. See DESIGN.md for the retention trade-off.
// NOTE: Not thread-safe.
type PriceLevel struct {
	price Price
	queue *list.List[*Order]
}

// NewPriceLevel creates and returns new PriceLevel instance with an empty queue.
func NewPriceLevel(price Price) *PriceLevel {
	return &PriceLevel{
		price: price,
		queue: list.NewList[*Order](),
	}
}

// Price returns price key of the level.
func (pl *PriceLevel) Price() Price {
	return pl.price
}

// Orders returns amount of orders in the queue, filled ones included.
func (pl *PriceLevel) Orders() int {
	return pl.queue.Len()
}

// AddOrder enqueues the order to the tail of the queue. O(1).
// The order's side matching the level's side is the order book's contract,
// it is not validated here.
func (pl *PriceLevel) AddOrder(order *Order) {
	pl.queue.PushBack(order)
}

// TotalVolume returns the sum of remaining quantities of every queued order,
// filled (zero quantity) orders included. O(n) in queue length.
func (pl *PriceLevel) TotalVolume() Uint {
	volume := NewZeroUint()
	for it := pl.queue.Iterator(); it.Next(); {
		volume = volume.Add(it.Current().Value.restQuantity)
	}
	return volume
}

// FillOrder consumes resting liquidity with the incoming order, walking the
// queue head to tail. Each step transfers the minimum of the two remaining
// quantities, so either the resting order is fully consumed or the incoming
// order is fully satisfied. The walk stops the moment the incoming order is
// filled; remaining entries, filled ones included, stay queued untouched.
func (pl *PriceLevel) FillOrder(incoming *Order) {
	for it := pl.queue.Iterator(); it.Next(); {
		resting := it.Current().Value

		quantity := Min(incoming.restQuantity, resting.restQuantity)
		resting.fill(quantity)
		incoming.fill(quantity)

		if incoming.IsFilled() {
			break
		}
	}
}
