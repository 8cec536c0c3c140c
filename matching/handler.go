package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler
type Handler interface {

	// OnAddOrderBook is called when a market is registered.
	OnAddOrderBook(orderBook *OrderBook)

	// OnAddPriceLevel is called when the first order rests at a new price.
	OnAddPriceLevel(orderBook *OrderBook, level *PriceLevel)

	// OnAddOrder is called after a limit order is queued to its price level.
	OnAddOrder(orderBook *OrderBook, order *Order)

	// OnExecuteOrder is called after an incoming market order consumed
	// liquidity at a price level, with the quantity executed there.
	OnExecuteOrder(orderBook *OrderBook, price Price, order *Order, quantity Uint)
}

// NopHandler ignores all order book events.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnAddOrderBook(*OrderBook) {}

func (NopHandler) OnAddPriceLevel(*OrderBook, *PriceLevel) {}

func (NopHandler) OnAddOrder(*OrderBook, *Order) {}

func (NopHandler) OnExecuteOrder(*OrderBook, Price, *Order, Uint) {}
