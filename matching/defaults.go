package matching

const (
	// defaultReservedOrderBookSlots specifies initial size of the hashmap storing order books by trading pair.
	defaultReservedOrderBookSlots = 64

	// defaultReservedPriceLevelSlots specifies initial size of the hashmap storing price levels by price for one order book side.
	defaultReservedPriceLevelSlots = 256
)
