package matching

// Order contains information about an order.
// An order is an instruction to buy or sell on a trading venue. The only state
// an order carries here is its side and its quantity accounting: the rest
// quantity starts at the full quantity and is decremented by the fill
// algorithm until it reaches exactly zero, a one-way transition.
type Order struct {
	side OrderSide

	quantity         Uint
	restQuantity     Uint
	executedQuantity Uint
}

// NewOrder creates new order with given side and quantity.
// The quantity is a non-negative caller contract, not enforced by the type.
func NewOrder(side OrderSide, quantity Uint) *Order {
	return &Order{
		side:         side,
		quantity:     quantity,
		restQuantity: quantity,
	}
}

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

// Quantity returns the original order quantity.
func (o *Order) Quantity() Uint {
	return o.quantity
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() Uint {
	return o.restQuantity
}

// ExecutedQuantity returns order executed quantity.
func (o *Order) ExecutedQuantity() Uint {
	return o.executedQuantity
}

// IsFilled returns true if the order is completely executed.
// Completion is an exact zero test on the rest quantity: the fill algorithm
// only ever subtracts the minimum of two quantities, so no tolerance is needed.
func (o *Order) IsFilled() bool {
	return o.restQuantity.IsZero()
}

// Validate returns error if the order fails to pass validation so can be used safely.
// Safe to call on a nil order.
func (o *Order) Validate() error {
	if o == nil {
		return ErrInvalidOrder
	}

	if o.side != OrderSideBuy && o.side != OrderSideSell {
		return ErrInvalidOrderSide
	}

	if o.quantity.IsZero() {
		return ErrInvalidOrderQuantity
	}

	return nil
}

// fill moves the given quantity from rest to executed.
// The quantity must not exceed the rest quantity.
func (o *Order) fill(quantity Uint) {
	o.restQuantity = o.restQuantity.Sub(quantity)
	o.executedQuantity = o.executedQuantity.Add(quantity)
}
