package matching

// NewLimitOrder creates new limit order.
func NewLimitOrder(
	orderID uint64,
	side OrderSide,
	price Uint,
	quantity Uint,
	sequence uint64,
) Order {
	return Order{
		id:           orderID,
		orderType:    OrderTypeLimit,
		side:         side,
		status:       OrderStatusResting,
		price:        price,
		quantity:     quantity,
		restQuantity: quantity,
		sequence:     sequence,
	}
}

// NewMarketOrder creates new market order.
func NewMarketOrder(
	orderID uint64,
	side OrderSide,
	quantity Uint,
	sequence uint64,
) Order {
	return Order{
		id:           orderID,
		orderType:    OrderTypeMarket,
		side:         side,
		status:       OrderStatusResting,
		quantity:     quantity,
		restQuantity: quantity,
		sequence:     sequence,
	}
}
