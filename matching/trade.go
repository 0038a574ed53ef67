package matching

// Trade is a single execution between a buy and a sell order.
// SeqNo is assigned by the engine, strictly increasing in emission order,
// and is the authoritative execution order downstream. The price is the
// resting order's price.
type Trade struct {
	SeqNo       uint64
	BuyOrderID  uint64
	SellOrderID uint64
	Price       Uint
	Quantity    Uint
}
