package matching

const (
	// defaultReservedOrderSlots specifies initial size of hashmap array storing orders by order id.
	defaultReservedOrderSlots = 1024
)
