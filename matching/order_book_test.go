package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	matching "github.com/quantarc/exchange-sim/matching"
)

func limitOrder(id uint64, side matching.OrderSide, price, quantity uint64, seq uint64) *matching.Order {
	order := matching.NewLimitOrder(id, side, matching.NewUint(price), matching.NewUint(quantity), seq)
	return &order
}

func TestOrderBookInsert(t *testing.T) {
	ob := matching.NewOrderBook()
	require.True(t, ob.IsEmpty())
	require.Nil(t, ob.BestBid())
	require.Nil(t, ob.BestAsk())

	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideBuy, 100, 10, 1)))
	require.NoError(t, ob.Insert(limitOrder(2, matching.OrderSideBuy, 101, 5, 2)))
	require.NoError(t, ob.Insert(limitOrder(3, matching.OrderSideSell, 105, 7, 3)))

	require.Equal(t, 3, ob.Size())
	require.Equal(t, 2, ob.BidLevels())
	require.Equal(t, 1, ob.AskLevels())

	// Best bid is the highest price, best ask the lowest
	require.True(t, ob.BestBid().Value().Price().Equals64(101))
	require.True(t, ob.BestAsk().Value().Price().Equals64(105))

	require.NotNil(t, ob.Order(1))
	require.Nil(t, ob.Order(42))
}

func TestOrderBookInsertInvalid(t *testing.T) {
	ob := matching.NewOrderBook()

	err := ob.Insert(limitOrder(1, matching.OrderSideBuy, 0, 10, 1))
	require.ErrorIs(t, err, matching.ErrInvalidOrderPrice)

	err = ob.Insert(limitOrder(1, matching.OrderSideBuy, 100, 0, 1))
	require.ErrorIs(t, err, matching.ErrInvalidOrderQuantity)

	market := matching.NewMarketOrder(1, matching.OrderSideBuy, matching.NewUint(10), 1)
	err = ob.Insert(&market)
	require.ErrorIs(t, err, matching.ErrInvalidOrderType)

	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideBuy, 100, 10, 1)))
	err = ob.Insert(limitOrder(1, matching.OrderSideSell, 200, 10, 2))
	require.ErrorIs(t, err, matching.ErrOrderDuplicate)

	// Failed inserts never touched the book
	require.Equal(t, 1, ob.Size())
	require.Equal(t, 1, ob.BidLevels())
	require.Equal(t, 0, ob.AskLevels())
}

func TestOrderBookFIFOWithinLevel(t *testing.T) {
	ob := matching.NewOrderBook()
	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideSell, 100, 10, 1)))
	require.NoError(t, ob.Insert(limitOrder(2, matching.OrderSideSell, 100, 20, 2)))
	require.NoError(t, ob.Insert(limitOrder(3, matching.OrderSideSell, 100, 30, 3)))

	level := ob.BestAsk().Value()
	require.Equal(t, 3, level.Orders())
	require.True(t, level.Volume().Equals64(60))

	order, err := ob.RemoveFront(matching.OrderSideSell, matching.NewUint(100))
	require.NoError(t, err)
	require.Equal(t, uint64(1), order.ID())

	order, err = ob.RemoveFront(matching.OrderSideSell, matching.NewUint(100))
	require.NoError(t, err)
	require.Equal(t, uint64(2), order.ID())

	// Removed orders left the index as well
	require.Nil(t, ob.Order(1))
	require.Nil(t, ob.Order(2))
	require.True(t, ob.BestAsk().Value().Volume().Equals64(30))
}

func TestOrderBookRemoveFrontDeletesEmptyLevel(t *testing.T) {
	ob := matching.NewOrderBook()
	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideBuy, 99, 5, 1)))

	_, err := ob.RemoveFront(matching.OrderSideBuy, matching.NewUint(99))
	require.NoError(t, err)
	require.Nil(t, ob.BestBid())
	require.Equal(t, 0, ob.BidLevels())
	require.True(t, ob.IsEmpty())

	_, err = ob.RemoveFront(matching.OrderSideBuy, matching.NewUint(99))
	require.ErrorIs(t, err, matching.ErrPriceLevelNotFound)
}

func TestOrderBookReduceFront(t *testing.T) {
	ob := matching.NewOrderBook()
	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideSell, 100, 10, 1)))
	require.NoError(t, ob.Insert(limitOrder(2, matching.OrderSideSell, 100, 10, 2)))

	order, err := ob.ReduceFront(matching.OrderSideSell, matching.NewUint(100), matching.NewUint(4))
	require.NoError(t, err)
	require.Equal(t, uint64(1), order.ID())
	require.True(t, order.RestQuantity().Equals64(6))
	require.True(t, ob.BestAsk().Value().Volume().Equals64(16))
	require.NotNil(t, ob.Order(1))

	// Reducing to zero removes the front order but keeps the level
	order, err = ob.ReduceFront(matching.OrderSideSell, matching.NewUint(100), matching.NewUint(6))
	require.NoError(t, err)
	require.True(t, order.IsExecuted())
	require.Nil(t, ob.Order(1))
	require.Equal(t, 1, ob.BestAsk().Value().Orders())
	require.Equal(t, uint64(2), ob.BestAsk().Value().Front().ID())

	_, err = ob.ReduceFront(matching.OrderSideSell, matching.NewUint(101), matching.NewUint(1))
	require.ErrorIs(t, err, matching.ErrPriceLevelNotFound)
}

func TestOrderBookCancel(t *testing.T) {
	ob := matching.NewOrderBook()
	require.NoError(t, ob.Insert(limitOrder(1, matching.OrderSideBuy, 99, 5, 1)))
	require.NoError(t, ob.Insert(limitOrder(2, matching.OrderSideBuy, 99, 5, 2)))

	order, err := ob.Cancel(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), order.ID())
	require.Nil(t, ob.Order(1))
	require.Equal(t, 1, ob.BestBid().Value().Orders())
	require.True(t, ob.BestBid().Value().Volume().Equals64(5))

	// Cancelling the same id twice never succeeds
	_, err = ob.Cancel(1)
	require.ErrorIs(t, err, matching.ErrOrderNotFound)

	order, err = ob.Cancel(2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), order.ID())
	require.Nil(t, ob.BestBid())
	require.True(t, ob.IsEmpty())

	_, err = ob.Cancel(42)
	require.ErrorIs(t, err, matching.ErrOrderNotFound)
}
