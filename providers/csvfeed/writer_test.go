package csvfeed

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantarc/exchange-sim/matching"
)

func TestTradeWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTradeWriter(&buf)

	require.NoError(t, w.Write(matching.Trade{
		SeqNo:       1,
		BuyOrderID:  10,
		SellOrderID: 20,
		Price:       matching.NewUint(100),
		Quantity:    matching.NewUint(5),
	}))
	require.NoError(t, w.Write(matching.Trade{
		SeqNo:       2,
		BuyOrderID:  11,
		SellOrderID: 20,
		Price:       matching.NewUint(101),
		Quantity:    matching.NewUint(3),
	}))
	require.NoError(t, w.Flush())

	want := "Seq,BuyOrderID,SellOrderID,Price,Quantity\n" +
		"1,10,20,100,5\n" +
		"2,11,20,101,3\n"
	require.Equal(t, want, buf.String())
}

func TestEventWriterRoundTrip(t *testing.T) {
	events := []matching.OrderEvent{
		matching.NewLimitOrderEvent(1, 1, matching.OrderSideBuy, matching.NewUint(100), matching.NewUint(50)),
		matching.NewMarketOrderEvent(2, 2, matching.OrderSideSell, matching.NewUint(30)),
		matching.NewCancelOrderEvent(3, 1),
	}

	var buf bytes.Buffer
	w := NewEventWriter(&buf)
	for _, event := range events {
		require.NoError(t, w.Write(event))
	}
	require.NoError(t, w.Flush())

	r := NewReader(&buf)
	for _, want := range events {
		got, err := r.Read()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := r.Read()
	require.Equal(t, io.EOF, err)
}
