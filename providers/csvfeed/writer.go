package csvfeed

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/quantarc/exchange-sim/matching"
)

var tradeHeader = []string{"Seq", "BuyOrderID", "SellOrderID", "Price", "Quantity"}

// TradeWriter encodes executed trades as CSV rows, one per trade.
type TradeWriter struct {
	csv    *csv.Writer
	header bool
}

// NewTradeWriter creates a TradeWriter over the given output.
func NewTradeWriter(w io.Writer) *TradeWriter {
	return &TradeWriter{csv: csv.NewWriter(w)}
}

// Write appends a single trade row, emitting the header first if needed.
func (w *TradeWriter) Write(trade matching.Trade) error {
	if !w.header {
		w.header = true
		if err := w.csv.Write(tradeHeader); err != nil {
			return err
		}
	}
	return w.csv.Write([]string{
		strconv.FormatUint(trade.SeqNo, 10),
		strconv.FormatUint(trade.BuyOrderID, 10),
		strconv.FormatUint(trade.SellOrderID, 10),
		trade.Price.String(),
		trade.Quantity.String(),
	})
}

// Flush writes any buffered rows to the underlying writer.
func (w *TradeWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// EventWriter encodes order events as CSV rows in the order feed format.
type EventWriter struct {
	csv    *csv.Writer
	header bool
}

// NewEventWriter creates an EventWriter over the given output.
func NewEventWriter(w io.Writer) *EventWriter {
	return &EventWriter{csv: csv.NewWriter(w)}
}

// Write appends a single order event row, emitting the header first if needed.
func (w *EventWriter) Write(event matching.OrderEvent) error {
	if !w.header {
		w.header = true
		if err := w.csv.Write(orderHeader); err != nil {
			return err
		}
	}

	record := []string{"", strconv.FormatUint(event.OrderID, 10), "", "", "", ""}
	switch event.Kind {
	case matching.EventCancel:
		record[0] = "CANCEL"
	default:
		record[0] = "NEW"
		record[2] = sideField(event.Side)
		record[5] = event.Quantity.String()
		if event.Type == matching.OrderTypeMarket {
			record[3] = "MARKET"
		} else {
			record[3] = "LIMIT"
			record[4] = event.Price.String()
		}
	}
	return w.csv.Write(record)
}

// Flush writes any buffered rows to the underlying writer.
func (w *EventWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func sideField(side matching.OrderSide) string {
	if side == matching.OrderSideSell {
		return "SELL"
	}
	return "BUY"
}
