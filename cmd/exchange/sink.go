package main

import (
	"log/slog"

	"github.com/quantarc/exchange-sim/matching"
	"github.com/quantarc/exchange-sim/providers/csvfeed"
)

var _ matching.Handler = &tradeSink{}

// tradeSink receives engine callbacks, writes executed trades to the trade
// CSV output and keeps run statistics. Counters are plain integers: the
// engine is strictly sequential so callbacks never race.
type tradeSink struct {
	log    *slog.Logger
	trades *csvfeed.TradeWriter

	accepted uint64
	added    uint64
	updated  uint64
	deleted  uint64
	expired  uint64
	executed uint64
	rejected uint64
	errors   uint64
	writeErr error
}

func newTradeSink(log *slog.Logger, trades *csvfeed.TradeWriter) *tradeSink {
	return &tradeSink{log: log, trades: trades}
}

func (s *tradeSink) OnAcceptOrder(_ *matching.OrderBook, order *matching.Order) {
	s.accepted++
	s.log.Debug("order accepted",
		"id", order.ID(), "side", order.Side().String(), "type", order.Type().String())
}

func (s *tradeSink) OnAddOrder(_ *matching.OrderBook, order *matching.Order) {
	s.added++
	s.log.Debug("order resting",
		"id", order.ID(), "price", order.Price().String(), "quantity", order.RestQuantity().String())
}

func (s *tradeSink) OnUpdateOrder(_ *matching.OrderBook, order *matching.Order) {
	s.updated++
	s.log.Debug("order updated", "id", order.ID(), "rest", order.RestQuantity().String())
}

func (s *tradeSink) OnDeleteOrder(_ *matching.OrderBook, order *matching.Order) {
	s.deleted++
	s.log.Debug("order removed", "id", order.ID(), "status", order.Status().String())
}

func (s *tradeSink) OnExpireOrder(_ *matching.OrderBook, order *matching.Order) {
	s.expired++
	s.log.Debug("order expired", "id", order.ID(), "rest", order.RestQuantity().String())
}

func (s *tradeSink) OnExecuteTrade(_ *matching.OrderBook, trade matching.Trade) {
	s.executed++
	if err := s.trades.Write(trade); err != nil && s.writeErr == nil {
		s.writeErr = err
	}
	s.log.Debug("trade executed",
		"seq", trade.SeqNo,
		"buy", trade.BuyOrderID, "sell", trade.SellOrderID,
		"price", trade.Price.String(), "quantity", trade.Quantity.String())
}

func (s *tradeSink) OnRejectEvent(_ *matching.OrderBook, event matching.OrderEvent, err error) {
	s.rejected++
	s.log.Warn("event rejected",
		"seq", event.Sequence, "kind", event.Kind.String(), "id", event.OrderID, "reason", err)
}

func (s *tradeSink) OnError(_ *matching.OrderBook, err error) {
	s.errors++
	s.log.Error("engine error", "error", err)
}

func (s *tradeSink) logStatistics(ob *matching.OrderBook) {
	s.log.Info("run statistics",
		"accepted", s.accepted,
		"resting_adds", s.added,
		"updates", s.updated,
		"removals", s.deleted,
		"expired", s.expired,
		"trades", s.executed,
		"rejects", s.rejected,
		"errors", s.errors,
		"open_orders", ob.Size(),
		"bid_levels", ob.BidLevels(),
		"ask_levels", ob.AskLevels())
}
