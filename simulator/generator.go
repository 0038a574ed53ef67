// Package simulator produces pseudo-random order event streams for feeding
// the matching engine. Streams are fully determined by the seed, so a run
// can be replayed bit-for-bit.
package simulator

import (
	"math/rand"

	"github.com/quantarc/exchange-sim/matching"
)

// Config bounds the generated stream.
type Config struct {
	// Seed initializes the random source. The same seed yields the same stream.
	Seed int64
	// Events is the total number of events to generate.
	Events int
	// MinPrice and MaxPrice bound limit order prices (inclusive).
	MinPrice uint64
	MaxPrice uint64
	// MinLots and MaxLots bound order sizes in lots (inclusive).
	// Quantities are always whole lots of LotSize.
	MinLots uint64
	MaxLots uint64
	// LotSize is the quantity granularity of generated orders.
	LotSize uint64
	// MarketRatio is the fraction of new orders submitted as market orders.
	MarketRatio float64
	// CancelRatio is the fraction of events that are cancels of earlier orders.
	CancelRatio float64
}

// DefaultConfig returns generation bounds producing a liquid, frequently
// crossing book.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		Events:      10000,
		MinPrice:    90,
		MaxPrice:    110,
		MinLots:     1,
		MaxLots:     20,
		LotSize:     10,
		MarketRatio: 0.15,
		CancelRatio: 0.10,
	}
}

// Generator emits a deterministic stream of order events.
//
// The generator tracks its own view of live order ids: an id becomes live
// when submitted as a limit order and leaves the view when the generator
// cancels it. Ids filled by the engine stay in the view, so generated
// cancels can target already executed orders. That is intentional: a
// realistic feed contains cancels that lose the race against execution.
type Generator struct {
	cfg      Config
	rng      *rand.Rand
	sequence uint64
	nextID   uint64
	liveIDs  []uint64
	emitted  int
}

// NewGenerator creates a Generator for the given bounds.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Next returns the next event of the stream and false once cfg.Events
// events have been emitted.
func (g *Generator) Next() (matching.OrderEvent, bool) {
	if g.emitted >= g.cfg.Events {
		return matching.OrderEvent{}, false
	}
	g.emitted++
	g.sequence++

	if len(g.liveIDs) > 0 && g.rng.Float64() < g.cfg.CancelRatio {
		return g.nextCancel(), true
	}
	return g.nextOrder(), true
}

func (g *Generator) nextCancel() matching.OrderEvent {
	i := g.rng.Intn(len(g.liveIDs))
	id := g.liveIDs[i]
	g.liveIDs[i] = g.liveIDs[len(g.liveIDs)-1]
	g.liveIDs = g.liveIDs[:len(g.liveIDs)-1]
	return matching.NewCancelOrderEvent(g.sequence, id)
}

func (g *Generator) nextOrder() matching.OrderEvent {
	g.nextID++
	side := matching.OrderSideBuy
	if g.rng.Intn(2) == 1 {
		side = matching.OrderSideSell
	}
	quantity := matching.NewUint(g.randRange(g.cfg.MinLots, g.cfg.MaxLots) * g.cfg.LotSize)

	if g.rng.Float64() < g.cfg.MarketRatio {
		return matching.NewMarketOrderEvent(g.sequence, g.nextID, side, quantity)
	}

	price := matching.NewUint(g.randRange(g.cfg.MinPrice, g.cfg.MaxPrice))
	g.liveIDs = append(g.liveIDs, g.nextID)
	return matching.NewLimitOrderEvent(g.sequence, g.nextID, side, price, quantity)
}

func (g *Generator) randRange(min, max uint64) uint64 {
	if max <= min {
		return min
	}
	return min + uint64(g.rng.Int63n(int64(max-min+1)))
}
