// Package csvfeed reads order event streams and writes trade streams in the
// exchange CSV interchange format.
//
// Order files carry one event per row:
//
//	Op,OrderID,Side,Type,Price,Quantity
//	NEW,1,BUY,LIMIT,100,50
//	NEW,2,SELL,MARKET,,30
//	CANCEL,1,,,,
//
// Sequence numbers are not part of the format: the reader assigns them in
// receipt order, which is what defines time priority downstream.
package csvfeed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quantarc/exchange-sim/matching"
)

var orderHeader = []string{"Op", "OrderID", "Side", "Type", "Price", "Quantity"}

// Reader decodes order events from CSV input.
type Reader struct {
	csv      *csv.Reader
	sequence uint64
	header   bool
}

// NewReader creates a Reader over the given CSV input.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(orderHeader)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Read returns the next order event from the input. It returns io.EOF once
// the input is exhausted. The header row is consumed transparently.
func (r *Reader) Read() (matching.OrderEvent, error) {
	record, err := r.csv.Read()
	if err != nil {
		return matching.OrderEvent{}, err
	}

	if !r.header {
		r.header = true
		if isOrderHeader(record) {
			return r.Read()
		}
	}

	event, err := r.parseRecord(record)
	if err != nil {
		return matching.OrderEvent{}, err
	}
	return event, nil
}

// Process reads the input to the end, invoking fn for every decoded event.
// Malformed rows are reported to onError and skipped; a non-nil return from
// fn stops processing and is returned as is.
func (r *Reader) Process(fn func(matching.OrderEvent) error, onError func(error)) error {
	for {
		event, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			// CSV structural errors past this point are not recoverable
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			if isFeedError(err) {
				continue
			}
			return err
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

func (r *Reader) parseRecord(record []string) (matching.OrderEvent, error) {
	r.sequence++

	orderID, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return matching.OrderEvent{}, fmt.Errorf("%w: order id %q: %v", ErrBadRecord, record[1], err)
	}

	switch op := strings.ToUpper(strings.TrimSpace(record[0])); op {
	case "CANCEL":
		return matching.NewCancelOrderEvent(r.sequence, orderID), nil

	case "NEW":
		side, err := parseSide(record[2])
		if err != nil {
			return matching.OrderEvent{}, err
		}
		quantity, err := matching.NewUintFromStr(strings.TrimSpace(record[5]))
		if err != nil {
			return matching.OrderEvent{}, fmt.Errorf("%w: quantity %q: %v", ErrBadRecord, record[5], err)
		}

		switch orderType := strings.ToUpper(strings.TrimSpace(record[3])); orderType {
		case "LIMIT":
			price, err := matching.NewUintFromStr(strings.TrimSpace(record[4]))
			if err != nil {
				return matching.OrderEvent{}, fmt.Errorf("%w: price %q: %v", ErrBadRecord, record[4], err)
			}
			return matching.NewLimitOrderEvent(r.sequence, orderID, side, price, quantity), nil
		case "MARKET":
			return matching.NewMarketOrderEvent(r.sequence, orderID, side, quantity), nil
		default:
			return matching.OrderEvent{}, fmt.Errorf("%w: %q", ErrUnknownType, orderType)
		}

	default:
		return matching.OrderEvent{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

func parseSide(field string) (matching.OrderSide, error) {
	switch side := strings.ToUpper(strings.TrimSpace(field)); side {
	case "BUY":
		return matching.OrderSideBuy, nil
	case "SELL":
		return matching.OrderSideSell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}
}

func isOrderHeader(record []string) bool {
	for i, field := range record {
		if !strings.EqualFold(strings.TrimSpace(field), orderHeader[i]) {
			return false
		}
	}
	return true
}

func isFeedError(err error) bool {
	for _, feedErr := range []error{ErrBadRecord, ErrUnknownOp, ErrUnknownSide, ErrUnknownType} {
		if errors.Is(err, feedErr) {
			return true
		}
	}
	return false
}
