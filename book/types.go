// Package book implements a price-time-priority limit order book: a fixed-
// block order pool, an open-addressed order index, doubly-linked price
// levels, and a dense per-symbol book manager.
package book

import "math"

// Price is a signed fixed-point price with 4 implied decimal places,
// widened from ITCH's unsigned 32-bit wire field to leave headroom for
// arithmetic (spreads, replace deltas) that could otherwise overflow.
type Price int64

// MaxPrice is the sentinel "no asks resting" value: higher than any price
// the wire format can produce.
const MaxPrice Price = math.MaxInt64

// Quantity is a resting or traded share count.
type Quantity uint32

// OrderID identifies a resting order. Zero is reserved as the order-index
// empty-slot sentinel and must never be used as a live id.
type OrderID uint64

// Timestamp is nanoseconds since midnight, as decoded by the itch package.
type Timestamp uint64

// Symbol is an 8-byte ASCII ticker, space-padded, compared byte-for-byte.
type Symbol [8]byte

// Side is which side of the book a resting order sits on.
type Side int8

const (
	// SideUnknown marks an order/trade whose side cannot be determined from
	// the wire message that produced it (e.g. a Cross Trade). Deliberately
	// distinct from Buy/Sell rather than defaulting to one of them.
	SideUnknown Side = 0
	SideBuy     Side = 1
	SideSell    Side = 2
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// DepthLevel is a top-of-book snapshot entry for bid_depth/ask_depth.
type DepthLevel struct {
	Price      Price
	Quantity   Quantity
	OrderCount int
}

// BBO is the best bid and offer cache for one book. An absent bid is
// (price=0, qty=0); an absent ask is (price=MaxPrice, qty=0). A side is
// "present" iff its quantity is greater than zero.
type BBO struct {
	BidPrice Price
	BidQty   Quantity
	AskPrice Price
	AskQty   Quantity
}

// EmptyBBO is the sentinel value for a book with no resting orders on
// either side.
var EmptyBBO = BBO{BidPrice: 0, BidQty: 0, AskPrice: MaxPrice, AskQty: 0}

// HasBid reports whether the bid side is present.
func (b BBO) HasBid() bool { return b.BidQty > 0 }

// HasAsk reports whether the ask side is present.
func (b BBO) HasAsk() bool { return b.AskQty > 0 }
