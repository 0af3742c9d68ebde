package book

import (
	"sync"

	"github.com/nasdaqfeed/itchfeed/types/list"
)

// PriceLevel is a FIFO queue of orders resident at one price. total
// quantity and order count are kept in sync with the queue's contents on
// every mutation; the level owns the linkage, the order itself lives in
// the pool.
type PriceLevel struct {
	Price         Price
	TotalQuantity Quantity
	orders        *list.List[*Order]
}

// newPriceLevel creates an empty level. pool, if non-nil, is the shared
// sync.Pool of list elements used to keep add/remove allocation-free once
// warmed — the same role teacher allocators give a pooled queue-element pool.
func newPriceLevel(price Price, pool *sync.Pool) *PriceLevel {
	return &PriceLevel{
		Price:  price,
		orders: list.NewListPooled[*Order](pool),
	}
}

// OrderCount returns the number of resident orders.
func (l *PriceLevel) OrderCount() int { return l.orders.Len() }

// Empty reports whether the level holds no orders.
func (l *PriceLevel) Empty() bool { return l.orders.Len() == 0 }

// Front returns the earliest-arrived resident order, or nil if empty.
func (l *PriceLevel) Front() *Order {
	e := l.orders.Front()
	if e == nil {
		return nil
	}
	return e.Value
}

// add appends o to the tail of the FIFO (price-time priority: later
// arrivals are served after earlier ones at the same price).
func (l *PriceLevel) add(o *Order) {
	o.node = l.orders.PushBack(o)
	o.level = l
	l.TotalQuantity += o.Quantity
}

// remove unlinks o from the level and updates aggregates.
func (l *PriceLevel) remove(o *Order) {
	_, _ = l.orders.Remove(o.node)
	o.node = nil
	o.level = nil
	l.TotalQuantity -= o.Quantity
}

// reduce decrements o's quantity by delta (delta must be <= o.Quantity);
// if the remaining quantity reaches zero, the order is removed from the
// level. Returns true if the order was removed.
func (l *PriceLevel) reduce(o *Order, delta Quantity) bool {
	o.Quantity -= delta
	l.TotalQuantity -= delta
	if o.Quantity == 0 {
		l.remove(o)
		return true
	}
	return false
}
