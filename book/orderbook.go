package book

import (
	"sync"

	"github.com/nasdaqfeed/itchfeed/types/avl"
)

// OrderBook is a single symbol's resting order state: two price-ordered
// level collections (bids descending, asks ascending), an order index for
// O(1) lookup, and a cached BBO kept in lockstep with every mutation.
//
// The asks side is an AVL tree using typ.v4's default ordered comparator
// (prices compare naturally ascending); the bids side uses an explicit
// reversed comparator so its in-order walk — and its O(1)-cached leftmost
// node — yields the highest price first.
type OrderBook struct {
	StockLocate uint16

	bids avl.Tree[Price, *PriceLevel]
	asks avl.Tree[Price, *PriceLevel]

	orders *OrderIndex
	pool   *OrderPool

	elementPool *sync.Pool
	bbo         BBO
	orderCount  int
}

func reversePriceCompare(a, b Price) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// newOrderBook creates an empty book for locate, backed by the given
// shared order pool and price-level queue-element pool.
func newOrderBook(locate uint16, pool *OrderPool, elementPool *sync.Pool) *OrderBook {
	return &OrderBook{
		StockLocate: locate,
		bids:        avl.NewTree[Price, *PriceLevel](reversePriceCompare),
		asks:        avl.NewOrderedTree[Price, *PriceLevel](),
		orders:      NewOrderIndex(),
		pool:        pool,
		elementPool: elementPool,
		bbo:         EmptyBBO,
	}
}

func (b *OrderBook) tree(side Side) *avl.Tree[Price, *PriceLevel] {
	if side == SideBuy {
		return &b.bids
	}
	return &b.asks
}

func (b *OrderBook) levelFor(side Side, price Price, create bool) *PriceLevel {
	t := b.tree(side)
	if node := t.Find(price); node != nil {
		return node.Value()
	}
	if !create {
		return nil
	}
	level := newPriceLevel(price, b.elementPool)
	_, _ = t.Add(price, level)
	return level
}

// BBO returns the current best-bid-and-offer cache.
func (b *OrderBook) BBO() BBO { return b.bbo }

// OrderCount returns the number of resident orders across both sides.
func (b *OrderBook) OrderCount() int { return b.orderCount }

// Lookup returns the resident order for id, if any.
func (b *OrderBook) Lookup(id OrderID) (*Order, bool) {
	return b.orders.Lookup(id)
}

// AddOrder inserts a new resting order. It fails with ErrDuplicateOrderID
// if id is already resident, or ErrInvalidOrderID if id is the reserved
// zero value.
func (b *OrderBook) AddOrder(id OrderID, side Side, price Price, qty Quantity, ts Timestamp) (*Order, error) {
	if id == 0 {
		return nil, ErrInvalidOrderID
	}
	if _, exists := b.orders.Lookup(id); exists {
		return nil, ErrDuplicateOrderID
	}
	o := b.pool.Acquire()
	o.ID = id
	o.Side = side
	o.Price = price
	o.Quantity = qty
	o.OriginalQty = qty
	o.StockLocate = b.StockLocate
	o.Timestamp = ts

	level := b.levelFor(side, price, true)
	level.add(o)
	b.orders.Insert(id, o)
	b.orderCount++
	b.refreshBBO()
	return o, nil
}

// reduceResting is the shared implementation behind ExecuteOrder and
// CancelOrder: both reduce a resting order's quantity by up to shares and
// release it to the pool if it reaches zero. They differ only in the
// caller-side event the dispatcher emits, not in book-level behavior.
func (b *OrderBook) reduceResting(id OrderID, shares Quantity) Quantity {
	o, ok := b.orders.Lookup(id)
	if !ok {
		return 0
	}
	executed := shares
	if executed > o.Quantity {
		executed = o.Quantity
	}
	level := o.level
	side := o.Side
	price := o.Price
	if level.reduce(o, executed) {
		b.orders.Delete(id)
		b.pool.Release(o)
		b.orderCount--
		if level.Empty() {
			_, _ = b.tree(side).Remove(price)
		}
	}
	b.refreshBBO()
	return executed
}

// ExecuteOrder reduces id's resting quantity by min(shares, resting qty),
// releasing the order (and its level, if emptied) once it reaches zero.
// Returns the quantity actually executed, 0 if id is not resident.
func (b *OrderBook) ExecuteOrder(id OrderID, shares Quantity) Quantity {
	return b.reduceResting(id, shares)
}

// CancelOrder is semantically identical to ExecuteOrder at the book level;
// the dispatcher distinguishes the two only by the event each produces.
func (b *OrderBook) CancelOrder(id OrderID, shares Quantity) Quantity {
	return b.reduceResting(id, shares)
}

// DeleteOrder removes id in full regardless of remaining quantity.
// Returns false if id is not resident.
func (b *OrderBook) DeleteOrder(id OrderID) bool {
	o, ok := b.orders.Lookup(id)
	if !ok {
		return false
	}
	level := o.level
	side := o.Side
	price := o.Price
	level.remove(o)
	b.orders.Delete(id)
	b.pool.Release(o)
	b.orderCount--
	if level.Empty() {
		_, _ = b.tree(side).Remove(price)
	}
	b.refreshBBO()
	return true
}

// ReplaceOrder atomically destroys oldID and creates newID with the given
// quantity, price, and timestamp on the same side. It fails with
// ErrUnknownOrderID if oldID is not resident, or ErrDuplicateOrderID if
// newID is already resident — in both failure cases oldID is left
// untouched.
func (b *OrderBook) ReplaceOrder(oldID, newID OrderID, newQty Quantity, newPrice Price, ts Timestamp) (*Order, error) {
	old, ok := b.orders.Lookup(oldID)
	if !ok {
		return nil, ErrUnknownOrderID
	}
	if newID != oldID {
		if _, exists := b.orders.Lookup(newID); exists {
			return nil, ErrDuplicateOrderID
		}
	}
	side := old.Side
	b.DeleteOrder(oldID)
	order, err := b.AddOrder(newID, side, newPrice, newQty, ts)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// BidDepth returns up to n bid levels, highest price first.
func (b *OrderBook) BidDepth(n int) []DepthLevel {
	return depthFromTree(&b.bids, n)
}

// AskDepth returns up to n ask levels, lowest price first.
func (b *OrderBook) AskDepth(n int) []DepthLevel {
	return depthFromTree(&b.asks, n)
}

// depthFromTree walks t in order and collects up to n levels. The early
// "return true" out of IterateInOrder's callback only unwinds the
// recursion frame it's called from — every ancestor still visited on the
// way back up would otherwise call f again and keep appending — so the
// cap is enforced explicitly here by refusing to append once n levels are
// collected, rather than trusting the stop signal to actually stop the walk.
func depthFromTree(t *avl.Tree[Price, *PriceLevel], n int) []DepthLevel {
	if n <= 0 {
		return nil
	}
	levels := make([]DepthLevel, 0, n)
	t.IterateInOrder(func(level *PriceLevel) bool {
		if len(levels) >= n {
			return true
		}
		levels = append(levels, DepthLevel{
			Price:      level.Price,
			Quantity:   level.TotalQuantity,
			OrderCount: level.OrderCount(),
		})
		return len(levels) >= n
	})
	return levels
}

// Clear releases every resident order to the pool and empties both sides;
// BBO returns to the empty sentinel.
func (b *OrderBook) Clear() {
	releaseLevel := func(level *PriceLevel) bool {
		for o := level.Front(); o != nil; o = level.Front() {
			level.remove(o)
			b.pool.Release(o)
		}
		return false
	}
	b.bids.IterateInOrder(releaseLevel)
	b.asks.IterateInOrder(releaseLevel)
	b.bids.Clear()
	b.asks.Clear()
	b.orders = NewOrderIndex()
	b.orderCount = 0
	b.bbo = EmptyBBO
}

func (b *OrderBook) refreshBBO() {
	bbo := EmptyBBO
	if node := b.bids.MostLeft(); node != nil {
		level := node.Value()
		bbo.BidPrice = level.Price
		bbo.BidQty = level.TotalQuantity
	}
	if node := b.asks.MostLeft(); node != nil {
		level := node.Value()
		bbo.AskPrice = level.Price
		bbo.AskQty = level.TotalQuantity
	}
	b.bbo = bbo
}
