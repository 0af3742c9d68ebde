package book

import "github.com/nasdaqfeed/itchfeed/types/list"

// Order is a resident order record. It lives in the OrderPool for its
// entire lifetime and is, while resident in a book, linked into exactly one
// PriceLevel's FIFO queue via node. The order's lifetime is tied to the
// pool, not to the level: Release returns the slot to the pool regardless
// of which (if any) level most recently held it.
type Order struct {
	ID          OrderID
	Side        Side
	Price       Price
	Quantity    Quantity
	OriginalQty Quantity
	StockLocate uint16
	Timestamp   Timestamp

	level *PriceLevel
	node  *list.Element[*Order]
}
