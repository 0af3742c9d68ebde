package feed

import "github.com/nasdaqfeed/itchfeed/book"

// SymbolAdded is emitted when a Stock Directory message registers a new
// symbol in the directory.
type SymbolAdded struct {
	StockLocate uint16
	Symbol      book.Symbol
}

// Trade is emitted for every execution the feed publishes: a resting-order
// execution (plain or with-price), or a direct Trade/Cross Trade message
// that never touches the book. Side is book.SideUnknown for Cross Trade,
// whose wire format carries no side indicator.
type Trade struct {
	StockLocate uint16
	Price       book.Price
	Quantity    book.Quantity
	OrderID     book.OrderID
	MatchNumber uint64
	Side        book.Side
	Timestamp   book.Timestamp
}

// BBOUpdate is emitted whenever a book mutation changes either side's
// top-of-book price.
type BBOUpdate struct {
	StockLocate uint16
	Old         book.BBO
	New         book.BBO
	Timestamp   book.Timestamp
}
