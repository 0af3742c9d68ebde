package feed

import "github.com/nasdaqfeed/itchfeed/book"

// SymbolInfo is the directory's record for one registered symbol, carrying
// the Stock Directory fields a downstream consumer actually needs: the
// ticker, its market category and financial status, and whether the
// directory still considers it active.
type SymbolInfo struct {
	Symbol                   book.Symbol
	MarketCategory           byte
	FinancialStatusIndicator byte
	Active                   bool
}

// SymbolDirectory maps stock locates to symbols and back. It is append-only
// during a session: entries are only ever added or overwritten by a later
// registration of the same locate, never removed or marked inactive,
// matching the feed's own Stock Directory semantics (a locate is
// assigned once per session and reused for the session's duration).
//
// Entries are held in a dense array indexed directly by locate, the same
// shape book.BookManager uses for its per-symbol books, since locates are
// small dense integers for the lifetime of a session.
type SymbolDirectory struct {
	byLocate [book.MaxSymbols]SymbolInfo
	present  [book.MaxSymbols]bool
	bySymbol map[book.Symbol]uint16
	count    int
}

// NewSymbolDirectory creates an empty directory.
func NewSymbolDirectory() *SymbolDirectory {
	return &SymbolDirectory{
		bySymbol: make(map[book.Symbol]uint16),
	}
}

// Register records locate's symbol and metadata, overwriting any previous
// registration for the same locate. Reports whether this is the first
// registration for locate (used by the dispatcher to decide whether to
// emit SymbolAdded). Locates at or beyond book.MaxSymbols are silently
// ignored, matching the book manager's own range.
func (d *SymbolDirectory) Register(locate uint16, symbol book.Symbol, marketCategory, financialStatus byte) bool {
	if int(locate) >= book.MaxSymbols {
		return false
	}
	existed := d.present[locate]
	d.byLocate[locate] = SymbolInfo{
		Symbol:                   symbol,
		MarketCategory:           marketCategory,
		FinancialStatusIndicator: financialStatus,
		Active:                   true,
	}
	if !existed {
		d.present[locate] = true
		d.count++
	}
	d.bySymbol[symbol] = locate
	return !existed
}

// Info returns the registered info for locate, if any.
func (d *SymbolDirectory) Info(locate uint16) (SymbolInfo, bool) {
	if int(locate) >= book.MaxSymbols || !d.present[locate] {
		return SymbolInfo{}, false
	}
	return d.byLocate[locate], true
}

// Lookup returns the stock locate registered for symbol, if any.
func (d *SymbolDirectory) Lookup(symbol book.Symbol) (uint16, bool) {
	locate, ok := d.bySymbol[symbol]
	return locate, ok
}

// Len returns the number of registered symbols.
func (d *SymbolDirectory) Len() int { return d.count }
