package book

import (
	"sync"

	"github.com/nasdaqfeed/itchfeed/types/list"
)

// MaxSymbols bounds the book manager's dense array. ITCH sessions hand out
// 16-bit stock locates but real sessions use a small fraction of that
// range; 8192 comfortably covers a full listed-and-ETP universe.
const MaxSymbols = 8192

// BookManager holds one OrderBook per stock locate, sharing a single order
// pool (and price-level queue-element pool) across every symbol so that
// slots freed by one symbol's activity are reused by another's. Books are
// materialized lazily on first reference.
type BookManager struct {
	books       [MaxSymbols]*OrderBook
	pool        *OrderPool
	elementPool *sync.Pool
}

// NewBookManager creates a manager with an empty shared pool.
func NewBookManager() *BookManager {
	return &BookManager{
		pool:        NewOrderPool(),
		elementPool: &sync.Pool{New: func() any { return new(list.Element[*Order]) }},
	}
}

// Book returns the book for locate, materializing it on first reference.
// Returns ErrStockLocateOutOfRange if locate >= MaxSymbols.
func (m *BookManager) Book(locate uint16) (*OrderBook, error) {
	if int(locate) >= MaxSymbols {
		return nil, ErrStockLocateOutOfRange
	}
	b := m.books[locate]
	if b == nil {
		b = newOrderBook(locate, m.pool, m.elementPool)
		m.books[locate] = b
	}
	return b, nil
}

// Pool returns the shared order pool, primarily for metrics/warmup callers.
func (m *BookManager) Pool() *OrderPool { return m.pool }

// Clear clears every materialized book in place.
func (m *BookManager) Clear() {
	for _, b := range m.books {
		if b != nil {
			b.Clear()
		}
	}
}

// Warmup pre-touches the shared pool's first block and materializes book 1
// (stock locate 0 is reserved for system-wide messages) to fault in pages
// and prime caches before real ingest begins.
func (m *BookManager) Warmup() {
	m.pool.Warmup()
	_, _ = m.Book(1)
}
