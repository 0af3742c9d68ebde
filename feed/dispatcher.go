// Package feed binds the itch decoder to the book package: it turns
// decoded ITCH messages into order book mutations and derives the
// SymbolAdded, Trade, and BBOUpdate events a downstream consumer sees.
package feed

import (
	"time"

	"golang.org/x/exp/mmap"

	"github.com/nasdaqfeed/itchfeed/book"
	"github.com/nasdaqfeed/itchfeed/itch"
)

// Dispatcher is the only place decoding, book mutation, and event emission
// meet. It implements itch.Handler, receiving every decoded message and
// binding it to a book.BookManager mutation, then deriving the three feed
// events from the result. A Dispatcher is single-threaded, like every
// component it wraps: callers that want to parallelize across symbols
// shard at the stock-locate boundary and run one Dispatcher per shard.
type Dispatcher struct {
	handler   Handler
	books     *book.BookManager
	directory *SymbolDirectory
	decoder   *itch.Decoder

	cfg    Config
	filter map[uint16]struct{}

	metrics Metrics
}

var _ itch.Handler = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher that delivers events to handler. A nil
// handler is permitted: messages still mutate the book and update stats
// and metrics, but no event is ever delivered (the BBO snapshot-before-
// mutate step is skipped entirely in that case, per the hot-path contract).
func NewDispatcher(handler Handler, cfg Config) *Dispatcher {
	d := &Dispatcher{
		handler:   handler,
		books:     book.NewBookManager(),
		directory: NewSymbolDirectory(),
		cfg:       cfg,
	}
	d.decoder = itch.NewDecoder(d)
	if len(cfg.SymbolFilter) > 0 {
		d.filter = make(map[uint16]struct{}, len(cfg.SymbolFilter))
		for _, locate := range cfg.SymbolFilter {
			d.filter[locate] = struct{}{}
		}
	}
	return d
}

// Process decodes raw ITCH messages from data, applying each to the book
// and emitting events. Returns the number of bytes consumed.
func (d *Dispatcher) Process(data []byte) int {
	if !d.cfg.MetricsEnabled {
		return d.decoder.DecodeStream(data)
	}
	consumed := 0
	for len(data) > 0 {
		start := time.Now()
		n, outcome := d.decoder.DecodeOne(data)
		d.metrics.ParseLatency.Record(time.Since(start))
		if outcome == itch.OutcomeIncomplete {
			break
		}
		data = data[n:]
		consumed += n
	}
	return consumed
}

// ProcessMoldUDP64 decodes one MoldUDP64 packet, applying each embedded
// message as Process would. Returns the number of messages decoded, not
// the number of bytes consumed.
func (d *Dispatcher) ProcessMoldUDP64(packet []byte) int {
	return d.decoder.DecodeMoldUDP64(packet)
}

// ProcessFile memory-maps path read-only, copies the whole mapped file into
// a heap buffer, and calls Process on that copy — the core's only
// filesystem interaction. Process does not run over the mapped pages
// themselves.
func (d *Dispatcher) ProcessFile(path string) (int, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil {
		return 0, err
	}
	return d.Process(data), nil
}

// Stats returns the decoder's parse statistics.
func (d *Dispatcher) Stats() itch.ParserStats { return d.decoder.Stats }

// Metrics returns a snapshot of the dispatcher's per-operation counters and
// latency histograms. Zero-valued if Config.MetricsEnabled was false.
func (d *Dispatcher) Metrics() Metrics { return d.metrics }

// Directory returns the symbol directory populated by Stock Directory
// messages.
func (d *Dispatcher) Directory() *SymbolDirectory { return d.directory }

// Book returns the order book for locate, materializing it on first
// reference, exactly as book.BookManager.Book does.
func (d *Dispatcher) Book(locate uint16) (*book.OrderBook, error) {
	return d.books.Book(locate)
}

// Warmup pre-touches the shared order pool and materializes a book to
// fault in pages and prime caches before real ingest begins.
func (d *Dispatcher) Warmup() { d.books.Warmup() }

// Clear resets every book, the parse statistics, and the metrics to their
// zero state. The symbol directory is left intact — symbol registrations
// persist for the life of a session.
func (d *Dispatcher) Clear() {
	d.books.Clear()
	d.decoder.Stats.Reset()
	d.metrics.Reset()
}

func (d *Dispatcher) allowed(locate uint16) bool {
	if d.filter == nil {
		return true
	}
	_, ok := d.filter[locate]
	return ok
}

// mutateBook runs mutate against b, snapshotting and diffing the BBO
// around it — but only when a handler is attached to observe the result —
// and, when metrics are enabled, timing the mutation into
// Metrics.BookUpdateLatency. This is the snapshot-only-when-needed pattern
// the hot-path contract requires.
func (d *Dispatcher) mutateBook(b *book.OrderBook, locate uint16, ts book.Timestamp, mutate func()) {
	snapshot := d.handler != nil
	var before book.BBO
	if snapshot {
		before = b.BBO()
	}
	if d.cfg.MetricsEnabled {
		start := time.Now()
		mutate()
		d.metrics.BookUpdateLatency.Record(time.Since(start))
	} else {
		mutate()
	}
	if snapshot {
		after := b.BBO()
		if after.BidPrice != before.BidPrice || after.AskPrice != before.AskPrice {
			d.handler.OnBBOUpdate(BBOUpdate{StockLocate: locate, Old: before, New: after, Timestamp: ts})
			if d.cfg.MetricsEnabled {
				d.metrics.BBOUpdates++
			}
		}
	}
}

func sideFromIndicator(indicator byte) book.Side {
	switch indicator {
	case 'B':
		return book.SideBuy
	case 'S':
		return book.SideSell
	default:
		return book.SideUnknown
	}
}

// --- itch.Handler ---

func (d *Dispatcher) OnSystemEventMessage(itch.SystemEventMessage) error { return nil }

func (d *Dispatcher) OnStockDirectoryMessage(msg itch.StockDirectoryMessage) error {
	if !d.allowed(msg.StockLocate) {
		return nil
	}
	symbol := book.Symbol(msg.Stock)
	added := d.directory.Register(msg.StockLocate, symbol, msg.MarketCategory, msg.FinancialStatusIndicator)
	if added && d.handler != nil {
		d.handler.OnSymbolAdded(SymbolAdded{StockLocate: msg.StockLocate, Symbol: symbol})
	}
	return nil
}

func (d *Dispatcher) OnStockTradingActionMessage(itch.StockTradingActionMessage) error { return nil }

func (d *Dispatcher) OnRegSHOMessage(itch.RegSHOMessage) error { return nil }

func (d *Dispatcher) OnMarketParticipantPositionMessage(itch.MarketParticipantPositionMessage) error {
	return nil
}

func (d *Dispatcher) OnMWCBDeclineMessage(itch.MWCBDeclineMessage) error { return nil }

func (d *Dispatcher) OnMWCBStatusMessage(itch.MWCBStatusMessage) error { return nil }

func (d *Dispatcher) OnIPOQuotingMessage(itch.IPOQuotingMessage) error { return nil }

func (d *Dispatcher) OnOperationalHaltMessage(itch.OperationalHaltMessage) error { return nil }

func (d *Dispatcher) applyAdd(h itch.Header, orderRef uint64, buySell byte, shares uint32, price uint32) error {
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	side := sideFromIndicator(buySell)
	ts := book.Timestamp(h.Timestamp)
	d.mutateBook(b, h.StockLocate, ts, func() {
		if _, err := b.AddOrder(book.OrderID(orderRef), side, book.Price(price), book.Quantity(shares), ts); err == nil {
			if d.cfg.MetricsEnabled {
				d.metrics.OrdersAdded++
			}
		}
	})
	return nil
}

func (d *Dispatcher) OnAddOrderMessage(msg itch.AddOrderMessage) error {
	return d.applyAdd(msg.Header, msg.OrderReferenceNumber, msg.BuySellIndicator, msg.Shares, msg.Price)
}

func (d *Dispatcher) OnAddOrderMPIDMessage(msg itch.AddOrderMPIDMessage) error {
	return d.applyAdd(msg.Header, msg.OrderReferenceNumber, msg.BuySellIndicator, msg.Shares, msg.Price)
}

func (d *Dispatcher) OnOrderExecutedMessage(msg itch.OrderExecutedMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	ts := book.Timestamp(h.Timestamp)
	orderID := book.OrderID(msg.OrderReferenceNumber)
	if resting, ok := b.Lookup(orderID); ok {
		if d.handler != nil {
			d.handler.OnTrade(Trade{
				StockLocate: h.StockLocate,
				Price:       resting.Price,
				Quantity:    book.Quantity(msg.ExecutedShares),
				OrderID:     orderID,
				MatchNumber: msg.MatchNumber,
				Side:        resting.Side,
				Timestamp:   ts,
			})
		}
		if d.cfg.MetricsEnabled {
			d.metrics.Trades++
		}
	}
	d.mutateBook(b, h.StockLocate, ts, func() {
		if executed := b.ExecuteOrder(orderID, book.Quantity(msg.ExecutedShares)); executed > 0 && d.cfg.MetricsEnabled {
			d.metrics.OrdersExecuted++
		}
	})
	return nil
}

func (d *Dispatcher) OnOrderExecutedWithPriceMessage(msg itch.OrderExecutedWithPriceMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	ts := book.Timestamp(h.Timestamp)
	orderID := book.OrderID(msg.OrderReferenceNumber)
	if resting, ok := b.Lookup(orderID); ok {
		if d.handler != nil {
			d.handler.OnTrade(Trade{
				StockLocate: h.StockLocate,
				Price:       book.Price(msg.ExecutionPrice),
				Quantity:    book.Quantity(msg.ExecutedShares),
				OrderID:     orderID,
				MatchNumber: msg.MatchNumber,
				Side:        resting.Side,
				Timestamp:   ts,
			})
		}
		if d.cfg.MetricsEnabled {
			d.metrics.Trades++
		}
	}
	d.mutateBook(b, h.StockLocate, ts, func() {
		if executed := b.ExecuteOrder(orderID, book.Quantity(msg.ExecutedShares)); executed > 0 && d.cfg.MetricsEnabled {
			d.metrics.OrdersExecuted++
		}
	})
	return nil
}

func (d *Dispatcher) OnOrderCancelMessage(msg itch.OrderCancelMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	ts := book.Timestamp(h.Timestamp)
	d.mutateBook(b, h.StockLocate, ts, func() {
		if cancelled := b.CancelOrder(book.OrderID(msg.OrderReferenceNumber), book.Quantity(msg.CanceledShares)); cancelled > 0 && d.cfg.MetricsEnabled {
			d.metrics.OrdersCancelled++
		}
	})
	return nil
}

func (d *Dispatcher) OnOrderDeleteMessage(msg itch.OrderDeleteMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	ts := book.Timestamp(h.Timestamp)
	d.mutateBook(b, h.StockLocate, ts, func() {
		if b.DeleteOrder(book.OrderID(msg.OrderReferenceNumber)) && d.cfg.MetricsEnabled {
			d.metrics.OrdersDeleted++
		}
	})
	return nil
}

func (d *Dispatcher) OnOrderReplaceMessage(msg itch.OrderReplaceMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	b, err := d.books.Book(h.StockLocate)
	if err != nil {
		return nil
	}
	ts := book.Timestamp(h.Timestamp)
	d.mutateBook(b, h.StockLocate, ts, func() {
		_, err := b.ReplaceOrder(
			book.OrderID(msg.OriginalOrderReferenceNumber),
			book.OrderID(msg.NewOrderReferenceNumber),
			book.Quantity(msg.Shares),
			book.Price(msg.Price),
			ts,
		)
		if err == nil && d.cfg.MetricsEnabled {
			d.metrics.OrdersReplaced++
		}
	})
	return nil
}

func (d *Dispatcher) OnTradeMessage(msg itch.TradeMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	if d.handler != nil {
		d.handler.OnTrade(Trade{
			StockLocate: h.StockLocate,
			Price:       book.Price(msg.Price),
			Quantity:    book.Quantity(msg.Shares),
			OrderID:     book.OrderID(msg.OrderReferenceNumber),
			MatchNumber: msg.MatchNumber,
			Side:        sideFromIndicator(msg.BuySellIndicator),
			Timestamp:   book.Timestamp(h.Timestamp),
		})
	}
	if d.cfg.MetricsEnabled {
		d.metrics.Trades++
	}
	return nil
}

// OnCrossTradeMessage emits a Trade with Side set to book.SideUnknown: the
// wire format carries no side indicator for Cross Trade, and synthesizing
// one would misrepresent the feed (see SPEC_FULL.md's open question
// decision).
func (d *Dispatcher) OnCrossTradeMessage(msg itch.CrossTradeMessage) error {
	h := msg.Header
	if !d.allowed(h.StockLocate) {
		return nil
	}
	if d.handler != nil {
		d.handler.OnTrade(Trade{
			StockLocate: h.StockLocate,
			Price:       book.Price(msg.CrossPrice),
			Quantity:    book.Quantity(msg.Shares),
			MatchNumber: msg.MatchNumber,
			Side:        book.SideUnknown,
			Timestamp:   book.Timestamp(h.Timestamp),
		})
	}
	if d.cfg.MetricsEnabled {
		d.metrics.Trades++
	}
	return nil
}

func (d *Dispatcher) OnBrokenTradeMessage(itch.BrokenTradeMessage) error { return nil }

func (d *Dispatcher) OnNOIIMessage(itch.NOIIMessage) error { return nil }

func (d *Dispatcher) OnRPIIMessage(itch.RPIIMessage) error { return nil }

func (d *Dispatcher) OnLULDAuctionCollarMessage(itch.LULDAuctionCollarMessage) error { return nil }

func (d *Dispatcher) OnUnknownMessage(itch.UnknownMessage) error { return nil }
