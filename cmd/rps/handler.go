package main

import (
	"fmt"
	"sync/atomic"

	"github.com/nasdaqfeed/itchfeed/feed"
)

// Counter is a feed.Handler that tallies events atomically, the same
// counting-handler shape the teacher's own throughput harness uses for its
// matching engine events.
type Counter struct {
	symbolsAdded uint64
	trades       uint64
	bboUpdates   uint64
}

var _ feed.Handler = (*Counter)(nil)

func (c *Counter) OnSymbolAdded(feed.SymbolAdded) { atomic.AddUint64(&c.symbolsAdded, 1) }
func (c *Counter) OnTrade(feed.Trade)             { atomic.AddUint64(&c.trades, 1) }
func (c *Counter) OnBBOUpdate(feed.BBOUpdate)     { atomic.AddUint64(&c.bboUpdates, 1) }

// PrintStatistics prints the event tallies plus the dispatcher's own
// per-operation metrics.
func (c *Counter) PrintStatistics(m feed.Metrics) {
	fmt.Printf("FEED HANDLER:\n")
	fmt.Printf("Symbols added      %13d\n", c.symbolsAdded)
	fmt.Printf("Trades             %13d\n", c.trades)
	fmt.Printf("BBO updates        %13d\n", c.bboUpdates)
	fmt.Printf("DISPATCHER METRICS:\n")
	fmt.Printf("Orders added       %13d\n", m.OrdersAdded)
	fmt.Printf("Orders executed    %13d\n", m.OrdersExecuted)
	fmt.Printf("Orders cancelled   %13d\n", m.OrdersCancelled)
	fmt.Printf("Orders deleted     %13d\n", m.OrdersDeleted)
	fmt.Printf("Orders replaced    %13d\n", m.OrdersReplaced)
	fmt.Printf("Parse p50/p99      %13s / %s\n", m.ParseLatency.P50(), m.ParseLatency.P99())
	fmt.Printf("Book update p50/p99 %12s / %s\n", m.BookUpdateLatency.P50(), m.BookUpdateLatency.P99())
}
