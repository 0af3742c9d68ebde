// Command rps replays a synthetic ITCH 5.0 message stream through
// feed.Dispatcher and reports throughput, mirroring the teacher's own
// synthetic-load harness but generating wire bytes for the decoder to
// parse rather than constructing matching-engine orders directly.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nasdaqfeed/itchfeed/feed"
)

func main() {
	var symCount, msgCount int
	flag.IntVar(&symCount, "s", 10, "Symbols count")
	flag.IntVar(&msgCount, "i", 5_000_000, "Input message count")
	flag.Parse()

	counter := &Counter{}
	dispatcher := feed.NewDispatcher(counter, feed.Config{MetricsEnabled: true})

	var locates []uint16
	for i := 0; i < symCount; i++ {
		locate := uint16(i + 1)
		locates = append(locates, locate)
		symbol := fmt.Sprintf("SYM%04d ", i+1)
		dispatcher.Process(genStockDirectory(locate, symbol))
	}

	fmt.Println("generating input")
	open := make(map[uint16][]uint64, symCount)
	var nextOrderID uint64
	var messages [][]byte
	for i := 0; i < msgCount; i++ {
		locate := locates[rand.IntN(len(locates))]
		ts := uint64(i) * 1000

		switch {
		case len(open[locate]) > 0 && rand.IntN(10) < 3:
			ids := open[locate]
			idx := rand.IntN(len(ids))
			id := ids[idx]
			switch rand.IntN(3) {
			case 0:
				messages = append(messages, genOrderExecuted(locate, id, randomShares(), uint64(i), ts))
			case 1:
				messages = append(messages, genOrderCancel(locate, id, randomShares(), ts))
			default:
				messages = append(messages, genOrderDelete(locate, id, ts))
			}
			open[locate] = append(ids[:idx], ids[idx+1:]...)
		default:
			nextOrderID++
			messages = append(messages, genAddOrder(locate, nextOrderID, randomSide(), randomShares(), randomPrice(1, 500), ts))
			open[locate] = append(open[locate], nextOrderID)
		}
	}

	fmt.Println("start execution")
	start := time.Now()
	for _, msg := range messages {
		dispatcher.Process(msg)
	}
	elapsed := time.Since(start)

	counter.PrintStatistics(dispatcher.Metrics())
	rps := float64(msgCount) * float64(time.Second) / float64(elapsed)
	fmt.Printf("MPS: %.5f\n", rps)
}
