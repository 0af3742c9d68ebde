package feed_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/nasdaqfeed/itchfeed/book"
	"github.com/nasdaqfeed/itchfeed/feed"
	mockfeed "github.com/nasdaqfeed/itchfeed/feed/mocks"
)

func symbol(s string) book.Symbol {
	var sym book.Symbol
	copy(sym[:], s)
	return sym
}

// registerAAPL applies a Stock Directory message registering locate=1 as
// "AAPL    ", the fixture every scenario below builds on.
func registerAAPL(t *testing.T, d *feed.Dispatcher) {
	t.Helper()
	require.True(t, d.Directory() != nil)
	err := d.OnStockDirectoryMessage(stockDirectoryMsg(1, "AAPL    "))
	require.NoError(t, err)
}

func TestScenario1_SimpleBBOFormation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).Times(2)

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)

	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))

	b, err := d.Book(1)
	require.NoError(t, err)
	bbo := b.BBO()
	require.Equal(t, book.Price(1_500_000), bbo.BidPrice)
	require.Equal(t, book.Quantity(100), bbo.BidQty)
	require.Equal(t, book.Price(1_501_000), bbo.AskPrice)
	require.Equal(t, book.Quantity(150), bbo.AskQty)
	require.Equal(t, book.Price(1_000), bbo.AskPrice-bbo.BidPrice)
	require.Equal(t, book.Price(1_500_500), (bbo.BidPrice+bbo.AskPrice)/2)
}

func TestScenario2_PartialExecutionPreservesLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).Times(2)
	h.EXPECT().OnTrade(feed.Trade{
		StockLocate: 1,
		Price:       1_500_000,
		Quantity:    40,
		OrderID:     1001,
		Side:        book.SideBuy,
	})

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))

	require.NoError(t, d.OnOrderExecutedMessage(orderExecutedMsg(1, 1001, 40)))

	b, err := d.Book(1)
	require.NoError(t, err)
	bbo := b.BBO()
	require.Equal(t, book.Price(1_500_000), bbo.BidPrice)
	require.Equal(t, book.Quantity(60), bbo.BidQty)

	depth := b.BidDepth(1)
	require.Len(t, depth, 1)
	require.Equal(t, 1, depth[0].OrderCount)

	order, ok := b.Lookup(1001)
	require.True(t, ok)
	require.Equal(t, book.Quantity(60), order.Quantity)
}

func TestScenario3_FullExecutionClearsLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).Times(3)
	h.EXPECT().OnTrade(gomock.Any()).Times(2)

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))
	require.NoError(t, d.OnOrderExecutedMessage(orderExecutedMsg(1, 1001, 40)))
	require.NoError(t, d.OnOrderExecutedMessage(orderExecutedMsg(1, 1001, 60)))

	b, err := d.Book(1)
	require.NoError(t, err)
	bbo := b.BBO()
	require.False(t, bbo.HasBid())
	require.Empty(t, b.BidDepth(10))

	_, ok := b.Lookup(1001)
	require.False(t, ok)
}

func TestScenario4_ExecutedWithPriceReportsExecutionPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).Times(2)
	h.EXPECT().OnTrade(feed.Trade{
		StockLocate: 1,
		Price:       1_500_500,
		Quantity:    50,
		OrderID:     2001,
		Side:        book.SideSell,
	})

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))

	require.NoError(t, d.OnOrderExecutedWithPriceMessage(orderExecutedWithPriceMsg(1, 2001, 50, 1_500_500)))

	b, err := d.Book(1)
	require.NoError(t, err)
	bbo := b.BBO()
	require.Equal(t, book.Price(1_501_000), bbo.AskPrice)
	require.Equal(t, book.Quantity(100), bbo.AskQty)
}

func TestScenario5_ReplaceChangesPriceLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).AnyTimes()

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))

	require.NoError(t, d.OnOrderReplaceMessage(orderReplaceMsg(1, 1001, 1002, 200, 1_502_000)))

	b, err := d.Book(1)
	require.NoError(t, err)

	_, ok := b.Lookup(1001)
	require.False(t, ok)

	order, ok := b.Lookup(1002)
	require.True(t, ok)
	require.Equal(t, book.SideBuy, order.Side)
	require.Equal(t, book.Price(1_502_000), order.Price)
	require.Equal(t, book.Quantity(200), order.Quantity)

	bbo := b.BBO()
	require.True(t, bbo.HasBid())
	require.True(t, bbo.HasAsk())
}

func TestScenario6_DuplicateIDRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnSymbolAdded(gomock.Any())
	h.EXPECT().OnBBOUpdate(gomock.Any()).Times(1)

	d := feed.NewDispatcher(h, feed.Config{})
	registerAAPL(t, d)

	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 3001, 'B', 10, 1_000_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 3001, 'B', 20, 1_000_000)))

	b, err := d.Book(1)
	require.NoError(t, err)
	require.Equal(t, 1, b.OrderCount())
}

func TestScenario7_MoldUDP64Framing(t *testing.T) {
	d := feed.NewDispatcher(nil, feed.Config{})

	addMsg := encodeAddOrderMessage(1, 1001, 'B', 100, 1_500_000)
	deleteMsg := encodeOrderDeleteMessage(1, 1001)

	packet := make([]byte, 20)
	packet[18] = 0
	packet[19] = 2
	packet = append(packet, byte(len(addMsg)>>8), byte(len(addMsg)))
	packet = append(packet, addMsg...)
	packet = append(packet, byte(len(deleteMsg)>>8), byte(len(deleteMsg)))
	packet = append(packet, deleteMsg...)
	packet = append(packet, 0xFF, 0xFF, 0xFF) // trailing junk, must be ignored

	messages := d.ProcessMoldUDP64(packet)
	require.Equal(t, 2, messages)
	require.Equal(t, uint64(2), d.Stats().MessagesParsed)
}

func TestSymbolFilterBypassesBookAndEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	// Locate 1 is outside the filter: no SymbolAdded, no BBOUpdate.

	d := feed.NewDispatcher(h, feed.Config{SymbolFilter: []uint16{2}})
	require.NoError(t, d.OnStockDirectoryMessage(stockDirectoryMsg(1, "AAPL    ")))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))

	b, err := d.Book(1)
	require.NoError(t, err)
	require.Equal(t, 0, b.OrderCount())
}

func TestCrossTradeSideIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mockfeed.NewMockHandler(ctrl)
	h.EXPECT().OnTrade(feed.Trade{
		StockLocate: 1,
		Price:       1_500_000,
		Quantity:    500,
		MatchNumber: 77,
		Side:        book.SideUnknown,
	})

	d := feed.NewDispatcher(h, feed.Config{})
	require.NoError(t, d.OnCrossTradeMessage(crossTradeMsg(1, 500, 1_500_000, 77)))
}

func TestMetricsTrackOperationCounts(t *testing.T) {
	d := feed.NewDispatcher(nil, feed.Config{MetricsEnabled: true})
	require.NoError(t, d.OnStockDirectoryMessage(stockDirectoryMsg(1, "AAPL    ")))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 1001, 'B', 100, 1_500_000)))
	require.NoError(t, d.OnAddOrderMessage(addOrderMsg(1, 2001, 'S', 150, 1_501_000)))
	require.NoError(t, d.OnOrderCancelMessage(orderCancelMsg(1, 1001, 10)))
	require.NoError(t, d.OnOrderDeleteMessage(orderDeleteMsg(1, 2001)))

	m := d.Metrics()
	require.EqualValues(t, 2, m.OrdersAdded)
	require.EqualValues(t, 1, m.OrdersCancelled)
	require.EqualValues(t, 1, m.OrdersDeleted)
}
