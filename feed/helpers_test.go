package feed_test

import "github.com/nasdaqfeed/itchfeed/itch"

// Fixture builders construct decoded itch messages directly, bypassing the
// wire format, for tests that only need to exercise the dispatcher's
// message-to-book-op binding. The wire encoders at the bottom of this file
// serve the MoldUDP64 framing test and the package example, which exercise
// the decoder too.

func stockDirectoryMsg(locate uint16, sym string) itch.StockDirectoryMessage {
	var m itch.StockDirectoryMessage
	m.StockLocate = locate
	copy(m.Stock[:], sym)
	return m
}

func addOrderMsg(locate uint16, orderRef uint64, side byte, shares uint32, price uint32) itch.AddOrderMessage {
	var m itch.AddOrderMessage
	m.StockLocate = locate
	m.OrderReferenceNumber = orderRef
	m.BuySellIndicator = side
	m.Shares = shares
	m.Price = price
	return m
}

func orderExecutedMsg(locate uint16, orderRef uint64, executedShares uint32) itch.OrderExecutedMessage {
	var m itch.OrderExecutedMessage
	m.StockLocate = locate
	m.OrderReferenceNumber = orderRef
	m.ExecutedShares = executedShares
	return m
}

func orderExecutedWithPriceMsg(locate uint16, orderRef uint64, executedShares, execPrice uint32) itch.OrderExecutedWithPriceMessage {
	var m itch.OrderExecutedWithPriceMessage
	m.StockLocate = locate
	m.OrderReferenceNumber = orderRef
	m.ExecutedShares = executedShares
	m.ExecutionPrice = execPrice
	return m
}

func orderCancelMsg(locate uint16, orderRef uint64, cancelledShares uint32) itch.OrderCancelMessage {
	var m itch.OrderCancelMessage
	m.StockLocate = locate
	m.OrderReferenceNumber = orderRef
	m.CanceledShares = cancelledShares
	return m
}

func orderDeleteMsg(locate uint16, orderRef uint64) itch.OrderDeleteMessage {
	var m itch.OrderDeleteMessage
	m.StockLocate = locate
	m.OrderReferenceNumber = orderRef
	return m
}

func orderReplaceMsg(locate uint16, oldRef, newRef uint64, qty, price uint32) itch.OrderReplaceMessage {
	var m itch.OrderReplaceMessage
	m.StockLocate = locate
	m.OriginalOrderReferenceNumber = oldRef
	m.NewOrderReferenceNumber = newRef
	m.Shares = qty
	m.Price = price
	return m
}

func crossTradeMsg(locate uint16, shares uint64, price uint32, matchNumber uint64) itch.CrossTradeMessage {
	var m itch.CrossTradeMessage
	m.StockLocate = locate
	m.Shares = shares
	m.CrossPrice = price
	m.MatchNumber = matchNumber
	return m
}

func putBE16(b []byte, v uint16) { b[0] = byte(v >> 8); b[1] = byte(v) }

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func putBE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
}

// encodeAddOrderMessage builds the 36-byte wire encoding of type 'A'.
func encodeAddOrderMessage(locate uint16, orderRef uint64, side byte, shares, price uint32) []byte {
	b := make([]byte, 36)
	b[0] = 'A'
	putBE16(b[1:3], locate)
	putBE64(b[11:19], orderRef)
	b[19] = side
	putBE32(b[20:24], shares)
	copy(b[24:32], "TEST    ")
	putBE32(b[32:36], price)
	return b
}

// encodeOrderDeleteMessage builds the 19-byte wire encoding of type 'D'.
func encodeOrderDeleteMessage(locate uint16, orderRef uint64) []byte {
	b := make([]byte, 19)
	b[0] = 'D'
	putBE16(b[1:3], locate)
	putBE64(b[11:19], orderRef)
	return b
}
