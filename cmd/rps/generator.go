package main

import "math/rand/v2"

// The functions below build raw ITCH 5.0 wire messages, the synthetic
// message generator the spec treats as an external collaborator to the
// core (fed into feed.Dispatcher.Process exactly like a real capture
// would be). Field layout mirrors itch/unmarshal.go byte-for-byte.

func putBE16(b []byte, v uint16) { b[0] = byte(v >> 8); b[1] = byte(v) }

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func putBE48(b []byte, v uint64) {
	for i := 0; i < 6; i++ {
		b[i] = byte(v >> (40 - 8*i))
	}
}

func putBE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
}

func header(b []byte, typ byte, locate uint16, ts uint64) {
	b[0] = typ
	putBE16(b[1:3], locate)
	putBE16(b[3:5], 0)
	putBE48(b[5:11], ts)
}

func genStockDirectory(locate uint16, symbol string) []byte {
	b := make([]byte, 39)
	header(b, 'R', locate, 0)
	copy(b[11:19], symbol)
	b[19] = 'Q' // market category: NASDAQ Global Select
	b[20] = 'N' // financial status: normal
	return b
}

func genAddOrder(locate uint16, orderID uint64, side byte, shares, price uint32, ts uint64) []byte {
	b := make([]byte, 36)
	header(b, 'A', locate, ts)
	putBE64(b[11:19], orderID)
	b[19] = side
	putBE32(b[20:24], shares)
	copy(b[24:32], "SYNTH   ")
	putBE32(b[32:36], price)
	return b
}

func genOrderExecuted(locate uint16, orderID uint64, shares uint32, matchNum uint64, ts uint64) []byte {
	b := make([]byte, 31)
	header(b, 'E', locate, ts)
	putBE64(b[11:19], orderID)
	putBE32(b[19:23], shares)
	putBE64(b[23:31], matchNum)
	return b
}

func genOrderCancel(locate uint16, orderID uint64, shares uint32, ts uint64) []byte {
	b := make([]byte, 23)
	header(b, 'X', locate, ts)
	putBE64(b[11:19], orderID)
	putBE32(b[19:23], shares)
	return b
}

func genOrderDelete(locate uint16, orderID uint64, ts uint64) []byte {
	b := make([]byte, 19)
	header(b, 'D', locate, ts)
	putBE64(b[11:19], orderID)
	return b
}

// randomPrice returns a 4-decimal fixed-point price in [low, high] dollars.
func randomPrice(low, high float64) uint32 {
	dollars := rand.Float64()*(high-low) + low
	return uint32(dollars * 10000)
}

func randomShares() uint32 {
	return uint32(1+rand.IntN(500)) * 10
}

func randomSide() byte {
	if rand.IntN(2) == 0 {
		return 'B'
	}
	return 'S'
}
