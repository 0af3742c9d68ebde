package itch

// ParserStats accumulates decode-time counters. Updated by the decoder
// itself, never by the handler, so that a handler that declines to look at
// statistics still gets them for free.
type ParserStats struct {
	MessagesParsed uint64
	BytesProcessed uint64
	ParseErrors    uint64
	TypeCounts     [256]uint64
}

// Reset zeroes every counter.
func (s *ParserStats) Reset() {
	*s = ParserStats{}
}
