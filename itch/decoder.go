package itch

// Outcome classifies the result of a single decode attempt.
type Outcome int

const (
	// OutcomeMessage means a full message was decoded and routed to the handler.
	OutcomeMessage Outcome = iota
	// OutcomeIncomplete means the buffer does not yet hold a full next message.
	OutcomeIncomplete
	// OutcomeUnknownType means the type byte is not one of the 22 known variants.
	OutcomeUnknownType
)

// dispatchFuncs is a dense, type-byte-indexed jump table, built once at
// package init so DecodeOne selects the per-type decoder by array index
// rather than by a switch on the type byte.
var dispatchFuncs [256]func([]byte, Handler) error

func init() {
	dispatchFuncs['S'] = func(data []byte, h Handler) error { return h.OnSystemEventMessage(unmarshalSystemEventMessage(data)) }
	dispatchFuncs['R'] = func(data []byte, h Handler) error { return h.OnStockDirectoryMessage(unmarshalStockDirectoryMessage(data)) }
	dispatchFuncs['H'] = func(data []byte, h Handler) error { return h.OnStockTradingActionMessage(unmarshalStockTradingActionMessage(data)) }
	dispatchFuncs['Y'] = func(data []byte, h Handler) error { return h.OnRegSHOMessage(unmarshalRegSHOMessage(data)) }
	dispatchFuncs['L'] = func(data []byte, h Handler) error {
		return h.OnMarketParticipantPositionMessage(unmarshalMarketParticipantPositionMessage(data))
	}
	dispatchFuncs['V'] = func(data []byte, h Handler) error { return h.OnMWCBDeclineMessage(unmarshalMWCBDeclineMessage(data)) }
	dispatchFuncs['W'] = func(data []byte, h Handler) error { return h.OnMWCBStatusMessage(unmarshalMWCBStatusMessage(data)) }
	dispatchFuncs['K'] = func(data []byte, h Handler) error { return h.OnIPOQuotingMessage(unmarshalIPOQuotingMessage(data)) }
	dispatchFuncs['h'] = func(data []byte, h Handler) error { return h.OnOperationalHaltMessage(unmarshalOperationalHaltMessage(data)) }
	dispatchFuncs['A'] = func(data []byte, h Handler) error { return h.OnAddOrderMessage(unmarshalAddOrderMessage(data)) }
	dispatchFuncs['F'] = func(data []byte, h Handler) error { return h.OnAddOrderMPIDMessage(unmarshalAddOrderMPIDMessage(data)) }
	dispatchFuncs['E'] = func(data []byte, h Handler) error { return h.OnOrderExecutedMessage(unmarshalOrderExecutedMessage(data)) }
	dispatchFuncs['C'] = func(data []byte, h Handler) error {
		return h.OnOrderExecutedWithPriceMessage(unmarshalOrderExecutedWithPriceMessage(data))
	}
	dispatchFuncs['X'] = func(data []byte, h Handler) error { return h.OnOrderCancelMessage(unmarshalOrderCancelMessage(data)) }
	dispatchFuncs['D'] = func(data []byte, h Handler) error { return h.OnOrderDeleteMessage(unmarshalOrderDeleteMessage(data)) }
	dispatchFuncs['U'] = func(data []byte, h Handler) error { return h.OnOrderReplaceMessage(unmarshalOrderReplaceMessage(data)) }
	dispatchFuncs['P'] = func(data []byte, h Handler) error { return h.OnTradeMessage(unmarshalTradeMessage(data)) }
	dispatchFuncs['Q'] = func(data []byte, h Handler) error { return h.OnCrossTradeMessage(unmarshalCrossTradeMessage(data)) }
	dispatchFuncs['B'] = func(data []byte, h Handler) error { return h.OnBrokenTradeMessage(unmarshalBrokenTradeMessage(data)) }
	dispatchFuncs['I'] = func(data []byte, h Handler) error { return h.OnNOIIMessage(unmarshalNOIIMessage(data)) }
	dispatchFuncs['N'] = func(data []byte, h Handler) error { return h.OnRPIIMessage(unmarshalRPIIMessage(data)) }
	dispatchFuncs['J'] = func(data []byte, h Handler) error {
		return h.OnLULDAuctionCollarMessage(unmarshalLULDAuctionCollarMessage(data))
	}
}

// Decoder drives decode_one/decode_stream against a single Handler,
// accumulating ParserStats as it goes. It holds no book state; it is purely
// the wire-to-typed-message boundary.
type Decoder struct {
	Handler Handler
	Stats   ParserStats
}

// NewDecoder creates a Decoder bound to the given handler.
func NewDecoder(h Handler) *Decoder {
	return &Decoder{Handler: h}
}

// DecodeOne decodes at most one message from the front of data.
//
//   - If data is shorter than the declared size of its first byte's type
//     (or empty), it returns (0, OutcomeIncomplete) without consuming anything.
//   - If the type byte names no known variant, it consumes exactly 1 byte,
//     routes an UnknownMessage to the handler, and returns (1, OutcomeUnknownType).
//   - Otherwise it consumes exactly SizeOf(type) bytes and returns
//     (size, OutcomeMessage).
func (d *Decoder) DecodeOne(data []byte) (int, Outcome) {
	if len(data) == 0 {
		return 0, OutcomeIncomplete
	}
	t := data[0]
	size := SizeOf(t)
	if size == 0 {
		d.Stats.ParseErrors++
		d.Stats.TypeCounts[t]++
		if d.Handler != nil {
			_ = d.Handler.OnUnknownMessage(UnknownMessage{Type: t})
		}
		return 1, OutcomeUnknownType
	}
	if len(data) < size {
		return 0, OutcomeIncomplete
	}
	msg := data[:size]
	if fn := dispatchFuncs[t]; fn != nil && d.Handler != nil {
		_ = fn(msg, d.Handler)
	}
	d.Stats.MessagesParsed++
	d.Stats.BytesProcessed += uint64(size)
	d.Stats.TypeCounts[t]++
	return size, OutcomeMessage
}

// DecodeStream repeatedly applies DecodeOne from the front of data until
// either the buffer is exhausted or the tail holds a truncated message.
// It returns the number of bytes consumed.
func (d *Decoder) DecodeStream(data []byte) int {
	consumed := 0
	for len(data) > 0 {
		n, outcome := d.DecodeOne(data)
		if outcome == OutcomeIncomplete {
			break
		}
		data = data[n:]
		consumed += n
	}
	return consumed
}
