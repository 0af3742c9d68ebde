package itch

// Timestamp is nanoseconds since midnight, widened from ITCH's 48-bit wire
// field. Kept as a plain integer rather than time.Time: the wire value has
// no date component, and the hot path must not allocate or call into the
// time package's calendar math.
type Timestamp uint64

// Header is the common prefix of every ITCH message decoded here, system
// event messages included: stock locate, tracking number, and timestamp at
// offsets 1..11.
type Header struct {
	StockLocate    uint16
	TrackingNumber uint16
	Timestamp      Timestamp
}

type SystemEventMessage struct {
	Header
	EventCode byte
}

type StockDirectoryMessage struct {
	Header
	Stock                       [8]byte
	MarketCategory              byte
	FinancialStatusIndicator    byte
	RoundLotSize                uint32
	RoundLotsOnly               byte
	IssueClassification         byte
	IssueSubType                [2]byte
	Authenticity                byte
	ShortSaleThresholdIndicator byte
	IPOFlag                     byte
	LULDReferencePriceTier      byte
	ETPFlag                     byte
	ETPLeverageFactor           uint32
	InverseIndicator            byte
}

type StockTradingActionMessage struct {
	Header
	Stock        [8]byte
	TradingState byte
	Reserved     byte
	Reason       byte
}

type RegSHOMessage struct {
	Header
	Stock        [8]byte
	RegSHOAction byte
}

type MarketParticipantPositionMessage struct {
	Header
	MPID                   [4]byte
	Stock                  [8]byte
	PrimaryMarketMaker     byte
	MarketMakerMode        byte
	MarketParticipantState byte
}

type MWCBDeclineMessage struct {
	Header
	Level1 uint64
	Level2 uint64
	Level3 uint64
}

type MWCBStatusMessage struct {
	Header
	BreachedLevel byte
}

type IPOQuotingMessage struct {
	Header
	Stock               [8]byte
	IPOReleaseTime      uint32
	IPOReleaseQualifier byte
	IPOPrice            uint32
}

// OperationalHaltMessage is type 'h', absent from older ITCH feeds but part
// of the full ITCH 5.0 message set.
type OperationalHaltMessage struct {
	Header
	Stock                 [8]byte
	MarketCode            byte
	OperationalHaltAction byte
}

type AddOrderMessage struct {
	Header
	OrderReferenceNumber uint64
	BuySellIndicator     byte
	Shares               uint32
	Stock                [8]byte
	Price                uint32
}

type AddOrderMPIDMessage struct {
	Header
	OrderReferenceNumber uint64
	BuySellIndicator     byte
	Shares               uint32
	Stock                [8]byte
	Price                uint32
	Attribution          [4]byte
}

type OrderExecutedMessage struct {
	Header
	OrderReferenceNumber uint64
	ExecutedShares       uint32
	MatchNumber          uint64
}

type OrderExecutedWithPriceMessage struct {
	Header
	OrderReferenceNumber uint64
	ExecutedShares       uint32
	MatchNumber          uint64
	Printable            byte
	ExecutionPrice       uint32
}

type OrderCancelMessage struct {
	Header
	OrderReferenceNumber uint64
	CanceledShares       uint32
}

type OrderDeleteMessage struct {
	Header
	OrderReferenceNumber uint64
}

type OrderReplaceMessage struct {
	Header
	OriginalOrderReferenceNumber uint64
	NewOrderReferenceNumber      uint64
	Shares                       uint32
	Price                        uint32
}

type TradeMessage struct {
	Header
	OrderReferenceNumber uint64
	BuySellIndicator     byte
	Shares               uint32
	Stock                [8]byte
	Price                uint32
	MatchNumber          uint64
}

// CrossTradeMessage (type 'Q') carries no side indicator on the wire.
type CrossTradeMessage struct {
	Header
	Shares      uint64
	Stock       [8]byte
	CrossPrice  uint32
	MatchNumber uint64
	CrossType   byte
}

type BrokenTradeMessage struct {
	Header
	MatchNumber uint64
}

type NOIIMessage struct {
	Header
	PairedShares            uint64
	ImbalanceShares         uint64
	ImbalanceDirection      byte
	Stock                   [8]byte
	FarPrice                uint32
	NearPrice               uint32
	CurrentReferencePrice   uint32
	CrossType               byte
	PriceVariationIndicator byte
}

type RPIIMessage struct {
	Header
	Stock        [8]byte
	InterestFlag byte
}

type LULDAuctionCollarMessage struct {
	Header
	Stock                       [8]byte
	AuctionCollarReferencePrice uint32
	UpperAuctionCollarPrice     uint32
	LowerAuctionCollarPrice     uint32
	AuctionCollarExtension      uint32
}

// UnknownMessage is produced when the type byte is not one of the 22 known
// variants. Only the type byte itself was consumed from the stream.
type UnknownMessage struct {
	Type byte
}
