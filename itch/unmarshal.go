package itch

// Per-type decode functions. Each assumes the caller has already validated
// len(data) == SizeOf(data[0]) (DecodeOne does this once, so these never
// re-check); they read fields by explicit offset, never by reinterpreting
// the byte slice as a struct, to stay free of alignment and aliasing
// assumptions.

func header(data []byte) Header {
	return Header{
		StockLocate:    be16(data[1:3]),
		TrackingNumber: be16(data[3:5]),
		Timestamp:      Timestamp(be48(data[5:11])),
	}
}

func unmarshalSystemEventMessage(data []byte) SystemEventMessage {
	return SystemEventMessage{
		Header:    header(data),
		EventCode: data[11],
	}
}

func unmarshalStockDirectoryMessage(data []byte) StockDirectoryMessage {
	var msg StockDirectoryMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.MarketCategory = data[19]
	msg.FinancialStatusIndicator = data[20]
	msg.RoundLotSize = be32(data[21:25])
	msg.RoundLotsOnly = data[25]
	msg.IssueClassification = data[26]
	copy(msg.IssueSubType[:], data[27:29])
	msg.Authenticity = data[29]
	msg.ShortSaleThresholdIndicator = data[30]
	msg.IPOFlag = data[31]
	msg.LULDReferencePriceTier = data[32]
	msg.ETPFlag = data[33]
	msg.ETPLeverageFactor = be32(data[34:38])
	msg.InverseIndicator = data[38]
	return msg
}

func unmarshalStockTradingActionMessage(data []byte) StockTradingActionMessage {
	var msg StockTradingActionMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.TradingState = data[19]
	msg.Reserved = data[20]
	msg.Reason = data[21]
	return msg
}

func unmarshalRegSHOMessage(data []byte) RegSHOMessage {
	var msg RegSHOMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.RegSHOAction = data[19]
	return msg
}

func unmarshalMarketParticipantPositionMessage(data []byte) MarketParticipantPositionMessage {
	var msg MarketParticipantPositionMessage
	msg.Header = header(data)
	copy(msg.MPID[:], data[11:15])
	copy(msg.Stock[:], data[15:23])
	msg.PrimaryMarketMaker = data[23]
	msg.MarketMakerMode = data[24]
	msg.MarketParticipantState = data[25]
	return msg
}

func unmarshalMWCBDeclineMessage(data []byte) MWCBDeclineMessage {
	var msg MWCBDeclineMessage
	msg.Header = header(data)
	msg.Level1 = be64(data[11:19])
	msg.Level2 = be64(data[19:27])
	msg.Level3 = be64(data[27:35])
	return msg
}

func unmarshalMWCBStatusMessage(data []byte) MWCBStatusMessage {
	return MWCBStatusMessage{
		Header:        header(data),
		BreachedLevel: data[11],
	}
}

func unmarshalIPOQuotingMessage(data []byte) IPOQuotingMessage {
	var msg IPOQuotingMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.IPOReleaseTime = be32(data[19:23])
	msg.IPOReleaseQualifier = data[23]
	msg.IPOPrice = be32(data[24:28])
	return msg
}

func unmarshalOperationalHaltMessage(data []byte) OperationalHaltMessage {
	var msg OperationalHaltMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.MarketCode = data[19]
	msg.OperationalHaltAction = data[20]
	return msg
}

func unmarshalAddOrderMessage(data []byte) AddOrderMessage {
	var msg AddOrderMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.BuySellIndicator = data[19]
	msg.Shares = be32(data[20:24])
	copy(msg.Stock[:], data[24:32])
	msg.Price = be32(data[32:36])
	return msg
}

func unmarshalAddOrderMPIDMessage(data []byte) AddOrderMPIDMessage {
	var msg AddOrderMPIDMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.BuySellIndicator = data[19]
	msg.Shares = be32(data[20:24])
	copy(msg.Stock[:], data[24:32])
	msg.Price = be32(data[32:36])
	copy(msg.Attribution[:], data[36:40])
	return msg
}

func unmarshalOrderExecutedMessage(data []byte) OrderExecutedMessage {
	var msg OrderExecutedMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.ExecutedShares = be32(data[19:23])
	msg.MatchNumber = be64(data[23:31])
	return msg
}

func unmarshalOrderExecutedWithPriceMessage(data []byte) OrderExecutedWithPriceMessage {
	var msg OrderExecutedWithPriceMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.ExecutedShares = be32(data[19:23])
	msg.MatchNumber = be64(data[23:31])
	msg.Printable = data[31]
	msg.ExecutionPrice = be32(data[32:36])
	return msg
}

func unmarshalOrderCancelMessage(data []byte) OrderCancelMessage {
	var msg OrderCancelMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.CanceledShares = be32(data[19:23])
	return msg
}

func unmarshalOrderDeleteMessage(data []byte) OrderDeleteMessage {
	return OrderDeleteMessage{
		Header:               header(data),
		OrderReferenceNumber: be64(data[11:19]),
	}
}

func unmarshalOrderReplaceMessage(data []byte) OrderReplaceMessage {
	var msg OrderReplaceMessage
	msg.Header = header(data)
	msg.OriginalOrderReferenceNumber = be64(data[11:19])
	msg.NewOrderReferenceNumber = be64(data[19:27])
	msg.Shares = be32(data[27:31])
	msg.Price = be32(data[31:35])
	return msg
}

func unmarshalTradeMessage(data []byte) TradeMessage {
	var msg TradeMessage
	msg.Header = header(data)
	msg.OrderReferenceNumber = be64(data[11:19])
	msg.BuySellIndicator = data[19]
	msg.Shares = be32(data[20:24])
	copy(msg.Stock[:], data[24:32])
	msg.Price = be32(data[32:36])
	msg.MatchNumber = be64(data[36:44])
	return msg
}

func unmarshalCrossTradeMessage(data []byte) CrossTradeMessage {
	var msg CrossTradeMessage
	msg.Header = header(data)
	msg.Shares = be64(data[11:19])
	copy(msg.Stock[:], data[19:27])
	msg.CrossPrice = be32(data[27:31])
	msg.MatchNumber = be64(data[31:39])
	msg.CrossType = data[39]
	return msg
}

func unmarshalBrokenTradeMessage(data []byte) BrokenTradeMessage {
	return BrokenTradeMessage{
		Header:      header(data),
		MatchNumber: be64(data[11:19]),
	}
}

func unmarshalNOIIMessage(data []byte) NOIIMessage {
	var msg NOIIMessage
	msg.Header = header(data)
	msg.PairedShares = be64(data[11:19])
	msg.ImbalanceShares = be64(data[19:27])
	msg.ImbalanceDirection = data[27]
	copy(msg.Stock[:], data[28:36])
	msg.FarPrice = be32(data[36:40])
	msg.NearPrice = be32(data[40:44])
	msg.CurrentReferencePrice = be32(data[44:48])
	msg.CrossType = data[48]
	msg.PriceVariationIndicator = data[49]
	return msg
}

func unmarshalRPIIMessage(data []byte) RPIIMessage {
	var msg RPIIMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.InterestFlag = data[19]
	return msg
}

func unmarshalLULDAuctionCollarMessage(data []byte) LULDAuctionCollarMessage {
	var msg LULDAuctionCollarMessage
	msg.Header = header(data)
	copy(msg.Stock[:], data[11:19])
	msg.AuctionCollarReferencePrice = be32(data[19:23])
	msg.UpperAuctionCollarPrice = be32(data[23:27])
	msg.LowerAuctionCollarPrice = be32(data[27:31])
	msg.AuctionCollarExtension = be32(data[31:35])
	return msg
}
