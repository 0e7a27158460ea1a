package domain

import "time"

// MarketRecord is a raw row from the market-data source, before filtering.
type MarketRecord struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Instrument is a single entry of the reference exchange listing.
type Instrument struct {
	Symbol     string `json:"symbol"`
	QuoteAsset string `json:"quoteAsset"`
	Status     string `json:"status"`
}

const InstrumentStatusTrading = "TRADING"

// PairSet holds the pair symbols currently tradable on the reference exchange.
type PairSet map[string]struct{}

func (s PairSet) Contains(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

type Coin struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	IsTradable bool   `json:"is_tradable_on_binance_vs_usdc"`
}

// Snapshot is the full result of one refresh cycle. It is written to disk as a
// whole and fully replaced by the next successful refresh.
type Snapshot struct {
	TimestampUTC time.Time `json:"timestamp_utc"`
	Count        int       `json:"count"`
	Coins        []Coin    `json:"coins"`
}
