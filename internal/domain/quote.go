package domain

type PriceSource string

const (
	// SourcePrimary means the quote came from the reference exchange.
	SourcePrimary PriceSource = "primary"
	// SourceFallback means the quote came from the market-data source without
	// the exchange ever being asked.
	SourceFallback PriceSource = "fallback"
	// SourcePrimaryWithFallback means the exchange was asked first, yielded no
	// usable price, and the market-data source answered instead.
	SourcePrimaryWithFallback PriceSource = "primary-with-fallback"
)

// PriceQuote is the result of one price resolution. It is never persisted.
type PriceQuote struct {
	Symbol string      `json:"symbol"`
	Price  float64     `json:"price"`
	Source PriceSource `json:"source"`
}
