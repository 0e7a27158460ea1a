package domain

// LendPosition is one lending position of a wallet as returned by the
// loan-position provider. Served as-is, never interpreted.
type LendPosition struct {
	Asset     string  `json:"asset"`
	Mint      string  `json:"mint"`
	Deposited float64 `json:"deposited"`
	ValueUSD  float64 `json:"value_usd"`
	SupplyAPY float64 `json:"supply_apy"`
}
