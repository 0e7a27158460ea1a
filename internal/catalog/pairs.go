package catalog

import (
	"context"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
)

// fallbackBases are the major assets assumed tradable when the exchange
// cannot be reached (network failure, geographic restriction). Using them
// keeps a refresh alive at the cost of tradability accuracy.
var fallbackBases = []string{
	"BTC", "ETH", "BNB", "SOL", "XRP", "ADA",
	"AVAX", "LINK", "DOT", "DOGE", "MATIC", "LTC",
	"WBTC", "BCH", "TRX", "SHIB", "UNI",
}

// PairRegistry fetches the exchange instrument listing and keeps only pairs
// quoted in the configured stablecoin and currently open for trading.
type PairRegistry struct {
	client     adapters.ExchangeClient
	quoteAsset string
}

func NewPairRegistry(client adapters.ExchangeClient, quoteAsset string) *PairRegistry {
	return &PairRegistry{client: client, quoteAsset: quoteAsset}
}

// FetchTradablePairs returns the tradable pair set and whether the result is
// degraded. A failure talking to the exchange yields the fixed fallback set
// with degraded=true instead of an error, so the refresh can still complete.
func (r *PairRegistry) FetchTradablePairs(ctx context.Context) (domain.PairSet, bool) {
	instruments, err := r.client.ExchangeInfo(ctx)
	if err != nil {
		logrus.WithError(err).Warnf(
			"Could not fetch exchange pairs, falling back to %d well-known %s pairs",
			len(fallbackBases), r.quoteAsset,
		)
		return r.fallbackPairs(), true
	}

	pairs := make(domain.PairSet, len(instruments))
	for _, inst := range instruments {
		if inst.QuoteAsset == r.quoteAsset && inst.Status == domain.InstrumentStatusTrading {
			pairs[inst.Symbol] = struct{}{}
		}
	}
	logrus.Infof("Found %d tradable %s pairs on the exchange", len(pairs), r.quoteAsset)
	return pairs, false
}

func (r *PairRegistry) fallbackPairs() domain.PairSet {
	pairs := make(domain.PairSet, len(fallbackBases))
	for _, base := range fallbackBases {
		pairs[base+r.quoteAsset] = struct{}{}
	}
	return pairs
}
