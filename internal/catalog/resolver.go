package catalog

import (
	"context"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"

	"github.com/sirupsen/logrus"
)

// PriceResolver answers one-off price queries. Tradable assets are quoted by
// the reference exchange first; everything else, and every primary miss, goes
// to the market-data source. Upstream transport failures and malformed bodies
// count as "no price" at this layer and never cross the contract boundary.
type PriceResolver struct {
	exchange    adapters.ExchangeClient
	market      adapters.MarketDataClient
	quoteSuffix string
}

func NewPriceResolver(exchange adapters.ExchangeClient, market adapters.MarketDataClient, quoteSuffix string) *PriceResolver {
	return &PriceResolver{exchange: exchange, market: market, quoteSuffix: quoteSuffix}
}

func (r *PriceResolver) Resolve(ctx context.Context, symbol, coinID string, isTradable bool) (domain.PriceQuote, error) {
	primaryTried := false

	if isTradable {
		primaryTried = true
		pair := symbol + r.quoteSuffix
		price, err := r.exchange.TickerPrice(ctx, pair)
		if err == nil && price > 0 {
			return domain.PriceQuote{Symbol: symbol, Price: price, Source: domain.SourcePrimary}, nil
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"symbol": symbol, "pair": pair}).
				Warn("Primary price source yielded no usable price")
		}
	}

	price, err := r.market.SimplePrice(ctx, coinID)
	if err == nil && price > 0 {
		source := domain.SourceFallback
		if primaryTried {
			source = domain.SourcePrimaryWithFallback
		}
		return domain.PriceQuote{Symbol: symbol, Price: price, Source: source}, nil
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"symbol": symbol, "coin_id": coinID}).
			Warn("Fallback price source yielded no usable price")
	}

	return domain.PriceQuote{}, domain.ErrPriceNotFound
}
