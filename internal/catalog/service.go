package catalog

import (
	"context"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// Service serves catalog queries from the cached snapshot.
type Service struct {
	cache adapters.CatalogCache
}

func NewService(cache adapters.CatalogCache) *Service {
	return &Service{cache: cache}
}

// Coins lists catalog entries, optionally filtered by a case-insensitive
// prefix match on name or symbol. A non-empty search matching nothing yields
// domain.ErrNoMatchingCoins.
func (s *Service) Coins(ctx context.Context, search string) ([]domain.Coin, error) {
	coins, err := s.cache.Entries(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return coins, nil
	}

	token := strings.ToLower(search)
	matches := make([]domain.Coin, 0, 16)
	for _, coin := range coins {
		if strings.HasPrefix(strings.ToLower(coin.Name), token) ||
			strings.HasPrefix(strings.ToLower(coin.Symbol), token) {
			matches = append(matches, coin)
		}
	}
	if len(matches) == 0 {
		return nil, domain.ErrNoMatchingCoins
	}
	return matches, nil
}
