package lending

import (
	"context"
	"strings"

	"github.com/GuillaumeBer/cryptoTrack/internal/adapters"
	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// demoWallet is a sentinel wallet token, matched case-insensitively, that
// returns fixed illustrative positions without contacting the provider.
const demoWallet = "DEMO"

var demoPositions = []domain.LendPosition{
	{
		Asset:     "USDC",
		Mint:      "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Deposited: 1250.00,
		ValueUSD:  1250.38,
		SupplyAPY: 7.42,
	},
	{
		Asset:     "SOL",
		Mint:      "So11111111111111111111111111111111111111112",
		Deposited: 12.5,
		ValueUSD:  2087.50,
		SupplyAPY: 5.18,
	},
}

// Service is a pass-through to the loan-position provider.
type Service struct {
	client adapters.LendingClient
}

func NewService(client adapters.LendingClient) *Service {
	return &Service{client: client}
}

func (s *Service) Positions(ctx context.Context, wallet string) ([]domain.LendPosition, error) {
	if strings.EqualFold(strings.TrimSpace(wallet), demoWallet) {
		positions := make([]domain.LendPosition, len(demoPositions))
		copy(positions, demoPositions)
		return positions, nil
	}
	return s.client.Positions(ctx, wallet)
}
