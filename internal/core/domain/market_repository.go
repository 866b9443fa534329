package domain

import "context"

// MarketRepository is the abstraction for any kind of database intended to
// persist Markets.
type MarketRepository interface {
	// AddMarket adds a new market to the repository.
	AddMarket(ctx context.Context, market *Market) error
	// GetMarket returns the market with the given id.
	GetMarket(ctx context.Context, marketID string) (*Market, error)
	// GetAllMarkets returns all markets.
	GetAllMarkets(ctx context.Context) ([]Market, error)
	// UpdateMarket updates the state of a market. The closure function lets
	// the caller commit multiple changes to a market in a transactional way:
	// if the closure returns an error nothing is persisted.
	UpdateMarket(
		ctx context.Context,
		marketID string, updateFn func(m *Market) (*Market, error),
	) error
}
