package domain

import "context"

// TradeRepository is the abstraction for any kind of database intended to
// persist settled trades.
type TradeRepository interface {
	// AddTrade appends a settled trade to the history.
	AddTrade(ctx context.Context, trade *Trade) error
	// GetAllTradesByMarket returns the trade history of a market.
	GetAllTradesByMarket(ctx context.Context, marketID string) ([]Trade, error)
	// GetAllTradesByTrader returns all trades settled by an identity.
	GetAllTradesByTrader(ctx context.Context, trader string) ([]Trade, error)
}
