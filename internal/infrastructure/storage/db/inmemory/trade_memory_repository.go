package inmemory

import (
	"context"
	"sync"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

type tradeRepository struct {
	lock   sync.RWMutex
	trades []domain.Trade
}

func (r *tradeRepository) AddTrade(_ context.Context, trade *domain.Trade) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.trades = append(r.trades, *trade)
	return nil
}

func (r *tradeRepository) GetAllTradesByMarket(
	_ context.Context, marketID string,
) ([]domain.Trade, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	trades := make([]domain.Trade, 0)
	for _, t := range r.trades {
		if t.MarketID == marketID {
			trades = append(trades, t)
		}
	}
	return trades, nil
}

func (r *tradeRepository) GetAllTradesByTrader(
	_ context.Context, trader string,
) ([]domain.Trade, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	trades := make([]domain.Trade, 0)
	for _, t := range r.trades {
		if t.Trader == trader {
			trades = append(trades, t)
		}
	}
	return trades, nil
}
