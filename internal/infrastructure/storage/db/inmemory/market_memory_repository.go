package inmemory

import (
	"context"
	"sync"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

type marketRepository struct {
	lock    sync.RWMutex
	markets map[string]domain.Market
}

func (r *marketRepository) AddMarket(
	_ context.Context, market *domain.Market,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.markets[market.ID] = *market
	return nil
}

func (r *marketRepository) GetMarket(
	_ context.Context, marketID string,
) (*domain.Market, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	market, ok := r.markets[marketID]
	if !ok {
		return nil, nil
	}
	return &market, nil
}

func (r *marketRepository) GetAllMarkets(
	_ context.Context,
) ([]domain.Market, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	markets := make([]domain.Market, 0, len(r.markets))
	for _, m := range r.markets {
		markets = append(markets, m)
	}
	return markets, nil
}

func (r *marketRepository) UpdateMarket(
	_ context.Context,
	marketID string, updateFn func(m *domain.Market) (*domain.Market, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	current, ok := r.markets[marketID]
	if !ok {
		return ErrMarketNotFound
	}

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}

	r.markets[marketID] = *updated
	return nil
}
