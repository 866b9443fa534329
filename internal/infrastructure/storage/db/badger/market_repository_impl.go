package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

// ErrMarketNotFound ...
var ErrMarketNotFound = errors.New("market not found")

type marketRepositoryImpl struct {
	store *badgerhold.Store
}

func newMarketRepositoryImpl(store *badgerhold.Store) domain.MarketRepository {
	return marketRepositoryImpl{store: store}
}

func (m marketRepositoryImpl) AddMarket(
	_ context.Context, market *domain.Market,
) error {
	if err := m.store.Insert(market.ID, *market); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (m marketRepositoryImpl) GetMarket(
	_ context.Context, marketID string,
) (*domain.Market, error) {
	var market domain.Market
	if err := m.store.Get(marketID, &market); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &market, nil
}

func (m marketRepositoryImpl) GetAllMarkets(
	_ context.Context,
) ([]domain.Market, error) {
	var markets []domain.Market
	if err := m.store.Find(&markets, nil); err != nil {
		return nil, err
	}
	return markets, nil
}

func (m marketRepositoryImpl) UpdateMarket(
	ctx context.Context,
	marketID string, updateFn func(mkt *domain.Market) (*domain.Market, error),
) error {
	current, err := m.GetMarket(ctx, marketID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrMarketNotFound
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}

	return m.store.Update(marketID, *updated)
}
