package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

type tradeRepositoryImpl struct {
	store *badgerhold.Store
}

func newTradeRepositoryImpl(store *badgerhold.Store) domain.TradeRepository {
	return tradeRepositoryImpl{store: store}
}

func (t tradeRepositoryImpl) AddTrade(
	_ context.Context, trade *domain.Trade,
) error {
	return t.store.Insert(trade.ID.String(), *trade)
}

func (t tradeRepositoryImpl) GetAllTradesByMarket(
	_ context.Context, marketID string,
) ([]domain.Trade, error) {
	query := badgerhold.Where("MarketID").Eq(marketID).SortBy("Timestamp")
	return t.findTrades(query)
}

func (t tradeRepositoryImpl) GetAllTradesByTrader(
	_ context.Context, trader string,
) ([]domain.Trade, error) {
	query := badgerhold.Where("Trader").Eq(trader).SortBy("Timestamp")
	return t.findTrades(query)
}

func (t tradeRepositoryImpl) findTrades(
	query *badgerhold.Query,
) ([]domain.Trade, error) {
	var trades []domain.Trade
	if err := t.store.Find(&trades, query); err != nil {
		return nil, err
	}
	return trades, nil
}
