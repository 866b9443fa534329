package inmemory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/storage/db/inmemory"
)

func TestMarketRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := inmemory.NewRepoManager().MarketRepository()

	market := &domain.Market{ID: "market-1", YesMint: "yes", NoMint: "no"}
	require.NoError(t, repo.AddMarket(ctx, market))

	found, err := repo.GetMarket(ctx, "market-1")
	require.NoError(t, err)
	require.Equal(t, *market, *found)

	missing, err := repo.GetMarket(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, missing)

	// the returned market is a copy, mutating it must not leak into the store
	found.Creator = "hijacked"
	again, err := repo.GetMarket(ctx, "market-1")
	require.NoError(t, err)
	require.Empty(t, again.Creator)

	err = repo.UpdateMarket(
		ctx, "market-1", func(m *domain.Market) (*domain.Market, error) {
			m.IsCompleted = true
			return m, nil
		},
	)
	require.NoError(t, err)
	updated, err := repo.GetMarket(ctx, "market-1")
	require.NoError(t, err)
	require.True(t, updated.IsCompleted)

	// a failing closure persists nothing
	err = repo.UpdateMarket(
		ctx, "market-1", func(m *domain.Market) (*domain.Market, error) {
			m.Creator = "nope"
			return nil, fmt.Errorf("boom")
		},
	)
	require.Error(t, err)
	unchanged, err := repo.GetMarket(ctx, "market-1")
	require.NoError(t, err)
	require.Empty(t, unchanged.Creator)

	require.ErrorIs(
		t,
		repo.UpdateMarket(
			ctx, "missing", func(m *domain.Market) (*domain.Market, error) {
				return m, nil
			},
		),
		inmemory.ErrMarketNotFound,
	)
}

func TestWhitelistRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := inmemory.NewRepoManager().WhitelistRepository()

	missing, err := repo.GetWhitelist(ctx, "trader")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.AddWhitelist(ctx, &domain.Whitelist{
		Address: "trader", IsAllow: true,
	}))

	err = repo.UpdateWhitelist(
		ctx, "trader", func(wl *domain.Whitelist) (*domain.Whitelist, error) {
			wl.StampFirstSwap(42)
			return wl, nil
		},
	)
	require.NoError(t, err)

	found, err := repo.GetWhitelist(ctx, "trader")
	require.NoError(t, err)
	require.Equal(t, int64(42), found.FirstSwapTimestamp)
}

func TestTradeRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := inmemory.NewRepoManager().TradeRepository()

	for i := 0; i < 3; i++ {
		trade := domain.NewTrade()
		trade.MarketID = "market-1"
		trade.Trader = "trader"
		trade.Timestamp = int64(i)
		require.NoError(t, repo.AddTrade(ctx, trade))
	}
	other := domain.NewTrade()
	other.MarketID = "market-2"
	other.Trader = "other"
	require.NoError(t, repo.AddTrade(ctx, other))

	byMarket, err := repo.GetAllTradesByMarket(ctx, "market-1")
	require.NoError(t, err)
	require.Len(t, byMarket, 3)

	byTrader, err := repo.GetAllTradesByTrader(ctx, "other")
	require.NoError(t, err)
	require.Len(t, byTrader, 1)
}
