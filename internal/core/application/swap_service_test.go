package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/settlement"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/storage/db/inmemory"
)

const (
	testTrader  = "trader"
	testCreator = "creator"
	testNow     = int64(1_700_000_000)
)

func newTestConfig() domain.Config {
	return domain.Config{
		Authority:            "authority",
		BackendSignAuthority: "backend",
		TeamWallet:           "team-wallet",
		TeamWallet2:          "team-wallet2",
		PlatformBuyFee:       100,
		PlatformSellFee:      100,
		PlatformBuySmallFee:  25,
		PlatformSellSmallFee: 25,
		CreatorBuyFee:        50,
		CreatorSellFee:       50,
		TokenSupply:          1_000_000_000_000_000,
		TokenDecimals:        6,

		InitialVirtualYesTokenReserves: 1_000_000_000_000_000,
		InitialVirtualYesSolReserves:   20_000_000_000,
		InitialRealYesTokenReserves:    793_100_000_000_000,
		InitialVirtualNoTokenReserves:  1_000_000_000_000_000,
		InitialVirtualNoSolReserves:    20_000_000_000,
		InitialRealNoTokenReserves:     793_100_000_000_000,

		LimitTimestamp:  3600,
		CrossSolFactor:  0.2,
		MinSolLiquidity: 1_000_000_000,
	}
}

type testHarness struct {
	repoManager ports.RepoManager
	ledger      *settlement.Ledger
	swap        *swapService
	market      MarketService
	operator    OperatorService
	marketID    string
}

func newTestHarness(t *testing.T) *testHarness {
	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	ledger := settlement.NewLedger()

	operator := NewOperatorService(repoManager)
	require.NoError(t, operator.Configure(ctx, "authority", newTestConfig()))

	require.NoError(t, ledger.FundSOL(testCreator, CreatorVaultReserve))
	require.NoError(t, ledger.FundSOL(testTrader, 5_000_000_000))

	market := NewMarketService(repoManager, ledger, nil)
	created, err := market.CreateMarket(ctx, CreateMarketRequest{
		YesMint:    "yes-mint",
		NoMint:     "no-mint",
		Creator:    testCreator,
		MarketInfo: "will-it-rain",
		MarketType: domain.MarketTypeMintPair,
	})
	require.NoError(t, err)

	swap := NewSwapService(repoManager, ledger, nil).(*swapService)
	swap.now = func() int64 { return testNow }

	return &testHarness{
		repoManager: repoManager,
		ledger:      ledger,
		swap:        swap,
		market:      market,
		operator:    operator,
		marketID:    created.ID,
	}
}

func (h *testHarness) buyRequest(amount, minReceive uint64) SwapRequest {
	return SwapRequest{
		MarketID:             h.marketID,
		Trader:               testTrader,
		Amount:               amount,
		Direction:            domain.TradeBuy,
		Side:                 domain.SideYes,
		MinimumReceiveAmount: minReceive,
	}
}

func TestSwapBuy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	res, err := h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)
	require.Equal(t, uint64(985_000_000), res.SolAmount)
	require.Equal(t, uint64(46_938_289_254_229), res.TokenAmount)
	require.Equal(t, uint64(10_000_000), res.PlatformFee)
	require.Equal(t, uint64(5_000_000), res.CreatorFee)
	require.Equal(t, uint64(197_000_000), res.ShiftSolVirtual)
	require.Zero(t, res.ShiftSolReal)
	require.False(t, res.DiscountedFeeTier)

	// settlement effects
	traderSol, _ := h.ledger.BalanceOf(ctx, testTrader)
	require.Equal(t, uint64(4_000_000_000), traderSol)
	traderTokens, _ := h.ledger.TokenBalanceOf(ctx, "yes-mint", testTrader)
	require.Equal(t, res.TokenAmount, traderTokens)
	teamSol, _ := h.ledger.BalanceOf(ctx, "team-wallet")
	require.Equal(t, uint64(10_000_000), teamSol)
	vaultSol, _ := h.ledger.BalanceOf(ctx, CreatorVaultAccount(h.marketID))
	require.Equal(t, CreatorVaultReserve+5_000_000, vaultSol)

	// persisted reserves: the traded curve moved, the other one got shifted
	stored, err := h.repoManager.MarketRepository().GetMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Equal(t, uint64(20_985_000_000), stored.Reserves(domain.SideYes).VirtualSol)
	require.Equal(t, uint64(19_803_000_000), stored.Reserves(domain.SideNo).VirtualSol)

	trades, err := h.repoManager.TradeRepository().GetAllTradesByMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	require.Equal(t, testNow, trades[0].Timestamp)
}

func TestSwapSellUnwindsBuy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	buy, err := h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)

	res, err := h.swap.Swap(ctx, SwapRequest{
		MarketID:  h.marketID,
		Trader:    testTrader,
		Amount:    buy.TokenAmount,
		Direction: domain.TradeSell,
		Side:      domain.SideYes,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(985_000_000), res.SolAmount)
	require.Equal(t, uint64(9_850_000), res.PlatformFee)
	require.Equal(t, uint64(4_925_000), res.CreatorFee)
	require.Zero(t, res.ShiftSolVirtual)
	require.Zero(t, res.ShiftSolReal)

	traderTokens, _ := h.ledger.TokenBalanceOf(ctx, "yes-mint", testTrader)
	require.Zero(t, traderTokens)
	traderSol, _ := h.ledger.BalanceOf(ctx, testTrader)
	require.Equal(t, uint64(4_000_000_000+970_225_000), traderSol)
}

func TestFailingSwapSlippage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	before, err := h.repoManager.MarketRepository().GetMarket(ctx, h.marketID)
	require.NoError(t, err)
	traderSolBefore, _ := h.ledger.BalanceOf(ctx, testTrader)

	_, err = h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 46_938_289_254_229+1))
	require.ErrorIs(t, err, domain.ErrSlippageExceeded)

	// no side effect at all
	after, err := h.repoManager.MarketRepository().GetMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Equal(t, *before, *after)
	traderSol, _ := h.ledger.BalanceOf(ctx, testTrader)
	require.Equal(t, traderSolBefore, traderSol)
	trades, err := h.repoManager.TradeRepository().GetAllTradesByMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Empty(t, trades)
}

func TestSwapWhitelistWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)
	require.NoError(t, h.operator.AddWhitelist(ctx, "authority", testTrader))

	// first swap stamps the window start and is already discounted
	res, err := h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)
	require.True(t, res.DiscountedFeeTier)
	require.Equal(t, uint64(2_500_000), res.PlatformFee)
	require.Equal(t, uint64(5_000_000), res.CreatorFee)

	wl, err := h.repoManager.WhitelistRepository().GetWhitelist(ctx, testTrader)
	require.NoError(t, err)
	require.Equal(t, testNow, wl.FirstSwapTimestamp)

	// a swap at exactly the window boundary is still discounted
	h.swap.now = func() int64 { return testNow + 3600 }
	res, err = h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)
	require.True(t, res.DiscountedFeeTier)
	require.Equal(t, uint64(2_500_000), res.PlatformFee)

	// one second past the window the standard rate applies again
	h.swap.now = func() int64 { return testNow + 3601 }
	res, err = h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)
	require.False(t, res.DiscountedFeeTier)
	require.Equal(t, uint64(10_000_000), res.PlatformFee)
}

func TestFailingSwap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	tests := []struct {
		name          string
		req           SwapRequest
		expectedError error
	}{
		{
			name:          "zero_amount",
			req:           h.buyRequest(0, 0),
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name: "missing_trader",
			req: SwapRequest{
				MarketID: h.marketID, Amount: 1,
				Direction: domain.TradeBuy, Side: domain.SideYes,
			},
			expectedError: ErrInvalidTrader,
		},
		{
			name: "unknown_market",
			req: SwapRequest{
				MarketID: "missing", Trader: testTrader, Amount: 1,
				Direction: domain.TradeBuy, Side: domain.SideYes,
			},
			expectedError: ErrMarketNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := h.swap.Swap(ctx, tt.req)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestFailingSwapCompletedMarket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	require.NoError(t, h.repoManager.MarketRepository().UpdateMarket(
		ctx, h.marketID, func(m *domain.Market) (*domain.Market, error) {
			m.IsCompleted = true
			return m, nil
		},
	))

	_, err := h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.ErrorIs(t, err, domain.ErrMarketAlreadyCompleted)
}

func TestPreviewSwap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	preview, err := h.swap.PreviewSwap(
		ctx, h.marketID, 1_000_000_000, domain.TradeBuy, domain.SideYes,
	)
	require.NoError(t, err)
	require.Equal(t, uint64(46_938_289_254_229), preview.Amount)
	require.Equal(t, uint64(10_000_000), preview.PlatformFee)
	require.Equal(t, uint64(5_000_000), preview.CreatorFee)

	// previewing never touches the stored reserves
	stored, err := h.repoManager.MarketRepository().GetMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Equal(t, uint64(20_000_000_000), stored.Reserves(domain.SideYes).VirtualSol)
}
