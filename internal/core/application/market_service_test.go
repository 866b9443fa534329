package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
)

func TestCreateMarket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	// the harness already created a market: the whole supply of both tokens
	// sits in the global vault and the creator vault got bootstrapped
	yesSupply, _ := h.ledger.TokenBalanceOf(ctx, "yes-mint", GlobalVault)
	require.Equal(t, uint64(1_000_000_000_000_000), yesSupply)
	noSupply, _ := h.ledger.TokenBalanceOf(ctx, "no-mint", GlobalVault)
	require.Equal(t, uint64(1_000_000_000_000_000), noSupply)
	vaultSol, _ := h.ledger.BalanceOf(ctx, CreatorVaultAccount(h.marketID))
	require.Equal(t, CreatorVaultReserve, vaultSol)

	markets, err := h.market.ListMarkets(ctx)
	require.NoError(t, err)
	require.Len(t, markets, 1)

	_, err = h.market.CreateMarket(ctx, CreateMarketRequest{
		YesMint:    "yes-mint",
		NoMint:     "no-mint",
		Creator:    testCreator,
		MarketInfo: "will-it-rain",
		MarketType: domain.MarketTypeMintPair,
	})
	require.ErrorIs(t, err, ErrMarketAlreadyExists)
}

func TestCreateMarketFromInfoLabel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)
	require.NoError(t, h.ledger.FundSOL(testCreator, CreatorVaultReserve))

	created, err := h.market.CreateMarket(ctx, CreateMarketRequest{
		YesMint:    "other-yes-mint",
		NoMint:     "other-no-mint",
		Creator:    testCreator,
		MarketInfo: "will-it-snow",
		MarketType: domain.MarketTypeInfoLabel,
	})
	require.NoError(t, err)
	require.Equal(t, domain.MarketIDFromInfo("will-it-snow"), created.ID)
}

func TestClaimCreatorFees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	// fees accrue on the creator vault through swaps
	_, err := h.swap.Swap(ctx, h.buyRequest(1_000_000_000, 0))
	require.NoError(t, err)

	claimed, err := h.market.ClaimCreatorFees(ctx, h.marketID, testCreator)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000), claimed)

	// the vault reserve stays behind
	vaultSol, _ := h.ledger.BalanceOf(ctx, CreatorVaultAccount(h.marketID))
	require.Equal(t, CreatorVaultReserve, vaultSol)
	creatorSol, _ := h.ledger.BalanceOf(ctx, testCreator)
	require.Equal(t, uint64(5_000_000), creatorSol)
}

func TestFailingClaimCreatorFees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	_, err := h.market.ClaimCreatorFees(ctx, h.marketID, "stranger")
	require.ErrorIs(t, err, ErrIncorrectAuthority)

	_, err = h.market.ClaimCreatorFees(ctx, h.marketID, testCreator)
	require.ErrorIs(t, err, ErrNothingToClaim)

	_, err = h.market.ClaimCreatorFees(ctx, "missing", testCreator)
	require.ErrorIs(t, err, ErrMarketNotFound)
}
