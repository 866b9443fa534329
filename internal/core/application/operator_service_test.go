package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/storage/db/inmemory"
)

func TestConfigure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	operator := NewOperatorService(inmemory.NewRepoManager())

	// anyone may bootstrap an uninitialized deployment
	require.NoError(t, operator.Configure(ctx, "deployer", newTestConfig()))

	cfg, err := operator.GetConfig(ctx)
	require.NoError(t, err)
	require.True(t, cfg.Initialized)
	require.Equal(t, "authority", cfg.Authority)

	// afterwards only the stored authority may reconfigure
	require.ErrorIs(
		t, operator.Configure(ctx, "deployer", newTestConfig()),
		ErrIncorrectAuthority,
	)
	require.NoError(t, operator.Configure(ctx, "authority", newTestConfig()))
}

func TestFailingConfigure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	operator := NewOperatorService(inmemory.NewRepoManager())

	badConfig := newTestConfig()
	badConfig.PlatformBuyFee = 10001
	require.ErrorIs(
		t, operator.Configure(ctx, "deployer", badConfig),
		domain.ErrConfigInvalidFee,
	)

	_, err := operator.GetConfig(ctx)
	require.ErrorIs(t, err, domain.ErrConfigNotInitialized)
}

func TestAuthorityHandOff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	operator := NewOperatorService(inmemory.NewRepoManager())
	require.NoError(t, operator.Configure(ctx, "deployer", newTestConfig()))

	require.ErrorIs(
		t, operator.NominateAuthority(ctx, "stranger", "next-authority"),
		ErrIncorrectAuthority,
	)
	require.NoError(t, operator.NominateAuthority(ctx, "authority", "next-authority"))

	// only the nominee may complete the hand-off
	require.ErrorIs(t, operator.AcceptAuthority(ctx, "stranger"), ErrIncorrectAuthority)
	require.NoError(t, operator.AcceptAuthority(ctx, "next-authority"))

	cfg, err := operator.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "next-authority", cfg.Authority)
	require.Empty(t, cfg.PendingAuthority)

	// the nomination is consumed
	require.ErrorIs(
		t, operator.AcceptAuthority(ctx, "next-authority"), ErrIncorrectAuthority,
	)
}

func TestAddWhitelist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	require.ErrorIs(
		t, h.operator.AddWhitelist(ctx, "stranger", testTrader),
		ErrIncorrectAuthority,
	)

	require.NoError(t, h.operator.AddWhitelist(ctx, "authority", testTrader))
	wl, err := h.repoManager.WhitelistRepository().GetWhitelist(ctx, testTrader)
	require.NoError(t, err)
	require.True(t, wl.IsAllow)
	require.Zero(t, wl.FirstSwapTimestamp)
}

func TestChangeCreator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHarness(t)

	require.ErrorIs(
		t, h.operator.ChangeCreator(ctx, "stranger", h.marketID, "new-creator"),
		ErrIncorrectAuthority,
	)

	require.NoError(t, h.operator.ChangeCreator(ctx, "backend", h.marketID, "new-creator"))
	market, err := h.market.GetMarket(ctx, h.marketID)
	require.NoError(t, err)
	require.Equal(t, "new-creator", market.Creator)
}
