package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

// MarketService covers the market lifecycle around the pricing core:
// creation of both market variants, creator fee claims and listing.
type MarketService interface {
	CreateMarket(ctx context.Context, req CreateMarketRequest) (*MarketInfo, error)
	ClaimCreatorFees(ctx context.Context, marketID, creator string) (uint64, error)
	GetMarket(ctx context.Context, marketID string) (*MarketInfo, error)
	ListMarkets(ctx context.Context) ([]MarketInfo, error)
	ListTrades(ctx context.Context, marketID string) ([]domain.Trade, error)
}

type marketService struct {
	repoManager ports.RepoManager
	settlement  ports.SettlementEngine
	pubsub      ports.PubSubService
}

// NewMarketService returns the market lifecycle service.
func NewMarketService(
	repoManager ports.RepoManager,
	settlement ports.SettlementEngine,
	pubsub ports.PubSubService,
) MarketService {
	return &marketService{
		repoManager: repoManager,
		settlement:  settlement,
		pubsub:      pubsub,
	}
}

func (m *marketService) CreateMarket(
	ctx context.Context, req CreateMarketRequest,
) (*MarketInfo, error) {
	cfg, err := m.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	market, err := domain.NewMarket(
		req.YesMint, req.NoMint, req.Creator, req.MarketInfo, req.MarketType, cfg,
	)
	if err != nil {
		return nil, err
	}

	if existing, err := m.repoManager.MarketRepository().GetMarket(
		ctx, market.ID,
	); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrMarketAlreadyExists
	}

	// The global vault custodies the whole tradable supply of both tokens.
	if err := m.settlement.MintToken(
		ctx, market.YesMint, GlobalVault, cfg.TokenSupply,
	); err != nil {
		return nil, err
	}
	if err := m.settlement.MintToken(
		ctx, market.NoMint, GlobalVault, cfg.TokenSupply,
	); err != nil {
		return nil, err
	}

	// Bootstrap the creator vault so the very first fee transfer cannot hit
	// a missing account.
	creatorVault := CreatorVaultAccount(market.ID)
	balance, err := m.settlement.BalanceOf(ctx, creatorVault)
	if err != nil {
		return nil, err
	}
	if balance == 0 {
		if err := m.settlement.TransferSOL(
			ctx, req.Creator, creatorVault, CreatorVaultReserve,
		); err != nil {
			return nil, err
		}
	}

	if err := m.repoManager.MarketRepository().AddMarket(ctx, market); err != nil {
		return nil, err
	}

	event := LaunchEvent{
		Creator:     market.Creator,
		Market:      market.ID,
		YesMint:     market.YesMint,
		Yes:         snapshotCurve(*market.Reserves(domain.SideYes)),
		NoMint:      market.NoMint,
		No:          snapshotCurve(*market.Reserves(domain.SideNo)),
		MarketInfo:  market.MarketInfo,
		TokenSupply: cfg.TokenSupply,
		Decimals:    market.TokenDecimals,
		MarketType:  market.MarketType,
	}
	publishEvent(m.pubsub, LaunchTopic, event)

	log.WithFields(log.Fields{
		"market":      market.ID,
		"market_type": market.MarketType,
		"creator":     market.Creator,
	}).Info("market created")

	info := marketInfoFromDomain(market)
	return &info, nil
}

// ClaimCreatorFees sends the creator vault balance, minus the vault reserve,
// to the market creator. Only the creator itself may claim.
func (m *marketService) ClaimCreatorFees(
	ctx context.Context, marketID, creator string,
) (uint64, error) {
	market, err := m.repoManager.MarketRepository().GetMarket(ctx, marketID)
	if err != nil {
		return 0, err
	}
	if market == nil {
		return 0, ErrMarketNotFound
	}
	if market.Creator != creator {
		return 0, ErrIncorrectAuthority
	}

	creatorVault := CreatorVaultAccount(marketID)
	balance, err := m.settlement.BalanceOf(ctx, creatorVault)
	if err != nil {
		return 0, err
	}

	claimable := mathutil.SaturatingSub(balance, CreatorVaultReserve)
	if claimable == 0 {
		return 0, ErrNothingToClaim
	}

	if err := m.settlement.TransferSOL(
		ctx, creatorVault, creator, claimable,
	); err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"market": marketID,
		"amount": claimable,
	}).Info("creator fees claimed")

	return claimable, nil
}

func (m *marketService) GetMarket(
	ctx context.Context, marketID string,
) (*MarketInfo, error) {
	market, err := m.repoManager.MarketRepository().GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, ErrMarketNotFound
	}
	info := marketInfoFromDomain(market)
	return &info, nil
}

func (m *marketService) ListMarkets(ctx context.Context) ([]MarketInfo, error) {
	markets, err := m.repoManager.MarketRepository().GetAllMarkets(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]MarketInfo, 0, len(markets))
	for i := range markets {
		infos = append(infos, marketInfoFromDomain(&markets[i]))
	}
	return infos, nil
}

func (m *marketService) ListTrades(
	ctx context.Context, marketID string,
) ([]domain.Trade, error) {
	return m.repoManager.TradeRepository().GetAllTradesByMarket(ctx, marketID)
}
