package application

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

// SwapService orchestrates swaps: fee-tier lookup, quoting, reserve updates,
// the cross-curve shift, the slippage bound and settlement. All reserve work
// happens on a copy of the market; nothing is persisted or transferred until
// the slippage check has passed.
type SwapService interface {
	Swap(ctx context.Context, req SwapRequest) (*SwapResult, error)
	PreviewSwap(
		ctx context.Context,
		marketID string, amount uint64,
		direction domain.TradeDirection, side domain.Side,
	) (*SwapPreview, error)
}

type swapService struct {
	repoManager ports.RepoManager
	settlement  ports.SettlementEngine
	pubsub      ports.PubSubService

	now func() int64
}

// NewSwapService returns the swap orchestrator. The pubsub service may be
// nil, in which case events are only logged and persisted.
func NewSwapService(
	repoManager ports.RepoManager,
	settlement ports.SettlementEngine,
	pubsub ports.PubSubService,
) SwapService {
	return &swapService{
		repoManager: repoManager,
		settlement:  settlement,
		pubsub:      pubsub,
		now:         func() int64 { return time.Now().Unix() },
	}
}

func (s *swapService) Swap(
	ctx context.Context, req SwapRequest,
) (*SwapResult, error) {
	if req.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if req.Trader == "" {
		return nil, ErrInvalidTrader
	}
	if err := req.Direction.Validate(); err != nil {
		return nil, err
	}
	if err := req.Side.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.repoManager.MarketRepository().GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrMarketNotFound
	}
	if stored.IsCompleted {
		return nil, domain.ErrMarketAlreadyCompleted
	}

	now := s.now()

	// The identity's very first eligible swap is stamped before the fee tier
	// is evaluated, so it already gets the discount. The stamp is persisted
	// only if the swap settles.
	var wl *domain.Whitelist
	stamped := false
	discounted := false
	wl, err = s.repoManager.WhitelistRepository().GetWhitelist(ctx, req.Trader)
	if err != nil {
		return nil, err
	}
	if wl != nil && wl.IsAllow {
		stamped = wl.StampFirstSwap(now)
		discounted = wl.IsDiscounted(cfg.LimitTimestamp, now)
	}

	// Work on a copy; the stored market stays untouched on any failure.
	market := *stored

	if _, err := market.CheckUpdateRealSolReserves(req.Side, cfg); err != nil {
		return nil, err
	}

	var (
		solAmount, tokenAmount  uint64
		platformFee, creatorFee uint64
		virtualShift, realShift uint64
	)

	creatorVault := CreatorVaultAccount(market.ID)
	mint := market.Mint(req.Side)

	switch req.Direction {
	case domain.TradeSell:
		res, err := market.ApplySell(req.Side, req.Amount)
		if err != nil {
			return nil, err
		}
		solAmount, tokenAmount = res.SolAmount, res.TokenAmount

		platformFee, err = mathutil.BpsFee(
			solAmount, cfg.PlatformFee(domain.TradeSell, discounted),
		)
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		creatorFee, err = mathutil.BpsFee(solAmount, cfg.CreatorFee(domain.TradeSell))
		if err != nil {
			return nil, domain.ErrArithmetic
		}

		netSol, err := mathutil.CheckedSub(solAmount, platformFee+creatorFee)
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		if netSol < req.MinimumReceiveAmount {
			return nil, domain.ErrSlippageExceeded
		}

		if err := s.settlement.TransferToken(
			ctx, mint, req.Trader, GlobalVault, tokenAmount,
		); err != nil {
			return nil, err
		}
		if err := s.settlement.TransferSOL(
			ctx, GlobalVault, req.Trader, netSol,
		); err != nil {
			return nil, err
		}
		if platformFee > 0 {
			if err := s.settlement.TransferSOL(
				ctx, GlobalVault, cfg.TeamWallet, platformFee,
			); err != nil {
				return nil, err
			}
		}
		if creatorFee > 0 {
			if err := s.settlement.TransferSOL(
				ctx, GlobalVault, creatorVault, creatorFee,
			); err != nil {
				return nil, err
			}
		}

	case domain.TradeBuy:
		platformFee, err = mathutil.BpsFee(
			req.Amount, cfg.PlatformFee(domain.TradeBuy, discounted),
		)
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		creatorFee, err = mathutil.BpsFee(req.Amount, cfg.CreatorFee(domain.TradeBuy))
		if err != nil {
			return nil, domain.ErrArithmetic
		}

		netBuyAmount, err := mathutil.CheckedSub(req.Amount, platformFee+creatorFee)
		if err != nil {
			return nil, domain.ErrArithmetic
		}

		res, err := market.ApplyBuy(req.Side, netBuyAmount)
		if err != nil {
			return nil, err
		}
		solAmount, tokenAmount = res.SolAmount, res.TokenAmount

		if tokenAmount < req.MinimumReceiveAmount {
			return nil, domain.ErrSlippageExceeded
		}

		virtualShift, realShift, err = market.ApplyCrossShift(
			req.Side, solAmount, cfg,
		)
		if err != nil {
			return nil, err
		}

		if err := s.settlement.TransferToken(
			ctx, mint, GlobalVault, req.Trader, tokenAmount,
		); err != nil {
			return nil, err
		}
		if err := s.settlement.TransferSOL(
			ctx, req.Trader, GlobalVault, solAmount,
		); err != nil {
			return nil, err
		}
		if platformFee > 0 {
			if err := s.settlement.TransferSOL(
				ctx, req.Trader, cfg.TeamWallet, platformFee,
			); err != nil {
				return nil, err
			}
		}
		if creatorFee > 0 {
			if err := s.settlement.TransferSOL(
				ctx, req.Trader, creatorVault, creatorFee,
			); err != nil {
				return nil, err
			}
		}
		// The real shift is the only movement toward the secondary treasury.
		if realShift > 0 {
			if err := s.settlement.TransferSOL(
				ctx, GlobalVault, cfg.TeamWallet2, realShift,
			); err != nil {
				return nil, err
			}
		}
	}

	if err := s.repoManager.MarketRepository().UpdateMarket(
		ctx, market.ID, func(m *domain.Market) (*domain.Market, error) {
			*m = market
			return m, nil
		},
	); err != nil {
		return nil, err
	}

	if stamped {
		if err := s.repoManager.WhitelistRepository().UpdateWhitelist(
			ctx, req.Trader, func(w *domain.Whitelist) (*domain.Whitelist, error) {
				w.StampFirstSwap(now)
				return w, nil
			},
		); err != nil {
			log.WithError(err).Warn("could not persist whitelist first-swap stamp")
		}
	}

	trade := domain.NewTrade()
	trade.MarketID = market.ID
	trade.Trader = req.Trader
	trade.Direction = req.Direction
	trade.Side = req.Side
	trade.SolAmount = solAmount
	trade.TokenAmount = tokenAmount
	trade.PlatformFee = platformFee
	trade.CreatorFee = creatorFee
	trade.ShiftSolReal = realShift
	trade.ShiftSolVirtual = virtualShift
	trade.DiscountedFeeTier = discounted
	trade.YesReserves = *market.Reserves(domain.SideYes)
	trade.NoReserves = *market.Reserves(domain.SideNo)
	trade.Timestamp = now

	if err := s.repoManager.TradeRepository().AddTrade(ctx, trade); err != nil {
		log.WithError(err).Warn("could not persist trade record")
	}

	s.publishTradeEvent(&market, trade)

	log.WithFields(log.Fields{
		"market":    market.ID,
		"direction": req.Direction.String(),
		"side":      req.Side.String(),
		"sol":       solAmount,
		"tokens":    tokenAmount,
	}).Debug("swap settled")

	return &SwapResult{
		TradeID:           trade.ID.String(),
		SolAmount:         solAmount,
		TokenAmount:       tokenAmount,
		PlatformFee:       platformFee,
		CreatorFee:        creatorFee,
		ShiftSolVirtual:   virtualShift,
		ShiftSolReal:      realShift,
		DiscountedFeeTier: discounted,
		Timestamp:         now,
	}, nil
}

// PreviewSwap quotes a swap against the current reserves, with standard-tier
// fees applied, without mutating any state.
func (s *swapService) PreviewSwap(
	ctx context.Context,
	marketID string, amount uint64,
	direction domain.TradeDirection, side domain.Side,
) (*SwapPreview, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if err := direction.Validate(); err != nil {
		return nil, err
	}
	if err := side.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := s.repoManager.MarketRepository().GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrMarketNotFound
	}

	market := *stored
	if _, err := market.CheckUpdateRealSolReserves(side, cfg); err != nil {
		return nil, err
	}

	if direction == domain.TradeSell {
		solAmount, err := market.GetSolForSellTokens(side, amount)
		if err != nil {
			return nil, err
		}
		platformFee, err := mathutil.BpsFee(solAmount, cfg.PlatformFee(direction, false))
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		creatorFee, err := mathutil.BpsFee(solAmount, cfg.CreatorFee(direction))
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		net, err := mathutil.CheckedSub(solAmount, platformFee+creatorFee)
		if err != nil {
			return nil, domain.ErrArithmetic
		}
		return &SwapPreview{
			Amount: net, PlatformFee: platformFee, CreatorFee: creatorFee,
		}, nil
	}

	platformFee, err := mathutil.BpsFee(amount, cfg.PlatformFee(direction, false))
	if err != nil {
		return nil, domain.ErrArithmetic
	}
	creatorFee, err := mathutil.BpsFee(amount, cfg.CreatorFee(direction))
	if err != nil {
		return nil, domain.ErrArithmetic
	}
	netBuy, err := mathutil.CheckedSub(amount, platformFee+creatorFee)
	if err != nil {
		return nil, domain.ErrArithmetic
	}
	tokenAmount, err := market.GetTokensForBuySol(side, netBuy)
	if err != nil {
		return nil, err
	}
	return &SwapPreview{
		Amount: tokenAmount, PlatformFee: platformFee, CreatorFee: creatorFee,
	}, nil
}

func (s *swapService) publishTradeEvent(m *domain.Market, trade *domain.Trade) {
	event := TradeEvent{
		User:              trade.Trader,
		YesMint:           m.YesMint,
		NoMint:            m.NoMint,
		Market:            m.ID,
		SolAmount:         trade.SolAmount,
		TokenAmount:       trade.TokenAmount,
		PlatformFee:       trade.PlatformFee,
		CreatorFee:        trade.CreatorFee,
		ShiftLamportsReal: trade.ShiftSolReal,
		ShiftLamportsVirt: trade.ShiftSolVirtual,
		Direction:         uint8(trade.Direction),
		Side:              trade.Side.String(),
		Timestamp:         trade.Timestamp,
		Yes:               snapshotCurve(trade.YesReserves),
		No:                snapshotCurve(trade.NoReserves),
	}
	publishEvent(s.pubsub, TradeTopic, event)
}

func publishEvent(pubsub ports.PubSubService, t ports.Topic, payload interface{}) {
	if pubsub == nil {
		return
	}
	message, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Warn("could not serialize event payload")
		return
	}
	if err := pubsub.Publish(t.Label(), string(message)); err != nil {
		log.WithError(err).Warnf("could not publish %s event", t.Label())
	}
}
