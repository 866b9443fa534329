package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// CurveReserves holds the four reserve counters of one bonding curve.
// Virtual reserves drive quoting only; real reserves bound what the curve
// may actually pay out.
type CurveReserves struct {
	VirtualSol   uint64
	VirtualToken uint64
	RealSol      uint64
	RealToken    uint64
}

// Market defines the Market entity data structure holding the state of a
// YES/NO token pair trading against a shared SOL pool.
type Market struct {
	// ID is the derived address of the market record.
	ID string

	YesMint string
	NoMint  string

	// Creator is entitled to creator fees. Mutable through ChangeCreator only.
	Creator string

	// Curves is indexed by Side.
	Curves [2]CurveReserves

	// TokenDecimals is the fixed-point precision of both tradable tokens,
	// frozen at creation from the engine config.
	TokenDecimals uint32

	IsCompleted bool

	// MarketInfo is an opaque label, immutable after creation. For markets of
	// type MarketTypeInfoLabel it is also the source of the id derivation.
	MarketInfo string

	// MarketType distinguishes the two creation variants.
	MarketType uint8
}

// BuyResult is the effect of a buy applied to one curve.
type BuyResult struct {
	TokenAmount uint64
	SolAmount   uint64
}

// SellResult is the effect of a sell applied to one curve.
type SellResult struct {
	TokenAmount uint64
	SolAmount   uint64
}

// NewMarket returns a market with both curves seeded from the engine config.
// Real SOL reserves start at zero; they grow with buys and with the
// reconciliation rule.
func NewMarket(
	yesMint, noMint, creator, marketInfo string, marketType uint8,
	cfg *Config,
) (*Market, error) {
	if yesMint == "" || noMint == "" || yesMint == noMint {
		return nil, ErrMarketInvalidMints
	}
	if creator == "" {
		return nil, ErrMarketInvalidCreator
	}
	if marketInfo == "" {
		return nil, ErrMarketInvalidInfo
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := MarketIDFromMints(yesMint, noMint)
	if marketType == MarketTypeInfoLabel {
		id = MarketIDFromInfo(marketInfo)
	}

	m := &Market{
		ID:            id,
		YesMint:       yesMint,
		NoMint:        noMint,
		Creator:       creator,
		TokenDecimals: uint32(cfg.TokenDecimals),
		MarketInfo:    marketInfo,
		MarketType:    marketType,
	}
	m.Curves[SideYes] = cfg.InitialReserves(SideYes)
	m.Curves[SideNo] = cfg.InitialReserves(SideNo)
	return m, nil
}

// Reserves returns a mutable view of the reserves of the given curve. It is
// the only place where a Side is turned into a curve index.
func (m *Market) Reserves(side Side) *CurveReserves {
	return &m.Curves[side]
}

// Mint returns the tradable asset of the given curve.
func (m *Market) Mint(side Side) string {
	if side == SideYes {
		return m.YesMint
	}
	return m.NoMint
}

// MarketIDFromMints derives the market address from the YES/NO mint pair.
func MarketIDFromMints(yesMint, noMint string) string {
	h := sha256.Sum256([]byte("market:" + yesMint + ":" + noMint))
	return hex.EncodeToString(h[:])
}

// MarketIDFromInfo derives the market address from the market-info label.
func MarketIDFromInfo(marketInfo string) string {
	h := sha256.Sum256([]byte("market-info:" + marketInfo))
	return hex.EncodeToString(h[:])
}
