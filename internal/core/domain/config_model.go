package domain

import "github.com/duocurve-network/duocurve-daemon/pkg/mathutil"

// Config is the process-wide engine configuration. It is written once by the
// configure operation, mutated only by the authority, and passed to every
// swap as a read-only reference.
type Config struct {
	Authority string
	// PendingAuthority supports the 2-step ownership transfer.
	PendingAuthority string

	// BackendSignAuthority may re-point a market's creator.
	BackendSignAuthority string

	TeamWallet  string
	TeamWallet2 string

	// Platform fees in basis points out of 10000, split by trade direction.
	PlatformBuyFee  uint64
	PlatformSellFee uint64

	// Discounted platform fees charged inside the whitelist window.
	PlatformBuySmallFee  uint64
	PlatformSellSmallFee uint64

	CreatorBuyFee  uint64
	CreatorSellFee uint64

	TokenSupply   uint64
	TokenDecimals uint8

	InitialVirtualYesTokenReserves uint64
	InitialVirtualYesSolReserves   uint64
	InitialRealYesTokenReserves    uint64

	InitialVirtualNoTokenReserves uint64
	InitialVirtualNoSolReserves   uint64
	InitialRealNoTokenReserves    uint64

	// LimitTimestamp is the discount window in seconds after an identity's
	// first swap.
	LimitTimestamp int64

	// CrossSolFactor is the fraction of a buy's SOL amount migrated to the
	// other curve.
	CrossSolFactor float64
	// MinSolLiquidity is the floor no shift may push a curve's SOL reserves
	// below.
	MinSolLiquidity uint64

	Initialized bool
}

// Validate checks all fee, precision and seeding parameters.
func (c *Config) Validate() error {
	fees := []uint64{
		c.PlatformBuyFee, c.PlatformSellFee,
		c.PlatformBuySmallFee, c.PlatformSellSmallFee,
		c.CreatorBuyFee, c.CreatorSellFee,
	}
	for _, fee := range fees {
		if fee > mathutil.TenThousands {
			return ErrConfigInvalidFee
		}
	}
	if uint32(c.TokenDecimals) > LamportDecimals {
		return ErrConfigInvalidDecimals
	}
	if c.CrossSolFactor < 0 || c.CrossSolFactor > 1 {
		return ErrConfigInvalidCrossFactor
	}
	if c.InitialVirtualYesTokenReserves == 0 || c.InitialVirtualYesSolReserves == 0 ||
		c.InitialVirtualNoTokenReserves == 0 || c.InitialVirtualNoSolReserves == 0 ||
		c.InitialRealYesTokenReserves == 0 || c.InitialRealNoTokenReserves == 0 {
		return ErrConfigInvalidReserves
	}
	return nil
}

// PlatformFee returns the platform rate for a direction, picking the
// discounted tier when the trader is inside the whitelist window.
func (c *Config) PlatformFee(direction TradeDirection, discounted bool) uint64 {
	if direction == TradeSell {
		if discounted {
			return c.PlatformSellSmallFee
		}
		return c.PlatformSellFee
	}
	if discounted {
		return c.PlatformBuySmallFee
	}
	return c.PlatformBuyFee
}

// CreatorFee returns the creator rate for a direction. It does not depend on
// the whitelist tier.
func (c *Config) CreatorFee(direction TradeDirection) uint64 {
	if direction == TradeSell {
		return c.CreatorSellFee
	}
	return c.CreatorBuyFee
}

// InitialVirtualTokenReserves returns the virtual token seeding of a curve,
// the denominator of the real-reserve reconciliation formula.
func (c *Config) InitialVirtualTokenReserves(side Side) uint64 {
	if side == SideYes {
		return c.InitialVirtualYesTokenReserves
	}
	return c.InitialVirtualNoTokenReserves
}

// InitialReserves returns the full reserve seeding of a curve. Real SOL
// always starts at zero.
func (c *Config) InitialReserves(side Side) CurveReserves {
	if side == SideYes {
		return CurveReserves{
			VirtualSol:   c.InitialVirtualYesSolReserves,
			VirtualToken: c.InitialVirtualYesTokenReserves,
			RealSol:      0,
			RealToken:    c.InitialRealYesTokenReserves,
		}
	}
	return CurveReserves{
		VirtualSol:   c.InitialVirtualNoSolReserves,
		VirtualToken: c.InitialVirtualNoTokenReserves,
		RealSol:      0,
		RealToken:    c.InitialRealNoTokenReserves,
	}
}
