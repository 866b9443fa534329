package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	mm "github.com/duocurve-network/duocurve-daemon/pkg/marketmaking"
	"github.com/duocurve-network/duocurve-daemon/pkg/marketmaking/formula"
	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

// Both curves of every market are quoted with the same constant-product
// strategy.
var curveStrategy = mm.NewStrategyFromFormula(formula.ConstantProduct{})

func (m *Market) formulaOpts(side Side) formula.ConstantProductOpts {
	r := m.Reserves(side)
	return formula.ConstantProductOpts{
		SolReserves:   r.VirtualSol,
		TokenReserves: r.VirtualToken,
		TokenDecimals: m.TokenDecimals,
		BasisDecimals: LamportDecimals,
	}
}

// SpotPrice returns the marginal SOL price of one token on the given curve.
func (m *Market) SpotPrice(side Side) (decimal.Decimal, error) {
	return curveStrategy.Formula().SpotPrice(m.formulaOpts(side))
}

// GetTokensForBuySol quotes the token amount bought with solAmount on the
// given curve. The market state is not mutated.
func (m *Market) GetTokensForBuySol(side Side, solAmount uint64) (uint64, error) {
	out, err := curveStrategy.Formula().TokensOutGivenSolIn(
		m.formulaOpts(side), solAmount,
	)
	if err != nil {
		return 0, quoteError(err)
	}
	return out, nil
}

// GetSolForSellTokens quotes the SOL amount received for selling tokenAmount
// on the given curve. The market state is not mutated.
func (m *Market) GetSolForSellTokens(side Side, tokenAmount uint64) (uint64, error) {
	out, err := curveStrategy.Formula().SolOutGivenTokensIn(
		m.formulaOpts(side), tokenAmount,
	)
	if err != nil {
		return 0, quoteError(err)
	}
	return out, nil
}

// ApplyBuy quotes a buy and applies its effect to the curve. A buy may never
// fully drain the curve's real token reserves. The four reserve updates are
// atomic: on any failure the market is left untouched.
func (m *Market) ApplyBuy(side Side, solAmount uint64) (*BuyResult, error) {
	tokenAmount, err := m.GetTokensForBuySol(side, solAmount)
	if err != nil {
		return nil, err
	}

	r := m.Reserves(side)
	if tokenAmount >= r.RealToken {
		return nil, ErrBuyExceedsRealReserves
	}

	newVirtualToken, err := mathutil.CheckedSub(r.VirtualToken, tokenAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newRealToken, err := mathutil.CheckedSub(r.RealToken, tokenAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newVirtualSol, err := mathutil.CheckedAdd(r.VirtualSol, solAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newRealSol, err := mathutil.CheckedAdd(r.RealSol, solAmount)
	if err != nil {
		return nil, ErrArithmetic
	}

	r.VirtualToken = newVirtualToken
	r.RealToken = newRealToken
	r.VirtualSol = newVirtualSol
	r.RealSol = newRealSol

	return &BuyResult{TokenAmount: tokenAmount, SolAmount: solAmount}, nil
}

// ApplySell quotes a sell and applies its effect to the curve. Symmetric to
// ApplyBuy, with the same all-or-nothing update rule.
func (m *Market) ApplySell(side Side, tokenAmount uint64) (*SellResult, error) {
	solAmount, err := m.GetSolForSellTokens(side, tokenAmount)
	if err != nil {
		return nil, err
	}

	r := m.Reserves(side)

	newVirtualToken, err := mathutil.CheckedAdd(r.VirtualToken, tokenAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newRealToken, err := mathutil.CheckedAdd(r.RealToken, tokenAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newVirtualSol, err := mathutil.CheckedSub(r.VirtualSol, solAmount)
	if err != nil {
		return nil, ErrArithmetic
	}
	newRealSol, err := mathutil.CheckedSub(r.RealSol, solAmount)
	if err != nil {
		return nil, ErrArithmetic
	}

	r.VirtualToken = newVirtualToken
	r.RealToken = newRealToken
	r.VirtualSol = newVirtualSol
	r.RealSol = newRealSol

	return &SellResult{TokenAmount: tokenAmount, SolAmount: solAmount}, nil
}

// CheckUpdateRealSolReserves reconciles the curve's real SOL reserves with
// the floor implied by its virtual reserves. The portion of virtual SOL
// attributable to the untouched initial token seeding is
// floor(virtualSol * virtualToken / initialVirtualToken); anything above it
// must be backed by real SOL that entered through prior shifts. The floor is
// only ever pulled up. Returns the expected real SOL reserves.
func (m *Market) CheckUpdateRealSolReserves(side Side, cfg *Config) (uint64, error) {
	expected, err := m.expectedRealSolReserves(side, cfg)
	if err != nil {
		return 0, ErrInsufficientRealSolReserves
	}

	r := m.Reserves(side)
	if expected > r.RealSol {
		r.RealSol = expected
	}
	return expected, nil
}

// ApplyCrossShift migrates liquidity away from the curve OPPOSITE to the
// traded one, on buys only. Two independent shifts take place: a virtual
// shift sized from the buy's SOL amount through the float cross factor, and
// a real shift down to the curve's expected real SOL reserves. Both are
// clamped so the curve never drops below the configured minimum liquidity.
// The returned real shift amount must be transferred to the secondary
// treasury by the caller.
func (m *Market) ApplyCrossShift(
	traded Side, solAmount uint64, cfg *Config,
) (virtualShift, realShift uint64, err error) {
	target := traded.Other()
	r := m.Reserves(target)

	// Intentional float step: the shift tolerates bounded rounding error.
	shiftSol := mathutil.FromFloat(
		mathutil.ToFloat(solAmount, LamportDecimals)*cfg.CrossSolFactor,
		LamportDecimals,
	)

	maxRemovableVirtual := mathutil.SaturatingSub(r.VirtualSol, cfg.MinSolLiquidity)
	virtualShift = minUint64(shiftSol, maxRemovableVirtual)
	r.VirtualSol = mathutil.SaturatingSub(r.VirtualSol, virtualShift)

	expected, ferr := m.expectedRealSolReserves(target, cfg)
	if ferr != nil {
		return 0, 0, ErrInvalidExpectedRealSolReserves
	}

	expectedShift := mathutil.SaturatingSub(r.RealSol, expected)
	maxRemovableReal := mathutil.SaturatingSub(r.RealSol, cfg.MinSolLiquidity)
	realShift = minUint64(expectedShift, maxRemovableReal)
	r.RealSol = mathutil.SaturatingSub(r.RealSol, realShift)

	return virtualShift, realShift, nil
}

func (m *Market) expectedRealSolReserves(side Side, cfg *Config) (uint64, error) {
	r := m.Reserves(side)

	basicVirtualSol, err := mathutil.MulDiv(
		r.VirtualSol, r.VirtualToken, cfg.InitialVirtualTokenReserves(side),
	)
	if err != nil {
		return 0, err
	}
	return mathutil.CheckedSub(r.VirtualSol, basicVirtualSol)
}

func quoteError(err error) error {
	if errors.Is(err, formula.ErrAmountTooLow) {
		return ErrAmountTooLow
	}
	return ErrArithmetic
}

func minUint64(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}
