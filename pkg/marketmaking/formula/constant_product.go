// Package formula defines the quoting formulas implementing the CurveFormula
// interface.
package formula

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

const ConstantProductType = 1

var (
	// ErrInvalidOptsType ...
	ErrInvalidOptsType = errors.New("opts must be of type ConstantProductOpts")
	// ErrAmountTooLow ...
	ErrAmountTooLow = errors.New("provided amount is too low")
	// ErrBalanceTooLow ...
	ErrBalanceTooLow = errors.New("reserve balance amount is too low")
	// ErrArithmetic is returned when an intermediate value cannot be narrowed
	// back to a 64-bit amount.
	ErrArithmetic = errors.New("arithmetic error")
)

// ConstantProductOpts defines the reserves of the curve being quoted.
// SolReserves and TokenReserves are the curve's virtual reserves; quoting
// never reads real reserves. TokenDecimals is the fixed-point precision of
// the token, BasisDecimals the common basis both sides are rescaled to
// before applying the product formula.
type ConstantProductOpts struct {
	SolReserves   uint64
	TokenReserves uint64
	TokenDecimals uint32
	BasisDecimals uint32
}

// ConstantProduct defines a x*y=k curve quoted against a shared SOL pool.
type ConstantProduct struct{}

// SpotPrice returns the SOL value of one whole token at the current virtual
// reserves.
func (ConstantProduct) SpotPrice(_opts interface{}) (decimal.Decimal, error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		return decimal.Zero, ErrInvalidOptsType
	}
	if opts.SolReserves == 0 || opts.TokenReserves == 0 {
		return decimal.Zero, ErrBalanceTooLow
	}

	price := mathutil.Ratio(opts.SolReserves, opts.TokenReserves)
	scale := int32(opts.BasisDecimals) - int32(opts.TokenDecimals)
	return price.Shift(-scale), nil
}

// TokensOutGivenSolIn returns the token amount that will be exchanged for
// the given SOL amount. Token reserves are rescaled to the common decimal
// basis, the product invariant is applied on widened integers, and the
// result is rescaled back and narrowed to 64 bits.
func (ConstantProduct) TokensOutGivenSolIn(
	_opts interface{}, solIn uint64,
) (uint64, error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		return 0, ErrInvalidOptsType
	}
	if solIn == 0 {
		return 0, ErrAmountTooLow
	}
	if opts.SolReserves == 0 || opts.TokenReserves == 0 {
		return 0, ErrBalanceTooLow
	}

	curSol := new(big.Int).SetUint64(opts.SolReserves)
	curTokens := rebase(
		new(big.Int).SetUint64(opts.TokenReserves),
		opts.TokenDecimals, opts.BasisDecimals,
	)

	newSol := new(big.Int).Add(curSol, new(big.Int).SetUint64(solIn))
	newTokens := new(big.Int).Div(new(big.Int).Mul(curSol, curTokens), newSol)
	tokensOut := new(big.Int).Sub(curTokens, newTokens)

	tokensOut = rebase(tokensOut, opts.BasisDecimals, opts.TokenDecimals)
	if !tokensOut.IsUint64() {
		return 0, ErrArithmetic
	}
	return tokensOut.Uint64(), nil
}

// SolOutGivenTokensIn returns the SOL amount that will be exchanged for the
// given token amount. Symmetric to TokensOutGivenSolIn.
func (ConstantProduct) SolOutGivenTokensIn(
	_opts interface{}, tokensIn uint64,
) (uint64, error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		return 0, ErrInvalidOptsType
	}
	if tokensIn == 0 {
		return 0, ErrAmountTooLow
	}
	if opts.SolReserves == 0 || opts.TokenReserves == 0 {
		return 0, ErrBalanceTooLow
	}

	curSol := new(big.Int).SetUint64(opts.SolReserves)
	curTokens := rebase(
		new(big.Int).SetUint64(opts.TokenReserves),
		opts.TokenDecimals, opts.BasisDecimals,
	)

	newTokens := new(big.Int).Add(curTokens, rebase(
		new(big.Int).SetUint64(tokensIn),
		opts.TokenDecimals, opts.BasisDecimals,
	))
	newSol := new(big.Int).Div(new(big.Int).Mul(curSol, curTokens), newTokens)
	solOut := new(big.Int).Sub(curSol, newSol)

	if !solOut.IsUint64() {
		return 0, ErrArithmetic
	}
	return solOut.Uint64(), nil
}

func (ConstantProduct) FormulaType() int {
	return ConstantProductType
}

// rebase converts between decimal bases as multiply-then-divide so that the
// intermediate keeps full precision.
func rebase(v *big.Int, fromDecimals, toDecimals uint32) *big.Int {
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(toDecimals)), nil)
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fromDecimals)), nil)
	return new(big.Int).Div(new(big.Int).Mul(v, mul), div)
}
