package marketmaking

import (
	"github.com/shopspring/decimal"
)

// CurveFormula defines the interface for implementing the quoting formula of
// a single bonding curve. Amounts are fixed-point integers in the smallest
// unit of each asset; implementations must fail with a sentinel error rather
// than quote zero or negative amounts.
type CurveFormula interface {
	// SpotPrice returns the marginal price of one token unit in SOL.
	SpotPrice(opts interface{}) (decimal.Decimal, error)
	// TokensOutGivenSolIn quotes the token amount bought with solIn.
	TokensOutGivenSolIn(opts interface{}, solIn uint64) (uint64, error)
	// SolOutGivenTokensIn quotes the SOL amount received for selling tokensIn.
	SolOutGivenTokensIn(opts interface{}, tokensIn uint64) (uint64, error)
	// FormulaType identifies the formula.
	FormulaType() int
}

// MakingStrategy wraps the quoting formula applied to the next trade of a
// curve.
type MakingStrategy struct {
	formula CurveFormula
}

// NewStrategyFromFormula returns the strategy struct wrapping the given
// formula.
func NewStrategyFromFormula(formula CurveFormula) MakingStrategy {
	return MakingStrategy{formula: formula}
}

// IsZero checks if the given strategy is the zero value.
func (ms MakingStrategy) IsZero() bool {
	return ms.formula == nil
}

// Formula returns the quoting formula of the strategy.
func (ms MakingStrategy) Formula() CurveFormula {
	return ms.formula
}
