// Package mathutil collects the overflow-checked integer helpers used by the
// pricing engine. All intermediate products and quotients are computed on
// big.Int so that two 64-bit operands can never overflow an intermediate;
// results are narrowed back to uint64 and the narrowing is checked.
package mathutil

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow is returned when a checked operation does not fit a uint64.
	ErrOverflow = errors.New("overflow or underflow occurred")
	// ErrDivideByZero is returned on a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
)

// CheckedAdd returns x + y or ErrOverflow.
func CheckedAdd(x, y uint64) (uint64, error) {
	z := x + y
	if z < x {
		return 0, ErrOverflow
	}
	return z, nil
}

// CheckedSub returns x - y or ErrOverflow if the subtraction underflows.
func CheckedSub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrOverflow
	}
	return x - y, nil
}

// SaturatingSub returns x - y, clamped at zero.
func SaturatingSub(x, y uint64) uint64 {
	if y > x {
		return 0
	}
	return x - y
}

// MulDiv computes floor(x * y / z) with a widened intermediate product.
// It returns ErrDivideByZero on z == 0 and ErrOverflow if the quotient does
// not fit a uint64.
func MulDiv(x, y, z uint64) (uint64, error) {
	if z == 0 {
		return 0, ErrDivideByZero
	}
	X := new(big.Int).SetUint64(x)
	Y := new(big.Int).SetUint64(y)
	Z := new(big.Int).SetUint64(z)

	q := new(big.Int).Div(new(big.Int).Mul(X, Y), Z)
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return q.Uint64(), nil
}

// Rebase converts an amount between two fixed-point decimal bases, applied
// as multiply-then-divide to avoid truncation bias.
func Rebase(amount uint64, fromDecimals, toDecimals uint32) (uint64, error) {
	return MulDiv(amount, pow10(toDecimals), pow10(fromDecimals))
}

// ToFloat converts a fixed-point amount to its float representation.
func ToFloat(amount uint64, decimals uint32) float64 {
	return float64(amount) / math.Pow10(int(decimals))
}

// FromFloat truncates a float value back to a fixed-point amount.
func FromFloat(value float64, decimals uint32) uint64 {
	return uint64(value * math.Pow10(int(decimals)))
}

// Ratio returns x / y as decimal.Decimal. Used for spot prices only, never
// for reserve accounting.
func Ratio(x, y uint64) decimal.Decimal {
	X := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
	Y := decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	return X.DivRound(Y, 9)
}

func pow10(n uint32) uint64 {
	p := uint64(1)
	for i := uint32(0); i < n; i++ {
		p *= 10
	}
	return p
}
