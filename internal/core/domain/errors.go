package domain

import "errors"

var (
	// ErrInvalidAmount is thrown when a swap amount is zero.
	ErrInvalidAmount = errors.New("amount is invalid")
	// ErrInvalidSide ...
	ErrInvalidSide = errors.New("side must be either yes or no")
	// ErrInvalidDirection ...
	ErrInvalidDirection = errors.New("direction must be either buy or sell")
	// ErrAmountTooLow ...
	ErrAmountTooLow = errors.New("provided amount is too low")
	// ErrArithmetic is thrown when an overflow, underflow or failed 64-bit
	// narrowing occurs while applying a trade. No reserve field is mutated.
	ErrArithmetic = errors.New("overflow or underflow occurred")
	// ErrBuyExceedsRealReserves is thrown when a projected buy would meet or
	// exceed the curve's real token reserves.
	ErrBuyExceedsRealReserves = errors.New("buy token amount exceeds real token reserves")
	// ErrInsufficientRealSolReserves is thrown when the real SOL reserve
	// reconciliation cannot be completed for the traded curve.
	ErrInsufficientRealSolReserves = errors.New("insufficient real sol reserves")
	// ErrInvalidExpectedRealSolReserves is thrown when the cross-curve shift
	// cannot compute the stabilization target of the untraded curve.
	ErrInvalidExpectedRealSolReserves = errors.New("invalid expected real sol reserves")
	// ErrSlippageExceeded is thrown when the quoted outcome violates the
	// trader's minimum-receive bound.
	ErrSlippageExceeded = errors.New("slippage exceeded")
	// ErrMarketAlreadyCompleted ...
	ErrMarketAlreadyCompleted = errors.New("cannot swap after the market is completed")

	// ErrConfigNotInitialized ...
	ErrConfigNotInitialized = errors.New("config not initialized")
	// ErrConfigInvalidFee ...
	ErrConfigInvalidFee = errors.New("fee must be expressed in basis points out of 10000")
	// ErrConfigInvalidDecimals ...
	ErrConfigInvalidDecimals = errors.New("token decimals must not exceed the lamport precision")
	// ErrConfigInvalidCrossFactor ...
	ErrConfigInvalidCrossFactor = errors.New("cross sol factor must be within [0, 1]")
	// ErrConfigInvalidReserves ...
	ErrConfigInvalidReserves = errors.New("initial curve reserves must not be zero")

	// ErrMarketInvalidMints ...
	ErrMarketInvalidMints = errors.New("yes and no mints must be set and distinct")
	// ErrMarketInvalidCreator ...
	ErrMarketInvalidCreator = errors.New("market creator must not be empty")
	// ErrMarketInvalidInfo ...
	ErrMarketInvalidInfo = errors.New("market info must not be empty")
)
