package domain

import "github.com/google/uuid"

// TradeDirection discriminates buys from sells.
type TradeDirection uint8

const (
	// TradeBuy spends SOL for curve tokens.
	TradeBuy TradeDirection = 0
	// TradeSell spends curve tokens for SOL.
	TradeSell TradeDirection = 1
)

func (d TradeDirection) String() string {
	if d == TradeSell {
		return "sell"
	}
	return "buy"
}

// Validate returns an error for directions outside the buy/sell pair.
func (d TradeDirection) Validate() error {
	if d != TradeBuy && d != TradeSell {
		return ErrInvalidDirection
	}
	return nil
}

// Trade is the persisted record of a settled swap. It snapshots both curves
// after the trade so that the history alone can replay reserve evolution.
type Trade struct {
	ID       uuid.UUID
	MarketID string
	Trader   string

	Direction TradeDirection
	Side      Side

	SolAmount   uint64
	TokenAmount uint64

	PlatformFee       uint64
	CreatorFee        uint64
	ShiftSolReal      uint64
	ShiftSolVirtual   uint64
	DiscountedFeeTier bool

	YesReserves CurveReserves
	NoReserves  CurveReserves

	Timestamp int64
}

// NewTrade returns a trade record with a fresh id.
func NewTrade() *Trade {
	return &Trade{ID: uuid.New()}
}
