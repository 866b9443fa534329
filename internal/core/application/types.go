package application

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/duocurve-network/duocurve-daemon/internal/core/domain"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
)

const (
	// GlobalVault is the account pooling the SOL reserves and the token
	// inventory of all markets.
	GlobalVault = "global-vault"

	// CreatorVaultReserve is the balance floor left in a creator vault so
	// the account stays alive across claims.
	CreatorVaultReserve uint64 = 1_000_000
)

// CreatorVaultAccount derives the per-market vault accruing creator fees.
func CreatorVaultAccount(marketID string) string {
	h := sha256.Sum256([]byte("creator-vault:" + marketID))
	return hex.EncodeToString(h[:])
}

type topic struct {
	code  int
	label string
}

func (t topic) Code() int     { return t.code }
func (t topic) Label() string { return t.label }

var (
	// LaunchTopic carries market creation snapshots.
	LaunchTopic ports.Topic = topic{code: 0, label: "launch"}
	// TradeTopic carries per-swap records.
	TradeTopic ports.Topic = topic{code: 1, label: "trade"}
)

// SwapRequest is a trade submitted to the orchestrator.
type SwapRequest struct {
	MarketID string
	Trader   string

	Amount    uint64
	Direction domain.TradeDirection
	Side      domain.Side

	// MinimumReceiveAmount is the slippage bound: tokens for a buy, net SOL
	// for a sell.
	MinimumReceiveAmount uint64
}

// SwapResult reports the settled outcome of a swap.
type SwapResult struct {
	TradeID string

	SolAmount   uint64
	TokenAmount uint64

	PlatformFee uint64
	CreatorFee  uint64

	ShiftSolVirtual uint64
	ShiftSolReal    uint64

	DiscountedFeeTier bool
	Timestamp         int64
}

// SwapPreview quotes a swap without touching any state. Fees are already
// subtracted from the previewed amount.
type SwapPreview struct {
	Amount      uint64
	PlatformFee uint64
	CreatorFee  uint64
}

// CreateMarketRequest carries the parameters of both market creation
// variants.
type CreateMarketRequest struct {
	YesMint    string
	NoMint     string
	Creator    string
	MarketInfo string
	MarketType uint8
}

// CurveSnapshot mirrors domain.CurveReserves in event payloads.
type CurveSnapshot struct {
	VirtualReserveLamport uint64 `json:"virtual_reserve_lamport"`
	VirtualReserveToken   uint64 `json:"virtual_reserve_token"`
	RealReserveLamport    uint64 `json:"real_reserve_lamport"`
	RealReserveToken      uint64 `json:"real_reserve_token"`
}

// LaunchEvent is the market creation snapshot published on LaunchTopic.
type LaunchEvent struct {
	Creator string `json:"creator"`
	Market  string `json:"market"`

	YesMint string        `json:"yes_mint"`
	Yes     CurveSnapshot `json:"yes"`

	NoMint string        `json:"no_mint"`
	No     CurveSnapshot `json:"no"`

	MarketInfo  string `json:"market_info"`
	TokenSupply uint64 `json:"token_supply"`
	Decimals    uint32 `json:"decimals"`
	MarketType  uint8  `json:"market_type"`
}

// TradeEvent is the per-swap record published on TradeTopic.
type TradeEvent struct {
	User    string `json:"user"`
	YesMint string `json:"yes_mint"`
	NoMint  string `json:"no_mint"`
	Market  string `json:"market"`

	SolAmount         uint64 `json:"sol_amount"`
	TokenAmount       uint64 `json:"token_amount"`
	PlatformFee       uint64 `json:"platform_fee_lamports"`
	CreatorFee        uint64 `json:"creator_fee_lamports"`
	ShiftLamportsReal uint64 `json:"shift_lamports_real"`
	ShiftLamportsVirt uint64 `json:"shift_lamports_virtual"`

	Direction uint8  `json:"direction"`
	Side      string `json:"side"`
	Timestamp int64  `json:"timestamp"`

	Yes CurveSnapshot `json:"yes"`
	No  CurveSnapshot `json:"no"`
}

func snapshotCurve(r domain.CurveReserves) CurveSnapshot {
	return CurveSnapshot{
		VirtualReserveLamport: r.VirtualSol,
		VirtualReserveToken:   r.VirtualToken,
		RealReserveLamport:    r.RealSol,
		RealReserveToken:      r.RealToken,
	}
}

// MarketInfo is the read model returned by listing operations.
type MarketInfo struct {
	ID          string
	YesMint     string
	NoMint      string
	Creator     string
	MarketInfo  string
	MarketType  uint8
	IsCompleted bool
	Yes         CurveSnapshot
	No          CurveSnapshot
}

func marketInfoFromDomain(m *domain.Market) MarketInfo {
	return MarketInfo{
		ID:          m.ID,
		YesMint:     m.YesMint,
		NoMint:      m.NoMint,
		Creator:     m.Creator,
		MarketInfo:  m.MarketInfo,
		MarketType:  m.MarketType,
		IsCompleted: m.IsCompleted,
		Yes:         snapshotCurve(*m.Reserves(domain.SideYes)),
		No:          snapshotCurve(*m.Reserves(domain.SideNo)),
	}
}
