package ports

import "context"

// SettlementEngine is the value-transfer collaborator of the swap
// orchestrator. Implementations custody the actual balances; the engine only
// instructs movements and treats every call as atomic. A failed transfer
// must fail the whole swap, no partial application is tolerated.
type SettlementEngine interface {
	// TransferSOL moves native currency between two accounts.
	TransferSOL(ctx context.Context, from, to string, amount uint64) error
	// TransferToken moves an amount of the given fungible token between two
	// accounts.
	TransferToken(ctx context.Context, mint, from, to string, amount uint64) error
	// MintToken issues supply of a token to an account. Used once per market
	// at creation.
	MintToken(ctx context.Context, mint, to string, amount uint64) error
	// BalanceOf returns the native currency balance of an account.
	BalanceOf(ctx context.Context, account string) (uint64, error)
	// TokenBalanceOf returns the token balance of an account.
	TokenBalanceOf(ctx context.Context, mint, account string) (uint64, error)
}
