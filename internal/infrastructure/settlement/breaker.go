package settlement

import (
	"context"

	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/pkg/circuitbreaker"
	"github.com/sony/gobreaker"
)

// BreakerEngine decorates a SettlementEngine with a circuit breaker so that a
// misbehaving settlement backend stops receiving instructions instead of
// stalling every swap.
type BreakerEngine struct {
	inner ports.SettlementEngine
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerEngine(inner ports.SettlementEngine) *BreakerEngine {
	return &BreakerEngine{
		inner: inner,
		cb:    circuitbreaker.NewCircuitBreaker("settlement"),
	}
}

func (e *BreakerEngine) TransferSOL(
	ctx context.Context, from, to string, amount uint64,
) error {
	_, err := e.cb.Execute(func() (interface{}, error) {
		return nil, e.inner.TransferSOL(ctx, from, to, amount)
	})
	return err
}

func (e *BreakerEngine) TransferToken(
	ctx context.Context, mint, from, to string, amount uint64,
) error {
	_, err := e.cb.Execute(func() (interface{}, error) {
		return nil, e.inner.TransferToken(ctx, mint, from, to, amount)
	})
	return err
}

func (e *BreakerEngine) MintToken(
	ctx context.Context, mint, to string, amount uint64,
) error {
	_, err := e.cb.Execute(func() (interface{}, error) {
		return nil, e.inner.MintToken(ctx, mint, to, amount)
	})
	return err
}

func (e *BreakerEngine) BalanceOf(
	ctx context.Context, account string,
) (uint64, error) {
	iBalance, err := e.cb.Execute(func() (interface{}, error) {
		return e.inner.BalanceOf(ctx, account)
	})
	if err != nil {
		return 0, err
	}
	return iBalance.(uint64), nil
}

func (e *BreakerEngine) TokenBalanceOf(
	ctx context.Context, mint, account string,
) (uint64, error) {
	iBalance, err := e.cb.Execute(func() (interface{}, error) {
		return e.inner.TokenBalanceOf(ctx, mint, account)
	})
	if err != nil {
		return 0, err
	}
	return iBalance.(uint64), nil
}
