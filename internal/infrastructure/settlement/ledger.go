package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/duocurve-network/duocurve-daemon/pkg/mathutil"
)

// ErrInsufficientFunds is returned whenever a transfer would overdraw the
// source account.
var ErrInsufficientFunds = fmt.Errorf("insufficient funds")

// Ledger is an in-memory double-entry book keeping native and token balances
// per account. It implements ports.SettlementEngine with strict conservation,
// an amount leaves an account if and only if it lands on another one.
type Ledger struct {
	lock   *sync.RWMutex
	sol    map[string]uint64
	tokens map[string]map[string]uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		lock:   &sync.RWMutex{},
		sol:    map[string]uint64{},
		tokens: map[string]map[string]uint64{},
	}
}

func (l *Ledger) TransferSOL(
	_ context.Context, from, to string, amount uint64,
) error {
	if amount == 0 {
		return nil
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.sol[from] < amount {
		return fmt.Errorf(
			"%w: account %s holds %d lamports, %d required",
			ErrInsufficientFunds, from, l.sol[from], amount,
		)
	}
	newTo, err := mathutil.CheckedAdd(l.sol[to], amount)
	if err != nil {
		return err
	}

	l.sol[from] -= amount
	l.sol[to] = newTo
	return nil
}

func (l *Ledger) TransferToken(
	_ context.Context, mint, from, to string, amount uint64,
) error {
	if amount == 0 {
		return nil
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	balances := l.tokens[mint]
	if balances[from] < amount {
		return fmt.Errorf(
			"%w: account %s holds %d of token %s, %d required",
			ErrInsufficientFunds, from, balances[from], mint, amount,
		)
	}
	newTo, err := mathutil.CheckedAdd(balances[to], amount)
	if err != nil {
		return err
	}

	balances[from] -= amount
	balances[to] = newTo
	return nil
}

func (l *Ledger) MintToken(
	_ context.Context, mint, to string, amount uint64,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.tokens[mint] == nil {
		l.tokens[mint] = map[string]uint64{}
	}
	newTo, err := mathutil.CheckedAdd(l.tokens[mint][to], amount)
	if err != nil {
		return err
	}

	l.tokens[mint][to] = newTo
	return nil
}

func (l *Ledger) BalanceOf(_ context.Context, account string) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.sol[account], nil
}

func (l *Ledger) TokenBalanceOf(
	_ context.Context, mint, account string,
) (uint64, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.tokens[mint][account], nil
}

// FundSOL credits native currency out of thin air. It exists for seeding
// accounts before any market activity, there is no faucet on the hot path.
func (l *Ledger) FundSOL(account string, amount uint64) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	newBalance, err := mathutil.CheckedAdd(l.sol[account], amount)
	if err != nil {
		return err
	}

	l.sol[account] = newBalance
	return nil
}

type ledgerState struct {
	Sol    map[string]uint64            `json:"sol"`
	Tokens map[string]map[string]uint64 `json:"tokens"`
}

// ExportState serializes the whole book to JSON so a CLI process can persist
// it between invocations.
func (l *Ledger) ExportState() ([]byte, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return json.Marshal(ledgerState{Sol: l.sol, Tokens: l.tokens})
}

// ImportState replaces the whole book with a previously exported one.
func (l *Ledger) ImportState(raw []byte) error {
	state := ledgerState{}
	if err := json.Unmarshal(raw, &state); err != nil {
		return err
	}
	if state.Sol == nil {
		state.Sol = map[string]uint64{}
	}
	if state.Tokens == nil {
		state.Tokens = map[string]map[string]uint64{}
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	l.sol = state.Sol
	l.tokens = state.Tokens
	return nil
}
