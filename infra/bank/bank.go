package bank

import (
	"errors"
	"sync"

	"agora/domain/market"
)

// ErrUnbalancedSettlement means the settlement function tried to disburse
// more or less than it withdrew. This is a conservation violation in the
// settlement logic, not a payer-balance problem.
var ErrUnbalancedSettlement = errors.New("bank: settlement must disburse exactly the withdrawn amount")

/*
Bank is an in-memory account ledger implementing the market.Treasury
capability. Settle is all-or-nothing: the payer debit and every payment
made inside the settlement function commit together, and any failure
restores the balances the transaction touched.
*/

type Bank struct {
	mu       sync.Mutex
	balances map[market.Identity]int64
}

func New() *Bank {
	return &Bank{
		balances: make(map[market.Identity]int64),
	}
}

// Deposit credits an account. Test and bootstrap helper.
func (b *Bank) Deposit(id market.Identity, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[id] += amount
}

func (b *Bank) BalanceOf(id market.Identity) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[id]
}

// Settle implements market.Treasury.
func (b *Bank) Settle(payer market.Identity, amount int64, fn func(market.PayTx) error) error {
	if amount <= 0 {
		return market.ErrInsufficientFunds
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[payer] < amount {
		return market.ErrInsufficientFunds
	}

	tx := &payTx{bank: b}
	tx.apply(payer, -amount)
	tx.pending = amount

	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	if tx.pending != 0 {
		tx.rollback()
		return ErrUnbalancedSettlement
	}
	return nil
}

// payTx journals balance deltas so a failed settlement can be undone.
// It runs entirely under the bank lock.
type payTx struct {
	bank    *Bank
	pending int64
	journal []delta
}

type delta struct {
	id     market.Identity
	amount int64
}

func (t *payTx) Pay(to market.Identity, amount int64) error {
	if amount < 0 || amount > t.pending {
		return ErrUnbalancedSettlement
	}
	t.apply(to, amount)
	t.pending -= amount
	return nil
}

func (t *payTx) apply(id market.Identity, amount int64) {
	t.bank.balances[id] += amount
	t.journal = append(t.journal, delta{id: id, amount: amount})
}

func (t *payTx) rollback() {
	for i := len(t.journal) - 1; i >= 0; i-- {
		d := t.journal[i]
		t.bank.balances[d.id] -= d.amount
	}
	t.journal = nil
}
