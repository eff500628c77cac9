package market

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

/*
Engine is the settlement core.

It owns the listing ledger and the fee policy, and consumes the Registry
and Treasury capabilities for ownership and value movement. All writes run
under one mutex: the unsold check and the sold mutation are a single
critical section, so two concurrent purchases of the same id resolve to
exactly one success and one ErrAlreadySold.
*/

type Engine struct {
	mu sync.Mutex

	policy    FeePolicy
	registry  Registry
	treasury  Treasury
	custodian Identity

	ledger *Ledger
}

// NewEngine wires the engine. The custodian identity is the account that
// holds escrowed assets between listing and sale.
func NewEngine(policy FeePolicy, reg Registry, tre Treasury, custodian Identity) *Engine {
	return &Engine{
		policy:    policy,
		registry:  reg,
		treasury:  tre,
		custodian: custodian,
		ledger:    NewLedger(),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// CreateListing escrows the asset with the custodian and records a new
// listing under the next dense id. Either both happen or neither: a
// rejected custody transfer consumes no id, and a bad price makes no
// registry call at all.
func (e *Engine) CreateListing(asset AssetRef, price int64, seller Identity) (Listing, error) {
	if price <= 0 {
		return Listing{}, ErrInvalidPrice
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.registry.Transfer(seller, e.custodian, asset); err != nil {
		return Listing{}, fmt.Errorf("custody transfer: %w", err)
	}

	return e.ledger.append(asset, price, seller), nil
}

// Purchase settles a listing. Preconditions are checked in order, first
// failure wins, and any failure leaves ledger, balances and ownership
// untouched. The seller leg, the fee leg and the asset transfer commit as
// one treasury transaction.
func (e *Engine) Purchase(id uint64, remitted int64, buyer Identity) (Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	lst, err := e.ledger.Get(id)
	if err != nil {
		return Receipt{}, err
	}
	if lst.Sold {
		return Receipt{}, ErrAlreadySold
	}

	total := e.policy.Total(lst.Price)
	if remitted < total {
		return Receipt{}, ErrInsufficientPayment
	}
	if remitted > total {
		return Receipt{}, ErrOverpayment
	}

	err = e.treasury.Settle(buyer, remitted, func(tx PayTx) error {
		if err := tx.Pay(lst.Seller, lst.Price); err != nil {
			return err
		}
		if err := tx.Pay(e.policy.Recipient, remitted-lst.Price); err != nil {
			return err
		}
		// Funds move first; a registry rejection here rolls the
		// whole transaction back.
		return e.registry.Transfer(e.custodian, buyer, lst.Asset)
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("settlement: %w", err)
	}

	e.ledger.markSold(id)

	return Receipt{
		ID:        uuid.NewString(),
		ListingID: lst.ID,
		Asset:     lst.Asset,
		Price:     lst.Price,
		Seller:    lst.Seller,
		Buyer:     buyer,
	}, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// TotalPrice is the amount a buyer must remit for the listing.
// Pure function of stored state; defined for sold listings too.
func (e *Engine) TotalPrice(id uint64) (int64, error) {
	lst, err := e.ledger.Get(id)
	if err != nil {
		return 0, err
	}
	return e.policy.Total(lst.Price), nil
}

func (e *Engine) Get(id uint64) (Listing, error) {
	return e.ledger.Get(id)
}

func (e *Engine) Count() uint64 {
	return e.ledger.Count()
}

func (e *Engine) Policy() FeePolicy {
	return e.policy
}

// Ledger exposes the store for snapshot and replay plumbing.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}
