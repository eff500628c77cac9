package registry

import (
	"errors"
	"sync"

	"agora/domain/market"
)

// ErrUnknownToken is returned for tokens that were never minted here.
var ErrUnknownToken = errors.New("registry: unknown token")

/*
Registry is an in-process token registry: dense token ids, per-token
metadata URIs, and operator approvals. It stands in for the external
registry collaborator in local runs and tests.

AssetRef.Registry carries the collection symbol.
*/

type Registry struct {
	name   string
	symbol string

	mu        sync.RWMutex
	owners    map[uint64]market.Identity
	uris      map[uint64]string
	approvals map[market.Identity]map[market.Identity]bool
	count     uint64
}

func New(name, symbol string) *Registry {
	return &Registry{
		name:      name,
		symbol:    symbol,
		owners:    make(map[uint64]market.Identity),
		uris:      make(map[uint64]string),
		approvals: make(map[market.Identity]map[market.Identity]bool),
	}
}

func (r *Registry) Name() string   { return r.name }
func (r *Registry) Symbol() string { return r.symbol }

// -------------------- Minting --------------------

// Mint assigns the next token id to owner and stores its metadata URI.
func (r *Registry) Mint(owner market.Identity, uri string) market.AssetRef {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	r.owners[r.count] = owner
	r.uris[r.count] = uri

	return market.AssetRef{Registry: r.symbol, TokenID: r.count}
}

// TokenCount is the number of tokens ever minted.
func (r *Registry) TokenCount() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

func (r *Registry) TokenURI(tokenID uint64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uri, ok := r.uris[tokenID]
	if !ok {
		return "", ErrUnknownToken
	}
	return uri, nil
}

// BalanceOf counts tokens currently held by owner.
func (r *Registry) BalanceOf(owner market.Identity) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, o := range r.owners {
		if o == owner {
			n++
		}
	}
	return n
}

// -------------------- Approvals --------------------

// SetApprovalForAll grants or revokes operator authority over every asset
// owner holds, now and in the future.
func (r *Registry) SetApprovalForAll(owner, operator market.Identity, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.approvals[owner]
	if !ok {
		m = make(map[market.Identity]bool)
		r.approvals[owner] = m
	}
	m[operator] = approved
}

// -------------------- Capability view --------------------

// Operator binds an operator identity and returns the registry capability
// the engine consumes. Every Transfer through the view is authorized as op.
func (r *Registry) Operator(op market.Identity) market.Registry {
	return &bound{r: r, op: op}
}

type bound struct {
	r  *Registry
	op market.Identity
}

func (b *bound) OwnerOf(asset market.AssetRef) (market.Identity, error) {
	b.r.mu.RLock()
	defer b.r.mu.RUnlock()

	owner, ok := b.r.lookup(asset)
	if !ok {
		return "", ErrUnknownToken
	}
	return owner, nil
}

func (b *bound) IsApprovedForAll(owner, operator market.Identity) bool {
	b.r.mu.RLock()
	defer b.r.mu.RUnlock()
	return b.r.approvals[owner][operator]
}

// Transfer moves the asset from -> to. The bound operator must be the
// current owner or hold the owner's blanket approval.
func (b *bound) Transfer(from, to market.Identity, asset market.AssetRef) error {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()

	owner, ok := b.r.lookup(asset)
	if !ok {
		return ErrUnknownToken
	}
	if owner != from {
		return market.ErrTransferNotAuthorized
	}
	if b.op != from && !b.r.approvals[from][b.op] {
		return market.ErrTransferNotAuthorized
	}

	b.r.owners[asset.TokenID] = to
	return nil
}

// lookup resolves an asset under either lock. Callers hold r.mu.
func (r *Registry) lookup(asset market.AssetRef) (market.Identity, bool) {
	if asset.Registry != r.symbol {
		return "", false
	}
	owner, ok := r.owners[asset.TokenID]
	return owner, ok
}
