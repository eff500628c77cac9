package market

import "sync"

// Ledger is the listing store. Ids are dense, strictly increasing from 1,
// and never reused; the total count is always the last assigned id.
// Listings are never removed — Sold is the only terminal state.
type Ledger struct {
	mu       sync.RWMutex
	listings map[uint64]*Listing
	count    uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		listings: make(map[uint64]*Listing),
	}
}

// append assigns the next id and stores the listing.
// Only the engine calls this, inside its write section.
func (l *Ledger) append(asset AssetRef, price int64, seller Identity) Listing {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.count++
	lst := &Listing{
		ID:     l.count,
		Asset:  asset,
		Price:  price,
		Seller: seller,
	}
	l.listings[lst.ID] = lst
	return *lst
}

// markSold flips the terminal flag. The caller must have verified the
// listing exists and is unsold inside the engine's critical section.
func (l *Ledger) markSold(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listings[id].Sold = true
}

// Get returns a copy of the listing, or ErrNotFound.
func (l *Ledger) Get(id uint64) (Listing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lst, ok := l.listings[id]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return *lst, nil
}

// Count is the number of listings ever created.
func (l *Ledger) Count() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// Walk visits every listing in id order. Used by snapshots.
func (l *Ledger) Walk(fn func(Listing)) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for id := uint64(1); id <= l.count; id++ {
		fn(*l.listings[id])
	}
}

// Restore places a listing during snapshot load or WAL replay,
// bypassing capability calls. Ids must arrive in order.
func (l *Ledger) Restore(lst Listing) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cp := lst
	l.listings[lst.ID] = &cp
	if lst.ID > l.count {
		l.count = lst.ID
	}
}

// RestoreSale replays a settled purchase.
func (l *Ledger) RestoreSale(id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lst, ok := l.listings[id]
	if !ok {
		return ErrNotFound
	}
	lst.Sold = true
	return nil
}
