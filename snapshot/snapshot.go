package snapshot

import "time"

// Snapshot is a full copy of the listing ledger at a record sequence.
// Seq drives entry-WAL truncation and sequencer resets after load.
type Snapshot struct {
	Seq      uint64
	Created  time.Time
	Listings []ListingEntry
}

type ListingEntry struct {
	ID       uint64
	Registry string
	TokenID  uint64
	Price    int64
	Seller   string
	Sold     bool
}
