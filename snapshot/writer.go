package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"agora/domain/market"
)

type Writer struct {
	Dir string
}

// Write persists the whole ledger, sold listings included; ids are dense
// so the snapshot is the complete history.
func (w *Writer) Write(seq uint64, ledger *market.Ledger) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:      seq,
		Created:  time.Now(),
		Listings: make([]ListingEntry, 0, ledger.Count()),
	}

	ledger.Walk(func(lst market.Listing) {
		s.Listings = append(s.Listings, ListingEntry{
			ID:       lst.ID,
			Registry: lst.Asset.Registry,
			TokenID:  lst.Asset.TokenID,
			Price:    lst.Price,
			Seller:   string(lst.Seller),
			Sold:     lst.Sold,
		})
	})

	// Write to a temp file first so a crash never leaves a torn snapshot.
	path := filepath.Join(w.Dir, "snapshot.bin")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
