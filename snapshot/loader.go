package snapshot

import (
	"encoding/gob"
	"errors"
	"io/fs"
	"os"

	"agora/domain/market"
)

// Load restores the ledger from a snapshot file and returns its sequence.
// A missing snapshot is not an error; replay starts from an empty ledger.
// Any other open failure is real and must not degrade recovery silently.
func Load(path string, ledger *market.Ledger) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil // snapshot optional
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Listings {
		ledger.Restore(market.Listing{
			ID: e.ID,
			Asset: market.AssetRef{
				Registry: e.Registry,
				TokenID:  e.TokenID,
			},
			Price:  e.Price,
			Seller: market.Identity(e.Seller),
			Sold:   e.Sold,
		})
	}

	return s.Seq, nil
}
