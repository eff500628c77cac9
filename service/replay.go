package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"agora/domain/market"
	"agora/infra/sequence"
	entrywal "agora/infra/wal/entry"
)

/*
ReplayFromWAL rebuilds the listing ledger from the entry WAL.

IMPORTANT:
- This MUST run before accepting traffic.
- Records at or below `after` (the loaded snapshot sequence) are skipped.
- Replay restores ledger state directly; it never re-invokes the payment
  or registry capabilities, because every record in the log already
  committed once.
*/

func ReplayFromWAL(
	walDir string,
	after uint64,
	ledger *market.Ledger,
	seqGen *sequence.Sequencer,
) error {
	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= after {
			return nil
		}

		switch rec.Type {
		case entrywal.RecordListed:
			lst, err := parseListed(rec.Data)
			if err != nil {
				return err
			}
			ledger.Restore(lst)
			return nil

		case entrywal.RecordSold:
			id, err := parseSold(rec.Data)
			if err != nil {
				return err
			}
			return ledger.RestoreSale(id)

		default:
			return fmt.Errorf("unknown record type %d", rec.Type)
		}
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	if lastSeq > after {
		seqGen.Reset(lastSeq)
	} else {
		seqGen.Reset(after)
	}

	log.Printf("[service] WAL replay completed (last seq = %d, ledger count = %d)",
		seqGen.Current(), ledger.Count())
	return nil
}

// Payload format: id|registry|token|price|seller
func parseListed(data []byte) (market.Listing, error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 5 {
		return market.Listing{}, fmt.Errorf("invalid listed payload: %q", data)
	}

	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return market.Listing{}, err
	}
	token, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return market.Listing{}, err
	}
	price, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return market.Listing{}, err
	}

	return market.Listing{
		ID: id,
		Asset: market.AssetRef{
			Registry: parts[1],
			TokenID:  token,
		},
		Price:  price,
		Seller: market.Identity(parts[4]),
	}, nil
}

// Payload format: id|buyer|remitted
func parseSold(data []byte) (uint64, error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid sold payload: %q", data)
	}
	return strconv.ParseUint(parts[0], 10, 64)
}
