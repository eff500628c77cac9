package service

import (
	"context"
	"log"
	"time"

	"agora/snapshot"
)

// StartSnapshotJob periodically persists the ledger and garbage-collects
// both logs behind the snapshot sequence.
func (s *MarketService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-t.C:
				seq := s.seqGen.Current()

				if err := w.Write(seq, s.engine.Ledger()); err != nil {
					log.Printf("[service] snapshot failed: %v", err)
					continue
				}

				// Truncate entry WAL behind the snapshot.
				if s.entryWAL != nil {
					_ = s.entryWAL.TruncateBefore(seq)
				}

				// GC acked outbox records.
				if s.outbox != nil {
					_ = s.outbox.TruncateAckedUpTo(seq)
				}
			}
		}
	}()
}
