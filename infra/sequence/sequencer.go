package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic sequence numbers for commit-log
// records and outbox entries. It is replay-safe: after WAL replay it
// resumes from the last replayed sequence.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. Fresh start -> start = 0; the first Next is 1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset jumps to a specific value. ONLY used after replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
