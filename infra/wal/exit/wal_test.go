package exit

import (
	"fmt"
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestPutAndGet(t *testing.T) {
	o := openTestOutbox(t)

	if err := o.PutNew(1, []byte(`{"type":"offered"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := o.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || rec.Retries != 0 {
		t.Fatalf("fresh record state=%v retries=%d", rec.State, rec.Retries)
	}
	if string(rec.Payload) != `{"type":"offered"}` {
		t.Fatalf("payload = %q", rec.Payload)
	}
}

func TestStateTransitions(t *testing.T) {
	o := openTestOutbox(t)
	if err := o.PutNew(1, []byte("e")); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := o.Get(1)
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("after sent: state=%v retries=%d attempt=%d", rec.State, rec.Retries, rec.LastAttempt)
	}

	// A second attempt bumps the retry counter.
	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent again: %v", err)
	}
	rec, _ = o.Get(1)
	if rec.Retries != 2 {
		t.Fatalf("retries = %d, want 2", rec.Retries)
	}

	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = o.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("after ack: state=%v", rec.State)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 5; seq++ {
		if err := o.PutNew(seq, []byte(fmt.Sprintf("event-%d", seq))); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}
	_ = o.MarkSent(2) // sent but unacked: must still be visited
	_ = o.MarkSent(3)
	_ = o.MarkAcked(3)

	var seen []uint64
	err := o.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []uint64{1, 2, 4, 5}
	if len(seen) != len(want) {
		t.Fatalf("scanned %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("scanned %v, want %v", seen, want)
		}
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	o := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		_ = o.PutNew(seq, []byte("e"))
		_ = o.MarkSent(seq)
		_ = o.MarkAcked(seq)
	}
	_ = o.PutNew(5, []byte("pending"))

	if err := o.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	for seq := uint64(1); seq <= 3; seq++ {
		if _, err := o.Get(seq); err == nil {
			t.Fatalf("seq %d survived truncation", seq)
		}
	}
	// Acked above the limit and pending records stay.
	if _, err := o.Get(4); err != nil {
		t.Fatalf("seq 4 removed: %v", err)
	}
	if _, err := o.Get(5); err != nil {
		t.Fatalf("seq 5 removed: %v", err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	o, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := o.PutNew(7, []byte("durable")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	o2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer o2.Close()

	rec, err := o2.Get(7)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(rec.Payload) != "durable" || rec.State != StateNew {
		t.Fatalf("record after reopen: %+v", rec)
	}
}
