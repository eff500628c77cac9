package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"agora/domain/market"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	ledger := market.NewLedger()
	ledger.Restore(market.Listing{
		ID:     1,
		Asset:  market.AssetRef{Registry: "AGR", TokenID: 4},
		Price:  200,
		Seller: "alice",
		Sold:   true,
	})
	ledger.Restore(market.Listing{
		ID:     2,
		Asset:  market.AssetRef{Registry: "AGR", TokenID: 5},
		Price:  300,
		Seller: "bob",
	})

	w := &Writer{Dir: dir}
	if err := w.Write(9, ledger); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	restored := market.NewLedger()
	seq, err := Load(filepath.Join(dir, "snapshot.bin"), restored)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if seq != 9 {
		t.Fatalf("snapshot seq = %d, want 9", seq)
	}
	if restored.Count() != 2 {
		t.Fatalf("restored count = %d, want 2", restored.Count())
	}

	first, err := restored.Get(1)
	if err != nil {
		t.Fatalf("get restored 1: %v", err)
	}
	if !first.Sold || first.Price != 200 || first.Seller != "alice" || first.Asset.TokenID != 4 {
		t.Fatalf("restored listing 1: %+v", first)
	}
	second, _ := restored.Get(2)
	if second.Sold || second.Seller != "bob" {
		t.Fatalf("restored listing 2: %+v", second)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	ledger := market.NewLedger()
	seq, err := Load(filepath.Join(t.TempDir(), "snapshot.bin"), ledger)
	if err != nil {
		t.Fatalf("missing snapshot should not error: %v", err)
	}
	if seq != 0 || ledger.Count() != 0 {
		t.Fatalf("missing snapshot produced seq=%d count=%d", seq, ledger.Count())
	}
}

func TestLoadPropagatesOpenErrors(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the snapshot directory should be: the open
	// fails with ENOTDIR, not ENOENT, and must surface to the caller.
	base := filepath.Join(dir, "snapshots")
	if err := os.WriteFile(base, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := Load(filepath.Join(base, "snapshot.bin"), market.NewLedger()); err == nil {
		t.Fatal("broken snapshot path treated as missing snapshot")
	}
}

func TestWriteNeverLeavesTempFile(t *testing.T) {
	dir := t.TempDir()

	w := &Writer{Dir: dir}
	if err := w.Write(1, market.NewLedger()); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}
