package market

import (
	"errors"
	"testing"
)

func TestLedgerDenseIDs(t *testing.T) {
	l := NewLedger()

	for i := 1; i <= 5; i++ {
		lst := l.append(AssetRef{Registry: "AGR", TokenID: uint64(i)}, 100, "alice")
		if lst.ID != uint64(i) {
			t.Fatalf("expected id %d, got %d", i, lst.ID)
		}
	}
	if l.Count() != 5 {
		t.Fatalf("expected count 5, got %d", l.Count())
	}
}

func TestLedgerGetReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.append(AssetRef{Registry: "AGR", TokenID: 1}, 100, "alice")

	lst, err := l.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	lst.Price = 999

	again, _ := l.Get(1)
	if again.Price != 100 {
		t.Fatal("mutation of a returned listing leaked into the ledger")
	}
}

func TestLedgerGetMissing(t *testing.T) {
	l := NewLedger()
	if _, err := l.Get(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLedgerWalkInOrder(t *testing.T) {
	l := NewLedger()
	for i := 1; i <= 10; i++ {
		l.append(AssetRef{Registry: "AGR", TokenID: uint64(i)}, int64(i), "alice")
	}

	var prev uint64
	l.Walk(func(lst Listing) {
		if lst.ID != prev+1 {
			t.Fatalf("walk out of order: %d after %d", lst.ID, prev)
		}
		prev = lst.ID
	})
	if prev != 10 {
		t.Fatalf("walk visited %d listings, want 10", prev)
	}
}

func TestLedgerRestore(t *testing.T) {
	l := NewLedger()
	l.Restore(Listing{ID: 1, Asset: AssetRef{Registry: "AGR", TokenID: 7}, Price: 50, Seller: "alice"})
	l.Restore(Listing{ID: 2, Asset: AssetRef{Registry: "AGR", TokenID: 8}, Price: 60, Seller: "bob"})

	if l.Count() != 2 {
		t.Fatalf("expected count 2 after restore, got %d", l.Count())
	}
	if err := l.RestoreSale(1); err != nil {
		t.Fatalf("restore sale: %v", err)
	}
	lst, _ := l.Get(1)
	if !lst.Sold {
		t.Fatal("restored sale not marked sold")
	}
	if err := l.RestoreSale(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown sale, got %v", err)
	}

	// New appends continue after the restored high-water mark.
	lst = l.append(AssetRef{Registry: "AGR", TokenID: 9}, 70, "carol")
	if lst.ID != 3 {
		t.Fatalf("append after restore got id %d, want 3", lst.ID)
	}
}
