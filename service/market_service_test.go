package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"agora/domain/market"
	"agora/infra/bank"
	"agora/infra/registry"
	"agora/infra/sequence"
	entrywal "agora/infra/wal/entry"
	exitwal "agora/infra/wal/exit"
)

type fakeTape struct {
	mu       sync.Mutex
	messages [][]byte
}

func (f *fakeTape) Send(ctx context.Context, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, value)
	return nil
}

type testEnv struct {
	svc      *MarketService
	reg      *registry.Registry
	treasury *bank.Bank
	outbox   *exitwal.Outbox
	tape     *fakeTape
	walDir   string
	seqGen   *sequence.Sequencer
}

// newTestEnv wires a full service: real WAL and outbox in temp dirs,
// in-process registry and bank, fake tape.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	walDir := t.TempDir()
	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         walDir,
		SegmentSize: 1 << 20,
	})
	if err != nil {
		t.Fatalf("open entry wal: %v", err)
	}
	t.Cleanup(func() { _ = entryWAL.Close() })

	outbox, err := exitwal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = outbox.Close() })

	reg := registry.New("Agora Assets", "AGR")
	treasury := bank.New()

	eng := market.NewEngine(
		market.FeePolicy{Recipient: "treasury", Percent: 1},
		reg.Operator("marketplace"),
		treasury,
		"marketplace",
	)

	tape := &fakeTape{}
	seqGen := sequence.New(0)

	return &testEnv{
		svc:      NewMarketService(eng, seqGen, entryWAL, outbox, tape),
		reg:      reg,
		treasury: treasury,
		outbox:   outbox,
		tape:     tape,
		walDir:   walDir,
		seqGen:   seqGen,
	}
}

// mint creates a token for seller and approves the marketplace custodian.
func (e *testEnv) mint(seller market.Identity) market.AssetRef {
	asset := e.reg.Mint(seller, "ipfs://x")
	e.reg.SetApprovalForAll(seller, "marketplace", true)
	return asset
}

func TestListThenPurchase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	asset := env.mint("alice")
	env.treasury.Deposit("bob", 1_000)

	lst, err := env.svc.ListItem(ctx, asset, 200, "alice")
	if err != nil {
		t.Fatalf("list item: %v", err)
	}
	if lst.ID != 1 {
		t.Fatalf("listing id = %d, want 1", lst.ID)
	}

	total, err := env.svc.TotalPrice(lst.ID)
	if err != nil {
		t.Fatalf("total price: %v", err)
	}
	if total != 202 {
		t.Fatalf("total = %d, want 202", total)
	}

	rcpt, err := env.svc.PurchaseItem(ctx, lst.ID, total, "bob")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if rcpt.Buyer != "bob" || rcpt.Price != 200 {
		t.Fatalf("receipt: %+v", rcpt)
	}

	if env.treasury.BalanceOf("alice") != 200 {
		t.Fatalf("seller credited %d, want 200", env.treasury.BalanceOf("alice"))
	}
	if env.treasury.BalanceOf("treasury") != 2 {
		t.Fatalf("fee recipient credited %d, want 2", env.treasury.BalanceOf("treasury"))
	}

	got, err := env.svc.GetListing(lst.ID)
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if !got.Sold {
		t.Fatal("listing not marked sold")
	}
}

func TestEventsLandInOutbox(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	asset := env.mint("alice")
	env.treasury.Deposit("bob", 1_000)

	if _, err := env.svc.ListItem(ctx, asset, 200, "alice"); err != nil {
		t.Fatalf("list item: %v", err)
	}
	if _, err := env.svc.PurchaseItem(ctx, 1, 202, "bob"); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	var events []market.Event
	err := env.outbox.ScanPending(func(rec exitwal.Record) error {
		var ev market.Event
		if err := json.Unmarshal(rec.Payload, &ev); err != nil {
			return err
		}
		events = append(events, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("scan outbox: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("outbox holds %d events, want 2", len(events))
	}
	if events[0].Type != market.EventOffered || events[0].Listing != 1 || events[0].Seller != "alice" {
		t.Fatalf("first event: %+v", events[0])
	}
	if events[1].Type != market.EventBought || events[1].Buyer != "bob" || events[1].Price != 200 {
		t.Fatalf("second event: %+v", events[1])
	}
}

func TestReceiptGoesOutOnTape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	asset := env.mint("alice")
	env.treasury.Deposit("bob", 1_000)

	if _, err := env.svc.ListItem(ctx, asset, 200, "alice"); err != nil {
		t.Fatalf("list item: %v", err)
	}
	rcpt, err := env.svc.PurchaseItem(ctx, 1, 202, "bob")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}

	if len(env.tape.messages) != 1 {
		t.Fatalf("tape got %d messages, want 1", len(env.tape.messages))
	}
	var fromTape market.Receipt
	if err := json.Unmarshal(env.tape.messages[0], &fromTape); err != nil {
		t.Fatalf("unmarshal tape message: %v", err)
	}
	if fromTape.ID != rcpt.ID {
		t.Fatalf("tape receipt id %s, want %s", fromTape.ID, rcpt.ID)
	}
}

func TestFailedOperationsLeaveNoTrace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	asset := env.mint("alice")

	if _, err := env.svc.ListItem(ctx, asset, 0, "alice"); !errors.Is(err, market.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := env.svc.PurchaseItem(ctx, 9, 100, "bob"); !errors.Is(err, market.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Nothing committed, so nothing was sequenced, logged or published.
	if env.seqGen.Current() != 0 {
		t.Fatalf("sequencer advanced to %d on failures", env.seqGen.Current())
	}
	pending := 0
	_ = env.outbox.ScanPending(func(exitwal.Record) error {
		pending++
		return nil
	})
	if pending != 0 {
		t.Fatalf("outbox holds %d events after failed operations", pending)
	}
}

func TestReplayRebuildsLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a1 := env.mint("alice")
	a2 := env.mint("carol")
	env.treasury.Deposit("bob", 1_000)

	if _, err := env.svc.ListItem(ctx, a1, 200, "alice"); err != nil {
		t.Fatalf("list item: %v", err)
	}
	if _, err := env.svc.ListItem(ctx, a2, 300, "carol"); err != nil {
		t.Fatalf("list item: %v", err)
	}
	if _, err := env.svc.PurchaseItem(ctx, 1, 202, "bob"); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	// Rebuild from the log alone.
	rebuilt := market.NewLedger()
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, 0, rebuilt, seqGen); err != nil {
		t.Fatalf("replay: %v", err)
	}

	if rebuilt.Count() != 2 {
		t.Fatalf("rebuilt count = %d, want 2", rebuilt.Count())
	}
	if seqGen.Current() != 3 {
		t.Fatalf("sequencer resumed at %d, want 3", seqGen.Current())
	}

	first, err := rebuilt.Get(1)
	if err != nil {
		t.Fatalf("get rebuilt 1: %v", err)
	}
	if !first.Sold || first.Price != 200 || first.Seller != "alice" || first.Asset != a1 {
		t.Fatalf("rebuilt listing 1: %+v", first)
	}

	second, _ := rebuilt.Get(2)
	if second.Sold || second.Price != 300 || second.Seller != "carol" {
		t.Fatalf("rebuilt listing 2: %+v", second)
	}
}

func TestReplaySkipsSnapshotCoveredRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a1 := env.mint("alice")
	a2 := env.mint("carol")

	if _, err := env.svc.ListItem(ctx, a1, 200, "alice"); err != nil {
		t.Fatalf("list item: %v", err)
	}
	if _, err := env.svc.ListItem(ctx, a2, 300, "carol"); err != nil {
		t.Fatalf("list item: %v", err)
	}

	// Pretend a snapshot already covers seq 1: only seq 2 replays.
	rebuilt := market.NewLedger()
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, 1, rebuilt, seqGen); err != nil {
		t.Fatalf("replay: %v", err)
	}

	if rebuilt.Count() != 2 {
		t.Fatalf("rebuilt count = %d, want 2 (high-water from record id)", rebuilt.Count())
	}
	if _, err := rebuilt.Get(1); !errors.Is(err, market.ErrNotFound) {
		t.Fatalf("snapshot-covered listing replayed anyway: %v", err)
	}
	if seqGen.Current() != 2 {
		t.Fatalf("sequencer resumed at %d, want 2", seqGen.Current())
	}
}

func TestConcurrentWritesReplayCleanly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const n = 32
	assets := make([]market.AssetRef, n)
	for i := range assets {
		assets[i] = env.mint("alice")
	}
	env.treasury.Deposit("bob", 1_000_000)

	// Commands race on the commit path: sequence assignment, WAL append
	// and outbox put must still come out in one serial order.
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := env.svc.ListItem(ctx, assets[i], 200, "alice"); err != nil {
				t.Errorf("list item %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	for id := uint64(1); id <= n; id++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			if _, err := env.svc.PurchaseItem(ctx, id, 202, "bob"); err != nil {
				t.Errorf("purchase %d: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	// The log must replay without sequence regressions and rebuild the
	// complete ledger, or the next boot dies in recovery.
	rebuilt := market.NewLedger()
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, 0, rebuilt, seqGen); err != nil {
		t.Fatalf("replay after concurrent writes: %v", err)
	}

	if rebuilt.Count() != n {
		t.Fatalf("rebuilt count = %d, want %d", rebuilt.Count(), n)
	}
	if seqGen.Current() != 2*n {
		t.Fatalf("sequencer resumed at %d, want %d", seqGen.Current(), 2*n)
	}
	for id := uint64(1); id <= n; id++ {
		lst, err := rebuilt.Get(id)
		if err != nil {
			t.Fatalf("rebuilt listing %d missing: %v", id, err)
		}
		if !lst.Sold {
			t.Fatalf("rebuilt listing %d not sold", id)
		}
	}
}

func TestListingsQuery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		asset := env.mint("alice")
		if _, err := env.svc.ListItem(ctx, asset, int64(100*(i+1)), "alice"); err != nil {
			t.Fatalf("list item %d: %v", i, err)
		}
	}

	all := env.svc.Listings()
	if len(all) != 3 {
		t.Fatalf("listings = %d, want 3", len(all))
	}
	for i, lst := range all {
		if lst.ID != uint64(i+1) {
			t.Fatalf("listings out of order: %+v", all)
		}
	}
	if env.svc.ListingCount() != 3 {
		t.Fatalf("count = %d, want 3", env.svc.ListingCount())
	}
	if p := env.svc.FeePolicy(); p.Percent != 1 || p.Recipient != "treasury" {
		t.Fatalf("policy = %+v", p)
	}
}

func TestServiceWithoutPersistence(t *testing.T) {
	// nil WAL, outbox and tape: commands still work.
	reg := registry.New("Agora Assets", "AGR")
	treasury := bank.New()
	eng := market.NewEngine(
		market.FeePolicy{Recipient: "treasury", Percent: 1},
		reg.Operator("marketplace"),
		treasury,
		"marketplace",
	)
	svc := NewMarketService(eng, sequence.New(0), nil, nil, nil)

	asset := reg.Mint("alice", "")
	reg.SetApprovalForAll("alice", "marketplace", true)
	treasury.Deposit("bob", 1_000)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	lst, err := svc.ListItem(ctx, asset, 200, "alice")
	if err != nil {
		t.Fatalf("list item: %v", err)
	}
	if _, err := svc.PurchaseItem(ctx, lst.ID, 202, "bob"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
}
