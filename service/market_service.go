package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"agora/domain/market"
	"agora/infra/metrics"
	"agora/infra/sequence"
	entrywal "agora/infra/wal/entry"
	exitwal "agora/infra/wal/exit"
)

/*
MarketService is the ONLY write entry point into the system.

All coordination between:
- domain (market engine)
- infra (wal, outbox, tape)
- metrics
happens here. The engine commits first; the commit-log record and the
outbox event follow in the same call, under the sequence the operation
was assigned.
*/

// Tape receives best-effort settlement telemetry.
// infra/kafka.Producer satisfies it; tests pass nil or a fake.
type Tape interface {
	Send(ctx context.Context, key, value []byte) error
}

type MarketService struct {
	engine *market.Engine
	seqGen *sequence.Sequencer

	// logMu serializes sequence assignment with the WAL append and the
	// outbox put. Without it two concurrent commands could write their
	// records out of sequence order, which replay rejects on the next
	// boot.
	logMu sync.Mutex

	entryWAL *entrywal.WAL
	outbox   *exitwal.Outbox
	tape     Tape
}

// NewMarketService wires all dependencies. entryWAL, outbox and tape may
// be nil to disable persistence and telemetry; tests do this.
func NewMarketService(
	engine *market.Engine,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	outbox *exitwal.Outbox,
	tape Tape,
) *MarketService {
	return &MarketService{
		engine:   engine,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		outbox:   outbox,
		tape:     tape,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// ListItem escrows the asset and records a listing, then commits the
// operation to the WAL and enqueues the Offered event.
func (s *MarketService) ListItem(
	ctx context.Context,
	asset market.AssetRef,
	price int64,
	seller market.Identity,
) (market.Listing, error) {
	lst, err := s.engine.CreateListing(asset, price, seller)
	if err != nil {
		metrics.OperationFailed("list", reason(err))
		return market.Listing{}, err
	}

	s.logMu.Lock()
	seq := s.seqGen.Next()
	s.commit(entrywal.NewRecord(
		entrywal.RecordListed,
		seq,
		listedPayload(lst),
	))
	s.publish(seq, market.NewOffered(lst))
	s.logMu.Unlock()

	metrics.ListingCreated(s.engine.Count())
	return lst, nil
}

// PurchaseItem settles a listing, then commits the operation and
// enqueues the Bought event. The receipt also goes out on the tape.
func (s *MarketService) PurchaseItem(
	ctx context.Context,
	id uint64,
	remitted int64,
	buyer market.Identity,
) (market.Receipt, error) {
	rcpt, err := s.engine.Purchase(id, remitted, buyer)
	if err != nil {
		metrics.OperationFailed("purchase", reason(err))
		return market.Receipt{}, err
	}

	s.logMu.Lock()
	seq := s.seqGen.Next()
	s.commit(entrywal.NewRecord(
		entrywal.RecordSold,
		seq,
		soldPayload(rcpt, remitted),
	))
	s.publish(seq, market.NewBought(rcpt))
	s.logMu.Unlock()

	if s.tape != nil {
		key := []byte(strconv.FormatUint(rcpt.ListingID, 10))
		value, _ := json.Marshal(rcpt)
		if err := s.tape.Send(ctx, key, value); err != nil {
			log.Printf("[service] tape publish failed: %v", err)
		}
	}

	metrics.SaleSettled()
	return rcpt, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *MarketService) GetListing(id uint64) (market.Listing, error) {
	return s.engine.Get(id)
}

func (s *MarketService) TotalPrice(id uint64) (int64, error) {
	return s.engine.TotalPrice(id)
}

func (s *MarketService) ListingCount() uint64 {
	return s.engine.Count()
}

func (s *MarketService) FeePolicy() market.FeePolicy {
	return s.engine.Policy()
}

// Listings returns a copy of every listing in id order.
func (s *MarketService) Listings() []market.Listing {
	out := make([]market.Listing, 0, s.engine.Count())
	s.engine.Ledger().Walk(func(lst market.Listing) {
		out = append(out, lst)
	})
	return out
}

//
// ──────────────────────────────────────────────────────────
// Persistence plumbing
// ──────────────────────────────────────────────────────────
//

// commit appends a committed operation to the entry WAL. The in-memory
// state is already authoritative; an append failure is logged, not
// surfaced, so a full disk cannot make the engine lie about a settlement
// that happened.
func (s *MarketService) commit(rec *entrywal.Record) {
	if s.entryWAL == nil {
		return
	}
	if err := s.entryWAL.Append(rec); err != nil {
		log.Printf("[service] WAL append failed (seq=%d): %v", rec.Seq, err)
	}
}

func (s *MarketService) publish(seq uint64, ev market.Event) {
	if s.outbox == nil {
		return
	}
	payload, _ := json.Marshal(ev)
	if err := s.outbox.PutNew(seq, payload); err != nil {
		log.Printf("[service] outbox put failed (seq=%d): %v", seq, err)
	}
}

// Payload formats, pipe-delimited like every record in this log:
//
//	listed:  id|registry|token|price|seller
//	sold:    id|buyer|remitted
func listedPayload(lst market.Listing) []byte {
	return []byte(fmt.Sprintf(
		"%d|%s|%d|%d|%s",
		lst.ID,
		lst.Asset.Registry,
		lst.Asset.TokenID,
		lst.Price,
		lst.Seller,
	))
}

func soldPayload(rcpt market.Receipt, remitted int64) []byte {
	return []byte(fmt.Sprintf(
		"%d|%s|%d",
		rcpt.ListingID,
		rcpt.Buyer,
		remitted,
	))
}

func reason(err error) string {
	switch {
	case errors.Is(err, market.ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, market.ErrNotFound):
		return "not_found"
	case errors.Is(err, market.ErrAlreadySold):
		return "already_sold"
	case errors.Is(err, market.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, market.ErrOverpayment):
		return "overpayment"
	case errors.Is(err, market.ErrTransferNotAuthorized):
		return "transfer_not_authorized"
	case errors.Is(err, market.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "internal"
	}
}
