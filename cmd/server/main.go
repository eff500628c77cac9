package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"google.golang.org/grpc"

	"agora/api/grpcserver"
	pb "agora/api/pb"

	"agora/domain/market"
	"agora/infra/bank"
	"agora/infra/kafka"
	"agora/infra/metrics"
	"agora/infra/registry"
	"agora/infra/sequence"
	entrywal "agora/infra/wal/entry"
	exitwal "agora/infra/wal/exit"
	"agora/jobs/broadcaster"
	"agora/service"
	"agora/snapshot"
)

// Config is read from the environment. Every knob has a default that
// makes a single-node dev run work out of the box.
type Config struct {
	GRPCAddr    string `env:"AGORA_GRPC_ADDR" envDefault:":50051"`
	MetricsAddr string `env:"AGORA_METRICS_ADDR" envDefault:":9090"`

	EntryWALDir string `env:"AGORA_ENTRY_WAL_DIR" envDefault:"./wal_entry"`
	OutboxDir   string `env:"AGORA_OUTBOX_DIR" envDefault:"./wal_exit"`
	SnapshotDir string `env:"AGORA_SNAPSHOT_DIR" envDefault:"./snapshots"`

	Brokers     []string `env:"AGORA_KAFKA_BROKERS" envDefault:"localhost:9092"`
	EventsTopic string   `env:"AGORA_EVENTS_TOPIC" envDefault:"market.events"`
	TapeTopic   string   `env:"AGORA_TAPE_TOPIC" envDefault:"market.receipts"`

	RegistryName   string `env:"AGORA_REGISTRY_NAME" envDefault:"Agora Assets"`
	RegistrySymbol string `env:"AGORA_REGISTRY_SYMBOL" envDefault:"AGR"`

	Custodian    string `env:"AGORA_CUSTODIAN" envDefault:"marketplace"`
	FeeRecipient string `env:"AGORA_FEE_RECIPIENT" envDefault:"treasury"`
	FeePercent   int64  `env:"AGORA_FEE_PERCENT" envDefault:"1"`

	SnapshotInterval  time.Duration `env:"AGORA_SNAPSHOT_INTERVAL" envDefault:"30s"`
	BroadcastInterval time.Duration `env:"AGORA_BROADCAST_INTERVAL" envDefault:"2s"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config parse failed: %v", err)
	}

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:             cfg.EntryWALDir,
		SegmentSize:     2 * 1024 * 1024,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}

	// ---------------- Outbox ----------------

	outbox, err := exitwal.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer outbox.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Capabilities ----------------

	reg := registry.New(cfg.RegistryName, cfg.RegistrySymbol)
	treasury := bank.New()

	// ---------------- Domain ----------------

	eng := market.NewEngine(
		market.FeePolicy{
			Recipient: market.Identity(cfg.FeeRecipient),
			Percent:   cfg.FeePercent,
		},
		reg.Operator(market.Identity(cfg.Custodian)),
		treasury,
		market.Identity(cfg.Custodian),
	)

	// ---------------- Recovery ----------------

	snapPath := filepath.Join(cfg.SnapshotDir, "snapshot.bin")
	snapSeq, err := snapshot.Load(snapPath, eng.Ledger())
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}

	if err := service.ReplayFromWAL(
		cfg.EntryWALDir,
		snapSeq,
		eng.Ledger(),
		seqGen,
	); err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}

	// ---------------- Service ----------------

	tape := kafka.NewProducer(cfg.Brokers, cfg.TapeTopic)
	defer tape.Close()

	svc := service.NewMarketService(
		eng,
		seqGen,
		entryWAL,
		outbox,
		tape,
	)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	// The outbox keeps events durable, so a missing broker only delays
	// delivery; it must not take the engine down.
	bc, err := broadcaster.New(outbox, cfg.Brokers, cfg.EventsTopic, cfg.BroadcastInterval)
	if err != nil {
		log.Printf("broadcaster init failed, events stay queued: %v", err)
	} else {
		defer bc.Close()
		bc.Start(ctx)
	}

	// ---------------- Metrics ----------------

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			log.Printf("metrics server exited: %v", err)
		}
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Printf("Agora settlement engine running on %s\n", cfg.GRPCAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
