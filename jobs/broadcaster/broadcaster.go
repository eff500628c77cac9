package broadcaster

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	exitwal "agora/infra/wal/exit"
)

// Broadcaster drains the event outbox to Kafka. Delivery is
// at-least-once: a record is marked SENT before publishing and ACKED
// only after the broker accepts it, so a crash in between replays the
// event on the next pass.
type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	outbox *exitwal.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// ------------------------------------------------
// DRAIN LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(rec exitwal.Record) error {
		// Mark SENT first (idempotent) so a crash after publish
		// still retries rather than losing the event.
		_ = b.outbox.MarkSent(rec.Seq)

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // retry on the next pass
		}

		_ = b.outbox.MarkAcked(rec.Seq)
		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
