package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
)

// NewSyncProducer builds a sarama producer for the analytics stream.
// Idempotent producer with acks=all; order events are low-volume.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Net.MaxOpenRequests = 1 // required for idempotence
	cfg.Net.DialTimeout = 5 * time.Second
	return sarama.NewSyncProducer(brokers, cfg)
}

// AnalyticsProducer publishes order events to Kafka for downstream
// consumers (BI, reporting). Implements usecase.OrderEvents.
type AnalyticsProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewAnalyticsProducer(producer sarama.SyncProducer, topic string) *AnalyticsProducer {
	return &AnalyticsProducer{producer: producer, topic: topic}
}

func (p *AnalyticsProducer) OrderPlaced(_ context.Context, msg usecase.OrderPlacedMsg) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	// key by order id so replays of the same order land on one partition
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(msg.OrderID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (p *AnalyticsProducer) Close() error { return p.producer.Close() }

var _ usecase.OrderEvents = (*AnalyticsProducer)(nil)
