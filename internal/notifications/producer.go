package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"
)

type Producer interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates an idempotent synchronous producer. The hash
// partitioner keys on recipient email so one mailbox's notifications
// stay ordered.
func NewKafkaProducer(cfg *config.Config) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.Kafka.Topic,
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, notification *Notification) error {
	notification.Status = StatusQueued

	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		notification.Status = StatusFailed
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	logger.GetDefault().Info("notification published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
	)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}
