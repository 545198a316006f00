package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"
)

type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	group  sarama.ConsumerGroup
	topics []string
	email  EmailSender
	cancel context.CancelFunc
}

func NewKafkaConsumer(cfg *config.Config, email EmailSender) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:  group,
		topics: []string{cfg.Kafka.Topic},
		email:  email,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			logger.GetDefault().Error("consumer group error", "error", err)
		}
	}()

	go func() {
		handler := &groupHandler{email: c.email}
		for {
			select {
			case <-ctx.Done():
				return
			default:
				// Consume returns on rebalance; loop to rejoin
				if err := c.group.Consume(ctx, c.topics, handler); err != nil {
					logger.GetDefault().Error("failed to consume notifications", "error", err)
					time.Sleep(time.Second)
				}
			}
		}
	}()

	logger.GetDefault().Info("notification consumer started", "topics", c.topics)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.group.Close()
}

type groupHandler struct {
	email EmailSender
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				logger.GetDefault().Error("failed to process notification", "error", err)
			}
			// Mark even on failure; email delivery is best effort and
			// a poison message must not wedge the partition
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *groupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	notification, err := FromJSON(message.Value)
	if err != nil {
		return fmt.Errorf("failed to decode notification: %w", err)
	}

	if err := h.email.SendNotification(ctx, notification); err != nil {
		notification.Status = StatusFailed
		return err
	}

	notification.Status = StatusSent
	logger.GetDefault().Info("notification delivered",
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
	)
	return nil
}
