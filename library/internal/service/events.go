package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/luunhuttan/QLTV-LNT-lab2.2/library/internal/model"
	"github.com/luunhuttan/QLTV-LNT-lab2.2/pkg/kafka"
)

type EventPublisher interface {
	Publish(event kafka.EventBorrowing) error
}

type eventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventPublisher(producer sarama.SyncProducer) *eventPublisher {
	return &eventPublisher{
		producer: producer,
		topic:    kafka.BorrowingTopic,
	}
}

func (p *eventPublisher) Publish(event kafka.EventBorrowing) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(kafka.EventBorrowing) error { return nil }

// publish is best effort: a committed borrow/return is never failed
// over an event delivery error.
func (s *Service) publish(typ kafka.EventType, bor model.Borrowing) {
	event := kafka.EventBorrowing{
		EventID:     uuid.New().String(),
		Type:        typ,
		BorrowingID: bor.BorrowingID,
		MemberID:    bor.MemberID,
		BookID:      bor.BookID,
		Date:        time.Now().UTC().Format(time.DateOnly),
	}
	if err := s.events.Publish(event); err != nil {
		s.log.Warn("publish borrowing event", zap.Error(err), zap.Int("borrowing_id", bor.BorrowingID))
	}
}
