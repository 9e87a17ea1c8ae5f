package kafka

import (
	"github.com/IBM/sarama"
)

const BorrowingTopic = "borrowing-events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

type EventType string

const (
	EventBorrowed EventType = "borrowed"
	EventReturned EventType = "returned"
)

// EventBorrowing is published after every committed borrow/return.
type EventBorrowing struct {
	EventID     string    `json:"event_id"`
	Type        EventType `json:"type"`
	BorrowingID int       `json:"borrowing_id"`
	MemberID    int       `json:"member_id"`
	BookID      int       `json:"book_id"`
	Date        string    `json:"date"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
