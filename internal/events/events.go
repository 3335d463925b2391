package events

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

type Type string

const (
	ReservationCreated Type = "reservation.created"
	WithdrawCreated    Type = "withdraw.created"
	WithdrawReturned   Type = "withdraw.returned"
	GameStatusChanged  Type = "game.status_changed"
)

// Event is the lifecycle notification published for downstream consumers
// (stats, audit). It identifies the scope and subject, not the full row.
type Event struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	TenantID      string    `json:"tenantId"`
	EditionID     int64     `json:"editionId"`
	LibraryGameID int64     `json:"libraryGameId,omitempty"`
	UserID        string    `json:"userId,omitempty"`
	At            time.Time `json:"at"`
}

type Publisher interface {
	Publish(topic string, e Event) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) Publisher {
	return &publisherImpl{
		producer: producer,
		log:      log.Named("events"),
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func (p *publisherImpl) Publish(topic string, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		p.log.Error("publish", zap.String("type", string(e.Type)), zap.Error(err))
		return err
	}
	return nil
}

// NopPublisher drops events, used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(string, Event) error { return nil }
