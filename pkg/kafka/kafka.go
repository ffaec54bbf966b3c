package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ReservationTopic = "reservation-events"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Flush.Frequency = 100 * time.Millisecond

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventUpdated   EventType = "UPDATED"
	EventCancelled EventType = "CANCELLED"
)

type ReservationEvent struct {
	Timestamp      time.Time `json:"timestamp"`
	EventType      EventType `json:"event_type"`
	ReservationUid string    `json:"reservation_uid"`
	Name           string    `json:"name"`
	RoomID         int       `json:"room_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
}
