package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/hotel-reservation/pkg/kafka"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/model"
)

type EventLog interface {
	Log(event kafka.ReservationEvent) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewEventLog(producer sarama.AsyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(event kafka.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(event.ReservationUid),
		Value: sarama.ByteEncoder(data),
	}
	l.producer.Input() <- msg
	return nil
}

type nopEventLog struct{}

func (nopEventLog) Log(kafka.ReservationEvent) error { return nil }

func newEvent(eventType kafka.EventType, rsv model.Reservation) kafka.ReservationEvent {
	return kafka.ReservationEvent{
		Timestamp:      time.Now().UTC(),
		EventType:      eventType,
		ReservationUid: rsv.ReservationUid,
		Name:           rsv.Name,
		RoomID:         rsv.RoomID,
		StartDate:      rsv.StartDate.String(),
		EndDate:        rsv.EndDate.String(),
	}
}
