package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// EventPublisher announces sent notifications to interested consumers
// (analytics, badge counters). Delivery is best effort.
type EventPublisher interface {
	PublishNotificationSent(notificationID, sourceID, targetID string, delivered int) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type NotificationSentEvent struct {
	EventType      string    `json:"event_type"`
	NotificationID string    `json:"notification_id"`
	SourceID       string    `json:"source_id"`
	TargetID       string    `json:"target_id"`
	Delivered      int       `json:"delivered"`
	SentAt         time.Time `json:"sent_at"`
}

func (p *NatsPublisher) PublishNotificationSent(notificationID, sourceID, targetID string, delivered int) error {
	event := NotificationSentEvent{
		EventType:      "notification.sent",
		NotificationID: notificationID,
		SourceID:       sourceID,
		TargetID:       targetID,
		Delivered:      delivered,
		SentAt:         time.Now(),
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	subject := "notification.sent"
	err = p.conn.Publish(subject, eventJSON)
	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s' for notification '%s'", subject, notificationID)

	return nil
}
