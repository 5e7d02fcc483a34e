package apns

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/token"
)

// Config holds the token-based APNs credentials.
type Config struct {
	AuthKeyPath string
	KeyID       string
	TeamID      string
	Topic       string // app bundle id
	Production  bool
}

// Client wraps an APNs connection for iOS push delivery
type Client struct {
	client *apns2.Client
	topic  string
}

// NewClient creates a new APNs client from a .p8 auth key
func NewClient(cfg Config) (*Client, error) {
	authKey, err := token.AuthKeyFromFile(cfg.AuthKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read APNs auth key: %w", err)
	}

	authToken := &token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	}

	client := apns2.NewTokenClient(authToken)
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	log.Println("[APNS] Client initialized successfully")
	return &Client{client: client, topic: cfg.Topic}, nil
}

type apsAlert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type apsPayload struct {
	Alert apsAlert `json:"alert"`
	Sound string   `json:"sound"`
}

// Send delivers a push notification to a single device token.
func (c *Client) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	payload := map[string]interface{}{
		"aps": apsPayload{
			Alert: apsAlert{Title: title, Body: body},
			Sound: "default",
		},
	}
	for key, value := range data {
		payload[key] = value
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal APNs payload: %w", err)
	}

	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       c.topic,
		Payload:     raw,
	}

	res, err := c.client.PushWithContext(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to send APNs notification: %w", err)
	}
	if !res.Sent() {
		return fmt.Errorf("APNs rejected notification: %s", res.Reason)
	}

	log.Printf("[APNS] Notification sent with APNS ID: %s", res.ApnsID)
	return nil
}
