package push

import (
	"context"
	"fmt"
	"log"
)

// Sender delivers one notification to one device token.
type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// Router picks a push backend by device platform: APNs for iOS tokens,
// FCM for everything else. Backends are optional; a send routed to a
// missing backend fails for that token only.
type Router struct {
	fcm  Sender
	apns Sender
}

// NewRouter creates a Router. Either sender may be nil when the matching
// credentials were not configured.
func NewRouter(fcm Sender, apns Sender) *Router {
	if fcm == nil {
		log.Println("[Push] FCM sender not configured, android/web pushes will fail")
	}
	if apns == nil {
		log.Println("[Push] APNs sender not configured, ios pushes will fail")
	}
	return &Router{fcm: fcm, apns: apns}
}

// SendTo routes one notification to the backend for the token's platform.
func (r *Router) SendTo(ctx context.Context, platform, token, title, body string, data map[string]string) error {
	var sender Sender
	if platform == "ios" {
		sender = r.apns
	} else {
		sender = r.fcm
	}

	if sender == nil {
		return fmt.Errorf("no push backend configured for platform %q", platform)
	}
	return sender.Send(ctx, token, title, body, data)
}
