package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"miss-you-backend/internal/events"

	"github.com/stretchr/testify/require"
)

func TestNotificationSentEvent_Marshal(t *testing.T) {
	ev := events.NotificationSentEvent{
		EventType:      "notification.sent",
		NotificationID: "n-1",
		SourceID:       "u-1",
		TargetID:       "u-2",
		Delivered:      1,
		SentAt:         time.Now(),
	}

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "notification.sent", decoded["event_type"])
	require.Equal(t, "n-1", decoded["notification_id"])
	require.EqualValues(t, 1, decoded["delivered"])
}
