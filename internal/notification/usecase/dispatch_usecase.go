package usecase

import (
	"context"
	"log"

	directoryUsecase "miss-you-backend/internal/directory/usecase"
	"miss-you-backend/internal/events"
	"miss-you-backend/internal/notification/domain"
	"miss-you-backend/internal/notification/repository"
)

// PushSender routes one notification to the device's push backend.
// Implemented by push.Router; tests substitute fakes.
type PushSender interface {
	SendTo(ctx context.Context, platform, token, title, body string, data map[string]string) error
}

// DispatchUsecase orchestrates notify requests and the notification log.
type DispatchUsecase interface {
	Notify(ctx context.Context, sourceID, targetID, title, description string) (bool, error)
	MarkAsRead(notificationID string) (bool, error)
	ListUnread(userID string) ([]domain.Notification, error)
}

// dispatchUsecase implements DispatchUsecase interface
type dispatchUsecase struct {
	notificationRepo repository.NotificationRepository
	directory        directoryUsecase.DirectoryUsecase
	sender           PushSender
	publisher        events.EventPublisher
}

// NewDispatchUsecase creates a new instance of dispatchUsecase. publisher may
// be nil when eventing is not configured.
func NewDispatchUsecase(notificationRepo repository.NotificationRepository, directory directoryUsecase.DirectoryUsecase, sender PushSender, publisher events.EventPublisher) DispatchUsecase {
	return &dispatchUsecase{
		notificationRepo: notificationRepo,
		directory:        directory,
		sender:           sender,
		publisher:        publisher,
	}
}

// Notify pushes one "miss you" message from source to target and logs it.
//
// The target's device tokens are resolved first; with none registered nothing
// is sent and nothing is logged. Every token is attempted even when earlier
// sends fail, then exactly one notification row is recorded regardless of the
// delivery outcome. The returned bool is true iff at least one device
// accepted the push.
func (u *dispatchUsecase) Notify(ctx context.Context, sourceID, targetID, title, description string) (bool, error) {
	tokens, err := u.directory.GetDeviceTokens(targetID)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		log.Printf("[Dispatch] No device tokens found for user %s", targetID)
		return false, nil
	}

	data := map[string]string{
		"source_user_id": sourceID,
		"target_user_id": targetID,
		"type":           domain.NotificationType,
	}

	successCount := 0
	for _, deviceToken := range tokens {
		if err := u.sender.SendTo(ctx, deviceToken.Platform, deviceToken.Token, title, description, data); err != nil {
			log.Printf("[Dispatch] Failed to push to device of user %s: %v", targetID, err)
			continue
		}
		successCount++
	}

	notificationID, err := u.notificationRepo.Record(sourceID, targetID, title, description)
	if err != nil {
		return false, err
	}

	log.Printf("[Dispatch] Sent %d/%d pushes for notification %s", successCount, len(tokens), notificationID)

	if u.publisher != nil {
		// best effort, errors are already logged by the publisher
		_ = u.publisher.PublishNotificationSent(notificationID, sourceID, targetID, successCount)
	}

	return successCount > 0, nil
}

func (u *dispatchUsecase) MarkAsRead(notificationID string) (bool, error) {
	return u.notificationRepo.MarkAsRead(notificationID)
}

func (u *dispatchUsecase) ListUnread(userID string) ([]domain.Notification, error) {
	return u.notificationRepo.ListUnread(userID)
}
