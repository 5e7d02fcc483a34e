package usecase_test

import (
	"context"
	"errors"
	"testing"

	directoryDomain "miss-you-backend/internal/directory/domain"
	directoryRepo "miss-you-backend/internal/directory/repository"
	directoryUsecase "miss-you-backend/internal/directory/usecase"
	notificationDomain "miss-you-backend/internal/notification/domain"
	notificationRepo "miss-you-backend/internal/notification/repository"
	"miss-you-backend/internal/notification/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeSender records sends and fails for tokens listed in failing.
type fakeSender struct {
	sent    []string
	failing map[string]bool
}

func (f *fakeSender) SendTo(ctx context.Context, platform, token, title, body string, data map[string]string) error {
	f.sent = append(f.sent, token)
	if f.failing[token] {
		return errors.New("push rejected")
	}
	return nil
}

type fixture struct {
	db        *gorm.DB
	directory directoryUsecase.DirectoryUsecase
	sender    *fakeSender
	dispatch  usecase.DispatchUsecase
}

func newFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&directoryDomain.User{}, &directoryDomain.DeviceToken{}, &notificationDomain.Notification{}))

	directory := directoryUsecase.NewDirectoryUsecase(
		directoryRepo.NewUserRepository(db),
		directoryRepo.NewDeviceTokenRepository(db),
	)
	sender := &fakeSender{failing: map[string]bool{}}
	dispatch := usecase.NewDispatchUsecase(
		notificationRepo.NewNotificationRepository(db),
		directory,
		sender,
		nil,
	)
	return &fixture{db: db, directory: directory, sender: sender, dispatch: dispatch}
}

func (f *fixture) notificationCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, f.db.Model(&notificationDomain.Notification{}).Count(&count).Error)
	return count
}

// addExtraToken inserts a second token row directly; registration keeps one
// token per user but the schema allows more.
func (f *fixture) addExtraToken(t *testing.T, userID, token, platform string) {
	require.NoError(t, f.db.Create(&directoryDomain.DeviceToken{
		ID:       uuid.New().String(),
		UserID:   userID,
		Token:    token,
		Platform: platform,
	}).Error)
}

func TestNotify_NoDeviceTokens(t *testing.T) {
	f := newFixture(t)

	ok, err := f.dispatch.Notify(context.Background(), "src", "dst", "Hi", "Miss you")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, f.sender.sent)
	require.EqualValues(t, 0, f.notificationCount(t))
}

func TestNotify_SingleToken(t *testing.T) {
	f := newFixture(t)

	targetID, err := f.directory.Register("bob")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(targetID, "token-b", ""))

	ok, err := f.dispatch.Notify(context.Background(), "src", targetID, "Hi", "Miss you")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"token-b"}, f.sender.sent)
	require.EqualValues(t, 1, f.notificationCount(t))
}

func TestNotify_PartialDeliveryFailure(t *testing.T) {
	f := newFixture(t)

	targetID, err := f.directory.Register("bob")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(targetID, "token-a", ""))
	f.addExtraToken(t, targetID, "token-b", directoryDomain.PlatformIOS)
	f.sender.failing["token-a"] = true

	ok, err := f.dispatch.Notify(context.Background(), "src", targetID, "Hi", "Miss you")
	require.NoError(t, err)
	require.True(t, ok)
	// both tokens attempted despite the first failing
	require.Len(t, f.sender.sent, 2)
	// exactly one row logged regardless of token count
	require.EqualValues(t, 1, f.notificationCount(t))
}

func TestNotify_AllDeliveriesFail(t *testing.T) {
	f := newFixture(t)

	targetID, err := f.directory.Register("bob")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(targetID, "token-a", ""))
	f.sender.failing["token-a"] = true

	ok, err := f.dispatch.Notify(context.Background(), "src", targetID, "Hi", "Miss you")
	require.NoError(t, err)
	require.False(t, ok)
	// the notification is still logged
	require.EqualValues(t, 1, f.notificationCount(t))
}

func TestNotify_TargetTokensResolved(t *testing.T) {
	f := newFixture(t)

	sourceID, err := f.directory.Register("alice")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(sourceID, "token-alice", ""))
	targetID, err := f.directory.Register("bob")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(targetID, "token-bob", ""))

	ok, err := f.dispatch.Notify(context.Background(), sourceID, targetID, "Hi", "Miss you")
	require.NoError(t, err)
	require.True(t, ok)
	// the target's device receives the push, not the sender's
	require.Equal(t, []string{"token-bob"}, f.sender.sent)
}

func TestMarkAsReadAndListUnread(t *testing.T) {
	f := newFixture(t)

	targetID, err := f.directory.Register("bob")
	require.NoError(t, err)
	require.NoError(t, f.directory.RegisterDeviceToken(targetID, "token-b", ""))

	ok, err := f.dispatch.Notify(context.Background(), "src", targetID, "Hi", "Miss you")
	require.NoError(t, err)
	require.True(t, ok)

	unread, err := f.dispatch.ListUnread(targetID)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	changed, err := f.dispatch.MarkAsRead(unread[0].ID)
	require.NoError(t, err)
	require.True(t, changed)

	unread, err = f.dispatch.ListUnread(targetID)
	require.NoError(t, err)
	require.Empty(t, unread)
}
