package repository_test

import (
	"testing"

	"miss-you-backend/internal/directory/domain"
	repo "miss-you-backend/internal/directory/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.DeviceToken{}))
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewUserRepository(db)

	user := &domain.User{Username: "alice"}
	require.NoError(t, r.Create(user))
	require.NotEmpty(t, user.ID)

	found, err := r.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user.ID, found.ID)

	byID, err := r.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "alice", byID.Username)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewUserRepository(db)

	found, err := r.FindByUsername("nobody")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewUserRepository(db)

	require.NoError(t, r.Create(&domain.User{Username: "alice"}))
	require.Error(t, r.Create(&domain.User{Username: "alice"}))
}

func TestUserRepository_ListAll(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewUserRepository(db)

	require.NoError(t, r.Create(&domain.User{Username: "alice"}))
	require.NoError(t, r.Create(&domain.User{Username: "bob"}))

	users, err := r.ListAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestDeviceTokenRepository_ReplaceToken(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewDeviceTokenRepository(db)

	require.NoError(t, r.ReplaceToken("user-1", "token-a", domain.PlatformAndroid))
	require.NoError(t, r.ReplaceToken("user-1", "token-b", domain.PlatformIOS))

	tokens, err := r.GetTokensByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "token-b", tokens[0].Token)
	require.Equal(t, domain.PlatformIOS, tokens[0].Platform)
}

func TestDeviceTokenRepository_ReplaceToken_DoesNotTouchOtherUsers(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewDeviceTokenRepository(db)

	require.NoError(t, r.ReplaceToken("user-1", "token-a", domain.PlatformAndroid))
	require.NoError(t, r.ReplaceToken("user-2", "token-b", domain.PlatformAndroid))

	tokens, err := r.GetTokensByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "token-a", tokens[0].Token)
}

func TestDeviceTokenRepository_GetTokens_Empty(t *testing.T) {
	db := newTestDB(t)
	r := repo.NewDeviceTokenRepository(db)

	tokens, err := r.GetTokensByUserID("user-1")
	require.NoError(t, err)
	require.Empty(t, tokens)
}
