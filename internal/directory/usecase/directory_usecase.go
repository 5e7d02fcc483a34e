package usecase

import (
	"miss-you-backend/internal/directory/domain"
	"miss-you-backend/internal/directory/repository"
)

// DirectoryUsecase exposes the user directory: username registration and
// device token bookkeeping.
type DirectoryUsecase interface {
	Register(username string) (string, error)
	RegisterDeviceToken(userID, token, platform string) error
	Exists(username string) (bool, error)
	GetDeviceTokens(userID string) ([]domain.DeviceToken, error)
	GetUsername(userID string) (string, error)
	ListUsers() ([]domain.User, error)
}

// directoryUsecase implements DirectoryUsecase interface
type directoryUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.DeviceTokenRepository
}

// NewDirectoryUsecase creates a new instance of directoryUsecase
func NewDirectoryUsecase(userRepo repository.UserRepository, tokenRepo repository.DeviceTokenRepository) DirectoryUsecase {
	return &directoryUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Register creates a user for the username and returns its id. Registering an
// existing username is idempotent and returns the id of the existing user, so
// clients can call /register again after reinstalling the app.
func (u *directoryUsecase) Register(username string) (string, error) {
	existing, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	user := &domain.User{Username: username}
	if err := u.userRepo.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// RegisterDeviceToken replaces the user's device tokens with the given one.
// The user id is not validated here, matching the registration flow where the
// id was just issued.
func (u *directoryUsecase) RegisterDeviceToken(userID, token, platform string) error {
	if platform == "" {
		platform = domain.PlatformAndroid
	}
	return u.tokenRepo.ReplaceToken(userID, token, platform)
}

func (u *directoryUsecase) Exists(username string) (bool, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (u *directoryUsecase) GetDeviceTokens(userID string) ([]domain.DeviceToken, error) {
	return u.tokenRepo.GetTokensByUserID(userID)
}

// GetUsername resolves a user id to its username. Unknown ids resolve to the
// id itself so callers always have something to address the user by.
func (u *directoryUsecase) GetUsername(userID string) (string, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return userID, nil
	}
	return user.Username, nil
}

func (u *directoryUsecase) ListUsers() ([]domain.User, error) {
	return u.userRepo.ListAll()
}
