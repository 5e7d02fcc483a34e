package delivery

import (
	"log"
	"net/http"

	"miss-you-backend/internal/directory/domain"
	"miss-you-backend/internal/directory/usecase"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles user directory HTTP requests
type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
	}
}

// Register creates (or looks up) a user for the username and optionally
// registers a device token for it.
// GET /register?username=alice&device_token=...&platform=ios
func (h *DirectoryHandler) Register(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	userID, err := h.directoryUsecase.Register(username)
	if err != nil {
		log.Printf("[Directory] Error registering user %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	if deviceToken := c.Query("device_token"); deviceToken != "" {
		platform := c.Query("platform")
		if err := h.directoryUsecase.RegisterDeviceToken(userID, deviceToken, platform); err != nil {
			log.Printf("[Directory] Error registering device token for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

// Exists reports whether a username is already registered.
// GET /exists?username=alice
func (h *DirectoryHandler) Exists(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	exists, err := h.directoryUsecase.Exists(username)
	if err != nil {
		log.Printf("[Directory] Error checking user existence: %v", err)
		exists = false
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// ListUsers returns the full directory.
// POST /users
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users, err := h.directoryUsecase.ListUsers()
	if err != nil {
		log.Printf("[Directory] Error listing users: %v", err)
		users = []domain.User{}
	}

	entries := make([][2]string, 0, len(users))
	for _, user := range users {
		entries = append(entries, [2]string{user.ID, user.Username})
	}

	c.JSON(http.StatusOK, gin.H{"users": entries})
}
