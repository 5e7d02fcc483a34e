package delivery

import (
	"log"
	"net/http"
	"time"

	directoryUsecase "miss-you-backend/internal/directory/usecase"
	"miss-you-backend/internal/notification/usecase"
	"miss-you-backend/pkg/composer"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notify and notification log HTTP requests
type NotificationHandler struct {
	dispatchUsecase usecase.DispatchUsecase
	directory       directoryUsecase.DirectoryUsecase
	composer        composer.Composer
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(dispatchUsecase usecase.DispatchUsecase, directory directoryUsecase.DirectoryUsecase, messageComposer composer.Composer) *NotificationHandler {
	return &NotificationHandler{
		dispatchUsecase: dispatchUsecase,
		directory:       directory,
		composer:        messageComposer,
	}
}

// NotifyRequest represents the request body for sending a notification
type NotifyRequest struct {
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notify sends a push notification from source to target. When the client
// does not supply both title and description, the composer writes the pair.
// POST /notify
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data is required"})
		return
	}
	if req.SourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Source ID is required"})
		return
	}
	if req.TargetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Target ID is required"})
		return
	}

	title := req.Title
	description := req.Description
	if title == "" || description == "" {
		title, description = h.composeMessage(c, req.SourceID, req.TargetID)
	}

	success, err := h.dispatchUsecase.Notify(c.Request.Context(), req.SourceID, req.TargetID, title, description)
	if err != nil {
		log.Printf("[Notify] Error sending notification: %v", err)
		success = false
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// composeMessage resolves both usernames and asks the composer for the
// title/description pair. The composer always yields a usable pair because
// generation errors already degrade to the deterministic fallback.
func (h *NotificationHandler) composeMessage(c *gin.Context, sourceID, targetID string) (string, string) {
	sourceName, err := h.directory.GetUsername(sourceID)
	if err != nil {
		sourceName = sourceID
	}
	targetName, err := h.directory.GetUsername(targetID)
	if err != nil {
		targetName = targetID
	}

	title, description, err := h.composer.Compose(c.Request.Context(), sourceName, targetName)
	if err != nil {
		log.Printf("[Notify] Composer error: %v", err)
		title = "Someone misses you 💌"
		description = "Open the app to see who is thinking about you"
	}
	return title, description
}

// MarkAsRead flips a notification's read flag.
// GET /mark_as_read?notification_id=...
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID := c.Query("notification_id")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notification ID is required"})
		return
	}

	success, err := h.dispatchUsecase.MarkAsRead(notificationID)
	if err != nil {
		log.Printf("[Notify] Error marking notification as read: %v", err)
		success = false
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// ListNotificationsRequest represents the request body for listing notifications
type ListNotificationsRequest struct {
	UserID string `json:"user_id"`
}

// ListUnread returns the unread notifications targeted at a user.
// POST /notifications
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	var req ListNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data is required"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	notifications, err := h.dispatchUsecase.ListUnread(req.UserID)
	if err != nil {
		log.Printf("[Notify] Error listing notifications: %v", err)
		notifications = nil
	}

	// Tuple shape (id, title, description, created_at, is_read) kept for
	// existing clients.
	entries := make([][]interface{}, 0, len(notifications))
	for _, n := range notifications {
		entries = append(entries, []interface{}{
			n.ID, n.Title, n.Description, n.CreatedAt.Format(time.RFC3339), n.IsRead,
		})
	}

	c.JSON(http.StatusOK, gin.H{"notifications": entries})
}
