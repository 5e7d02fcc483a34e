package api

import (
	"net/http"

	directoryDelivery "miss-you-backend/internal/directory/delivery"
	notificationDelivery "miss-you-backend/internal/notification/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, directoryHandler *directoryDelivery.DirectoryHandler, notificationHandler *notificationDelivery.NotificationHandler) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
	})

	// Directory routes
	r.GET("/register", directoryHandler.Register)
	r.GET("/exists", directoryHandler.Exists)
	r.POST("/users", directoryHandler.ListUsers)

	// Notification routes
	r.POST("/notify", notificationHandler.Notify)
	r.GET("/mark_as_read", notificationHandler.MarkAsRead)
	r.POST("/notifications", notificationHandler.ListUnread)
}
