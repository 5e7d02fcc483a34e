package api

import (
	"log"

	directoryDelivery "miss-you-backend/internal/directory/delivery"
	directoryUsecase "miss-you-backend/internal/directory/usecase"
	notificationDelivery "miss-you-backend/internal/notification/delivery"
	notificationUsecase "miss-you-backend/internal/notification/usecase"
	"miss-you-backend/pkg/composer"
	"miss-you-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "miss-you-backend"

type Handler struct {
	directoryHandler    *directoryDelivery.DirectoryHandler
	notificationHandler *notificationDelivery.NotificationHandler
	config              *config.Config
}

func NewHandler(directoryUc directoryUsecase.DirectoryUsecase, dispatchUc notificationUsecase.DispatchUsecase, cfg *config.Config) *Handler {
	// Initialize the message composer (Gemini with deterministic fallback)
	messageComposer := composer.NewComposer(cfg.GeminiApiKey)
	log.Println("Message composer initialized")

	return &Handler{
		directoryHandler:    directoryDelivery.NewDirectoryHandler(directoryUc),
		notificationHandler: notificationDelivery.NewNotificationHandler(dispatchUc, directoryUc, messageComposer),
		config:              cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.directoryHandler, h.notificationHandler)

	return r.Run(addr)
}
