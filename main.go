package main

import (
	"log"

	api "miss-you-backend/cmd/api"
	directoryDomain "miss-you-backend/internal/directory/domain"
	directoryRepo "miss-you-backend/internal/directory/repository"
	directoryUsecase "miss-you-backend/internal/directory/usecase"
	"miss-you-backend/internal/events"
	notificationDomain "miss-you-backend/internal/notification/domain"
	notificationRepo "miss-you-backend/internal/notification/repository"
	notificationUsecase "miss-you-backend/internal/notification/usecase"
	"miss-you-backend/pkg/apns"
	"miss-you-backend/pkg/config"
	"miss-you-backend/pkg/database"
	"miss-you-backend/pkg/fcm"
	"miss-you-backend/pkg/push"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&directoryDomain.User{}, &directoryDomain.DeviceToken{}, &notificationDomain.Notification{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := directoryRepo.NewUserRepository(db)
	tokenRepo := directoryRepo.NewDeviceTokenRepository(db)
	notifRepo := notificationRepo.NewNotificationRepository(db)

	// Initialize FCM client (optional, pushes to android/web disabled without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize APNs client (optional, pushes to ios disabled without it)
	var apnsClient *apns.Client
	if cfg.APNSAuthKeyPath != "" && cfg.APNSKeyID != "" && cfg.APNSTeamID != "" {
		apnsClient, err = apns.NewClient(apns.Config{
			AuthKeyPath: cfg.APNSAuthKeyPath,
			KeyID:       cfg.APNSKeyID,
			TeamID:      cfg.APNSTeamID,
			Topic:       cfg.APNSTopic,
			Production:  cfg.APNSMode == "production",
		})
		if err != nil {
			log.Printf("[WARN] Failed to initialize APNs client (ios pushes disabled): %v", err)
			apnsClient = nil
		}
	} else {
		log.Printf("[WARN] No APNs credentials configured, APNs disabled")
	}

	var fcmSender, apnsSender push.Sender
	if fcmClient != nil {
		fcmSender = fcmClient
	}
	if apnsClient != nil {
		apnsSender = apnsClient
	}
	pushRouter := push.NewRouter(fcmSender, apnsSender)

	// Initialize event publisher (optional)
	var publisher events.EventPublisher
	if cfg.NatsURL != "" {
		publisher, err = events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS (events disabled): %v", err)
			publisher = nil
		}
	}

	// Initialize use cases (dependency injection)
	directoryUc := directoryUsecase.NewDirectoryUsecase(userRepo, tokenRepo)
	dispatchUc := notificationUsecase.NewDispatchUsecase(notifRepo, directoryUc, pushRouter, publisher)

	// Initialize HTTP handler
	handler := api.NewHandler(directoryUc, dispatchUc, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
