package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	"github.com/Malmeu/food-force-v2-sub001/internal/cache"
	"github.com/Malmeu/food-force-v2-sub001/internal/config"
	"github.com/Malmeu/food-force-v2-sub001/internal/database"
	"github.com/Malmeu/food-force-v2-sub001/internal/handler"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"
	"github.com/Malmeu/food-force-v2-sub001/internal/router"
	"github.com/Malmeu/food-force-v2-sub001/internal/service"
	"github.com/Malmeu/food-force-v2-sub001/internal/storage"
	"github.com/Malmeu/food-force-v2-sub001/internal/validator"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           FoodForce API
// @version         1.0
// @description     A REST API connecting food-service establishments with candidates: job postings, applications, missions, work hours, payments and messaging.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	jobRepo := repository.NewJobRepository(mongoDB.Database)
	applicationRepo := repository.NewApplicationRepository(mongoDB.Database)
	missionRepo := repository.NewMissionRepository(mongoDB.Database)
	workHoursRepo := repository.NewWorkHoursRepository(mongoDB.Database)
	paymentRepo := repository.NewPaymentRepository(mongoDB.Database)
	notificationRepo := repository.NewNotificationRepository(mongoDB.Database)
	messageRepo := repository.NewMessageRepository(mongoDB.Database)
	ratingRepo := repository.NewRatingRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(jobRepo, applicationRepo, missionRepo, workHoursRepo, paymentRepo, notificationRepo)

	// Notification queue, emitter and dispatcher
	notificationQueue := queue.NewMemoryQueue(100)
	notifier := queue.NewNotifier(notificationQueue)
	dispatcher := queue.NewDispatcher(notificationQueue, notificationRepo, 2)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache, s3Client)
	jobService := service.NewJobService(jobRepo, authorizer)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, authorizer, notifier)
	missionService := service.NewMissionService(missionRepo, applicationRepo, authorizer, notifier)
	workHoursService := service.NewWorkHoursService(workHoursRepo, missionRepo, authorizer, notifier)
	paymentService := service.NewPaymentService(service.PaymentServiceConfig{
		Repo:            paymentRepo,
		MissionRepo:     missionRepo,
		ApplicationRepo: applicationRepo,
		WorkHoursRepo:   workHoursRepo,
		Authorizer:      authorizer,
		Cache:           redisCache,
		Notifier:        notifier,
	})
	notificationService := service.NewNotificationService(notificationRepo, authorizer)
	messageService := service.NewMessageService(messageRepo, userRepo, notifier)
	ratingService := service.NewRatingService(ratingRepo, missionRepo, notifier)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	missionHandler := handler.NewMissionHandler(missionService)
	workHoursHandler := handler.NewWorkHoursHandler(workHoursService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	messageHandler := handler.NewMessageHandler(messageService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		JobHandler:          jobHandler,
		ApplicationHandler:  applicationHandler,
		MissionHandler:      missionHandler,
		WorkHoursHandler:    workHoursHandler,
		PaymentHandler:      paymentHandler,
		NotificationHandler: notificationHandler,
		MessageHandler:      messageHandler,
		RatingHandler:       ratingHandler,
		JWTManager:          jwtManager,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start notification dispatcher
	dispatcher.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal dispatcher shutdown
	cancel()

	// Stop notification dispatcher (waits for workers)
	log.Println("Stopping notification dispatcher...")
	dispatcher.Stop()

	log.Println("Server shutdown complete")
}
