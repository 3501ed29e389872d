//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	"github.com/Malmeu/food-force-v2-sub001/internal/cache"
	"github.com/Malmeu/food-force-v2-sub001/internal/handler"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"
	"github.com/Malmeu/food-force-v2-sub001/internal/router"
	"github.com/Malmeu/food-force-v2-sub001/internal/service"
	"github.com/Malmeu/food-force-v2-sub001/internal/storage"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"
	"github.com/Malmeu/food-force-v2-sub001/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	JobRepo          repository.JobRepository
	ApplicationRepo  repository.ApplicationRepository
	MissionRepo      repository.MissionRepository
	WorkHoursRepo    repository.WorkHoursRepository
	PaymentRepo      repository.PaymentRepository
	NotificationRepo repository.NotificationRepository
	MessageRepo      repository.MessageRepository
	RatingRepo       repository.RatingRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	UserService         service.UserServicer
	JobService          service.JobServicer
	ApplicationService  service.ApplicationServicer
	MissionService      service.MissionServicer
	WorkHoursService    service.WorkHoursServicer
	PaymentService      service.PaymentServicer
	NotificationService service.NotificationServicer
	MessageService      service.MessageServicer
	RatingService       service.RatingServicer

	// Auth
	JWTManager *auth.JWTManager

	// Notification pipeline
	NotificationQueue *queue.MemoryQueue
	Dispatcher        *queue.Dispatcher
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)

	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

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

	return &TestServer{
		Router:              r,
		MongoDB:             mongoDB,
		Redis:               redisContainer,
		MinIO:               minioContainer,
		UserRepo:            userRepo,
		JobRepo:             jobRepo,
		ApplicationRepo:     applicationRepo,
		MissionRepo:         missionRepo,
		WorkHoursRepo:       workHoursRepo,
		PaymentRepo:         paymentRepo,
		NotificationRepo:    notificationRepo,
		MessageRepo:         messageRepo,
		RatingRepo:          ratingRepo,
		AuthService:         authService,
		UserService:         userService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		MissionService:      missionService,
		WorkHoursService:    workHoursService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
		MessageService:      messageService,
		RatingService:       ratingService,
		JWTManager:          jwtManager,
		NotificationQueue:   notificationQueue,
		Dispatcher:          dispatcher,
	}, nil
}

// StartDispatcher starts the notification dispatcher workers.
func (ts *TestServer) StartDispatcher(ctx context.Context) {
	ts.Dispatcher.Start(ctx)
}

// StopDispatcher drains the queue and stops the workers.
func (ts *TestServer) StopDispatcher() {
	ts.Dispatcher.Stop()
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
