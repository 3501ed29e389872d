// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "github.com/Malmeu/food-force-v2-sub001/swagger" // Import generated swagger docs

	"github.com/Malmeu/food-force-v2-sub001/internal/handler"
	"github.com/Malmeu/food-force-v2-sub001/internal/middleware"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	JobHandler          *handler.JobHandler
	ApplicationHandler  *handler.ApplicationHandler
	MissionHandler      *handler.MissionHandler
	WorkHoursHandler    *handler.WorkHoursHandler
	PaymentHandler      *handler.PaymentHandler
	NotificationHandler *handler.NotificationHandler
	MessageHandler      *handler.MessageHandler
	RatingHandler       *handler.RatingHandler
	JWTManager          auth.TokenManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.Auth(cfg.JWTManager)
	establishmentOnly := middleware.RequireUserType(models.UserTypeEstablishment)
	candidateOnly := middleware.RequireUserType(models.UserTypeCandidate)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(authed)
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.PUT("/me", cfg.UserHandler.UpdateMe)
			users.POST("/me/documents", cfg.UserHandler.RequestDocumentUpload)
			users.GET("/:id", cfg.UserHandler.GetUser)
		}

		// Job routes. Search and detail are public, the rest belongs to the
		// owning establishment.
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", cfg.JobHandler.SearchJobs)
			jobs.GET("/establishment", authed, establishmentOnly, cfg.JobHandler.ListEstablishmentJobs)
			jobs.GET("/:id", cfg.JobHandler.GetJob)
			jobs.POST("", authed, establishmentOnly, cfg.JobHandler.CreateJob)
			jobs.PUT("/:id", authed, establishmentOnly, cfg.JobHandler.UpdateJob)
			jobs.DELETE("/:id", authed, establishmentOnly, cfg.JobHandler.DeleteJob)
		}

		// Application routes (protected)
		applications := v1.Group("/applications")
		applications.Use(authed)
		{
			applications.POST("", candidateOnly, cfg.ApplicationHandler.Apply)
			applications.GET("/candidate", candidateOnly, cfg.ApplicationHandler.ListCandidateApplications)
			applications.GET("/job/:jobId", establishmentOnly, cfg.ApplicationHandler.ListJobApplications)
			applications.PUT("/:id/status", establishmentOnly, cfg.ApplicationHandler.UpdateStatus)
		}

		// Mission routes (protected). Status updates are open to both parties,
		// the service decides what each may do.
		missions := v1.Group("/missions")
		missions.Use(authed)
		{
			missions.POST("", establishmentOnly, cfg.MissionHandler.CreateMission)
			missions.GET("/establishment", establishmentOnly, cfg.MissionHandler.ListEstablishmentMissions)
			missions.GET("/candidate", candidateOnly, cfg.MissionHandler.ListCandidateMissions)
			missions.GET("/:id", cfg.MissionHandler.GetMission)
			missions.PUT("/:id", establishmentOnly, cfg.MissionHandler.UpdateMission)
			missions.PUT("/:id/status", cfg.MissionHandler.UpdateStatus)
		}

		// Work-hours routes (protected)
		workHours := v1.Group("/workhours")
		workHours.Use(authed)
		{
			workHours.POST("", candidateOnly, cfg.WorkHoursHandler.Record)
			workHours.GET("/candidate", candidateOnly, cfg.WorkHoursHandler.ListCandidateWorkHours)
			workHours.GET("/mission/:missionId", cfg.WorkHoursHandler.ListMissionWorkHours)
			workHours.PUT("/:id/validate", establishmentOnly, cfg.WorkHoursHandler.Validate)
			workHours.PUT("/:id/reject", establishmentOnly, cfg.WorkHoursHandler.Reject)
		}

		// Payment routes (protected)
		payments := v1.Group("/payments")
		payments.Use(authed)
		{
			payments.POST("/mission", establishmentOnly, cfg.PaymentHandler.CreateMissionPayment)
			payments.GET("/mission/:missionId", cfg.PaymentHandler.ListMissionPayments)
			payments.GET("/employer", establishmentOnly, cfg.PaymentHandler.ListEmployerPayments)
			payments.GET("/employer/stats", establishmentOnly, cfg.PaymentHandler.EmployerStats)
			payments.GET("/candidate", candidateOnly, cfg.PaymentHandler.ListCandidatePayments)
			payments.PUT("/:id/status", establishmentOnly, cfg.PaymentHandler.UpdateStatus)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(authed)
		{
			notifications.GET("", cfg.NotificationHandler.List)
			notifications.PUT("/read-all", cfg.NotificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", cfg.NotificationHandler.MarkRead)
			notifications.DELETE("/:id", cfg.NotificationHandler.Delete)
		}

		// Message routes (protected)
		messages := v1.Group("/messages")
		messages.Use(authed)
		{
			messages.POST("", cfg.MessageHandler.Send)
			messages.GET("/conversations", cfg.MessageHandler.ListConversations)
			messages.GET("/conversation/:peerId", cfg.MessageHandler.GetConversation)
		}

		// Rating routes (protected)
		ratings := v1.Group("/ratings")
		ratings.Use(authed)
		{
			ratings.POST("", cfg.RatingHandler.RateMission)
			ratings.GET("/user/:userId", cfg.RatingHandler.ListUserRatings)
			ratings.GET("/user/:userId/average", cfg.RatingHandler.GetUserAverage)
		}
	}

	return r
}
