// Package service contains business logic for the application.
package service

import (
	"context"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventNotifier defines the interface for emitting notification events.
type EventNotifier interface {
	Notify(event queue.NotificationEvent)
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	RequestDocumentUpload(ctx context.Context, userID primitive.ObjectID, req *models.DocumentUploadRequest) (*models.DocumentUploadResponse, error)
}

// JobServicer defines the interface for job posting operations.
type JobServicer interface {
	CreateJob(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error)
	SearchJobs(ctx context.Context, filter *models.JobFilter, page, limit int) (*models.JobListResponse, error)
	GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	ListEstablishmentJobs(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.JobListResponse, error)
	UpdateJob(ctx context.Context, jobID, establishmentID primitive.ObjectID, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID, establishmentID primitive.ObjectID) error
}

// ApplicationServicer defines the interface for application operations.
type ApplicationServicer interface {
	Apply(ctx context.Context, candidateID primitive.ObjectID, req *models.CreateApplicationRequest) (*models.Application, error)
	ListJobApplications(ctx context.Context, jobID, requesterID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error)
	ListCandidateApplications(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error)
	UpdateStatus(ctx context.Context, applicationID, requesterID primitive.ObjectID, statusLabel string) (*models.Application, error)
}

// MissionServicer defines the interface for mission operations.
type MissionServicer interface {
	CreateMission(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateMissionRequest) (*models.Mission, error)
	GetMission(ctx context.Context, missionID, requesterID primitive.ObjectID) (*models.Mission, error)
	ListEstablishmentMissions(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error)
	ListCandidateMissions(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error)
	UpdateMission(ctx context.Context, missionID, establishmentID primitive.ObjectID, req *models.UpdateMissionRequest) (*models.Mission, error)
	UpdateStatus(ctx context.Context, missionID, actorID primitive.ObjectID, actorType models.UserType, statusLabel string) (*models.Mission, error)
}

// WorkHoursServicer defines the interface for work-hours operations.
type WorkHoursServicer interface {
	Record(ctx context.Context, candidateID primitive.ObjectID, req *models.RecordWorkHoursRequest) (*models.WorkHours, error)
	ListMissionWorkHours(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error)
	ListCandidateWorkHours(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error)
	Validate(ctx context.Context, entryID, validatorID primitive.ObjectID) (*models.WorkHours, error)
	Reject(ctx context.Context, entryID, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error)
}

// PaymentServicer defines the interface for payment operations.
type PaymentServicer interface {
	CreateMissionPayment(ctx context.Context, employerID primitive.ObjectID, req *models.CreateMissionPaymentRequest) (*models.Payment, error)
	ListMissionPayments(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	ListEmployerPayments(ctx context.Context, employerID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	ListCandidatePayments(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	UpdateStatus(ctx context.Context, paymentID, employerID primitive.ObjectID, statusLabel string) (*models.Payment, error)
	EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error)
}

// NotificationServicer defines the interface for notification operations.
type NotificationServicer interface {
	List(ctx context.Context, recipientID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID, recipientID primitive.ObjectID) error
	MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	Delete(ctx context.Context, notificationID, recipientID primitive.ObjectID) error
}

// MessageServicer defines the interface for messaging operations.
type MessageServicer interface {
	Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) (*models.MessageListResponse, error)
	ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error)
}

// RatingServicer defines the interface for rating operations.
type RatingServicer interface {
	RateMission(ctx context.Context, raterID primitive.ObjectID, req *models.CreateRatingRequest) (*models.Rating, error)
	ListUserRatings(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RatingListResponse, error)
	GetUserAverage(ctx context.Context, userID primitive.ObjectID) (*models.RatingAverage, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ JobServicer          = (*JobService)(nil)
	_ ApplicationServicer  = (*ApplicationService)(nil)
	_ MissionServicer      = (*MissionService)(nil)
	_ WorkHoursServicer    = (*WorkHoursService)(nil)
	_ PaymentServicer      = (*PaymentService)(nil)
	_ NotificationServicer = (*NotificationService)(nil)
	_ MessageServicer      = (*MessageService)(nil)
	_ RatingServicer       = (*RatingService)(nil)
)
