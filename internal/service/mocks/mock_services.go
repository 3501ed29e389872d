// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc               func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUserFunc            func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	RequestDocumentUploadFunc func(ctx context.Context, userID primitive.ObjectID, req *models.DocumentUploadRequest) (*models.DocumentUploadResponse, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) RequestDocumentUpload(ctx context.Context, userID primitive.ObjectID, req *models.DocumentUploadRequest) (*models.DocumentUploadResponse, error) {
	if m.RequestDocumentUploadFunc != nil {
		return m.RequestDocumentUploadFunc(ctx, userID, req)
	}
	return nil, nil
}

// MockJobService is a mock implementation of JobServicer.
type MockJobService struct {
	CreateJobFunc             func(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error)
	SearchJobsFunc            func(ctx context.Context, filter *models.JobFilter, page, limit int) (*models.JobListResponse, error)
	GetJobFunc                func(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	ListEstablishmentJobsFunc func(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.JobListResponse, error)
	UpdateJobFunc             func(ctx context.Context, jobID, establishmentID primitive.ObjectID, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJobFunc             func(ctx context.Context, jobID, establishmentID primitive.ObjectID) error
}

func (m *MockJobService) CreateJob(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error) {
	if m.CreateJobFunc != nil {
		return m.CreateJobFunc(ctx, establishmentID, req)
	}
	return nil, nil
}

func (m *MockJobService) SearchJobs(ctx context.Context, filter *models.JobFilter, page, limit int) (*models.JobListResponse, error) {
	if m.SearchJobsFunc != nil {
		return m.SearchJobsFunc(ctx, filter, page, limit)
	}
	return nil, nil
}

func (m *MockJobService) GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	if m.GetJobFunc != nil {
		return m.GetJobFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockJobService) ListEstablishmentJobs(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.JobListResponse, error) {
	if m.ListEstablishmentJobsFunc != nil {
		return m.ListEstablishmentJobsFunc(ctx, establishmentID, page, limit)
	}
	return nil, nil
}

func (m *MockJobService) UpdateJob(ctx context.Context, jobID, establishmentID primitive.ObjectID, req *models.UpdateJobRequest) (*models.Job, error) {
	if m.UpdateJobFunc != nil {
		return m.UpdateJobFunc(ctx, jobID, establishmentID, req)
	}
	return nil, nil
}

func (m *MockJobService) DeleteJob(ctx context.Context, jobID, establishmentID primitive.ObjectID) error {
	if m.DeleteJobFunc != nil {
		return m.DeleteJobFunc(ctx, jobID, establishmentID)
	}
	return nil
}

// MockApplicationService is a mock implementation of ApplicationServicer.
type MockApplicationService struct {
	ApplyFunc                     func(ctx context.Context, candidateID primitive.ObjectID, req *models.CreateApplicationRequest) (*models.Application, error)
	ListJobApplicationsFunc       func(ctx context.Context, jobID, requesterID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error)
	ListCandidateApplicationsFunc func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error)
	UpdateStatusFunc              func(ctx context.Context, applicationID, requesterID primitive.ObjectID, statusLabel string) (*models.Application, error)
}

func (m *MockApplicationService) Apply(ctx context.Context, candidateID primitive.ObjectID, req *models.CreateApplicationRequest) (*models.Application, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, candidateID, req)
	}
	return nil, nil
}

func (m *MockApplicationService) ListJobApplications(ctx context.Context, jobID, requesterID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error) {
	if m.ListJobApplicationsFunc != nil {
		return m.ListJobApplicationsFunc(ctx, jobID, requesterID, page, limit)
	}
	return nil, nil
}

func (m *MockApplicationService) ListCandidateApplications(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error) {
	if m.ListCandidateApplicationsFunc != nil {
		return m.ListCandidateApplicationsFunc(ctx, candidateID, page, limit)
	}
	return nil, nil
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, applicationID, requesterID primitive.ObjectID, statusLabel string) (*models.Application, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, applicationID, requesterID, statusLabel)
	}
	return nil, nil
}

// MockMissionService is a mock implementation of MissionServicer.
type MockMissionService struct {
	CreateMissionFunc             func(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateMissionRequest) (*models.Mission, error)
	GetMissionFunc                func(ctx context.Context, missionID, requesterID primitive.ObjectID) (*models.Mission, error)
	ListEstablishmentMissionsFunc func(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error)
	ListCandidateMissionsFunc     func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error)
	UpdateMissionFunc             func(ctx context.Context, missionID, establishmentID primitive.ObjectID, req *models.UpdateMissionRequest) (*models.Mission, error)
	UpdateStatusFunc              func(ctx context.Context, missionID, actorID primitive.ObjectID, actorType models.UserType, statusLabel string) (*models.Mission, error)
}

func (m *MockMissionService) CreateMission(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateMissionRequest) (*models.Mission, error) {
	if m.CreateMissionFunc != nil {
		return m.CreateMissionFunc(ctx, establishmentID, req)
	}
	return nil, nil
}

func (m *MockMissionService) GetMission(ctx context.Context, missionID, requesterID primitive.ObjectID) (*models.Mission, error) {
	if m.GetMissionFunc != nil {
		return m.GetMissionFunc(ctx, missionID, requesterID)
	}
	return nil, nil
}

func (m *MockMissionService) ListEstablishmentMissions(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error) {
	if m.ListEstablishmentMissionsFunc != nil {
		return m.ListEstablishmentMissionsFunc(ctx, establishmentID, page, limit)
	}
	return nil, nil
}

func (m *MockMissionService) ListCandidateMissions(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error) {
	if m.ListCandidateMissionsFunc != nil {
		return m.ListCandidateMissionsFunc(ctx, candidateID, page, limit)
	}
	return nil, nil
}

func (m *MockMissionService) UpdateMission(ctx context.Context, missionID, establishmentID primitive.ObjectID, req *models.UpdateMissionRequest) (*models.Mission, error) {
	if m.UpdateMissionFunc != nil {
		return m.UpdateMissionFunc(ctx, missionID, establishmentID, req)
	}
	return nil, nil
}

func (m *MockMissionService) UpdateStatus(ctx context.Context, missionID, actorID primitive.ObjectID, actorType models.UserType, statusLabel string) (*models.Mission, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, missionID, actorID, actorType, statusLabel)
	}
	return nil, nil
}

// MockWorkHoursService is a mock implementation of WorkHoursServicer.
type MockWorkHoursService struct {
	RecordFunc                 func(ctx context.Context, candidateID primitive.ObjectID, req *models.RecordWorkHoursRequest) (*models.WorkHours, error)
	ListMissionWorkHoursFunc   func(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error)
	ListCandidateWorkHoursFunc func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error)
	ValidateFunc               func(ctx context.Context, entryID, validatorID primitive.ObjectID) (*models.WorkHours, error)
	RejectFunc                 func(ctx context.Context, entryID, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error)
}

func (m *MockWorkHoursService) Record(ctx context.Context, candidateID primitive.ObjectID, req *models.RecordWorkHoursRequest) (*models.WorkHours, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, candidateID, req)
	}
	return nil, nil
}

func (m *MockWorkHoursService) ListMissionWorkHours(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error) {
	if m.ListMissionWorkHoursFunc != nil {
		return m.ListMissionWorkHoursFunc(ctx, missionID, requesterID, page, limit)
	}
	return nil, nil
}

func (m *MockWorkHoursService) ListCandidateWorkHours(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error) {
	if m.ListCandidateWorkHoursFunc != nil {
		return m.ListCandidateWorkHoursFunc(ctx, candidateID, page, limit)
	}
	return nil, nil
}

func (m *MockWorkHoursService) Validate(ctx context.Context, entryID, validatorID primitive.ObjectID) (*models.WorkHours, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, entryID, validatorID)
	}
	return nil, nil
}

func (m *MockWorkHoursService) Reject(ctx context.Context, entryID, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, entryID, validatorID, reason)
	}
	return nil, nil
}

// MockPaymentService is a mock implementation of PaymentServicer.
type MockPaymentService struct {
	CreateMissionPaymentFunc func(ctx context.Context, employerID primitive.ObjectID, req *models.CreateMissionPaymentRequest) (*models.Payment, error)
	ListMissionPaymentsFunc  func(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	ListEmployerPaymentsFunc func(ctx context.Context, employerID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	ListCandidatePaymentsFunc func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error)
	UpdateStatusFunc         func(ctx context.Context, paymentID, employerID primitive.ObjectID, statusLabel string) (*models.Payment, error)
	EmployerStatsFunc        func(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error)
}

func (m *MockPaymentService) CreateMissionPayment(ctx context.Context, employerID primitive.ObjectID, req *models.CreateMissionPaymentRequest) (*models.Payment, error) {
	if m.CreateMissionPaymentFunc != nil {
		return m.CreateMissionPaymentFunc(ctx, employerID, req)
	}
	return nil, nil
}

func (m *MockPaymentService) ListMissionPayments(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	if m.ListMissionPaymentsFunc != nil {
		return m.ListMissionPaymentsFunc(ctx, missionID, requesterID, page, limit)
	}
	return nil, nil
}

func (m *MockPaymentService) ListEmployerPayments(ctx context.Context, employerID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	if m.ListEmployerPaymentsFunc != nil {
		return m.ListEmployerPaymentsFunc(ctx, employerID, page, limit)
	}
	return nil, nil
}

func (m *MockPaymentService) ListCandidatePayments(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	if m.ListCandidatePaymentsFunc != nil {
		return m.ListCandidatePaymentsFunc(ctx, candidateID, page, limit)
	}
	return nil, nil
}

func (m *MockPaymentService) UpdateStatus(ctx context.Context, paymentID, employerID primitive.ObjectID, statusLabel string) (*models.Payment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, paymentID, employerID, statusLabel)
	}
	return nil, nil
}

func (m *MockPaymentService) EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error) {
	if m.EmployerStatsFunc != nil {
		return m.EmployerStatsFunc(ctx, employerID)
	}
	return nil, nil
}

// MockNotificationService is a mock implementation of NotificationServicer.
type MockNotificationService struct {
	ListFunc        func(ctx context.Context, recipientID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error)
	MarkReadFunc    func(ctx context.Context, notificationID, recipientID primitive.ObjectID) error
	MarkAllReadFunc func(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	DeleteFunc      func(ctx context.Context, notificationID, recipientID primitive.ObjectID) error
}

func (m *MockNotificationService) List(ctx context.Context, recipientID primitive.ObjectID, page, limit int) (*models.NotificationListResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, recipientID, page, limit)
	}
	return nil, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID, recipientID primitive.ObjectID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID, recipientID)
	}
	return nil
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *MockNotificationService) Delete(ctx context.Context, notificationID, recipientID primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, notificationID, recipientID)
	}
	return nil
}

// MockMessageService is a mock implementation of MessageServicer.
type MockMessageService struct {
	SendFunc              func(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.Message, error)
	GetConversationFunc   func(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) (*models.MessageListResponse, error)
	ListConversationsFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error)
}

func (m *MockMessageService) Send(ctx context.Context, senderID primitive.ObjectID, req *models.SendMessageRequest) (*models.Message, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, senderID, req)
	}
	return nil, nil
}

func (m *MockMessageService) GetConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) (*models.MessageListResponse, error) {
	if m.GetConversationFunc != nil {
		return m.GetConversationFunc(ctx, userID, peerID, page, limit)
	}
	return nil, nil
}

func (m *MockMessageService) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, userID)
	}
	return nil, nil
}

// MockRatingService is a mock implementation of RatingServicer.
type MockRatingService struct {
	RateMissionFunc    func(ctx context.Context, raterID primitive.ObjectID, req *models.CreateRatingRequest) (*models.Rating, error)
	ListUserRatingsFunc func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RatingListResponse, error)
	GetUserAverageFunc func(ctx context.Context, userID primitive.ObjectID) (*models.RatingAverage, error)
}

func (m *MockRatingService) RateMission(ctx context.Context, raterID primitive.ObjectID, req *models.CreateRatingRequest) (*models.Rating, error) {
	if m.RateMissionFunc != nil {
		return m.RateMissionFunc(ctx, raterID, req)
	}
	return nil, nil
}

func (m *MockRatingService) ListUserRatings(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RatingListResponse, error) {
	if m.ListUserRatingsFunc != nil {
		return m.ListUserRatingsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockRatingService) GetUserAverage(ctx context.Context, userID primitive.ObjectID) (*models.RatingAverage, error) {
	if m.GetUserAverageFunc != nil {
		return m.GetUserAverageFunc(ctx, userID)
	}
	return nil, nil
}
