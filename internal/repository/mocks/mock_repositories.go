// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc       func(ctx context.Context, user *models.User) error
	FindByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*models.User, error)
	UpdateFunc       func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	SetResumeKeyFunc func(ctx context.Context, id primitive.ObjectID, key string) error
	SetLogoKeyFunc   func(ctx context.Context, id primitive.ObjectID, key string) error
	DeleteFunc       func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) SetResumeKey(ctx context.Context, id primitive.ObjectID, key string) error {
	if m.SetResumeKeyFunc != nil {
		return m.SetResumeKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *MockUserRepository) SetLogoKey(ctx context.Context, id primitive.ObjectID, key string) error {
	if m.SetLogoKeyFunc != nil {
		return m.SetLogoKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	CreateFunc              func(ctx context.Context, job *models.Job) error
	FindByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	SearchFunc              func(ctx context.Context, filter *models.JobFilter, page, limit int) ([]models.Job, int, error)
	FindByEstablishmentFunc func(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Job, int, error)
	UpdateFunc              func(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error)
	DeleteFunc              func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil
}

func (m *MockJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockJobRepository) Search(ctx context.Context, filter *models.JobFilter, page, limit int) ([]models.Job, int, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

func (m *MockJobRepository) FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Job, int, error) {
	if m.FindByEstablishmentFunc != nil {
		return m.FindByEstablishmentFunc(ctx, establishmentID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockJobRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockJobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	CreateFunc                  func(ctx context.Context, application *models.Application) error
	FindByIDFunc                func(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	ExistsByJobAndCandidateFunc func(ctx context.Context, jobID, candidateID primitive.ObjectID) (bool, error)
	FindByJobFunc               func(ctx context.Context, jobID primitive.ObjectID, page, limit int) ([]models.Application, int, error)
	FindByCandidateFunc         func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Application, int, error)
	UpdateStatusFunc            func(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error)
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, application)
	}
	return nil
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID primitive.ObjectID) (bool, error) {
	if m.ExistsByJobAndCandidateFunc != nil {
		return m.ExistsByJobAndCandidateFunc(ctx, jobID, candidateID)
	}
	return false, nil
}

func (m *MockApplicationRepository) FindByJob(ctx context.Context, jobID primitive.ObjectID, page, limit int) ([]models.Application, int, error) {
	if m.FindByJobFunc != nil {
		return m.FindByJobFunc(ctx, jobID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockApplicationRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Application, int, error) {
	if m.FindByCandidateFunc != nil {
		return m.FindByCandidateFunc(ctx, candidateID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

// MockMissionRepository is a mock implementation of MissionRepository.
type MockMissionRepository struct {
	CreateFunc              func(ctx context.Context, mission *models.Mission) error
	FindByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*models.Mission, error)
	FindByEstablishmentFunc func(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Mission, int, error)
	FindByCandidateFunc     func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Mission, int, error)
	UpdateFunc              func(ctx context.Context, id primitive.ObjectID, update *models.UpdateMissionRequest) (*models.Mission, error)
	UpdateStatusFunc        func(ctx context.Context, id primitive.ObjectID, status models.MissionStatus) (*models.Mission, error)
	SetActualHoursFunc      func(ctx context.Context, id primitive.ObjectID, hours float64) error
}

func (m *MockMissionRepository) Create(ctx context.Context, mission *models.Mission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mission)
	}
	return nil
}

func (m *MockMissionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Mission, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMissionRepository) FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Mission, int, error) {
	if m.FindByEstablishmentFunc != nil {
		return m.FindByEstablishmentFunc(ctx, establishmentID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockMissionRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Mission, int, error) {
	if m.FindByCandidateFunc != nil {
		return m.FindByCandidateFunc(ctx, candidateID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockMissionRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateMissionRequest) (*models.Mission, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockMissionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.MissionStatus) (*models.Mission, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockMissionRepository) SetActualHours(ctx context.Context, id primitive.ObjectID, hours float64) error {
	if m.SetActualHoursFunc != nil {
		return m.SetActualHoursFunc(ctx, id, hours)
	}
	return nil
}

// MockWorkHoursRepository is a mock implementation of WorkHoursRepository.
type MockWorkHoursRepository struct {
	CreateFunc                    func(ctx context.Context, entry *models.WorkHours) error
	FindByIDFunc                  func(ctx context.Context, id primitive.ObjectID) (*models.WorkHours, error)
	FindByMissionFunc             func(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error)
	FindByCandidateFunc           func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error)
	ValidateFunc                  func(ctx context.Context, id, validatorID primitive.ObjectID) (*models.WorkHours, error)
	RejectFunc                    func(ctx context.Context, id, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error)
	SumValidatedHoursFunc         func(ctx context.Context, missionID primitive.ObjectID) (float64, error)
	SumValidatedHoursInPeriodFunc func(ctx context.Context, missionID primitive.ObjectID, start, end time.Time) (float64, error)
}

func (m *MockWorkHoursRepository) Create(ctx context.Context, entry *models.WorkHours) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockWorkHoursRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WorkHours, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkHoursRepository) FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error) {
	if m.FindByMissionFunc != nil {
		return m.FindByMissionFunc(ctx, missionID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockWorkHoursRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error) {
	if m.FindByCandidateFunc != nil {
		return m.FindByCandidateFunc(ctx, candidateID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockWorkHoursRepository) Validate(ctx context.Context, id, validatorID primitive.ObjectID) (*models.WorkHours, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, id, validatorID)
	}
	return nil, nil
}

func (m *MockWorkHoursRepository) Reject(ctx context.Context, id, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error) {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, id, validatorID, reason)
	}
	return nil, nil
}

func (m *MockWorkHoursRepository) SumValidatedHours(ctx context.Context, missionID primitive.ObjectID) (float64, error) {
	if m.SumValidatedHoursFunc != nil {
		return m.SumValidatedHoursFunc(ctx, missionID)
	}
	return 0, nil
}

func (m *MockWorkHoursRepository) SumValidatedHoursInPeriod(ctx context.Context, missionID primitive.ObjectID, start, end time.Time) (float64, error) {
	if m.SumValidatedHoursInPeriodFunc != nil {
		return m.SumValidatedHoursInPeriodFunc(ctx, missionID, start, end)
	}
	return 0, nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	CreateFunc          func(ctx context.Context, payment *models.Payment) error
	FindByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	FindByMissionFunc   func(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	FindByEmployerFunc  func(ctx context.Context, employerID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	FindByCandidateFunc func(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	UpdateStatusFunc    func(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error)
	EmployerStatsFunc   func(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error)
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	if m.FindByMissionFunc != nil {
		return m.FindByMissionFunc(ctx, missionID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockPaymentRepository) FindByEmployer(ctx context.Context, employerID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	if m.FindByEmployerFunc != nil {
		return m.FindByEmployerFunc(ctx, employerID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockPaymentRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	if m.FindByCandidateFunc != nil {
		return m.FindByCandidateFunc(ctx, candidateID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, paymentDate)
	}
	return nil, nil
}

func (m *MockPaymentRepository) EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error) {
	if m.EmployerStatsFunc != nil {
		return m.EmployerStatsFunc(ctx, employerID)
	}
	return nil, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	CreateFunc          func(ctx context.Context, notification *models.Notification) error
	FindByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	FindByRecipientFunc func(ctx context.Context, recipientID primitive.ObjectID, page, limit int) ([]models.Notification, int, error)
	CountUnreadFunc     func(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	MarkReadFunc        func(ctx context.Context, id primitive.ObjectID) error
	MarkAllReadFunc     func(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	DeleteFunc          func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, recipientID primitive.ObjectID, page, limit int) ([]models.Notification, int, error) {
	if m.FindByRecipientFunc != nil {
		return m.FindByRecipientFunc(ctx, recipientID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	CreateFunc               func(ctx context.Context, message *models.Message) error
	FindConversationFunc     func(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) ([]models.Message, int, error)
	ListConversationsFunc    func(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error)
	MarkConversationReadFunc func(ctx context.Context, userID, peerID primitive.ObjectID) (int, error)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockMessageRepository) FindConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) ([]models.Message, int, error) {
	if m.FindConversationFunc != nil {
		return m.FindConversationFunc(ctx, userID, peerID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockMessageRepository) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMessageRepository) MarkConversationRead(ctx context.Context, userID, peerID primitive.ObjectID) (int, error) {
	if m.MarkConversationReadFunc != nil {
		return m.MarkConversationReadFunc(ctx, userID, peerID)
	}
	return 0, nil
}

// MockRatingRepository is a mock implementation of RatingRepository.
type MockRatingRepository struct {
	CreateFunc                func(ctx context.Context, rating *models.Rating) error
	FindByMissionAndRaterFunc func(ctx context.Context, missionID, raterID primitive.ObjectID) (*models.Rating, error)
	FindByRatedFunc           func(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int, error)
	AverageForRatedFunc       func(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingAverage, error)
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rating)
	}
	return nil
}

func (m *MockRatingRepository) FindByMissionAndRater(ctx context.Context, missionID, raterID primitive.ObjectID) (*models.Rating, error) {
	if m.FindByMissionAndRaterFunc != nil {
		return m.FindByMissionAndRaterFunc(ctx, missionID, raterID)
	}
	return nil, nil
}

func (m *MockRatingRepository) FindByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int, error) {
	if m.FindByRatedFunc != nil {
		return m.FindByRatedFunc(ctx, ratedID, page, limit)
	}
	return nil, 0, nil
}

func (m *MockRatingRepository) AverageForRated(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingAverage, error) {
	if m.AverageForRatedFunc != nil {
		return m.AverageForRatedFunc(ctx, ratedID)
	}
	return nil, nil
}
