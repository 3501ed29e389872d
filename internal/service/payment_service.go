package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	"github.com/Malmeu/food-force-v2-sub001/internal/cache"
	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const statsCacheTTL = 5 * time.Minute

// paymentRank orders statuses along the only legal path:
// pending, then processed, then paid.
var paymentRank = map[models.PaymentStatus]int{
	models.PaymentPending:   0,
	models.PaymentProcessed: 1,
	models.PaymentPaid:      2,
}

// PaymentService handles business logic for payments.
type PaymentService struct {
	repo            repository.PaymentRepository
	missionRepo     repository.MissionRepository
	applicationRepo repository.ApplicationRepository
	workHoursRepo   repository.WorkHoursRepository
	authorizer      authz.Authorizer
	cache           cache.Cache
	notifier        EventNotifier
}

// PaymentServiceConfig holds the dependencies of PaymentService.
type PaymentServiceConfig struct {
	Repo            repository.PaymentRepository
	MissionRepo     repository.MissionRepository
	ApplicationRepo repository.ApplicationRepository
	WorkHoursRepo   repository.WorkHoursRepository
	Authorizer      authz.Authorizer
	Cache           cache.Cache
	Notifier        EventNotifier
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(cfg PaymentServiceConfig) *PaymentService {
	return &PaymentService{
		repo:            cfg.Repo,
		missionRepo:     cfg.MissionRepo,
		applicationRepo: cfg.ApplicationRepo,
		workHoursRepo:   cfg.WorkHoursRepo,
		authorizer:      cfg.Authorizer,
		cache:           cfg.Cache,
		notifier:        cfg.Notifier,
	}
}

// CreateMissionPayment creates a pending payment for a mission period. The
// requester must own the mission, and the claimed hours may not exceed the
// validated work hours recorded in the period.
func (s *PaymentService) CreateMissionPayment(ctx context.Context, employerID primitive.ObjectID, req *models.CreateMissionPaymentRequest) (*models.Payment, error) {
	missionID, err := primitive.ObjectIDFromHex(req.MissionID)
	if err != nil {
		return nil, apperrors.ErrMissionNotFound
	}

	if err := authz.Require(ctx, s.authorizer, employerID, authz.KindMission, missionID, authz.RelationOwner); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}

	validated, err := s.workHoursRepo.SumValidatedHoursInPeriod(ctx, missionID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if req.HoursWorked > validated {
		return nil, fmt.Errorf("%w: only %.2f validated hours in period", apperrors.ErrInsufficientValidatedHours, validated)
	}

	payment := &models.Payment{
		MissionID:      missionID,
		EmployerID:     employerID,
		CandidateID:    mission.CandidateID,
		Amount:         req.Amount,
		HoursWorked:    req.HoursWorked,
		Period:         models.Period{Start: req.PeriodStart, End: req.PeriodEnd},
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		Status:         models.PaymentPending,
		InvoiceNumber:  newInvoiceNumber(),
		DueDate:        req.DueDate,
	}

	// Trace the payment back to the job when the application still exists.
	if application, err := s.applicationRepo.FindByID(ctx, mission.ApplicationID); err == nil {
		payment.JobID = application.JobID
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, employerID)

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: payment.CandidateID,
		Type:        models.NotificationPayment,
		Title:       "Payment created",
		Message:     fmt.Sprintf("A payment of %.2f was created for mission %s", payment.Amount, mission.Title),
		RelatedID:   payment.ID,
		RelatedKind: "payment",
	})

	return payment, nil
}

// ListMissionPayments returns a mission's payments to either of its parties.
func (s *PaymentService) ListMissionPayments(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	if err := authz.Require(ctx, s.authorizer, requesterID, authz.KindMission, missionID, authz.RelationOwner, authz.RelationAssignee); err != nil {
		return nil, err
	}

	payments, total, err := s.repo.FindByMission(ctx, missionID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaymentListResponse{
		Items:      payments,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListEmployerPayments returns the payments the requester issued.
func (s *PaymentService) ListEmployerPayments(ctx context.Context, employerID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	payments, total, err := s.repo.FindByEmployer(ctx, employerID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaymentListResponse{
		Items:      payments,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListCandidatePayments returns the payments addressed to the requester.
func (s *PaymentService) ListCandidatePayments(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.PaymentListResponse, error) {
	payments, total, err := s.repo.FindByCandidate(ctx, candidateID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaymentListResponse{
		Items:      payments,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateStatus advances a payment's status. Only the issuing employer may
// move it, only forward, one step at a time, and paid is terminal. Reaching
// paid stamps the payment date.
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID, employerID primitive.ObjectID, statusLabel string) (*models.Payment, error) {
	target, ok := models.ParsePaymentStatus(statusLabel)
	if !ok {
		return nil, apperrors.ErrUnknownPaymentStatus
	}

	if err := authz.Require(ctx, s.authorizer, employerID, authz.KindPayment, paymentID, authz.RelationOwner); err != nil {
		return nil, err
	}

	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status == models.PaymentPaid {
		return nil, apperrors.ErrPaymentAlreadyPaid
	}
	if paymentRank[target] != paymentRank[payment.Status]+1 {
		return nil, apperrors.ErrInvalidPaymentTransition
	}

	var paymentDate *time.Time
	if target == models.PaymentPaid {
		now := time.Now()
		paymentDate = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, paymentID, target, paymentDate)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, employerID)

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: updated.CandidateID,
		Type:        models.NotificationPayment,
		Title:       "Payment update",
		Message:     fmt.Sprintf("Payment %s is now %s", updated.InvoiceNumber, target),
		RelatedID:   updated.ID,
		RelatedKind: "payment",
	})

	return updated, nil
}

// EmployerStats returns the employer's aggregate payment figures (with caching).
func (s *PaymentService) EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error) {
	cacheKey := cache.EmployerStatsCacheKey(employerID.Hex())

	var cached models.EmployerPaymentStats
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil // Cache hit
	}

	stats, err := s.repo.EmployerStats(ctx, employerID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, stats, statsCacheTTL)

	return stats, nil
}

func (s *PaymentService) invalidateStats(ctx context.Context, employerID primitive.ObjectID) {
	_ = s.cache.Delete(ctx, cache.EmployerStatsCacheKey(employerID.Hex()))
}

// newInvoiceNumber builds a unique enough invoice reference from the creation
// instant and a random suffix.
func newInvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
