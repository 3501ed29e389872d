package service

import (
	"context"
	"fmt"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationService handles business logic for job applications.
type ApplicationService struct {
	repo       repository.ApplicationRepository
	jobRepo    repository.JobRepository
	authorizer authz.Authorizer
	notifier   EventNotifier
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(repo repository.ApplicationRepository, jobRepo repository.JobRepository, authorizer authz.Authorizer, notifier EventNotifier) *ApplicationService {
	return &ApplicationService{
		repo:       repo,
		jobRepo:    jobRepo,
		authorizer: authorizer,
		notifier:   notifier,
	}
}

// Apply creates an application for an active job. A candidate can apply to a
// given job at most once.
func (s *ApplicationService) Apply(ctx context.Context, candidateID primitive.ObjectID, req *models.CreateApplicationRequest) (*models.Application, error) {
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobInactive
	}

	exists, err := s.repo.ExistsByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationPending,
	}

	if err := s.repo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: job.EstablishmentID,
		Type:        models.NotificationApplication,
		Title:       "New application",
		Message:     fmt.Sprintf("A candidate applied to %s", job.Title),
		RelatedID:   application.ID,
		RelatedKind: "application",
	})

	return application, nil
}

// ListJobApplications returns the applications for a job the requester owns.
func (s *ApplicationService) ListJobApplications(ctx context.Context, jobID, requesterID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error) {
	if err := authz.Require(ctx, s.authorizer, requesterID, authz.KindJob, jobID, authz.RelationOwner); err != nil {
		return nil, err
	}

	applications, total, err := s.repo.FindByJob(ctx, jobID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.ApplicationListResponse{
		Items:      applications,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListCandidateApplications returns the requester's own applications.
func (s *ApplicationService) ListCandidateApplications(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.ApplicationListResponse, error) {
	applications, total, err := s.repo.FindByCandidate(ctx, candidateID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.ApplicationListResponse{
		Items:      applications,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateStatus sets an application's status. Only the owner of the job may
// review its applications; the label is normalized before storing.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, requesterID primitive.ObjectID, statusLabel string) (*models.Application, error) {
	status, ok := models.ParseApplicationStatus(statusLabel)
	if !ok {
		return nil, apperrors.ErrUnknownApplicationStatus
	}

	if err := authz.Require(ctx, s.authorizer, requesterID, authz.KindApplication, applicationID, authz.RelationOwner); err != nil {
		return nil, err
	}

	application, err := s.repo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: application.CandidateID,
		Type:        models.NotificationApplication,
		Title:       "Application update",
		Message:     fmt.Sprintf("Your application is now %s", status),
		RelatedID:   application.ID,
		RelatedKind: "application",
	})

	return application, nil
}
