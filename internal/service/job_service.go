package service

import (
	"context"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobService handles business logic for job postings.
type JobService struct {
	repo       repository.JobRepository
	authorizer authz.Authorizer
}

// NewJobService creates a new JobService.
func NewJobService(repo repository.JobRepository, authorizer authz.Authorizer) *JobService {
	return &JobService{
		repo:       repo,
		authorizer: authorizer,
	}
}

// CreateJob creates a job posting owned by the establishment.
func (s *JobService) CreateJob(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error) {
	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		EstablishmentID: establishmentID,
		Title:           req.Title,
		Description:     req.Description,
		ContractType:    req.ContractType,
		Sector:          req.Sector,
		Location:        req.Location,
		Salary:          req.Salary,
		RequiredSkills:  req.RequiredSkills,
		Schedule:        req.Schedule,
		Status:          status,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// SearchJobs returns paginated active jobs matching the filter.
func (s *JobService) SearchJobs(ctx context.Context, filter *models.JobFilter, page, limit int) (*models.JobListResponse, error) {
	jobs, total, err := s.repo.Search(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.JobListResponse{
		Items:      jobs,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetJob retrieves a single job posting.
func (s *JobService) GetJob(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// ListEstablishmentJobs returns the establishment's own postings, all statuses included.
func (s *JobService) ListEstablishmentJobs(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.JobListResponse, error) {
	jobs, total, err := s.repo.FindByEstablishment(ctx, establishmentID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.JobListResponse{
		Items:      jobs,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateJob updates a posting after checking the requester owns it.
func (s *JobService) UpdateJob(ctx context.Context, jobID, establishmentID primitive.ObjectID, req *models.UpdateJobRequest) (*models.Job, error) {
	if err := authz.Require(ctx, s.authorizer, establishmentID, authz.KindJob, jobID, authz.RelationOwner); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, jobID, req)
}

// DeleteJob removes a posting after checking the requester owns it.
func (s *JobService) DeleteJob(ctx context.Context, jobID, establishmentID primitive.ObjectID) error {
	if err := authz.Require(ctx, s.authorizer, establishmentID, authz.KindJob, jobID, authz.RelationOwner); err != nil {
		return err
	}

	return s.repo.Delete(ctx, jobID)
}
