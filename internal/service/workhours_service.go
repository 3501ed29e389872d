package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Malmeu/food-force-v2-sub001/internal/authz"
	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkHoursService handles business logic for work-hours entries.
type WorkHoursService struct {
	repo        repository.WorkHoursRepository
	missionRepo repository.MissionRepository
	authorizer  authz.Authorizer
	notifier    EventNotifier
}

// NewWorkHoursService creates a new WorkHoursService.
func NewWorkHoursService(repo repository.WorkHoursRepository, missionRepo repository.MissionRepository, authorizer authz.Authorizer, notifier EventNotifier) *WorkHoursService {
	return &WorkHoursService{
		repo:        repo,
		missionRepo: missionRepo,
		authorizer:  authorizer,
		notifier:    notifier,
	}
}

// Record logs a pending time entry against a mission. The candidate must be
// the mission's assignee and the date must fall within the mission period.
func (s *WorkHoursService) Record(ctx context.Context, candidateID primitive.ObjectID, req *models.RecordWorkHoursRequest) (*models.WorkHours, error) {
	missionID, err := primitive.ObjectIDFromHex(req.MissionID)
	if err != nil {
		return nil, apperrors.ErrMissionNotFound
	}

	if err := authz.Require(ctx, s.authorizer, candidateID, authz.KindMission, missionID, authz.RelationAssignee); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if req.Date.Before(mission.StartDate) || req.Date.After(mission.EndDate) {
		return nil, apperrors.ErrDateOutsideMission
	}

	entry := &models.WorkHours{
		MissionID:   missionID,
		CandidateID: candidateID,
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		Status:      models.WorkHoursPending,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListMissionWorkHours returns a mission's entries to either of its parties.
func (s *WorkHoursService) ListMissionWorkHours(ctx context.Context, missionID, requesterID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error) {
	if err := authz.Require(ctx, s.authorizer, requesterID, authz.KindMission, missionID, authz.RelationOwner, authz.RelationAssignee); err != nil {
		return nil, err
	}

	entries, total, err := s.repo.FindByMission(ctx, missionID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.WorkHoursListResponse{
		Items:      entries,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListCandidateWorkHours returns the requester's own entries across missions.
func (s *WorkHoursService) ListCandidateWorkHours(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.WorkHoursListResponse, error) {
	entries, total, err := s.repo.FindByCandidate(ctx, candidateID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.WorkHoursListResponse{
		Items:      entries,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Validate marks a pending entry as validated and refreshes the mission's
// actual-hours total. Only the mission's establishment may validate, and a
// reviewed entry can never be reviewed again.
func (s *WorkHoursService) Validate(ctx context.Context, entryID, validatorID primitive.ObjectID) (*models.WorkHours, error) {
	if err := authz.Require(ctx, s.authorizer, validatorID, authz.KindWorkHours, entryID, authz.RelationOwner); err != nil {
		return nil, err
	}

	entry, err := s.repo.Validate(ctx, entryID, validatorID)
	if err != nil {
		return nil, err
	}

	s.recomputeActualHours(ctx, entry.MissionID)

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: entry.CandidateID,
		Type:        models.NotificationMission,
		Title:       "Hours validated",
		Message:     fmt.Sprintf("%.2f hours on %s were validated", entry.Hours, entry.Date.Format("2006-01-02")),
		RelatedID:   entry.ID,
		RelatedKind: "workhours",
	})

	return entry, nil
}

// Reject marks a pending entry as rejected with a mandatory reason.
func (s *WorkHoursService) Reject(ctx context.Context, entryID, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error) {
	if err := authz.Require(ctx, s.authorizer, validatorID, authz.KindWorkHours, entryID, authz.RelationOwner); err != nil {
		return nil, err
	}

	entry, err := s.repo.Reject(ctx, entryID, validatorID, reason)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: entry.CandidateID,
		Type:        models.NotificationMission,
		Title:       "Hours rejected",
		Message:     fmt.Sprintf("Your entry for %s was rejected: %s", entry.Date.Format("2006-01-02"), reason),
		RelatedID:   entry.ID,
		RelatedKind: "workhours",
	})

	return entry, nil
}

// recomputeActualHours re-derives the mission total from the validated
// entries. Summing the full aggregate on every change keeps the stored total
// correct even if a previous write was lost.
func (s *WorkHoursService) recomputeActualHours(ctx context.Context, missionID primitive.ObjectID) {
	total, err := s.repo.SumValidatedHours(ctx, missionID)
	if err != nil {
		log.Printf("Failed to sum validated hours for mission %s: %v", missionID.Hex(), err)
		return
	}
	if err := s.missionRepo.SetActualHours(ctx, missionID, total); err != nil {
		log.Printf("Failed to update actual hours for mission %s: %v", missionID.Hex(), err)
	}
}
