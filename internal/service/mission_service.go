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

// missionTransitions lists the legal status moves. Completed and cancelled
// are terminal.
var missionTransitions = map[models.MissionStatus][]models.MissionStatus{
	models.MissionPending:    {models.MissionInProgress, models.MissionCancelled},
	models.MissionInProgress: {models.MissionCompleted, models.MissionCancelled},
}

// MissionService handles business logic for missions.
type MissionService struct {
	repo            repository.MissionRepository
	applicationRepo repository.ApplicationRepository
	authorizer      authz.Authorizer
	notifier        EventNotifier
}

// NewMissionService creates a new MissionService.
func NewMissionService(repo repository.MissionRepository, applicationRepo repository.ApplicationRepository, authorizer authz.Authorizer, notifier EventNotifier) *MissionService {
	return &MissionService{
		repo:            repo,
		applicationRepo: applicationRepo,
		authorizer:      authorizer,
		notifier:        notifier,
	}
}

// CreateMission creates a mission from an accepted application. The requester
// must own the job the application was made to, the application must be
// accepted, and the candidate must be the one who applied.
func (s *MissionService) CreateMission(ctx context.Context, establishmentID primitive.ObjectID, req *models.CreateMissionRequest) (*models.Mission, error) {
	applicationID, err := primitive.ObjectIDFromHex(req.ApplicationID)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	candidateID, err := primitive.ObjectIDFromHex(req.CandidateID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := authz.Require(ctx, s.authorizer, establishmentID, authz.KindApplication, applicationID, authz.RelationOwner); err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationAccepted {
		return nil, apperrors.ErrApplicationNotAccepted
	}
	if application.CandidateID != candidateID {
		return nil, apperrors.ErrForbidden
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	mission := &models.Mission{
		Title:           req.Title,
		Description:     req.Description,
		EstablishmentID: establishmentID,
		CandidateID:     candidateID,
		ApplicationID:   applicationID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          models.MissionPending,
		Priority:        priority,
		HourlyRate:      req.HourlyRate,
		EstimatedHours:  req.EstimatedHours,
		Notes:           req.Notes,
	}

	if err := s.repo.Create(ctx, mission); err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: candidateID,
		Type:        models.NotificationMission,
		Title:       "New mission",
		Message:     fmt.Sprintf("You have been assigned to %s", mission.Title),
		RelatedID:   mission.ID,
		RelatedKind: "mission",
	})

	return mission, nil
}

// GetMission returns a mission to one of its two parties.
func (s *MissionService) GetMission(ctx context.Context, missionID, requesterID primitive.ObjectID) (*models.Mission, error) {
	if err := authz.Require(ctx, s.authorizer, requesterID, authz.KindMission, missionID, authz.RelationOwner, authz.RelationAssignee); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, missionID)
}

// ListEstablishmentMissions returns the establishment's missions.
func (s *MissionService) ListEstablishmentMissions(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error) {
	missions, total, err := s.repo.FindByEstablishment(ctx, establishmentID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.MissionListResponse{
		Items:      missions,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListCandidateMissions returns the candidate's missions.
func (s *MissionService) ListCandidateMissions(ctx context.Context, candidateID primitive.ObjectID, page, limit int) (*models.MissionListResponse, error) {
	missions, total, err := s.repo.FindByCandidate(ctx, candidateID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.MissionListResponse{
		Items:      missions,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateMission updates a mission's editable fields. Only the owning
// establishment may update; a status field in the payload goes through the
// same transition rules as the dedicated status endpoint.
func (s *MissionService) UpdateMission(ctx context.Context, missionID, establishmentID primitive.ObjectID, req *models.UpdateMissionRequest) (*models.Mission, error) {
	if err := authz.Require(ctx, s.authorizer, establishmentID, authz.KindMission, missionID, authz.RelationOwner); err != nil {
		return nil, err
	}

	mission, err := s.repo.Update(ctx, missionID, req)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		return s.transition(ctx, mission, *req.Status, models.UserTypeEstablishment)
	}

	return mission, nil
}

// UpdateStatus moves a mission through its lifecycle. Both parties may call
// it: the establishment may make any legal move, the candidate only start or
// complete their own mission.
func (s *MissionService) UpdateStatus(ctx context.Context, missionID, actorID primitive.ObjectID, actorType models.UserType, statusLabel string) (*models.Mission, error) {
	relation := authz.RelationOwner
	if actorType == models.UserTypeCandidate {
		relation = authz.RelationAssignee
	}
	if err := authz.Require(ctx, s.authorizer, actorID, authz.KindMission, missionID, relation); err != nil {
		return nil, err
	}

	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, mission, statusLabel, actorType)
}

func (s *MissionService) transition(ctx context.Context, mission *models.Mission, statusLabel string, actorType models.UserType) (*models.Mission, error) {
	target, ok := models.ParseMissionStatus(statusLabel)
	if !ok {
		return nil, apperrors.ErrUnknownMissionStatus
	}

	if target == mission.Status {
		return mission, nil
	}

	if !transitionAllowed(mission.Status, target) {
		return nil, apperrors.ErrInvalidMissionTransition
	}
	// Cancelling is reserved to the establishment.
	if target == models.MissionCancelled && actorType != models.UserTypeEstablishment {
		return nil, apperrors.ErrInvalidMissionTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, mission.ID, target)
	if err != nil {
		return nil, err
	}

	// Tell the other party.
	recipient := updated.CandidateID
	if actorType == models.UserTypeCandidate {
		recipient = updated.EstablishmentID
	}
	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: recipient,
		Type:        models.NotificationMission,
		Title:       "Mission update",
		Message:     fmt.Sprintf("Mission %s is now %s", updated.Title, target),
		RelatedID:   updated.ID,
		RelatedKind: "mission",
	})

	return updated, nil
}

func transitionAllowed(from, to models.MissionStatus) bool {
	for _, allowed := range missionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
