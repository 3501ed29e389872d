package service

import (
	"context"
	"fmt"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/queue"
	"github.com/Malmeu/food-force-v2-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingService handles business logic for ratings.
type RatingService struct {
	repo        repository.RatingRepository
	missionRepo repository.MissionRepository
	notifier    EventNotifier
}

// NewRatingService creates a new RatingService.
func NewRatingService(repo repository.RatingRepository, missionRepo repository.MissionRepository, notifier EventNotifier) *RatingService {
	return &RatingService{
		repo:        repo,
		missionRepo: missionRepo,
		notifier:    notifier,
	}
}

// RateMission rates the counterparty of a completed mission. The rater must
// be one of the mission's two parties and may rate a mission only once.
func (s *RatingService) RateMission(ctx context.Context, raterID primitive.ObjectID, req *models.CreateRatingRequest) (*models.Rating, error) {
	missionID, err := primitive.ObjectIDFromHex(req.MissionID)
	if err != nil {
		return nil, apperrors.ErrMissionNotFound
	}

	mission, err := s.missionRepo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.Status != models.MissionCompleted {
		return nil, apperrors.ErrMissionNotCompleted
	}

	// The rated party is the other side of the mission.
	var ratedID primitive.ObjectID
	switch raterID {
	case mission.EstablishmentID:
		ratedID = mission.CandidateID
	case mission.CandidateID:
		ratedID = mission.EstablishmentID
	default:
		return nil, apperrors.ErrForbidden
	}

	existing, err := s.repo.FindByMissionAndRater(ctx, missionID, raterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyRated
	}

	rating := &models.Rating{
		MissionID: missionID,
		RaterID:   raterID,
		RatedID:   ratedID,
		Score:     req.Score,
		Comment:   req.Comment,
	}

	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}

	s.notifier.Notify(queue.NotificationEvent{
		RecipientID: ratedID,
		Type:        models.NotificationRating,
		Title:       "New rating",
		Message:     fmt.Sprintf("You received a %d-star rating", rating.Score),
		RelatedID:   rating.ID,
		RelatedKind: "rating",
	})

	return rating, nil
}

// ListUserRatings returns the ratings a user has received.
func (s *RatingService) ListUserRatings(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.RatingListResponse, error) {
	ratings, total, err := s.repo.FindByRated(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.RatingListResponse{
		Items:      ratings,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetUserAverage returns a user's average received score.
func (s *RatingService) GetUserAverage(ctx context.Context, userID primitive.ObjectID) (*models.RatingAverage, error) {
	return s.repo.AverageForRated(ctx, userID)
}
