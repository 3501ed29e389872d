package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MissionRepository defines the interface for mission data operations.
type MissionRepository interface {
	Create(ctx context.Context, mission *models.Mission) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Mission, error)
	FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Mission, int, error)
	FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Mission, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateMissionRequest) (*models.Mission, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.MissionStatus) (*models.Mission, error)
	SetActualHours(ctx context.Context, id primitive.ObjectID, hours float64) error
}

// missionRepository implements MissionRepository using MongoDB.
type missionRepository struct {
	collection *mongo.Collection
}

// NewMissionRepository creates a new MissionRepository.
func NewMissionRepository(db *mongo.Database) MissionRepository {
	return &missionRepository{
		collection: db.Collection("missions"),
	}
}

// Create inserts a new mission.
func (r *missionRepository) Create(ctx context.Context, mission *models.Mission) error {
	now := time.Now()
	mission.CreatedAt = now
	mission.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, mission)
	if err != nil {
		return err
	}

	mission.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a mission by its ID.
func (r *missionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Mission, error) {
	var mission models.Mission

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&mission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, err
	}

	return &mission, nil
}

// FindByEstablishment returns paginated missions created by an establishment, newest first.
func (r *missionRepository) FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Mission, int, error) {
	return r.findPage(ctx, bson.M{"establishmentId": establishmentID}, page, limit)
}

// FindByCandidate returns paginated missions assigned to a candidate, newest first.
func (r *missionRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Mission, int, error) {
	return r.findPage(ctx, bson.M{"candidateId": candidateID}, page, limit)
}

func (r *missionRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.Mission, int, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var missions []models.Mission
	if err := cursor.All(ctx, &missions); err != nil {
		return nil, 0, err
	}

	if missions == nil {
		missions = []models.Mission{}
	}

	return missions, int(total), nil
}

// Update updates a mission's editable fields. Status is handled separately so
// the service can enforce transitions.
func (r *missionRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateMissionRequest) (*models.Mission, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.StartDate != nil {
		updateDoc["startDate"] = *update.StartDate
	}
	if update.EndDate != nil {
		updateDoc["endDate"] = *update.EndDate
	}
	if update.Priority != nil {
		updateDoc["priority"] = *update.Priority
	}
	if update.HourlyRate != nil {
		updateDoc["hourlyRate"] = *update.HourlyRate
	}
	if update.EstimatedHours != nil {
		updateDoc["estimatedHours"] = *update.EstimatedHours
	}
	if update.Notes != nil {
		updateDoc["notes"] = *update.Notes
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// UpdateStatus sets a mission's lifecycle status.
func (r *missionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.MissionStatus) (*models.Mission, error) {
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// SetActualHours overwrites the mission's derived actualHours total.
func (r *missionRepository) SetActualHours(ctx context.Context, id primitive.ObjectID, hours float64) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"actualHours": hours, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrMissionNotFound
	}
	return nil
}
