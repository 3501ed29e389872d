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

// WorkHoursRepository defines the interface for work-hours data operations.
type WorkHoursRepository interface {
	Create(ctx context.Context, entry *models.WorkHours) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.WorkHours, error)
	FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error)
	FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error)
	Validate(ctx context.Context, id, validatorID primitive.ObjectID) (*models.WorkHours, error)
	Reject(ctx context.Context, id, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error)
	SumValidatedHours(ctx context.Context, missionID primitive.ObjectID) (float64, error)
	SumValidatedHoursInPeriod(ctx context.Context, missionID primitive.ObjectID, start, end time.Time) (float64, error)
}

// workHoursRepository implements WorkHoursRepository using MongoDB.
type workHoursRepository struct {
	collection *mongo.Collection
}

// NewWorkHoursRepository creates a new WorkHoursRepository.
func NewWorkHoursRepository(db *mongo.Database) WorkHoursRepository {
	return &workHoursRepository{
		collection: db.Collection("work_hours"),
	}
}

// Create inserts a new work-hours entry.
func (r *workHoursRepository) Create(ctx context.Context, entry *models.WorkHours) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a work-hours entry by its ID.
func (r *workHoursRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WorkHours, error) {
	var entry models.WorkHours

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrWorkHoursNotFound
		}
		return nil, err
	}

	return &entry, nil
}

// FindByMission returns paginated entries for a mission, most recent date first.
func (r *workHoursRepository) FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error) {
	return r.findPage(ctx, bson.M{"missionId": missionID}, page, limit)
}

// FindByCandidate returns paginated entries logged by a candidate, most recent date first.
func (r *workHoursRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.WorkHours, int, error) {
	return r.findPage(ctx, bson.M{"candidateId": candidateID}, page, limit)
}

func (r *workHoursRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.WorkHours, int, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entries []models.WorkHours
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, err
	}

	if entries == nil {
		entries = []models.WorkHours{}
	}

	return entries, int(total), nil
}

// Validate marks a pending entry as validated. The status filter makes the
// transition single-shot: an entry already reviewed is never touched again.
func (r *workHoursRepository) Validate(ctx context.Context, id, validatorID primitive.ObjectID) (*models.WorkHours, error) {
	now := time.Now()
	return r.review(ctx, id, bson.M{
		"status":      models.WorkHoursValidated,
		"validatedBy": validatorID,
		"validatedAt": now,
		"updatedAt":   now,
	})
}

// Reject marks a pending entry as rejected with the given reason.
func (r *workHoursRepository) Reject(ctx context.Context, id, validatorID primitive.ObjectID, reason string) (*models.WorkHours, error) {
	now := time.Now()
	return r.review(ctx, id, bson.M{
		"status":          models.WorkHoursRejected,
		"rejectionReason": reason,
		"validatedBy":     validatorID,
		"validatedAt":     now,
		"updatedAt":       now,
	})
}

func (r *workHoursRepository) review(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.WorkHours, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.WorkHoursPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		// Distinguish a missing entry from one that was already reviewed.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrWorkHoursAlreadyReviewed
	}

	return r.FindByID(ctx, id)
}

// SumValidatedHours returns the total validated hours for a mission.
func (r *workHoursRepository) SumValidatedHours(ctx context.Context, missionID primitive.ObjectID) (float64, error) {
	return r.sumHours(ctx, bson.M{
		"missionId": missionID,
		"status":    models.WorkHoursValidated,
	})
}

// SumValidatedHoursInPeriod returns the validated hours for a mission whose
// date falls within [start, end].
func (r *workHoursRepository) SumValidatedHoursInPeriod(ctx context.Context, missionID primitive.ObjectID, start, end time.Time) (float64, error) {
	return r.sumHours(ctx, bson.M{
		"missionId": missionID,
		"status":    models.WorkHoursValidated,
		"date":      bson.M{"$gte": start, "$lte": end},
	})
}

func (r *workHoursRepository) sumHours(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$hours"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
