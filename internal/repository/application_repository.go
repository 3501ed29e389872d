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

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID primitive.ObjectID) (bool, error)
	FindByJob(ctx context.Context, jobID primitive.ObjectID, page, limit int) ([]models.Application, int, error)
	FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Application, int, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error)
}

// applicationRepository implements ApplicationRepository using MongoDB.
type applicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{
		collection: db.Collection("applications"),
	}
}

// Create inserts a new application. The unique index on (jobId, candidateId)
// guarantees at most one application per candidate per job.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, application)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyApplied
		}
		return err
	}

	application.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds an application by its ID.
func (r *applicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var application models.Application

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	return &application, nil
}

// ExistsByJobAndCandidate reports whether the candidate has already applied to the job.
func (r *applicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"jobId":       jobID,
		"candidateId": candidateID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByJob returns paginated applications for a job, newest first.
func (r *applicationRepository) FindByJob(ctx context.Context, jobID primitive.ObjectID, page, limit int) ([]models.Application, int, error) {
	return r.findPage(ctx, bson.M{"jobId": jobID}, page, limit)
}

// FindByCandidate returns paginated applications submitted by a candidate, newest first.
func (r *applicationRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Application, int, error) {
	return r.findPage(ctx, bson.M{"candidateId": candidateID}, page, limit)
}

func (r *applicationRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.Application, int, error) {
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

	var applications []models.Application
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, 0, err
	}

	if applications == nil {
		applications = []models.Application{}
	}

	return applications, int(total), nil
}

// UpdateStatus sets an application's status.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) (*models.Application, error) {
	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}
