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

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	Search(ctx context.Context, filter *models.JobFilter, page, limit int) ([]models.Job, int, error)
	FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Job, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// jobRepository implements JobRepository using MongoDB.
type jobRepository struct {
	collection *mongo.Collection
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *mongo.Database) JobRepository {
	return &jobRepository{
		collection: db.Collection("jobs"),
	}
}

// Create inserts a new job posting.
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return err
	}

	job.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	return &job, nil
}

// Search returns paginated active jobs matching the optional filter fields.
func (r *jobRepository) Search(ctx context.Context, filter *models.JobFilter, page, limit int) ([]models.Job, int, error) {
	query := bson.M{"status": models.JobStatusActive}
	if filter != nil {
		if filter.City != "" {
			query["location.city"] = filter.City
		}
		if filter.ContractType != "" {
			query["contractType"] = filter.ContractType
		}
		if filter.Sector != "" {
			query["sector"] = filter.Sector
		}
	}

	return r.findPage(ctx, query, page, limit)
}

// FindByEstablishment returns paginated jobs posted by an establishment,
// whatever their status.
func (r *jobRepository) FindByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, page, limit int) ([]models.Job, int, error) {
	return r.findPage(ctx, bson.M{"establishmentId": establishmentID}, page, limit)
}

func (r *jobRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.Job, int, error) {
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

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}

	// Return empty slice instead of nil
	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, int(total), nil
}

// Update updates a job posting.
func (r *jobRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.ContractType != nil {
		updateDoc["contractType"] = *update.ContractType
	}
	if update.Sector != nil {
		updateDoc["sector"] = *update.Sector
	}
	if update.Location != nil {
		updateDoc["location"] = *update.Location
	}
	if update.Salary != nil {
		updateDoc["salary"] = *update.Salary
	}
	if update.RequiredSkills != nil {
		updateDoc["requiredSkills"] = update.RequiredSkills
	}
	if update.Schedule != nil {
		updateDoc["schedule"] = *update.Schedule
	}
	if update.Status != nil {
		updateDoc["status"] = *update.Status
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a job posting.
func (r *jobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}
