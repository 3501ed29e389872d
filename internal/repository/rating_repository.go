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

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindByMissionAndRater(ctx context.Context, missionID, raterID primitive.ObjectID) (*models.Rating, error)
	FindByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int, error)
	AverageForRated(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingAverage, error)
}

// ratingRepository implements RatingRepository using MongoDB.
type ratingRepository struct {
	collection *mongo.Collection
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *mongo.Database) RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
	}
}

// Create inserts a new rating. The unique index on (missionId, raterId)
// guarantees one rating per rater per mission.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	rating.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyRated
		}
		return err
	}

	rating.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByMissionAndRater finds the rating a user gave on a mission, if any.
func (r *ratingRepository) FindByMissionAndRater(ctx context.Context, missionID, raterID primitive.ObjectID) (*models.Rating, error) {
	var rating models.Rating

	err := r.collection.FindOne(ctx, bson.M{
		"missionId": missionID,
		"raterId":   raterID,
	}).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &rating, nil
}

// FindByRated returns paginated ratings received by a user, newest first.
func (r *ratingRepository) FindByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int, error) {
	query := bson.M{"ratedId": ratedID}

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

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, 0, err
	}

	if ratings == nil {
		ratings = []models.Rating{}
	}

	return ratings, int(total), nil
}

// AverageForRated returns the average score and count of ratings received by a user.
func (r *ratingRepository) AverageForRated(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingAverage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ratedId": ratedID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.RatingAverage
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &models.RatingAverage{}, nil
	}

	return &results[0], nil
}
