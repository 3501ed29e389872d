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

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	FindByRecipient(ctx context.Context, recipientID primitive.ObjectID, page, limit int) ([]models.Notification, int, error)
	CountUnread(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// notificationRepository implements NotificationRepository using MongoDB.
type notificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{
		collection: db.Collection("notifications"),
	}
}

// Create inserts a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	notification.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return err
	}

	notification.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}

	return &notification, nil
}

// FindByRecipient returns paginated notifications for a recipient, newest first.
func (r *notificationRepository) FindByRecipient(ctx context.Context, recipientID primitive.ObjectID, page, limit int) ([]models.Notification, int, error) {
	query := bson.M{"recipientId": recipientID}

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

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	return notifications, int(total), nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *notificationRepository) CountUnread(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"recipientId": recipientID,
		"read":        false,
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// MarkRead marks a single notification as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of a recipient as read and
// returns the number updated.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"recipientId": recipientID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return int(result.ModifiedCount), nil
}

// Delete removes a notification.
func (r *notificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
