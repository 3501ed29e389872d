package repository

import (
	"context"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository defines the interface for message data operations.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) ([]models.Message, int, error)
	ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error)
	MarkConversationRead(ctx context.Context, userID, peerID primitive.ObjectID) (int, error)
}

// messageRepository implements MessageRepository using MongoDB.
type messageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection("messages"),
	}
}

// Create inserts a new message.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	message.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}

	message.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindConversation returns paginated messages exchanged between two users,
// newest first.
func (r *messageRepository) FindConversation(ctx context.Context, userID, peerID primitive.ObjectID, page, limit int) ([]models.Message, int, error) {
	query := bson.M{"$or": []bson.M{
		{"senderId": userID, "recipientId": peerID},
		{"senderId": peerID, "recipientId": userID},
	}}

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

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return messages, int(total), nil
}

// ListConversations returns one summary per peer the user has exchanged
// messages with: the latest message and the count of their unread messages.
func (r *messageRepository) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]models.ConversationSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"senderId": userID},
			{"recipientId": userID},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		// Group by the other party of each message.
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$senderId", userID}},
				"$recipientId",
				"$senderId",
			}},
			"lastMessage": bson.M{"$first": "$$ROOT"},
			"unreadCount": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$recipientId", userID}},
					bson.M{"$eq": bson.A{"$read", false}},
				}},
				1,
				0,
			}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "lastMessage.createdAt", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []models.ConversationSummary
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}

	if conversations == nil {
		conversations = []models.ConversationSummary{}
	}

	return conversations, nil
}

// MarkConversationRead marks the peer's messages to the user as read and
// returns the number updated.
func (r *messageRepository) MarkConversationRead(ctx context.Context, userID, peerID primitive.ObjectID) (int, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"senderId": peerID, "recipientId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return int(result.ModifiedCount), nil
}
